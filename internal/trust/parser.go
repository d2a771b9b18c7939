package trust

import (
	"bufio"
	"io"
	"strings"

	"github.com/0xSterny/quickscripts/internal/model"
)

// Parse reads one trust dump from r and returns its records.
// The first line is always a column header and is discarded. Fields are
// tab-separated; anything past the second field is ignored. Blank lines are
// skipped. A line without a tab still yields a record with an empty NetBIOS
// name, matching what the awk-based report did.
func Parse(r io.Reader, source string) ([]model.TrustRecord, error) {
	scanner := bufio.NewScanner(r)
	// Trust dumps are small, but exported TSVs sometimes carry very wide
	// description columns. Allow long lines.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var records []model.TrustRecord
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			// Header row
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		rec := model.TrustRecord{
			Domain: fields[0],
			Source: source,
			Line:   lineNum,
		}
		if len(fields) > 1 {
			rec.NetBIOS = fields[1]
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}
