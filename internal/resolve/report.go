package resolve

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/0xSterny/quickscripts/internal/model"
)

const ruleWidth = 70

// WriteReport writes the lookup results in the fixed report layout: a
// timestamped header naming the server, one "host / result" line per lookup,
// and a success/failure summary footer.
func WriteReport(w io.Writer, results []model.LookupResult, server string, now time.Time) error {
	serverLabel := "System Default"
	if server != "" {
		serverLabel = server
	}
	rule := strings.Repeat("=", ruleWidth)

	if _, err := fmt.Fprintf(w, "DNS Lookup Results - %s\n", now.Format("2006-01-02 15:04:05")); err != nil {
		return err
	}
	fmt.Fprintf(w, "DNS Server: %s\n", serverLabel)
	fmt.Fprintf(w, "%s\n\n", rule)

	ok := 0
	for _, res := range results {
		if res.OK {
			ok++
		}
		if _, err := fmt.Fprintf(w, "%s / %s\n", res.Hostname, res.Address); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "Total lookups: %d\n", len(results))
	fmt.Fprintf(w, "Successful: %d\n", ok)
	_, err := fmt.Fprintf(w, "Failed: %d\n", len(results)-ok)
	return err
}

// readFileIfExists returns the file's contents, or nil without error when
// arg does not name an existing file.
func readFileIfExists(arg string) ([]byte, error) {
	if !model.FileExists(arg) {
		return nil, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", arg, err)
	}
	return data, nil
}
