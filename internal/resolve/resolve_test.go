package resolve

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/0xSterny/quickscripts/internal/model"
)

func TestNewRejectsInvalidServerIP(t *testing.T) {
	_, err := New("not-an-ip")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid DNS server IP address")

	_, err = New("8.8.8.8")
	require.NoError(t, err)
}

func TestNewPinsCustomServer(t *testing.T) {
	r, err := New("1.1.1.1")
	require.NoError(t, err)
	require.Equal(t, []string{"1.1.1.1:53"}, r.servers)
}

func TestReadHostsLiteral(t *testing.T) {
	hosts, err := ReadHosts("example.com")
	require.NoError(t, err)
	require.Equal(t, []string{"example.com"}, hosts)
}

func TestReadHostsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.example.com\n\n  b.example.com  \n"), 0o644))

	hosts, err := ReadHosts(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a.example.com", "b.example.com"}, hosts)
}

func TestWriteReportLayout(t *testing.T) {
	results := []model.LookupResult{
		{Hostname: "a.example.com", Address: "192.0.2.10", OK: true},
		{Hostname: "missing.example.com", Address: "Error: domain does not exist"},
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, results, "8.8.8.8", now))
	out := buf.String()

	require.Contains(t, out, "DNS Lookup Results - 2026-08-30 12:00:00")
	require.Contains(t, out, "DNS Server: 8.8.8.8")
	require.Contains(t, out, "a.example.com / 192.0.2.10")
	require.Contains(t, out, "missing.example.com / Error: domain does not exist")
	require.Contains(t, out, "Total lookups: 2")
	require.Contains(t, out, "Successful: 1")
	require.Contains(t, out, "Failed: 1")
	require.Equal(t, 2, strings.Count(out, strings.Repeat("=", 70)))
}

func TestWriteReportDefaultServerLabel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil, "", time.Now()))
	require.Contains(t, buf.String(), "DNS Server: System Default")
	require.Contains(t, buf.String(), "Total lookups: 0")
}
