package model

// Version is reported by --version and used by the update checker.
const Version = "0.3.1"

// TrustRecord represents a single (domain, NetBIOS) pair parsed from one
// tab-delimited line of a trust dump.
type TrustRecord struct {
	Domain  string // DNS domain name (e.g. corp.example.com)
	NetBIOS string // Flat NetBIOS name (e.g. CORP)
	Source  string // File the record came from, or "stdin"
	Line    int    // 1-based line number in the source, header counted
}

// LookupResult is the outcome of resolving one hostname.
type LookupResult struct {
	Hostname string
	Address  string // Resolved IP, or a human-readable error message
	OK       bool
}
