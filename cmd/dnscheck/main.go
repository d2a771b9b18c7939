package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/0xSterny/quickscripts/internal/model"
	"github.com/0xSterny/quickscripts/internal/resolve"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dnscheck -i <hostname|file> -o <file> [options]\n\n")
		fmt.Fprintf(os.Stderr, "dnscheck performs DNS A-record lookups and saves the results to a file.\n")
		fmt.Fprintf(os.Stderr, "The input is either a single hostname or a file with one hostname per line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dnscheck -i google.com -o results.txt\n")
		fmt.Fprintf(os.Stderr, "  dnscheck -i hostnames.txt -o results.txt -d 8.8.8.8\n")
		fmt.Fprintf(os.Stderr, "  dnscheck -i example.com -o out.txt -d 1.1.1.1 -v\n")
	}

	inputFlag := pflag.StringP("input", "i", "", "Hostname, or file containing hostnames one per line (required)")
	outputFlag := pflag.StringP("output", "o", "", "Output file for the results (required)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Print each result line to the console as well")
	dnsFlag := pflag.StringP("dns", "d", "", "Custom DNS server IP address (e.g. 8.8.8.8)")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *inputFlag == "" || *outputFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: -i and -o are both required\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	resolver, err := resolve.New(*dnsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hosts, err := resolve.ReadHosts(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if len(hosts) == 0 {
		fmt.Fprintln(os.Stderr, "No hostnames found to lookup")
		os.Exit(1)
	}

	serverInfo := ""
	if *dnsFlag != "" {
		serverInfo = fmt.Sprintf(" using DNS server %s", *dnsFlag)
	}
	fmt.Printf("Performing DNS lookups for %d hostname(s)%s...\n\n", len(hosts), serverInfo)

	var results []model.LookupResult
	failed := 0
	for _, host := range hosts {
		res := model.LookupResult{Hostname: host}
		addr, err := resolver.LookupA(host)
		if err != nil {
			res.Address = fmt.Sprintf("Error: %v", err)
			failed++
			fmt.Printf("✗ %s\n", host)
		} else {
			res.Address = addr
			res.OK = true
			fmt.Printf("✓ %s\n", host)
		}
		results = append(results, res)
		if *verboseFlag {
			fmt.Printf("%s / %s\n", res.Hostname, res.Address)
		}
	}

	f, err := os.Create(*outputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to output file: %v\n", err)
		os.Exit(1)
	}
	if err := resolve.WriteReport(f, results, *dnsFlag, time.Now()); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing to output file: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nResults written to: %s\n", *outputFlag)

	if failed > 0 {
		os.Exit(1)
	}
}
