package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xSterny/quickscripts/internal/model"
	"github.com/0xSterny/quickscripts/internal/trust"
	"github.com/0xSterny/quickscripts/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "0xSterny",
		Repository: "quickscripts",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/0xSterny/quickscripts/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trustmap [options]\n\n")
		fmt.Fprintf(os.Stderr, "trustmap reformats tab-separated domain-trust dumps into an aligned\n")
		fmt.Fprintf(os.Stderr, "'domain -> NetBIOS' report. The first line of every input is treated\n")
		fmt.Fprintf(os.Stderr, "as a column header and dropped.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  trustmap -f corp_trusts.tsv          # Print report to stdout\n")
		fmt.Fprintf(os.Stderr, "  trustmap -f - < dump.tsv             # Read from stdin\n")
		fmt.Fprintf(os.Stderr, "  trustmap -a -o report.txt            # Discover dumps, append report\n")
		fmt.Fprintf(os.Stderr, "  trustmap -f corp_trusts.tsv --tui    # Browse records interactively\n")
	}

	fileFlags := pflag.StringArrayP("file", "f", nil, "Input file, repeatable ('-' reads standard input)")
	autoFlag := pflag.BoolP("auto", "a", false, fmt.Sprintf("Auto-discover %s files below the current directory", trust.DiscoverPattern))
	outputFlag := pflag.StringP("output", "o", "", "Append the report to this file instead of printing it")
	tuiFlag := pflag.BoolP("tui", "t", false, "Browse the parsed records interactively")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("trustmap version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	opts := trust.Options{
		Files:        *fileFlags,
		AutoDiscover: *autoFlag,
		Output:       *outputFlag,
	}

	if *tuiFlag {
		if opts.Output != "" {
			fmt.Fprintf(os.Stderr, "Error: --tui and --output are mutually exclusive\n\n")
			pflag.Usage()
			os.Exit(2)
		}
		runTuiMode(opts)
		return
	}

	if err := trust.Run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		exitWith(err)
	}
}

func runTuiMode(opts trust.Options) {
	records, err := trust.Collect(opts, os.Stdin, os.Stderr)
	if err != nil {
		exitWith(err)
	}

	m := tui.InitialModel(records)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// exitWith maps the run errors onto the documented exit codes: 2 for unusable
// arguments, 3 for empty auto-discovery, 1 for anything else.
func exitWith(err error) {
	switch {
	case errors.Is(err, trust.ErrNoInputs):
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		pflag.Usage()
		os.Exit(2)
	case errors.Is(err, trust.ErrDiscoveryEmpty):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(3)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
