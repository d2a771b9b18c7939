package trust

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xSterny/quickscripts/internal/model"
)

// StdinSentinel is the --file value meaning "read from standard input".
const StdinSentinel = "-"

// nameWidth is the minimum width the domain-name column is padded to.
const nameWidth = 35

var (
	// ErrNoInputs means no input source could be resolved from the options.
	ErrNoInputs = errors.New("no input files given")
	// ErrDiscoveryEmpty means --auto was requested but nothing matched.
	ErrDiscoveryEmpty = errors.New("auto-discovery found no trust dumps")
)

// Options configures a report run.
type Options struct {
	Files        []string // explicit inputs, possibly containing StdinSentinel
	AutoDiscover bool
	Output       string // append destination; empty means stdout
}

// FormatRecord renders one record as an aligned "name -> value" line.
func FormatRecord(rec model.TrustRecord) string {
	return fmt.Sprintf("%-*s -> %s", nameWidth, rec.Domain, rec.NetBIOS)
}

// ResolveInputs produces the effective, ordered input list for opts.
// Explicit files come first, auto-discovered files after. Requesting
// auto-discovery that matches nothing is an error of its own even when
// explicit files were also given.
func ResolveInputs(opts Options) ([]string, error) {
	inputs := append([]string(nil), opts.Files...)
	if opts.AutoDiscover {
		found, err := Discover(".")
		if err != nil {
			return nil, fmt.Errorf("auto-discovery: %w", err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w matching %q (depth <= %d)", ErrDiscoveryEmpty, DiscoverPattern, maxDiscoverDepth)
		}
		inputs = append(inputs, found...)
	}
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	return inputs, nil
}

// Run resolves the inputs and writes the formatted report.
//
// Named files that cannot be opened are skipped with a warning on stderr; the
// rest of the batch is still processed. When an output file is configured it
// is opened in append mode so repeated runs accumulate, and a confirmation
// line is printed once every source has been handled.
func Run(opts Options, stdin io.Reader, stdout, stderr io.Writer) error {
	inputs, err := ResolveInputs(opts)
	if err != nil {
		return err
	}

	// Standard input can only be drained once. When the report goes to a
	// file, spool stdin to a temporary file first so the processing loop can
	// treat every source uniformly. The spool is removed on every exit path.
	var spool string
	if opts.Output != "" && containsStdin(inputs) {
		tmp, err := os.CreateTemp("", "trustmap-stdin-*")
		if err != nil {
			return fmt.Errorf("spool stdin: %w", err)
		}
		spool = tmp.Name()
		defer os.Remove(spool)
		if _, err := io.Copy(tmp, stdin); err != nil {
			tmp.Close()
			return fmt.Errorf("spool stdin: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("spool stdin: %w", err)
		}
	}

	dest := stdout
	if opts.Output != "" {
		f, err := os.OpenFile(opts.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open output %s: %w", opts.Output, err)
		}
		defer f.Close()
		dest = f
	}

	for _, input := range inputs {
		if input == StdinSentinel {
			src := stdin
			if spool != "" {
				f, err := os.Open(spool)
				if err != nil {
					return fmt.Errorf("reopen stdin spool: %w", err)
				}
				src = f
				if err := writeSource(dest, src, StdinSentinel); err != nil {
					f.Close()
					return err
				}
				f.Close()
				continue
			}
			if err := writeSource(dest, src, StdinSentinel); err != nil {
				return err
			}
			continue
		}

		f, err := os.Open(input)
		if err != nil {
			fmt.Fprintf(stderr, "warning: skipping %s: %v\n", input, err)
			continue
		}
		// Provenance comment only for named files, never for stdin.
		fmt.Fprintf(dest, "# from %s\n", input)
		err = writeSource(dest, f, input)
		f.Close()
		if err != nil {
			return err
		}
	}

	if opts.Output != "" {
		fmt.Fprintf(stdout, "Report written to %s\n", opts.Output)
	}
	return nil
}

// Collect parses every resolved input into records without formatting them,
// for the interactive browser. Missing files are skipped with a warning, the
// same as during a report run.
func Collect(opts Options, stdin io.Reader, stderr io.Writer) ([]model.TrustRecord, error) {
	inputs, err := ResolveInputs(opts)
	if err != nil {
		return nil, err
	}
	var all []model.TrustRecord
	for _, input := range inputs {
		if input == StdinSentinel {
			recs, err := Parse(stdin, "stdin")
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			all = append(all, recs...)
			continue
		}
		f, err := os.Open(input)
		if err != nil {
			fmt.Fprintf(stderr, "warning: skipping %s: %v\n", input, err)
			continue
		}
		recs, err := Parse(f, input)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", input, err)
		}
		all = append(all, recs...)
	}
	return all, nil
}

func containsStdin(inputs []string) bool {
	for _, in := range inputs {
		if in == StdinSentinel {
			return true
		}
	}
	return false
}

func writeSource(dest io.Writer, src io.Reader, name string) error {
	records, err := Parse(src, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(dest, FormatRecord(rec)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
