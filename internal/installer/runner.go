package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution so the install pipeline can be
// exercised in tests without git or python on the machine.
type Runner interface {
	// Run executes name with args in dir, streaming output to the terminal.
	Run(dir, name string, args ...string) error
	// RunQuiet executes name with args in dir, discarding stdout. Stderr is
	// kept so failures stay diagnosable.
	RunQuiet(dir, name string, args ...string) error
}

type execRunner struct{}

// NewRunner returns the os/exec-backed Runner used in production.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(dir, name string, args ...string) error {
	return r.run(dir, name, args, os.Stdout)
}

func (r *execRunner) RunQuiet(dir, name string, args ...string) error {
	return r.run(dir, name, args, io.Discard)
}

func (r *execRunner) run(dir, name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
