package shellcfg

import (
	"errors"
	"fmt"
	"strings"
)

// Shell defines the interface for shell-specific configuration.
type Shell interface {
	Name() string
	StartupFile() string // base name relative to $HOME
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string        { return "bash" }
func (s *BashShell) StartupFile() string { return ".bashrc" }

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string        { return "zsh" }
func (s *ZshShell) StartupFile() string { return ".zshrc" }

// ErrUnknownShell is returned for shell kinds outside {bash, zsh}.
var ErrUnknownShell = errors.New("unknown shell")

// FromName maps an explicit shell kind to a Shell.
func FromName(kind string) (Shell, error) {
	switch kind {
	case "bash":
		return &BashShell{}, nil
	case "zsh":
		return &ZshShell{}, nil
	default:
		return nil, fmt.Errorf("%w %q (expected bash or zsh)", ErrUnknownShell, kind)
	}
}

// Detect identifies the user's shell from the value of $SHELL.
// Detection from the launching shell's environment is unreliable when invoked
// through a non-interactive wrapper, so anything that is not recognizably zsh
// falls back to bash.
func Detect(shellPath string) Shell {
	if strings.Contains(shellPath, "zsh") {
		return &ZshShell{}
	}
	return &BashShell{}
}
