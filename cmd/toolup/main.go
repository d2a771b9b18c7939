package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/0xSterny/quickscripts/internal/installer"
	"github.com/0xSterny/quickscripts/internal/model"
	"github.com/0xSterny/quickscripts/internal/shellcfg"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: toolup <source_url> [dir_name] [options]\n\n")
		fmt.Fprintf(os.Stderr, "toolup clones (or updates) a tool repository under the tools root,\n")
		fmt.Fprintf(os.Stderr, "provisions a Python virtual environment inside it, installs its declared\n")
		fmt.Fprintf(os.Stderr, "dependencies, and registers the environments' bin directories on PATH\n")
		fmt.Fprintf(os.Stderr, "via the shell startup file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  toolup https://github.com/acme/scanner.git\n")
		fmt.Fprintf(os.Stderr, "  toolup git@github.com:acme/scanner.git scanner-dev --shell zsh\n")
		fmt.Fprintf(os.Stderr, "  toolup https://github.com/acme/scanner.git --tools-dir ~/opt/tools\n")
	}

	shellFlag := pflag.String("shell", "", "Startup file to patch: bash or zsh (default: detect from $SHELL)")
	toolsDirFlag := pflag.String("tools-dir", "", "Base directory for tool clones (default ~/tools)")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing required <source_url> argument\n\n")
		pflag.Usage()
		os.Exit(1)
	}
	sourceURL := args[0]
	dirName := ""
	if len(args) > 1 {
		dirName = args[1]
	}

	defaults, err := loadDefaults(defaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	toolsDir := defaults.ToolsDir
	if *toolsDirFlag != "" {
		toolsDir = *toolsDirFlag
	}
	toolsRoot := model.ExpandTilde(toolsDir)

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}

	// The tools root is created before the shell kind is validated: an
	// invalid --shell still leaves the (harmless) base directory behind,
	// and nothing else.
	if err := os.MkdirAll(toolsRoot, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: create tools root %s: %v\n", toolsRoot, err)
		os.Exit(1)
	}

	shell, err := resolveShell(*shellFlag, defaults.Shell)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inst := installer.New(installer.Config{
		SourceURL: sourceURL,
		DirName:   dirName,
		ToolsRoot: toolsRoot,
		Shell:     shell,
		Home:      home,
	}, installer.NewRunner())

	summary, err := inst.Install()
	if err != nil {
		logrus.WithError(err).Error("install failed")
		os.Exit(1)
	}

	fmt.Printf("\nDone. Summary:\n")
	fmt.Printf("  startup file: %s\n", summary.StartupFile)
	fmt.Printf("  environment:  %s\n", summary.VenvDir)
	fmt.Printf("  executables:  %s\n", summary.BinDir)
	fmt.Printf("\nOpen a new shell (or run 'retool') to pick up the PATH change.\n")
}

// resolveShell applies the precedence explicit flag > config file > $SHELL
// detection (which itself falls back to bash).
func resolveShell(flagValue, configValue string) (shellcfg.Shell, error) {
	if flagValue != "" {
		return shellcfg.FromName(flagValue)
	}
	if configValue != "" {
		return shellcfg.FromName(configValue)
	}
	return shellcfg.Detect(os.Getenv("SHELL")), nil
}
