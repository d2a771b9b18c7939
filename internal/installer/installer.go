package installer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/0xSterny/quickscripts/internal/model"
	"github.com/0xSterny/quickscripts/internal/shellcfg"
)

// VenvDirName is the fixed name of the virtual environment created inside
// every tool clone.
const VenvDirName = ".venv"

// Config is everything an install run needs. The shell and the startup file
// are resolved by the caller so detection stays an explicit input rather than
// something the pipeline queries from the environment halfway through.
type Config struct {
	SourceURL string
	DirName   string // defaults to DeriveDirName(SourceURL) when empty
	ToolsRoot string // already tilde-expanded
	Shell     shellcfg.Shell
	Home      string // user home directory, injectable for tests
}

// Summary describes where an install run left things.
type Summary struct {
	StartupFile string
	VenvDir     string
	BinDir      string
}

// Installer runs the clone/venv/install/register pipeline.
type Installer struct {
	cfg Config
	run Runner
}

func New(cfg Config, run Runner) *Installer {
	return &Installer{cfg: cfg, run: run}
}

// DeriveDirName returns the directory name implied by a source URL: its
// basename with a trailing .git stripped. Works for both https and scp-style
// URLs since path.Base only looks past the last slash.
func DeriveDirName(url string) string {
	base := path.Base(strings.TrimRight(url, "/"))
	return strings.TrimSuffix(base, ".git")
}

// Install runs the whole pipeline. Every step is fatal on failure except the
// update of an already-cloned repo, which is logged and tolerated so a flaky
// remote does not block reinstalling dependencies.
func (in *Installer) Install() (Summary, error) {
	dirName := in.cfg.DirName
	if dirName == "" {
		dirName = DeriveDirName(in.cfg.SourceURL)
	}
	target := filepath.Join(in.cfg.ToolsRoot, dirName)
	venv := filepath.Join(target, VenvDirName)

	if err := os.MkdirAll(in.cfg.ToolsRoot, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create tools root %s: %w", in.cfg.ToolsRoot, err)
	}

	if err := in.cloneOrUpdate(target); err != nil {
		return Summary{}, err
	}
	if err := in.ensureVenv(target, venv); err != nil {
		return Summary{}, err
	}
	if err := in.installDeps(target, venv); err != nil {
		return Summary{}, err
	}

	startup := filepath.Join(in.cfg.Home, in.cfg.Shell.StartupFile())
	if err := in.registerPath(startup); err != nil {
		return Summary{}, err
	}

	return Summary{
		StartupFile: startup,
		VenvDir:     venv,
		BinDir:      filepath.Join(venv, "bin"),
	}, nil
}

func (in *Installer) cloneOrUpdate(target string) error {
	if model.DirExists(filepath.Join(target, ".git")) {
		logrus.Infof("updating existing clone in %s", target)
		if err := in.run.Run(target, "git", "pull", "--rebase"); err != nil {
			// Tolerated: a stale clone is still usable.
			logrus.WithError(err).Warnf("update of %s failed, continuing with existing checkout", target)
		}
		return nil
	}
	logrus.Infof("cloning %s into %s", in.cfg.SourceURL, target)
	if err := in.run.Run("", "git", "clone", "--depth", "1", in.cfg.SourceURL, target); err != nil {
		return fmt.Errorf("clone %s: %w", in.cfg.SourceURL, err)
	}
	return nil
}

func (in *Installer) ensureVenv(target, venv string) error {
	if model.DirExists(venv) {
		logrus.Debugf("virtual environment %s already exists", venv)
	} else {
		logrus.Infof("creating virtual environment in %s", venv)
		if err := in.run.Run(target, "python3", "-m", "venv", venv); err != nil {
			return fmt.Errorf("create venv: %w", err)
		}
	}
	pip := filepath.Join(venv, "bin", "pip")
	if err := in.run.RunQuiet(target, pip, "install", "--quiet", "--upgrade", "pip", "setuptools", "wheel"); err != nil {
		return fmt.Errorf("upgrade pip tooling: %w", err)
	}
	return nil
}

func (in *Installer) installDeps(target, venv string) error {
	pip := filepath.Join(venv, "bin", "pip")
	switch kind := DetectDeps(target); kind {
	case DepRequirements:
		logrus.Infof("installing pinned dependencies from requirements.txt")
		if err := in.run.RunQuiet(target, pip, "install", "--quiet", "-r", "requirements.txt"); err != nil {
			return fmt.Errorf("install requirements: %w", err)
		}
	case DepPackage:
		logrus.Infof("installing %s as an editable package", target)
		if err := in.run.RunQuiet(target, pip, "install", "--quiet", "-e", "."); err != nil {
			return fmt.Errorf("install package: %w", err)
		}
	default:
		logrus.Infof("no dependency declaration found in %s, skipping install", target)
	}
	return nil
}

// registerPath idempotently ensures the PATH-extension block is present in
// the startup file. The decision over the file's current text is pure; this
// only performs the chosen action.
func (in *Installer) registerPath(startupPath string) error {
	content, err := os.ReadFile(startupPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", startupPath, err)
	}

	action, existing := shellcfg.Decide(string(content), in.cfg.ToolsRoot)
	switch action {
	case shellcfg.ActionNone:
		logrus.Debugf("%s already configured for %s", startupPath, in.cfg.ToolsRoot)
		return nil
	case shellcfg.ActionMismatch:
		logrus.Warnf("%s is already configured for tools root %s (current run uses %s); not touching it, reconcile manually",
			startupPath, existing, in.cfg.ToolsRoot)
		return nil
	}

	f, err := os.OpenFile(startupPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", startupPath, err)
	}
	defer f.Close()
	block := shellcfg.RenderBlock(in.cfg.ToolsRoot, startupPath)
	if _, err := f.WriteString("\n" + block); err != nil {
		return fmt.Errorf("append to %s: %w", startupPath, err)
	}
	logrus.Infof("added PATH block to %s", startupPath)
	return nil
}
