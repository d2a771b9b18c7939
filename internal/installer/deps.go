package installer

import (
	"path/filepath"

	"github.com/0xSterny/quickscripts/internal/model"
)

// DepKind classifies a tool repo's dependency declaration.
type DepKind int

const (
	// DepNone means the repo declares no installable dependencies.
	DepNone DepKind = iota
	// DepRequirements means a pinned requirements.txt is present.
	DepRequirements
	// DepPackage means the repo is itself an installable package
	// (pyproject.toml or setup.py).
	DepPackage
)

func (k DepKind) String() string {
	switch k {
	case DepRequirements:
		return "requirements.txt"
	case DepPackage:
		return "package metadata"
	default:
		return "none"
	}
}

// DetectDeps inspects dir for a dependency declaration. A requirements file
// wins over package metadata so a repo shipping both gets the pinned set.
func DetectDeps(dir string) DepKind {
	if model.FileExists(filepath.Join(dir, "requirements.txt")) {
		return DepRequirements
	}
	if model.FileExists(filepath.Join(dir, "pyproject.toml")) || model.FileExists(filepath.Join(dir, "setup.py")) {
		return DepPackage
	}
	return DepNone
}
