package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xSterny/quickscripts/internal/shellcfg"
)

// fakeRunner records every invocation and fails those matching failOn.
type fakeRunner struct {
	calls  []string
	failOn string
}

func (f *fakeRunner) record(dir, name string, args []string) error {
	call := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.HasPrefix(call, f.failOn) {
		return fmt.Errorf("%s: exit status 1", call)
	}
	return nil
}

func (f *fakeRunner) Run(dir, name string, args ...string) error {
	return f.record(dir, name, args)
}

func (f *fakeRunner) RunQuiet(dir, name string, args ...string) error {
	return f.record(dir, name, args)
}

func (f *fakeRunner) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func testConfig(t *testing.T) (Config, string) {
	t.Helper()
	home := t.TempDir()
	cfg := Config{
		SourceURL: "https://github.com/acme/scanner.git",
		ToolsRoot: filepath.Join(home, "tools"),
		Shell:     &shellcfg.BashShell{},
		Home:      home,
	}
	return cfg, home
}

func TestDeriveDirName(t *testing.T) {
	require.Equal(t, "scanner", DeriveDirName("https://github.com/acme/scanner.git"))
	require.Equal(t, "scanner", DeriveDirName("https://github.com/acme/scanner"))
	require.Equal(t, "scanner", DeriveDirName("https://github.com/acme/scanner/"))
	require.Equal(t, "scanner", DeriveDirName("git@github.com:acme/scanner.git"))
}

func TestInstallFreshClone(t *testing.T) {
	cfg, home := testConfig(t)
	run := &fakeRunner{}

	summary, err := New(cfg, run).Install()
	require.NoError(t, err)

	target := filepath.Join(cfg.ToolsRoot, "scanner")
	venv := filepath.Join(target, VenvDirName)
	require.True(t, run.called("git clone --depth 1 "+cfg.SourceURL+" "+target))
	require.True(t, run.called("python3 -m venv "+venv))
	require.True(t, run.called(filepath.Join(venv, "bin", "pip")+" install --quiet --upgrade pip setuptools wheel"))

	require.Equal(t, filepath.Join(home, ".bashrc"), summary.StartupFile)
	require.Equal(t, venv, summary.VenvDir)
	require.Equal(t, filepath.Join(venv, "bin"), summary.BinDir)
}

func TestInstallUpdatesExistingClone(t *testing.T) {
	cfg, _ := testConfig(t)
	target := filepath.Join(cfg.ToolsRoot, "scanner")
	require.NoError(t, os.MkdirAll(filepath.Join(target, ".git"), 0o755))

	run := &fakeRunner{}
	_, err := New(cfg, run).Install()
	require.NoError(t, err)

	require.True(t, run.called("git pull --rebase"))
	require.False(t, run.called("git clone"))
}

func TestInstallToleratesUpdateFailure(t *testing.T) {
	cfg, _ := testConfig(t)
	target := filepath.Join(cfg.ToolsRoot, "scanner")
	require.NoError(t, os.MkdirAll(filepath.Join(target, ".git"), 0o755))

	run := &fakeRunner{failOn: "git pull"}
	_, err := New(cfg, run).Install()
	require.NoError(t, err)
	// The pipeline kept going past the failed pull.
	require.True(t, run.called("python3 -m venv"))
}

func TestInstallCloneFailureIsFatal(t *testing.T) {
	cfg, _ := testConfig(t)
	run := &fakeRunner{failOn: "git clone"}

	_, err := New(cfg, run).Install()
	require.Error(t, err)
	require.Contains(t, err.Error(), "clone")
	require.False(t, run.called("python3"))
}

func TestInstallSkipsVenvCreationWhenPresent(t *testing.T) {
	cfg, _ := testConfig(t)
	venv := filepath.Join(cfg.ToolsRoot, "scanner", VenvDirName)
	require.NoError(t, os.MkdirAll(venv, 0o755))

	run := &fakeRunner{}
	_, err := New(cfg, run).Install()
	require.NoError(t, err)

	require.False(t, run.called("python3 -m venv"))
	require.True(t, run.called(filepath.Join(venv, "bin", "pip")+" install --quiet --upgrade"))
}

func TestInstallDependencyPriority(t *testing.T) {
	cases := []struct {
		name     string
		files    []string
		wantArgs string
	}{
		{"requirements win", []string{"requirements.txt", "pyproject.toml"}, "install --quiet -r requirements.txt"},
		{"pyproject", []string{"pyproject.toml"}, "install --quiet -e ."},
		{"setup.py", []string{"setup.py"}, "install --quiet -e ."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _ := testConfig(t)
			target := filepath.Join(cfg.ToolsRoot, "scanner")
			require.NoError(t, os.MkdirAll(target, 0o755))
			for _, f := range tc.files {
				require.NoError(t, os.WriteFile(filepath.Join(target, f), []byte("x"), 0o644))
			}

			run := &fakeRunner{}
			_, err := New(cfg, run).Install()
			require.NoError(t, err)
			pip := filepath.Join(target, VenvDirName, "bin", "pip")
			require.True(t, run.called(pip+" "+tc.wantArgs))
		})
	}
}

func TestInstallNoDepsIsNotAnError(t *testing.T) {
	cfg, _ := testConfig(t)
	run := &fakeRunner{}

	_, err := New(cfg, run).Install()
	require.NoError(t, err)

	for _, c := range run.calls {
		require.NotContains(t, c, "install --quiet -r")
		require.NotContains(t, c, "install --quiet -e")
	}
}

func TestInstallRegistersPathBlockOnce(t *testing.T) {
	cfg, home := testConfig(t)
	startup := filepath.Join(home, ".bashrc")

	for i := 0; i < 3; i++ {
		_, err := New(cfg, &fakeRunner{}).Install()
		require.NoError(t, err)
	}

	data, err := os.ReadFile(startup)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), cfg.ToolsRoot+"/*/"+VenvDirName+"/bin"))

	action, _ := shellcfg.Decide(string(data), cfg.ToolsRoot)
	require.Equal(t, shellcfg.ActionNone, action)
}

func TestInstallLeavesMismatchedStartupFileAlone(t *testing.T) {
	cfg, home := testConfig(t)
	startup := filepath.Join(home, ".bashrc")
	otherBlock := shellcfg.RenderBlock("/somewhere/else", startup)
	require.NoError(t, os.WriteFile(startup, []byte(otherBlock), 0o644))

	_, err := New(cfg, &fakeRunner{}).Install()
	require.NoError(t, err)

	data, err := os.ReadFile(startup)
	require.NoError(t, err)
	require.Equal(t, otherBlock, string(data))
}

func TestDetectDeps(t *testing.T) {
	dir := t.TempDir()
	require.Equal(t, DepNone, DetectDeps(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.py"), []byte("x"), 0o644))
	require.Equal(t, DepPackage, DetectDeps(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("x"), 0o644))
	require.Equal(t, DepRequirements, DetectDeps(dir))
}

func TestInstallUsesExplicitDirName(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.DirName = "scanner-dev"

	run := &fakeRunner{}
	_, err := New(cfg, run).Install()
	require.NoError(t, err)
	require.True(t, run.called("git clone --depth 1 "+cfg.SourceURL+" "+filepath.Join(cfg.ToolsRoot, "scanner-dev")))
}
