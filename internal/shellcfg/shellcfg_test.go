package shellcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	sh, err := FromName("bash")
	require.NoError(t, err)
	require.Equal(t, "bash", sh.Name())
	require.Equal(t, ".bashrc", sh.StartupFile())

	sh, err = FromName("zsh")
	require.NoError(t, err)
	require.Equal(t, "zsh", sh.Name())
	require.Equal(t, ".zshrc", sh.StartupFile())

	_, err = FromName("fish")
	require.ErrorIs(t, err, ErrUnknownShell)
	require.Contains(t, err.Error(), "fish")
}

func TestDetectFallsBackToBash(t *testing.T) {
	require.Equal(t, "zsh", Detect("/usr/bin/zsh").Name())
	require.Equal(t, "zsh", Detect("/opt/homebrew/bin/zsh").Name())
	require.Equal(t, "bash", Detect("/bin/bash").Name())
	require.Equal(t, "bash", Detect("/bin/fish").Name())
	require.Equal(t, "bash", Detect("").Name())
}

func TestDecideAppendWhenNoMarker(t *testing.T) {
	action, _ := Decide("export EDITOR=vim\nalias ll='ls -l'\n", "/home/u/tools")
	require.Equal(t, ActionAppend, action)
}

func TestDecideNoneWhenSameRootPresent(t *testing.T) {
	block := RenderBlock("/home/u/tools", "/home/u/.bashrc")
	content := "export EDITOR=vim\n\n" + block

	action, existing := Decide(content, "/home/u/tools")
	require.Equal(t, ActionNone, action)
	require.Equal(t, "/home/u/tools", existing)
}

func TestDecideMismatchForDifferentRoot(t *testing.T) {
	block := RenderBlock("/home/u/other-tools", "/home/u/.bashrc")

	action, existing := Decide(block, "/home/u/tools")
	require.Equal(t, ActionMismatch, action)
	require.Equal(t, "/home/u/other-tools", existing)
}

func TestRenderBlockShape(t *testing.T) {
	block := RenderBlock("/home/u/tools", "/home/u/.zshrc")

	require.Contains(t, block, "/home/u/tools/*/.venv/bin")
	require.Contains(t, block, `PATH="$__qs_bin:$PATH"`)
	require.Contains(t, block, "alias retool='source /home/u/.zshrc'")
	require.Contains(t, block, markerEnd)

	// Appending the block twice would be a bug; the rendered block must be
	// recognized by Decide as already present.
	action, _ := Decide(block, "/home/u/tools")
	require.Equal(t, ActionNone, action)
}

func TestRenderBlockQuotesAwkwardPaths(t *testing.T) {
	block := RenderBlock("/home/u/my tools", "/home/u/.bashrc")
	require.Contains(t, block, "'/home/u/my tools'/*/.venv/bin")
}
