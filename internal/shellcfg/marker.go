package shellcfg

import (
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// The marker line doubles as the signature grepped for on later runs and as
// the place the configured tools root is recorded, so a run against a
// different root can be detected and refused.
const (
	markerPrefix = "# >>> quickscripts toolup ("
	markerSuffix = ") >>>"
	markerEnd    = "# <<< quickscripts toolup <<<"
)

// Action is the decision for a startup file's current content.
type Action int

const (
	// ActionAppend means no marker block exists yet; append one.
	ActionAppend Action = iota
	// ActionNone means the block for this tools root is already present.
	ActionNone
	// ActionMismatch means a block for a different tools root exists; leave
	// the file alone and let the user reconcile.
	ActionMismatch
)

// Decide inspects the startup file's text and returns what to do for
// toolsRoot. On ActionMismatch the second return value is the root the file
// is already configured for.
func Decide(content, toolsRoot string) (Action, string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, markerPrefix) || !strings.HasSuffix(line, markerSuffix) {
			continue
		}
		existing := strings.TrimSuffix(strings.TrimPrefix(line, markerPrefix), markerSuffix)
		if existing == toolsRoot {
			return ActionNone, existing
		}
		return ActionMismatch, existing
	}
	return ActionAppend, ""
}

// RenderBlock produces the PATH-extension block for toolsRoot. At shell
// startup the loop picks up every tool environment present at that moment,
// so installing a new tool later needs no further edits, only a re-source.
func RenderBlock(toolsRoot, startupPath string) string {
	quotedRoot := shellescape.Quote(toolsRoot)
	quotedStartup := shellescape.Quote(startupPath)

	var b strings.Builder
	b.WriteString(markerPrefix + toolsRoot + markerSuffix + "\n")
	b.WriteString("for __qs_bin in " + quotedRoot + "/*/.venv/bin; do\n")
	b.WriteString("  [ -d \"$__qs_bin\" ] || continue\n")
	b.WriteString("  case \":$PATH:\" in\n")
	b.WriteString("    *\":$__qs_bin:\"*) ;;\n")
	b.WriteString("    *) PATH=\"$__qs_bin:$PATH\" ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("done\n")
	b.WriteString("unset __qs_bin\n")
	b.WriteString("export PATH\n")
	b.WriteString("alias retool='source " + quotedStartup + "'\n")
	b.WriteString(markerEnd + "\n")
	return b.String()
}
