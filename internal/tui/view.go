package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xSterny/quickscripts/internal/trust"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("240")) // Grey

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)
)

// View renders the two-pane browser: record list left, details right.
func (m *AppModel) View() string {
	if len(m.Records) == 0 {
		return "\n  No trust records loaded.\n\n  Press q to quit.\n"
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	title := titleStyle.Render(fmt.Sprintf(" trustmap — %d records ", len(m.Records)))

	// Left pane: scrolling window over the filtered records.
	var listLines []string
	start := 0
	if m.SelectedIdx >= interiorHeight {
		start = m.SelectedIdx - interiorHeight + 1
	}
	end := start + interiorHeight
	if end > len(m.FilteredIndices) {
		end = len(m.FilteredIndices)
	}
	for pos := start; pos < end; pos++ {
		rec := m.Records[m.FilteredIndices[pos]]
		label := fmt.Sprintf("%s -> %s", rec.Domain, rec.NetBIOS)
		if len(label) > leftWidth-6 && leftWidth > 9 {
			label = label[:leftWidth-9] + "..."
		}
		if pos == m.SelectedIdx {
			listLines = append(listLines, selectedItemStyle.Render("> "+label))
		} else {
			listLines = append(listLines, unselectedItemStyle.Render(label))
		}
	}
	left := detailStyle.Width(leftWidth).Height(boxHeight).Render(strings.Join(listLines, "\n"))

	// Right pane: details of the selection, scrollable when the terminal is
	// short.
	m.DetailsViewport.Width = rightWidth
	m.DetailsViewport.Height = interiorHeight
	m.DetailsViewport.SetContent(m.renderDetails())
	right := detailStyle.Width(rightWidth).Height(boxHeight).Render(m.DetailsViewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := dimStyle.Render("  ↑/↓ move · / search · esc clear · q quit")
	if m.InputMode {
		footer = "  search: " + m.InputBuffer.View()
	} else if m.SearchActive {
		footer = fmt.Sprintf("  filter %q — %d/%d shown · esc clears", m.InputBuffer.Value(), len(m.FilteredIndices), len(m.Records))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

func (m *AppModel) renderDetails() string {
	if len(m.FilteredIndices) == 0 {
		return dimStyle.Render("No records match the filter.")
	}
	rec := m.Records[m.FilteredIndices[m.SelectedIdx]]

	var b strings.Builder
	b.WriteString(labelStyle.Render("Domain") + "\n")
	b.WriteString("  " + rec.Domain + "\n\n")
	b.WriteString(labelStyle.Render("NetBIOS") + "\n")
	b.WriteString("  " + rec.NetBIOS + "\n\n")
	b.WriteString(labelStyle.Render("Source") + "\n")
	b.WriteString(fmt.Sprintf("  %s:%d\n\n", rec.Source, rec.Line))
	b.WriteString(labelStyle.Render("Report line") + "\n")
	b.WriteString("  " + trust.FormatRecord(rec) + "\n")
	return b.String()
}
