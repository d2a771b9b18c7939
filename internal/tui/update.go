package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch() // Reset filter to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			// Live filtering while typing
			m.performSearch()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "home", "g":
			m.SelectedIdx = 0
		case "end", "G":
			if len(m.FilteredIndices) > 0 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
			}
		case "/":
			m.InputMode = true
			m.SearchActive = true
			m.InputBuffer.Focus()
			return m, nil
		}
	}

	return m, nil
}

// performSearch rebuilds FilteredIndices from the current input buffer.
// Matching is a case-insensitive substring test over both the domain and the
// NetBIOS name.
func (m *AppModel) performSearch() {
	query := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))

	m.FilteredIndices = m.FilteredIndices[:0]
	for i, rec := range m.Records {
		if query == "" ||
			strings.Contains(strings.ToLower(rec.Domain), query) ||
			strings.Contains(strings.ToLower(rec.NetBIOS), query) {
			m.FilteredIndices = append(m.FilteredIndices, i)
		}
	}

	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = len(m.FilteredIndices) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}
