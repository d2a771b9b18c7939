package tui

import (
	"github.com/0xSterny/quickscripts/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state for browsing a parsed trust report.
type AppModel struct {
	// Data
	Records []model.TrustRecord

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Records to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state over the given records.
func InitialModel(records []model.TrustRecord) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Domain or NetBIOS name..."
	ti.CharLimit = 64
	ti.Width = 30

	indices := make([]int, len(records))
	for i := range records {
		indices[i] = i
	}

	return AppModel{
		Records:         records,
		InputBuffer:     ti,
		FilteredIndices: indices,
		SelectedIdx:     0,
	}
}

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	return nil
}
