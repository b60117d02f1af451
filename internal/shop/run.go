package shop

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/shelf/internal/browse"
	"github.com/theirongolddev/shelf/internal/catalog"
	"github.com/theirongolddev/shelf/internal/config"
)

// ProgramOptions returns the options for running m full screen.
func ProgramOptions(m Model) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Snapshot lays out a browser at a fixed size without running a program.
// When selected is non-nil it is activated, whether or not it belongs to c.
func Snapshot(c *catalog.Catalog, cfg *config.Config, width, height int, selected *catalog.Product) Model {
	m := New(c, Options{Config: cfg})
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	m = next.(Model)

	if selected != nil {
		if i := m.screen.Catalog().Index(*selected); i >= 0 {
			m.cursor = i
		}
		m.apply(browse.Activate{Product: *selected})
	}
	return m
}
