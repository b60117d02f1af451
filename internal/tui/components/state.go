package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/shelf/internal/tui/layout"
	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// EmptyStateOptions configures empty state rendering.
type EmptyStateOptions struct {
	Icon        string // Leading glyph (optional)
	Title       string // Primary message (required)
	Description string // Explanatory text (optional)
	Width       int    // Available width
	Centered    bool   // Center in container
	Theme       theme.Theme
}

// RenderEmptyState renders a multi-line empty state.
// Format:
//
//	       ○
//	Select a product to
//	  view details.
func RenderEmptyState(opts EmptyStateOptions) string {
	t := opts.Theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Overlay)
	titleStyle := lipgloss.NewStyle().Foreground(t.Subtext).Italic(true)
	descStyle := lipgloss.NewStyle().Foreground(t.Overlay).Italic(true)

	var lines []string

	if icon := strings.TrimSpace(opts.Icon); icon != "" {
		lines = append(lines, iconStyle.Render(icon))
	}

	title := opts.Title
	if title == "" {
		title = "Nothing to show"
	}
	lines = append(lines, titleStyle.Render(title))

	if opts.Description != "" {
		lines = append(lines, "")
		desc := opts.Description
		if opts.Width > 4 {
			desc = layout.Truncate(desc, opts.Width-4)
		}
		lines = append(lines, descStyle.Render(desc))
	}

	content := strings.Join(lines, "\n")

	if opts.Width <= 0 {
		return content
	}
	if !opts.Centered {
		return lipgloss.NewStyle().Width(opts.Width).Render(content)
	}
	return lipgloss.NewStyle().
		Width(opts.Width).
		Align(lipgloss.Center).
		Render(content)
}
