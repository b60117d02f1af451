// Package components provides shared TUI building blocks.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/shelf/internal/tui/icons"
	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// CompactWidth is the width below which help hints drop their key badges.
const CompactWidth = 60

// KeyHint is one keybinding shown to the user, e.g. {"Enter", "view"}.
type KeyHint struct {
	Key  string
	Desc string
}

// HelpSection groups related hints under a heading in the overlay.
type HelpSection struct {
	Title string
	Hints []KeyHint
}

// HelpBarOptions configures RenderHelpBar.
type HelpBarOptions struct {
	Hints []KeyHint
	Width int // 0 = unlimited
	Theme theme.Theme
}

// RenderKeyHint renders "key desc". Compact hints skip the key badge.
func RenderKeyHint(hint KeyHint, t theme.Theme, compact bool) string {
	key := lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	if !compact {
		key = key.Background(t.Surface0).Padding(0, 1)
	}
	desc := lipgloss.NewStyle().Foreground(t.Overlay)
	return key.Render(hint.Key) + " " + desc.Render(hint.Desc)
}

// RenderHelpBar renders hints on one line. When Width is set, hints that do
// not fit are dropped from the right, so order hints by importance.
func RenderHelpBar(opts HelpBarOptions) string {
	const sep = "  "
	compact := opts.Width > 0 && opts.Width < CompactWidth

	var b strings.Builder
	used := 0
	for i, h := range opts.Hints {
		r := RenderKeyHint(h, opts.Theme, compact)
		w := lipgloss.Width(r)
		if i > 0 {
			w += len(sep)
		}
		if opts.Width > 0 && used+w > opts.Width {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(r)
		used += w
	}
	return b.String()
}

// HelpOverlayOptions configures HelpOverlay.
type HelpOverlayOptions struct {
	Title    string // default "Keyboard Shortcuts"
	Sections []HelpSection
	MaxWidth int // 0 = fit content
	Theme    theme.Theme
	Icons    icons.IconSet
}

// HelpOverlay renders a bordered box listing every section's hints with
// the keys right-aligned in one column.
func HelpOverlay(opts HelpOverlayOptions) string {
	t := opts.Theme

	title := opts.Title
	if title == "" {
		title = "Keyboard Shortcuts"
	}
	icon := strings.TrimSpace(opts.Icons.Help)
	if icon == "" {
		icon = "?"
	}

	keyCol := 0
	for _, s := range opts.Sections {
		for _, h := range s.Hints {
			keyCol = max(keyCol, lipgloss.Width(h.Key))
		}
	}

	heading := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Width(keyCol).Align(lipgloss.Right)
	desc := lipgloss.NewStyle().Foreground(t.Subtext)

	lines := []string{
		lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(icon + "  " + title),
		"",
	}
	for i, s := range opts.Sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if s.Title != "" {
			lines = append(lines, heading.Render(s.Title))
		}
		for _, h := range s.Hints {
			lines = append(lines, "  "+key.Render(h.Key)+"  "+desc.Render(h.Desc))
		}
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(t.Overlay).Italic(true).Render("Press ? or Esc to close"))

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	width += 4 // horizontal padding
	if opts.MaxWidth > 0 && width > opts.MaxWidth {
		width = opts.MaxWidth
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

// ListHints are shown while the product list is on screen, most important
// first.
func ListHints() []KeyHint {
	return []KeyHint{
		{Key: "↑/↓", Desc: "navigate"},
		{Key: "Enter", Desc: "view"},
		{Key: "1-9", Desc: "quick select"},
		{Key: "o", Desc: "orientation"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
}

// DetailHints are shown while only the detail view is on screen.
func DetailHints() []KeyHint {
	return []KeyHint{
		{Key: "Esc", Desc: "back"},
		{Key: "y", Desc: "copy"},
		{Key: "o", Desc: "orientation"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
}

// BrowserHelpSections returns the sections of the browser's help overlay.
func BrowserHelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Hints: []KeyHint{
				{Key: "↑ / k", Desc: "Move up"},
				{Key: "↓ / j", Desc: "Move down"},
				{Key: "1-9", Desc: "Open product by number"},
			},
		},
		{
			Title: "Products",
			Hints: []KeyHint{
				{Key: "Enter / →", Desc: "Open product"},
				{Key: "Esc / ←", Desc: "Back to list"},
				{Key: "Click", Desc: "Open product or press Back"},
				{Key: "PgUp / PgDn", Desc: "Scroll details"},
				{Key: "y", Desc: "Copy product"},
			},
		},
		{
			Title: "Layout",
			Hints: []KeyHint{
				{Key: "o", Desc: "Cycle auto / landscape / portrait"},
			},
		},
		{
			Title: "General",
			Hints: []KeyHint{
				{Key: "?", Desc: "Toggle help"},
				{Key: "q / Ctrl+C", Desc: "Quit"},
			},
		},
	}
}
