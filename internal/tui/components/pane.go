package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// PaneOptions configures a bordered pane.
type PaneOptions struct {
	Title   string
	Content string
	Width   int // Outer width including border; 0 = fit content
	Height  int // Outer height including border; 0 = fit content
	Focused bool
	Styles  theme.Styles
}

// PaneChrome is the number of rows a pane spends before its content:
// the top border and the title line.
const PaneChrome = 2

// ClipLine cuts line to width cells, ending it with "…" when anything was
// cut. Lines that fit, including ones exactly width wide, are unchanged.
func ClipLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "…")
}

// RenderPane renders content inside a rounded border with the title on the
// first inner line. Content is clipped to the pane size, never wrapped, so
// row positions inside the pane stay predictable for mouse hit-testing.
func RenderPane(opts PaneOptions) string {
	style := opts.Styles.Pane
	if opts.Focused {
		style = opts.Styles.PaneFocused
	}

	body := opts.Content
	if opts.Title != "" {
		body = opts.Styles.PaneTitle.Render(opts.Title) + "\n" + body
	}

	frameW := style.GetHorizontalFrameSize()
	frameH := style.GetVerticalFrameSize()

	if opts.Width > 0 {
		inner := opts.Width - frameW
		if inner < 1 {
			inner = 1
		}
		style = style.Width(inner + style.GetHorizontalPadding())

		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = ClipLine(line, inner)
		}
		body = strings.Join(lines, "\n")
	}
	if opts.Height > 0 {
		inner := opts.Height - frameH
		if inner < 1 {
			inner = 1
		}
		lines := strings.Split(body, "\n")
		if len(lines) > inner {
			body = strings.Join(lines[:inner], "\n")
		}
		style = style.Height(inner + style.GetVerticalPadding())
	}

	return style.Render(body)
}
