// Package styles provides small rendering helpers shared by the browser views.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientText colors each rune of text along a gradient through the given
// hex colors. Text is returned unchanged unless at least two valid #rrggbb
// colors are given, which keeps the plain theme free of escapes.
func GradientText(text string, colors ...string) string {
	if len(colors) < 2 || text == "" {
		return text
	}

	stops := make([]colorful.Color, len(colors))
	for i, hex := range colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return text
		}
		stops[i] = c
	}

	runes := []rune(text)
	segments := len(stops) - 1

	var b strings.Builder
	for i, r := range runes {
		var pos float64
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1) * float64(segments)
		}
		seg := min(int(pos), segments-1)

		c := stops[seg].BlendRgb(stops[seg+1], pos-float64(seg))
		red, green, blue := c.RGB255()
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm%c\x1b[0m", red, green, blue, r)
	}
	return b.String()
}

// Divider renders a horizontal rule width cells wide.
func Divider(width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("─", width))
}

// PadRight pads text with spaces to width display cells.
func PadRight(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}
