package shop

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	mdstyles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"

	"github.com/theirongolddev/shelf/internal/tui/theme"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. A fixed standard style
	// avoids the terminal background query WithAutoStyle performs.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// markdownStyle picks the glamour standard style for a theme.
func markdownStyle(t theme.Theme) string {
	switch {
	case t.IsPlain():
		return mdstyles.AsciiStyle
	case t.Name == theme.CatppuccinLatte.Name:
		return mdstyles.LightStyle
	default:
		return mdstyles.DarkStyle
	}
}

// renderMarkdown renders md with glamour, falling back to the raw text on
// any renderer error.
func renderMarkdown(md string, width int, t theme.Theme) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle(t)
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// renderDescription renders a product description for a pane of the given
// inner width.
func renderDescription(desc string, width int, markdown bool, t theme.Theme) string {
	if markdown {
		return renderMarkdown(desc, width, t)
	}
	if width < 1 {
		return desc
	}
	return wordwrap.String(strings.TrimSpace(desc), width)
}
