package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/shelf/internal/browse"
	"github.com/theirongolddev/shelf/internal/catalog"
	"github.com/theirongolddev/shelf/internal/tui/components"
	"github.com/theirongolddev/shelf/internal/tui/layout"
	"github.com/theirongolddev/shelf/internal/tui/styles"
)

// Screen rows outside the panes.
const (
	headerRows = 2 // title, divider
	footerRows = 1 // help bar
)

// geometry is where each part of a frame lands on screen, in cells.
// Rendering and mouse hit-testing share it.
type geometry struct {
	bodyTop int
	bodyH   int

	listX, listW int

	detailX, detailW int
	detailTop        int
	detailH          int

	backRow int // -1 when no back control is drawn
}

func (m Model) geometry() geometry {
	g := geometry{bodyTop: headerRows, backRow: -1}
	g.bodyH = m.height - headerRows - footerRows
	if floor := components.PaneChrome + 2; g.bodyH < floor {
		g.bodyH = floor
	}
	g.detailTop, g.detailH = g.bodyTop, g.bodyH

	switch {
	case m.frame.List != nil && m.frame.Detail != nil:
		g.listW, g.detailW = layout.SplitProportions(m.width)
		g.detailX = g.listW + 1
	case m.frame.List != nil:
		g.listW = m.width
	case m.frame.Detail != nil:
		g.detailW = m.width
		if m.frame.BackVisible {
			g.backRow = g.bodyTop
			g.detailTop++
			g.detailH--
		}
	}
	return g
}

// listRows is the number of list entries that fit in the list pane.
func (g geometry) listRows() int {
	return g.bodyH - components.PaneChrome - 1
}

// detailRows is the number of content rows in the detail pane.
func (g geometry) detailRows() int {
	return g.detailH - components.PaneChrome - 1
}

func (m Model) listHit(g geometry, x, y int) (int, bool) {
	if m.frame.List == nil || x < g.listX || x >= g.listX+g.listW {
		return -1, false
	}
	row := y - g.bodyTop - components.PaneChrome
	if row < 0 || row >= g.listRows() {
		return -1, false
	}
	win := components.Window(m.cursor, m.offset, g.listRows(), len(m.frame.List.Entries))
	i := win.FirstVisible + row
	if i > win.LastVisible {
		return -1, false
	}
	return i, true
}

func (m Model) backHit(g geometry, x, y int) bool {
	return g.backRow >= 0 && y == g.backRow && x >= 0 && x < lipgloss.Width(m.backControl())
}

// overDetail reports whether column x is over the detail pane of a split frame.
func (m Model) overDetail(x int) bool {
	return m.frame.List != nil && m.frame.Detail != nil && x >= m.geometry().detailX
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		maxWidth := 70
		if m.width > 0 && m.width-4 < maxWidth {
			maxWidth = m.width - 4
		}
		if maxWidth < 20 {
			maxWidth = 20
		}

		helpOverlay := components.HelpOverlay(components.HelpOverlayOptions{
			Sections: components.BrowserHelpSections(),
			MaxWidth: maxWidth,
			Theme:    m.theme,
			Icons:    m.icons,
		})
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
	}

	g := m.geometry()

	var b strings.Builder
	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(styles.Divider(m.width, m.theme.Surface2) + "\n")
	b.WriteString(m.renderBody(g) + "\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	t := m.theme
	ic := m.icons

	title := styles.GradientText(ic.Catalog+"  Shelf", string(t.Primary), string(t.Secondary))
	if t.IsPlain() {
		title = m.styles.Title.Render(ic.Catalog + "  Shelf")
	}

	count := m.styles.Dim.Render(fmt.Sprintf("%d products", m.screen.Catalog().Len()))

	o := m.screen.Orientation()
	badge := ic.OrientationIcon(o.String()) + " " + o.String() + " · " + m.frame.Mode.String()
	if m.pin != browse.OrientationUnknown {
		badge += " " + ic.Pinned
	}

	badge = m.styles.Help.Render(badge)
	header := title + "  " + count + "  " + badge
	if m.width <= 0 {
		return header
	}
	// Narrow terminals lose the count before the orientation badge.
	if lipgloss.Width(header) > m.width {
		header = title + "  " + badge
	}
	return components.ClipLine(header, m.width)
}

func (m Model) renderBody(g geometry) string {
	f := m.frame
	switch {
	case f.List != nil && f.Detail != nil:
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderListPane(g),
			" ",
			m.renderDetailPane(g),
		)
	case f.List != nil:
		return m.renderListPane(g)
	case f.Detail != nil:
		if f.BackVisible {
			return m.backControl() + "\n" + m.renderDetailPane(g)
		}
		return m.renderDetailPane(g)
	}
	return ""
}

// backControl is the clickable control that returns to the list.
func (m Model) backControl() string {
	return m.styles.Button.Render(m.icons.Back+" Back") + " " + m.styles.Help.Render("esc")
}

func (m Model) renderListPane(g geometry) string {
	entries := m.frame.List.Entries
	rows := g.listRows()
	win := components.Window(m.cursor, m.offset, rows, len(entries))
	inner := g.listW - m.styles.Pane.GetHorizontalFrameSize()

	sel, selected := m.screen.Selection().Current()

	var lines []string
	for i := win.FirstVisible; i <= win.LastVisible && i < len(entries); i++ {
		isSel := selected && sel == entries[i]
		lines = append(lines, m.renderEntry(i, entries[i], inner, i == m.cursor, isSel))
	}

	title := "Products"
	if ind := components.RenderScrollIndicator(win, inner-len(title)-1, m.theme); ind != "" {
		title += " " + ind
	}

	return components.RenderPane(components.PaneOptions{
		Title:   title,
		Content: strings.Join(lines, "\n"),
		Width:   g.listW,
		Height:  g.bodyH,
		Focused: !selected,
		Styles:  m.styles,
	})
}

// renderEntry renders one list row: marker, number, name and price.
func (m Model) renderEntry(i int, p catalog.Product, width int, cursor, selected bool) string {
	marker := " "
	switch {
	case cursor:
		marker = m.icons.Pointer
	case selected:
		marker = m.icons.Dot
	}
	prefix := styles.PadRight(marker, 2) + fmt.Sprintf("%d. ", i+1)

	nameStyle := m.styles.ListItem
	switch {
	case selected:
		nameStyle = m.styles.ListSelected
	case cursor:
		nameStyle = m.styles.ListCursor
	}

	nameW := width - lipgloss.Width(prefix) - lipgloss.Width(p.Price) - 1
	if nameW < 1 {
		return prefix + nameStyle.Render(p.Name)
	}
	name := styles.PadRight(layout.Truncate(p.Name, nameW), nameW)
	return prefix + nameStyle.Render(name) + " " + m.styles.Price.Render(p.Price)
}

func (m Model) renderDetailPane(g geometry) string {
	_, selected := m.screen.Selection().Current()
	return components.RenderPane(components.PaneOptions{
		Title:   "Details",
		Content: m.detail.View(),
		Width:   g.detailW,
		Height:  g.detailH,
		Focused: selected,
		Styles:  m.styles,
	})
}

// detailContent renders the detail pane body for an inner width.
func (m Model) detailContent(width int) string {
	d := m.frame.Detail
	if d == nil {
		return ""
	}
	if d.Product == nil {
		return components.RenderEmptyState(components.EmptyStateOptions{
			Icon:     m.icons.Circle,
			Title:    d.Placeholder,
			Width:    width,
			Centered: true,
			Theme:    m.theme,
		})
	}

	p := d.Product
	var b strings.Builder
	b.WriteString(m.styles.ProductName.Render(p.Name) + "\n")
	b.WriteString(m.styles.Label.Render("Price: ") + m.styles.Price.Render(p.Price) + "\n\n")
	b.WriteString(renderDescription(p.Description, width, m.markdown, m.theme))
	return b.String()
}

func (m Model) renderHelpBar() string {
	if m.status != "" {
		return m.styles.Help.Render(layout.Truncate(m.status, m.width))
	}
	hints := components.ListHints()
	if m.frame.List == nil {
		hints = components.DetailHints()
	}
	return components.RenderHelpBar(components.HelpBarOptions{
		Hints: hints,
		Width: m.width,
		Theme: m.theme,
	})
}
