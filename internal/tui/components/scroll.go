package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// ScrollState tracks scroll position within a viewport.
type ScrollState struct {
	FirstVisible int // Index of first visible item (0-indexed)
	LastVisible  int // Index of last visible item (0-indexed, inclusive)
	TotalItems   int // Total number of items
}

// Window returns the scroll state for showing at most height items out of
// total while keeping cursor visible. offset is the current first visible
// item and is adjusted as little as possible.
func Window(cursor, offset, height, total int) ScrollState {
	if total <= 0 || height <= 0 {
		return ScrollState{}
	}
	if height > total {
		height = total
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	return ScrollState{FirstVisible: offset, LastVisible: offset + height - 1, TotalItems: total}
}

// HasMoreAbove returns true if there's content above the viewport.
func (s ScrollState) HasMoreAbove() bool {
	return s.FirstVisible > 0
}

// HasMoreBelow returns true if there's content below the viewport.
func (s ScrollState) HasMoreBelow() bool {
	return s.TotalItems > 0 && s.LastVisible < s.TotalItems-1
}

// AllVisible returns true if all items fit in the viewport.
func (s ScrollState) AllVisible() bool {
	return !s.HasMoreAbove() && !s.HasMoreBelow()
}

// Indicator returns the arrow indicator string based on scroll state.
// Returns "▲▼" when content above and below, "▲" for above only,
// "▼" for below only, or "" when all content is visible.
func (s ScrollState) Indicator() string {
	switch {
	case s.HasMoreAbove() && s.HasMoreBelow():
		return "▲▼"
	case s.HasMoreAbove():
		return "▲"
	case s.HasMoreBelow():
		return "▼"
	default:
		return ""
	}
}

// RenderScrollIndicator renders the visible range and arrows for a list
// title, choosing the longest form that fits width:
// "Showing 1-5 of 20 ▼", "(1-5/20) ▼", "(5/20) ▼" or just "▼".
// It returns "" when everything is visible.
func RenderScrollIndicator(s ScrollState, width int, t theme.Theme) string {
	if s.AllVisible() {
		return ""
	}

	first, last := s.FirstVisible+1, s.LastVisible+1
	var count string
	switch {
	case width >= 25:
		count = fmt.Sprintf("Showing %d-%d of %d", first, last, s.TotalItems)
	case width >= 15:
		count = fmt.Sprintf("(%d-%d/%d)", first, last, s.TotalItems)
	case width >= 10:
		count = fmt.Sprintf("(%d/%d)", last, s.TotalItems)
	}

	arrows := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(s.Indicator())
	if count == "" {
		return arrows
	}
	return lipgloss.NewStyle().Foreground(t.Overlay).Render(count) + " " + arrows
}
