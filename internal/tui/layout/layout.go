// Package layout turns terminal geometry into browser layout inputs.
//
// A terminal has no orientation sensor, so orientation is read off the
// window shape. Cells are roughly twice as tall as they are wide, which
// means an 80x24 window is visually landscape while 60x40 is portrait.
// The browse package decides what each orientation means for the panes;
// this package only measures.
package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/theirongolddev/shelf/internal/browse"
)

// DefaultCellAspect is the height/width ratio of a typical terminal cell.
const DefaultCellAspect = 2.0

// Minimum pane sizes for split layouts. Narrower windows still split when the
// orientation says so; panes are clamped rather than dropped.
const (
	MinListWidth   = 18
	MinDetailWidth = 24
)

// OrientationForSize maps a window size in cells to an orientation.
// aspect is the cell height/width ratio; values <= 0 use DefaultCellAspect.
func OrientationForSize(width, height int, aspect float64) browse.Orientation {
	if width <= 0 || height <= 0 {
		return browse.OrientationUnknown
	}
	if aspect <= 0 {
		aspect = DefaultCellAspect
	}
	if float64(width) >= float64(height)*aspect {
		return browse.Landscape
	}
	return browse.Portrait
}

// Sense resolves the orientation to use: a pinned orientation wins, otherwise
// it is measured from the window.
func Sense(pinned browse.Orientation, width, height int, aspect float64) browse.Orientation {
	if pinned == browse.Landscape || pinned == browse.Portrait {
		return pinned
	}
	return OrientationForSize(width, height, aspect)
}

// SplitProportions returns list/detail widths for a split view of total width.
// The list gets 40% of the space left after a 1-column gutter.
func SplitProportions(total int) (left int, right int) {
	if total <= 0 {
		return 0, 0
	}
	avail := total - 1
	if avail < MinListWidth+MinDetailWidth {
		left = avail / 2
		return left, avail - left
	}
	left = int(float64(avail) * 0.4)
	if left < MinListWidth {
		left = MinListWidth
	}
	right = avail - left
	if right < MinDetailWidth {
		right = MinDetailWidth
		left = avail - right
	}
	return left, right
}

// TruncateRunes trims s to max display columns and appends suffix if truncated.
// Width is measured with go-runewidth so wide glyphs count as two columns.
func TruncateRunes(s string, max int, suffix string) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if runewidth.StringWidth(suffix) > max {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, suffix)
}

// Truncate is TruncateRunes with a single-character ellipsis.
func Truncate(s string, max int) string {
	return TruncateRunes(s, max, "…")
}
