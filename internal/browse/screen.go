package browse

import (
	"fmt"

	"github.com/theirongolddev/shelf/internal/catalog"
)

// Event is an input to a Screen.
type Event interface {
	fmt.Stringer
	event()
}

// Activate selects a product, typically from a list entry.
type Activate struct {
	Product catalog.Product
}

// Deselect clears the selection, typically from the back control.
type Deselect struct{}

// Rotate reports a new orientation. It never touches the selection.
type Rotate struct {
	Orientation Orientation
}

func (Activate) event() {}
func (Deselect) event() {}
func (Rotate) event()   {}

func (e Activate) String() string { return "activate " + e.Product.Name }
func (Deselect) String() string   { return "deselect" }
func (e Rotate) String() string   { return "rotate " + e.Orientation.String() }

// Screen owns the selection for one browsing session. State only changes
// through Apply, and every Apply yields the frame to render next.
type Screen struct {
	catalog     *catalog.Catalog
	selection   Selection
	orientation Orientation
}

// NewScreen starts a screen with nothing selected.
func NewScreen(c *catalog.Catalog, o Orientation) *Screen {
	return &Screen{catalog: c, orientation: o}
}

// Apply handles one event and returns the resulting frame.
func (s *Screen) Apply(ev Event) Frame {
	switch e := ev.(type) {
	case Activate:
		s.selection.Select(e.Product)
	case Deselect:
		s.selection.Clear()
	case Rotate:
		s.orientation = e.Orientation
	}
	return s.Frame()
}

// Frame composes the current state.
func (s *Screen) Frame() Frame {
	return Compose(s.catalog, s.selection, s.Mode())
}

// Mode is the layout mode for the current orientation.
func (s *Screen) Mode() Mode {
	return Resolve(s.orientation)
}

// Orientation returns the last reported orientation.
func (s *Screen) Orientation() Orientation {
	return s.orientation
}

// Selection returns a copy of the current selection.
func (s *Screen) Selection() Selection {
	return s.selection
}

// Catalog returns the catalog being browsed.
func (s *Screen) Catalog() *catalog.Catalog {
	return s.catalog
}
