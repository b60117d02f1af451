package browse

import "strings"

// Orientation is the shape of the display surface.
type Orientation int

const (
	// OrientationUnknown is reported before the first size is known.
	OrientationUnknown Orientation = iota
	Portrait
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	default:
		return "unknown"
	}
}

// ParseOrientation maps "landscape"/"portrait" (any case) to an orientation.
// Anything else, including "auto" and "", returns OrientationUnknown and false.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "landscape", "wide", "l":
		return Landscape, true
	case "portrait", "tall", "p":
		return Portrait, true
	default:
		return OrientationUnknown, false
	}
}

// Mode is how the list and detail panes are arranged.
type Mode int

const (
	// Stacked shows exactly one pane at a time.
	Stacked Mode = iota
	// Split shows list and detail side by side.
	Split
)

func (m Mode) String() string {
	if m == Split {
		return "split"
	}
	return "stacked"
}

// Resolve maps an orientation to a layout mode. Only Landscape splits;
// every other orientation stacks.
func Resolve(o Orientation) Mode {
	if o == Landscape {
		return Split
	}
	return Stacked
}
