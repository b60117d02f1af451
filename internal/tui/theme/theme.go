// Package theme provides color palettes and prebuilt styles for the browser.
package theme

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for the browser.
type Theme struct {
	Name string

	// Surfaces
	Base     lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Surface2 lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Overlay lipgloss.Color

	// Accents
	Primary   lipgloss.Color // titles, focused borders
	Secondary lipgloss.Color // gradients, badges
	Highlight lipgloss.Color // cursor row
	Price     lipgloss.Color

	// Status
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:      "mocha",
	Base:      lipgloss.Color("#1e1e2e"),
	Surface0:  lipgloss.Color("#313244"),
	Surface1:  lipgloss.Color("#45475a"),
	Surface2:  lipgloss.Color("#585b70"),
	Text:      lipgloss.Color("#cdd6f4"),
	Subtext:   lipgloss.Color("#a6adc8"),
	Overlay:   lipgloss.Color("#6c7086"),
	Primary:   lipgloss.Color("#89b4fa"),
	Secondary: lipgloss.Color("#cba6f7"),
	Highlight: lipgloss.Color("#f5c2e7"),
	Price:     lipgloss.Color("#a6e3a1"),
	Warning:   lipgloss.Color("#f9e2af"),
	Error:     lipgloss.Color("#f38ba8"),
	Info:      lipgloss.Color("#89dceb"),
}

// CatppuccinMacchiato is a softer dark variant.
var CatppuccinMacchiato = Theme{
	Name:      "macchiato",
	Base:      lipgloss.Color("#24273a"),
	Surface0:  lipgloss.Color("#363a4f"),
	Surface1:  lipgloss.Color("#494d64"),
	Surface2:  lipgloss.Color("#5b6078"),
	Text:      lipgloss.Color("#cad3f5"),
	Subtext:   lipgloss.Color("#a5adcb"),
	Overlay:   lipgloss.Color("#6e738d"),
	Primary:   lipgloss.Color("#8aadf4"),
	Secondary: lipgloss.Color("#c6a0f6"),
	Highlight: lipgloss.Color("#f5bde6"),
	Price:     lipgloss.Color("#a6da95"),
	Warning:   lipgloss.Color("#eed49f"),
	Error:     lipgloss.Color("#ed8796"),
	Info:      lipgloss.Color("#91d7e3"),
}

// CatppuccinLatte is the light theme.
var CatppuccinLatte = Theme{
	Name:      "latte",
	Base:      lipgloss.Color("#eff1f5"),
	Surface0:  lipgloss.Color("#ccd0da"),
	Surface1:  lipgloss.Color("#bcc0cc"),
	Surface2:  lipgloss.Color("#acb0be"),
	Text:      lipgloss.Color("#4c4f69"),
	Subtext:   lipgloss.Color("#6c6f85"),
	Overlay:   lipgloss.Color("#7c7f93"),
	Primary:   lipgloss.Color("#1e66f5"),
	Secondary: lipgloss.Color("#8839ef"),
	Highlight: lipgloss.Color("#ea76cb"),
	Price:     lipgloss.Color("#40a02b"),
	Warning:   lipgloss.Color("#df8e1d"),
	Error:     lipgloss.Color("#d20f39"),
	Info:      lipgloss.Color("#04a5e5"),
}

// Nord is the arctic theme.
var Nord = Theme{
	Name:      "nord",
	Base:      lipgloss.Color("#2e3440"),
	Surface0:  lipgloss.Color("#3b4252"),
	Surface1:  lipgloss.Color("#434c5e"),
	Surface2:  lipgloss.Color("#4c566a"),
	Text:      lipgloss.Color("#eceff4"),
	Subtext:   lipgloss.Color("#d8dee9"),
	Overlay:   lipgloss.Color("#7b88a1"),
	Primary:   lipgloss.Color("#88c0d0"),
	Secondary: lipgloss.Color("#b48ead"),
	Highlight: lipgloss.Color("#b48ead"),
	Price:     lipgloss.Color("#a3be8c"),
	Warning:   lipgloss.Color("#ebcb8b"),
	Error:     lipgloss.Color("#bf616a"),
	Info:      lipgloss.Color("#81a1c1"),
}

// Plain uses terminal defaults everywhere. Used for NO_COLOR and snapshots.
var Plain = Theme{Name: "plain"}

// NoColorEnabled reports whether color output should be disabled.
// SHELF_NO_COLOR=1 forces colors off, SHELF_NO_COLOR=0 forces them on,
// otherwise the presence of NO_COLOR (https://no-color.org/) disables them.
func NoColorEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SHELF_NO_COLOR"))) {
	case "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on":
		return true
	}
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// Names lists the accepted theme names.
func Names() []string {
	return []string{"auto", "mocha", "macchiato", "latte", "nord", "plain"}
}

// Known reports whether name is an accepted theme name.
func Known(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return true
	}
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	switch name {
	case "none", "no-color", "nocolor", "light", "dark":
		return true
	}
	return false
}

// FromName returns a theme by name. Unknown names fall back to auto detection.
func FromName(name string) Theme {
	if NoColorEnabled() {
		return Plain
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "none", "no-color", "nocolor":
		return Plain
	case "macchiato":
		return CatppuccinMacchiato
	case "nord":
		return Nord
	case "latte", "light":
		return CatppuccinLatte
	case "mocha", "dark":
		return CatppuccinMocha
	default:
		return autoTheme()
	}
}

// Current returns the theme named by SHELF_THEME, or the auto-detected one.
func Current() Theme {
	return FromName(os.Getenv("SHELF_THEME"))
}

// detectDarkBackground is a variable so tests can stub terminal detection.
var detectDarkBackground = func() bool {
	return termenv.NewOutput(os.Stdout).HasDarkBackground()
}

var (
	cachedAutoTheme Theme
	autoThemeOnce   sync.Once
)

var resetAutoTheme = func() {
	autoThemeOnce = sync.Once{}
	cachedAutoTheme = Theme{}
}

func autoTheme() Theme {
	autoThemeOnce.Do(func() {
		cachedAutoTheme = CatppuccinMocha

		defer func() {
			if recover() != nil {
				cachedAutoTheme = CatppuccinMocha
			}
		}()

		if !detectDarkBackground() {
			cachedAutoTheme = CatppuccinLatte
		}
	})
	return cachedAutoTheme
}

// IsPlain reports whether t carries no colors.
func (t Theme) IsPlain() bool {
	return t.Text == "" && t.Primary == ""
}

// Styles are the prebuilt lipgloss styles used by the browser.
type Styles struct {
	Title   lipgloss.Style
	Divider lipgloss.Style

	Normal lipgloss.Style
	Dim    lipgloss.Style
	Bold   lipgloss.Style

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListCursor   lipgloss.Style

	ProductName lipgloss.Style
	Price       lipgloss.Style
	Label       lipgloss.Style
	Placeholder lipgloss.Style

	Button lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds styles for a theme.
func NewStyles(t Theme) Styles {
	s := Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		Divider: lipgloss.NewStyle().
			Foreground(t.Surface2),

		Normal: lipgloss.NewStyle().
			Foreground(t.Text),

		Dim: lipgloss.NewStyle().
			Foreground(t.Overlay),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Surface2).
			Padding(0, 1),

		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Text),

		ListSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Price),

		ListCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Highlight),

		ProductName: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),

		Price: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Price),

		Label: lipgloss.NewStyle().
			Foreground(t.Subtext),

		Placeholder: lipgloss.NewStyle().
			Italic(true).
			Foreground(t.Overlay),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Background(t.Surface1).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.Overlay),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
	}

	// Without colors, selection must not depend on a background shade.
	if t.IsPlain() {
		s.ListCursor = lipgloss.NewStyle().Bold(true)
		s.ListSelected = lipgloss.NewStyle().Bold(true).Underline(true)
		s.Button = lipgloss.NewStyle().Bold(true)
		s.Error = s.Error.Underline(true)
	}

	return s
}
