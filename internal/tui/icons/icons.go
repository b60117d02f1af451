package icons

import (
	"os"
	"reflect"
	"strings"
)

// IconSet contains all icons used in the browser
type IconSet struct {
	// Navigation
	Pointer string
	Back    string

	// Status
	Check    string
	Dot      string
	Circle   string
	Warning  string
	Question string

	// Catalog
	Catalog string

	// Orientation
	Landscape string
	Portrait  string
	Pinned    string

	// Help
	Help string
}

// NerdFonts uses Nerd Font glyphs
var NerdFonts = IconSet{
	Pointer: "",
	Back:    "󰁍",

	Check:    "",
	Dot:      "",
	Circle:   "",
	Warning:  "",
	Question: "",

	Catalog: "󰓜",

	Landscape: "󰹑",
	Portrait:  "󰄜",
	Pinned:    "",

	Help: "",
}

// Unicode is a fallback icon set using standard Unicode
var Unicode = IconSet{
	Pointer: "›",
	Back:    "←",

	Check:    "✓",
	Dot:      "•",
	Circle:   "○",
	Warning:  "⚠",
	Question: "?",

	Catalog: "▤",

	Landscape: "▭",
	Portrait:  "▯",
	Pinned:    "◉",

	Help: "?",
}

// ASCII is a minimal fallback for terminals without Unicode
var ASCII = IconSet{
	Pointer: ">",
	Back:    "<-",

	Check:    "[x]",
	Dot:      "*",
	Circle:   "o",
	Warning:  "!",
	Question: "?",

	Catalog: "#",

	Landscape: "[=]",
	Portrait:  "[|]",
	Pinned:    "@",

	Help: "?",
}

// WithFallback fills any empty icon fields from fallback.
func (i IconSet) WithFallback(fallback IconSet) IconSet {
	out := i
	outVal := reflect.ValueOf(&out).Elem()
	fbVal := reflect.ValueOf(fallback)

	for idx := 0; idx < outVal.NumField(); idx++ {
		field := outVal.Field(idx)
		if field.Kind() != reflect.String || field.String() != "" {
			continue
		}
		field.SetString(fbVal.Field(idx).String())
	}
	return out
}

// HasUnicode reports whether the locale advertises UTF-8.
func HasUnicode() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToLower(os.Getenv(key))
		if strings.Contains(v, "utf-8") || strings.Contains(v, "utf8") {
			return true
		}
	}
	return false
}

// ForName returns the icon set for a configured name.
// Accepted names are nerd, unicode, ascii and auto.
func ForName(name string) IconSet {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nerd", "nerdfonts":
		return NerdFonts.WithFallback(Unicode).WithFallback(ASCII)
	case "unicode":
		return Unicode.WithFallback(ASCII)
	case "auto":
		if HasUnicode() {
			return Unicode.WithFallback(ASCII)
		}
	}
	return ASCII
}

// Known reports whether name is an accepted icon set name.
func Known(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nerd", "nerdfonts", "unicode", "ascii", "auto":
		return true
	}
	return false
}

// OrientationIcon returns the glyph for an orientation name.
func (i IconSet) OrientationIcon(name string) string {
	switch name {
	case "landscape":
		return i.Landscape
	case "portrait":
		return i.Portrait
	default:
		return i.Question
	}
}
