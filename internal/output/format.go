// Package output writes command results as text or JSON and reports CLI
// errors in either form.
package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format selects how results are written.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}

// Formatter writes one command's result in the chosen format.
type Formatter struct {
	format Format
	writer io.Writer
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(f *Formatter) {
		f.format = format
	}
}

// WithWriter sets the destination. Default os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(f *Formatter) {
		f.writer = w
	}
}

// New creates a text Formatter writing to stdout, adjusted by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{format: FormatText, writer: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsJSON reports whether the formatter writes JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v any) error {
	return WriteJSON(f.writer, v)
}

// OutputData writes jsonData in JSON mode and calls textFn otherwise.
func (f *Formatter) OutputData(jsonData any, textFn func(w io.Writer) error) error {
	if f.IsJSON() {
		return f.JSON(jsonData)
	}
	return textFn(f.writer)
}

// WriteJSON writes v to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DetectFormat picks the output format: the --json flag, then
// SHELF_OUTPUT_FORMAT, then text. Piped output stays text so rendered
// frames can be saved and compared later.
func DetectFormat(jsonFlag bool) Format {
	if jsonFlag || strings.EqualFold(strings.TrimSpace(os.Getenv("SHELF_OUTPUT_FORMAT")), "json") {
		return FormatJSON
	}
	return FormatText
}

// TerminalSize returns the size of the terminal on stdout, or the given
// fallback when stdout is not a terminal.
func TerminalSize(fallbackWidth, fallbackHeight int) (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
