package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// CLIError represents a structured CLI error with remediation hints.
type CLIError struct {
	Message string // What failed
	Cause   string // Why it failed (optional)
	Hint    string // Fastest command/action to fix it (optional)
	Code    string // Error code for programmatic handling (optional)

	err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *CLIError) Unwrap() error {
	return e.err
}

// NewCLIError creates a new CLI error with just a message.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg}
}

// WithErr records err as the cause and keeps it reachable via errors.Is/As.
func (e *CLIError) WithErr(err error) *CLIError {
	if err != nil {
		e.err = err
		e.Cause = err.Error()
	}
	return e
}

// WithHint adds a remediation hint to the error.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// WithCode adds an error code to the error.
func (e *CLIError) WithCode(code string) *CLIError {
	e.Code = code
	return e
}

// AsCLIError converts any error to a CLIError, keeping an existing one.
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return NewCLIError(err.Error())
}

func isStderrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// FormatCLIError formats a CLIError for terminal output, colored when
// color is set.
func FormatCLIError(e *CLIError, color bool) string {
	label := func(strs ...string) string { return strings.Join(strs, "") }
	errLabel, causeLabel, hintLabel, codeLabel := label, label, label, label

	if color {
		t := theme.Current()
		errLabel = lipgloss.NewStyle().Foreground(t.Error).Bold(true).Render
		causeLabel = lipgloss.NewStyle().Foreground(t.Subtext).Render
		hintLabel = lipgloss.NewStyle().Foreground(t.Info).Render
		codeLabel = lipgloss.NewStyle().Foreground(t.Overlay).Render
	}

	var sb strings.Builder
	sb.WriteString(errLabel("Error: "))
	sb.WriteString(e.Message)
	if e.Code != "" {
		sb.WriteString(" ")
		sb.WriteString(codeLabel("[" + e.Code + "]"))
	}
	sb.WriteString("\n")

	if e.Cause != "" && e.Cause != e.Message {
		sb.WriteString(causeLabel("  Cause: "))
		sb.WriteString(e.Cause)
		sb.WriteString("\n")
	}

	if e.Hint != "" {
		sb.WriteString(hintLabel("  Hint: "))
		sb.WriteString(e.Hint)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteCLIError writes e as JSON to stdout in JSON mode, otherwise as text
// to stderr.
func WriteCLIError(stdout, stderr io.Writer, e *CLIError, jsonMode bool) error {
	if jsonMode {
		return WriteJSON(stdout, ErrorResponse{
			Error:   e.Message,
			Code:    e.Code,
			Details: e.Cause,
			Hint:    e.Hint,
		})
	}
	color := stderr == os.Stderr && isStderrTerminal() && !theme.NoColorEnabled()
	_, err := io.WriteString(stderr, FormatCLIError(e, color))
	return err
}

// Error codes.
const (
	CodeCatalogInvalid  = "CATALOG_INVALID"
	CodeProductNotFound = "PRODUCT_NOT_FOUND"
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeConfigExists    = "CONFIG_EXISTS"
	CodeNotATerminal    = "NOT_A_TERMINAL"
	CodeBadFlag         = "BAD_FLAG"
)

// Common error hints for frequent scenarios
var (
	HintProductNotFound = "Run 'shelf list' to see product names and ids"
	HintCatalogInvalid  = "Each product needs a unique name, a price and a description"
	HintConfigInvalid   = "Check config syntax with 'shelf config show' or edit it at 'shelf config path'"
	HintConfigExists    = "Use 'shelf config init --force' to overwrite it"
	HintNotATerminal    = "Use 'shelf render' to print a single frame without a terminal"
)

// ProductNotFoundError creates a product not found error with hint
func ProductNotFoundError(key string) *CLIError {
	return NewCLIError(fmt.Sprintf("product '%s' not found", key)).
		WithCode(CodeProductNotFound).
		WithHint(HintProductNotFound)
}

// CatalogError wraps a catalog load failure.
func CatalogError(err error) *CLIError {
	return NewCLIError("could not load catalog").
		WithErr(err).
		WithCode(CodeCatalogInvalid).
		WithHint(HintCatalogInvalid)
}

// ConfigError wraps a config load failure.
func ConfigError(err error) *CLIError {
	return NewCLIError("could not load config").
		WithErr(err).
		WithCode(CodeConfigInvalid).
		WithHint(HintConfigInvalid)
}

// NotATerminalError is returned when the browser is started without a TTY.
func NotATerminalError() *CLIError {
	return NewCLIError("stdout is not a terminal").
		WithCode(CodeNotATerminal).
		WithHint(HintNotATerminal)
}
