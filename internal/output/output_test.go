package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "text"},
		{FormatJSON, "json"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format.String() = %v, want %v", got, tt.want)
		}
	}
}

func TestFormatterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := New(WithFormat(FormatJSON), WithWriter(buf))

	if err := f.JSON(map[string]int{"a": 1}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if got := buf.String(); got != "{\n  \"a\": 1\n}\n" {
		t.Errorf("JSON output = %q", got)
	}
}

func TestFormatterIsJSON(t *testing.T) {
	if !New(WithFormat(FormatJSON)).IsJSON() {
		t.Error("WithFormat(FormatJSON) should be JSON")
	}
	if New().IsJSON() {
		t.Error("default formatter should be text")
	}
	if New(WithFormat(FormatJSON), WithFormat(FormatText)).IsJSON() {
		t.Error("last option should win")
	}
}

func TestDetectFormat(t *testing.T) {
	t.Setenv("SHELF_OUTPUT_FORMAT", "")
	if DetectFormat(true) != FormatJSON {
		t.Error("flag should force JSON")
	}
	if DetectFormat(false) != FormatText {
		t.Error("default should be text")
	}

	t.Setenv("SHELF_OUTPUT_FORMAT", "JSON")
	if DetectFormat(false) != FormatJSON {
		t.Error("env should select JSON")
	}
}

func TestFormatterOutputData(t *testing.T) {
	buf := &bytes.Buffer{}
	f := New(WithWriter(buf))
	err := f.OutputData(nil, func(w io.Writer) error {
		_, err := io.WriteString(w, "plain")
		return err
	})
	if err != nil || buf.String() != "plain" {
		t.Errorf("OutputData text = %q, %v", buf.String(), err)
	}

	buf.Reset()
	f = New(WithWriter(buf), WithFormat(FormatJSON))
	err = f.OutputData(map[string]string{"k": "v"}, func(io.Writer) error {
		t.Error("text function called in JSON mode")
		return nil
	})
	if err != nil || !strings.Contains(buf.String(), `"k": "v"`) {
		t.Errorf("OutputData json = %q, %v", buf.String(), err)
	}
}

func TestTable(t *testing.T) {
	buf := &bytes.Buffer{}
	tbl := NewTable(buf, "#", "NAME", "PRICE")
	tbl.AddRow("1", "Product A", "$100")
	tbl.AddRow("2", "Café ☕", "$5")
	if err := tbl.Render(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	want := []string{
		"  #  NAME       PRICE",
		"  -  ---------  -----",
		"  1  Product A  $100",
		"  2  Café ☕    $5",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := CountStr(1, "product", "products"); got != "1 product" {
		t.Errorf("CountStr(1) = %q", got)
	}
	if got := CountStr(5, "product", "products"); got != "5 products" {
		t.Errorf("CountStr(5) = %q", got)
	}
	if got := Pluralize(0, "product", "products"); got != "products" {
		t.Errorf("Pluralize(0) = %q", got)
	}
}

func TestCLIError(t *testing.T) {
	base := errors.New("duplicate product name")
	e := CatalogError(base)

	if !errors.Is(e, base) {
		t.Error("CLIError should unwrap to its cause")
	}
	if e.Code != CodeCatalogInvalid || e.Hint == "" {
		t.Errorf("unexpected error fields: %+v", e)
	}

	text := FormatCLIError(e, false)
	for _, want := range []string{"Error: could not load catalog [CATALOG_INVALID]", "Cause: duplicate product name", "Hint: "} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatCLIError missing %q in %q", want, text)
		}
	}
}

func TestAsCLIError(t *testing.T) {
	orig := ProductNotFoundError("Product Z")
	wrapped := errors.Join(errors.New("context"), orig)
	if got := AsCLIError(wrapped); got != orig {
		t.Errorf("AsCLIError should find the wrapped CLIError, got %+v", got)
	}
	if got := AsCLIError(errors.New("plain")); got.Message != "plain" {
		t.Errorf("AsCLIError(plain) = %+v", got)
	}
}

func TestWriteCLIError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	e := ProductNotFoundError("Product Z")

	if err := WriteCLIError(&stdout, &stderr, e, true); err != nil {
		t.Fatal(err)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Code != CodeProductNotFound || resp.Hint != HintProductNotFound {
		t.Errorf("unexpected response: %+v", resp)
	}
	if stderr.Len() != 0 {
		t.Errorf("JSON mode wrote to stderr: %q", stderr.String())
	}

	stdout.Reset()
	if err := WriteCLIError(&stdout, &stderr, e, false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stderr.String(), "Error: product 'Product Z' not found") {
		t.Errorf("text error = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("text mode wrote to stdout: %q", stdout.String())
	}
}

func TestComputeDiff(t *testing.T) {
	same := ComputeDiff("saved", "a\nb\n", "current", "a\nb\n")
	if !same.Identical || same.Similarity != 1 || same.UnifiedDiff != "" {
		t.Errorf("identical diff = %+v", same)
	}

	d := ComputeDiff("saved", "Product A\nProduct B\n", "current", "Product A\nProduct C\n")
	if d.Identical {
		t.Fatal("expected difference")
	}
	if d.Similarity <= 0 || d.Similarity >= 1 {
		t.Errorf("similarity out of range: %v", d.Similarity)
	}
	if !strings.Contains(d.UnifiedDiff, "Product") {
		t.Errorf("patch text should mention changed rows: %q", d.UnifiedDiff)
	}
	if d.LineCount1 != 3 || d.LineCount2 != 3 {
		t.Errorf("line counts = %d,%d", d.LineCount1, d.LineCount2)
	}

	empty := ComputeDiff("a", "", "b", "")
	if !empty.Identical || empty.Similarity != 1 {
		t.Errorf("empty diff = %+v", empty)
	}
}
