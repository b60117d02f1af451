package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/shelf/internal/catalog"
	"github.com/theirongolddev/shelf/internal/output"
	"github.com/theirongolddev/shelf/internal/shop"
)

// Frame size used when stdout is not a terminal.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

var (
	renderWidth       int
	renderHeight      int
	renderOrientation string
	renderSelect      string
	renderAgainst     string
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one browser frame as plain text",
		Long: `Lay out the browser once at a fixed size and print the frame as plain text.

Use --against to compare with a previously saved frame.

Examples:
  shelf render --width 60 --height 40
  shelf render --width 120 --height 30 --select "Product A"
  shelf render --orientation portrait > portrait.txt
  shelf render --orientation portrait --against portrait.txt`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationCatalog: "true"},
		RunE:        runRender,
	}

	cmd.Flags().IntVar(&renderWidth, "width", 0, "frame width in cells (default: terminal width or 80)")
	cmd.Flags().IntVar(&renderHeight, "height", 0, "frame height in cells (default: terminal height or 24)")
	cmd.Flags().StringVar(&renderOrientation, "orientation", "", "auto, landscape or portrait (default: from config)")
	cmd.Flags().StringVar(&renderSelect, "select", "", "product name or id to select first")
	cmd.Flags().StringVar(&renderAgainst, "against", "", "saved frame to diff against")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth < 0 || renderHeight < 0 {
		return output.NewCLIError("--width and --height must not be negative").
			WithCode(output.CodeBadFlag)
	}
	width, height := renderWidth, renderHeight
	if width == 0 || height == 0 {
		tw, th := output.TerminalSize(fallbackWidth, fallbackHeight)
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}

	rcfg := *cfg
	rcfg.Theme = "plain"
	if renderOrientation != "" {
		rcfg.Orientation = strings.ToLower(strings.TrimSpace(renderOrientation))
		if err := rcfg.Validate(); err != nil {
			return output.NewCLIError("invalid --orientation").
				WithErr(err).
				WithCode(output.CodeBadFlag).
				WithHint("Use auto, landscape or portrait")
		}
	}

	var selected *catalog.Product
	if renderSelect != "" {
		p, ok := cat.Lookup(renderSelect)
		if !ok {
			return output.ProductNotFoundError(renderSelect)
		}
		selected = &p
	}

	m := shop.Snapshot(cat, &rcfg, width, height, selected)
	frame := m.Frame()
	text := ansi.Strip(m.View())

	resp := output.FrameResponse{
		Width:       width,
		Height:      height,
		Orientation: m.Orientation().String(),
		Mode:        frame.Mode.String(),
		Panes:       frame.Panes(),
		BackVisible: frame.BackVisible,
		Text:        text,
	}
	if selected != nil {
		sel := productResponse(cat.Index(*selected), *selected)
		resp.Selected = &sel
	}

	if renderAgainst != "" {
		saved, err := os.ReadFile(renderAgainst)
		if err != nil {
			return output.NewCLIError("could not read saved frame").
				WithErr(err).
				WithCode(output.CodeBadFlag)
		}
		resp.Diff = output.ComputeDiff(renderAgainst, strings.TrimRight(string(saved), "\n"), "current", text)
	}

	return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
		if resp.Diff == nil {
			_, err := fmt.Fprintln(w, text)
			return err
		}
		return writeDiff(w, resp.Diff)
	})
}

func writeDiff(w io.Writer, d *output.DiffResult) error {
	if d.Identical {
		_, err := fmt.Fprintf(w, "identical to %s\n", d.Left)
		return err
	}
	if _, err := fmt.Fprintf(w, "--- %s (%d lines)\n+++ %s (%d lines)\n", d.Left, d.LineCount1, d.Right, d.LineCount2); err != nil {
		return err
	}
	if _, err := io.WriteString(w, d.UnifiedDiff); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "similarity: %.1f%%\n", d.Similarity*100)
	return err
}
