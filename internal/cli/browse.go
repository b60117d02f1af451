package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/shelf/internal/config"
	"github.com/theirongolddev/shelf/internal/logging"
	"github.com/theirongolddev/shelf/internal/output"
	"github.com/theirongolddev/shelf/internal/shop"
)

// stdoutIsTerminal is a variable so tests can run without a TTY.
var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog browser",
		Long: `Open the interactive catalog browser.

Orientation is sensed from the window shape unless pinned with the
'orientation' config key or the 'o' key. Config changes are applied
while the browser is open.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationCatalog: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd)
		},
	}
}

func runBrowse(cmd *cobra.Command) error {
	if !stdoutIsTerminal() {
		return output.NotATerminalError()
	}

	logger, err := logging.NewOrNop(cfg.Log)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("catalog loaded",
		zap.String("source", catalogSource),
		zap.Int("products", cat.Len()),
	)

	model := shop.New(cat, shop.Options{Config: cfg, Logger: logger})
	p := tea.NewProgram(model, shop.ProgramOptions(model)...)

	// Watch the config for live reloads while the browser is open
	stopWatch, err := config.Watch(cfgFile, func(c *config.Config) {
		p.Send(shop.ReloadMsg{Config: c})
	}, logger)
	if err != nil {
		// Non-fatal: continue without live reload
		logger.Warn("live reload disabled", zap.Error(err))
	} else {
		defer stopWatch()
	}

	if _, err := p.Run(); err != nil {
		logger.Error("browser failed", zap.Error(err))
		return fmt.Errorf("running browser: %w", err)
	}
	logger.Info("browser closed")
	return nil
}
