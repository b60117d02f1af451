package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/shelf/internal/config"
	"github.com/theirongolddev/shelf/internal/output"
)

var configInitForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Create default configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefault(cfgFile, configInitForce)
			if errors.Is(err, config.ErrConfigExists) {
				return output.NewCLIError("config file already exists").
					WithErr(err).
					WithCode(output.CodeConfigExists).
					WithHint(output.HintConfigExists)
			}
			if err != nil {
				return err
			}

			resp := output.NewSuccess("created config file")
			resp.Path = path
			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Created config file: %s\n", path)
				return err
			})
		},
	}
	initCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Print configuration file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = config.DefaultPath()
			}
			resp := output.SuccessResponse{Success: true, Path: path}
			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, path)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return GetFormatter(cmd).OutputData(cfg, func(w io.Writer) error {
				if cfg.Path != "" {
					fmt.Fprintf(w, "# loaded from %s\n", cfg.Path)
				} else {
					fmt.Fprintln(w, "# no config file; showing defaults")
				}
				if len(cfg.UnknownKeys) > 0 {
					fmt.Fprintf(w, "# unknown keys ignored: %s\n", strings.Join(cfg.UnknownKeys, ", "))
				}
				fmt.Fprintln(w)
				return config.Print(cfg, w)
			})
		},
	})

	return cmd
}
