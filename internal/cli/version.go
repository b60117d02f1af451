package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/shelf/internal/output"
)

var versionShort bool

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := output.VersionResponse{
				Version:   Version,
				Commit:    Commit,
				Date:      Date,
				GoVersion: goVersion(),
			}
			return GetFormatter(cmd).OutputData(resp, func(w io.Writer) error {
				if versionShort {
					_, err := fmt.Fprintln(w, Version)
					return err
				}
				fmt.Fprintf(w, "shelf version %s\n", Version)
				fmt.Fprintf(w, "  commit:    %s\n", Commit)
				fmt.Fprintf(w, "  built:     %s\n", Date)
				_, err := fmt.Fprintf(w, "  go:        %s\n", goVersion())
				return err
			})
		},
	}
	cmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print only version number")
	return cmd
}
