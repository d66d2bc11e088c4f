package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.seluk.ch/corekit/internal/build"
)

func (c *CLI) newCheckUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-update",
		Short: "Check whether a newer release is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			release, err := c.components.App.CheckUpdate(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if release == nil {
				fmt.Fprintf(out, "corekit %s is up to date\n", build.Version)
				return nil
			}
			fmt.Fprintf(out, "update available: %s\n", release.Version)
			fmt.Fprintf(out, "download: %s\n", release.DownloadURL)
			return nil
		},
	}
}
