// ABOUTME: run subcommand displaying a processing run
// ABOUTME: Shows the process, its parameters and output dataset

package cli

import (
	"github.com/spf13/cobra"

	"github.com/nainya/imagecatalog/pkg/metadata"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Inspect processing runs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <run>",
		Short: "Print the process, dataset and parameters of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := metadata.NewRun(args[0])
			if err != nil {
				return err
			}
			heading(cmd.OutOrStdout(), args[0])
			run.Display(cmd.OutOrStdout())
			return nil
		},
	})
	return cmd
}
