// ABOUTME: config subcommand for reading configuration values
// ABOUTME: Prints a top-level key of the loaded store as JSON

package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/nainya/imagecatalog/pkg/config"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a top-level configuration value as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.Instance().Get(args[0])
			opts.metrics.RecordConfigLookup(err == nil)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(v, "", "    ")
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})
	return cmd
}
