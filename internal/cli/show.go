// ABOUTME: show subcommand displaying any metadata document
// ABOUTME: The --kind flag selects data, dataset or run

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nainya/imagecatalog/pkg/metadata"
)

// Document kinds accepted by --kind
const (
	kindData    = "data"
	kindDataset = "dataset"
	kindRun     = "run"
)

type displayer interface {
	Display(w io.Writer)
}

func newShowCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a metadata document",
		Long: `Print a metadata document.

Data records are opened according to their origin type (raw or processed).
Use --kind dataset or --kind run for the other document kinds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openForDisplay(kind, args[0])
			if err != nil {
				return err
			}
			heading(cmd.OutOrStdout(), args[0])
			doc.Display(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", kindData, "Document kind (data, dataset, run)")
	return cmd
}

func openForDisplay(kind, path string) (displayer, error) {
	switch kind {
	case kindData:
		return metadata.Open(path)
	case kindDataset:
		return metadata.NewDataset(path)
	case kindRun:
		return metadata.NewRun(path)
	default:
		return nil, fmt.Errorf("unknown kind %q (want data, dataset or run)", kind)
	}
}
