// ABOUTME: dataset subcommands to create, extend and list datasets
// ABOUTME: Records are referenced relative to the dataset file

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nainya/imagecatalog/pkg/metadata"
)

func newDatasetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Create, extend and list raw datasets",
	}

	cmd.AddCommand(newDatasetCreateCommand())
	cmd.AddCommand(newDatasetAddCommand())
	cmd.AddCommand(newDatasetListCommand())
	return cmd
}

func newDatasetCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create an empty raw dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := metadata.CreateRawDataset(args[0])
			if err != nil {
				return err
			}
			ds.SetName(name)
			if err := ds.Write(); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created dataset %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Dataset name")
	return cmd
}

func newDatasetAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <dataset> <record>...",
		Short: "Append raw data records to a dataset",
		Long: `Append raw data records to a dataset.

Records in the dataset directory are stored by file name; records elsewhere
are stored relative to the dataset directory.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := metadata.NewRawDataset(args[0])
			if err != nil {
				return err
			}

			for _, path := range args[1:] {
				if err := addRecord(ds, path); err != nil {
					return err
				}
			}

			if err := ds.Write(); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Added %d record(s) to %s (size %d)", len(args)-1, args[0], ds.Size())
			return nil
		},
	}
}

func addRecord(ds *metadata.RawDataset, path string) error {
	r, err := metadata.NewRawData(path)
	if err != nil {
		return err
	}
	if r.Directory() == ds.Directory() {
		ds.AddData(r)
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(ds.Directory(), abs)
	if err != nil {
		return fmt.Errorf("cannot reference %s from %s: %w", path, ds.Directory(), err)
	}
	ds.AddDataMDFile(filepath.ToSlash(rel))
	return nil
}

func newDatasetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <dataset>",
		Short: "List the records of a raw dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := metadata.NewRawDataset(args[0])
			if err != nil {
				return err
			}
			records, err := ds.ToList()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				name, _ := r.Name()
				author, _ := r.Author()
				datatype, _ := r.Datatype()
				url, _ := r.URLAsStored()
				rows = append(rows, []string{name, author, datatype, url})
			}

			out := cmd.OutOrStdout()
			title := ds.Name()
			if title == "" {
				title = ds.FileName()
			}
			heading(out, fmt.Sprintf("%s (%d)", title, ds.Size()))
			table(out, []string{"NAME", "AUTHOR", "DATATYPE", "URL"}, rows)
			return nil
		},
	}
}
