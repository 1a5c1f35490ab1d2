// ABOUTME: create-raw subcommand writing a new raw data file
// ABOUTME: Flag parsing for tags and the configured default author

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nainya/imagecatalog/pkg/config"
	"github.com/nainya/imagecatalog/pkg/metadata"
)

type createRawFlags struct {
	name        string
	author      string
	datatype    string
	url         string
	thumbnail   string
	createdDate string
	tags        []string
}

func newCreateRawCommand() *cobra.Command {
	f := &createRawFlags{}

	cmd := &cobra.Command{
		Use:   "create-raw <file>",
		Short: "Create a raw data metadata file",
		Long: `Create (or overwrite) a raw data metadata file.

When --author is omitted the "author" key of the configuration is used.

Examples:
  imagecatalog create-raw cell1.md.json --name cell1 --url cell1.tif --tag Condition=WT`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := parseTags(f.tags)
			if err != nil {
				return err
			}

			r, err := metadata.CreateRawData(args[0])
			if err != nil {
				return err
			}

			author := f.author
			if !cmd.Flags().Changed("author") {
				author = defaultAuthor()
			}

			r.SetName(f.name)
			r.SetAuthor(author)
			r.SetDatatype(f.datatype)
			r.SetURL(f.url)
			r.SetThumbnail(f.thumbnail)
			r.SetCreatedDate(f.createdDate)
			for _, kv := range tags {
				r.SetTag(kv[0], kv[1])
			}

			if err := r.Write(); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Created raw data %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&f.name, "name", "", "Data name")
	cmd.Flags().StringVar(&f.author, "author", "", "Data author")
	cmd.Flags().StringVar(&f.datatype, "datatype", "", "Data type (e.g. image)")
	cmd.Flags().StringVar(&f.url, "url", "", "Data file, absolute or relative to the metadata file")
	cmd.Flags().StringVar(&f.thumbnail, "thumbnail", "", "Thumbnail file")
	cmd.Flags().StringVar(&f.createdDate, "createddate", time.Now().Format("2006-01-02"), "Creation date")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "Tag as key=value (repeatable)")

	return cmd
}

// defaultAuthor reads the configured author, or "" when none is set
func defaultAuthor() string {
	author, err := config.Instance().GetString("author")
	if err != nil {
		return ""
	}
	return author
}

func parseTags(raw []string) ([][2]string, error) {
	tags := make([][2]string, 0, len(raw))
	for _, t := range raw {
		key, value, ok := strings.Cut(t, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q, expected key=value", t)
		}
		tags = append(tags, [2]string{key, value})
	}
	return tags, nil
}
