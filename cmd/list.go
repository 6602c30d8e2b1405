package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tagdex/tagdex/internal/extract"
	"github.com/tagdex/tagdex/internal/facet"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Inspect pipeline stages without writing pages",
}

var listFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List source files matching the globs",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandGlobs(flagSource, flagGlobs)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), files)
	},
}

var listTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag to documents relation",
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := buildIndex(cmd)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), index.TagMap())
	},
}

var listIndicesCmd = &cobra.Command{
	Use:   "indices",
	Short: "List the identifiers of all non-empty index pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := buildIndex(cmd)
		if err != nil {
			return err
		}
		result := facet.BuildIndexSet(index, flagDepth, newLogger(cmd))
		return printJSON(cmd.OutOrStdout(), result.PageIDs())
	},
}

func init() {
	listCmd.AddCommand(listFilesCmd, listTagsCmd, listIndicesCmd)
	rootCmd.AddCommand(listCmd)
}

// buildIndex runs extraction and fills a TagIndex without emitting
// anything.
func buildIndex(cmd *cobra.Command) (*facet.TagIndex, error) {
	log := newLogger(cmd)
	files, err := expandGlobs(flagSource, flagGlobs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match %v under %s", flagGlobs, flagSource)
	}
	index := facet.NewTagIndex(log)
	for _, doc := range extract.New(flagSource, log).ExtractAll(files) {
		index.Add(doc.Name, doc.Tags)
	}
	return index, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
