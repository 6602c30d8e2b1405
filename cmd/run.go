package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tagdex/tagdex/internal/emit"
	"github.com/tagdex/tagdex/internal/extract"
	"github.com/tagdex/tagdex/internal/facet"
)

var runOut string
var runExt string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract documentation and build all keyword indices",
	Long: `Scan the source tree for documentation blocks, write one page per
document, and generate an index page for every non-empty keyword
combination up to the configured depth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		files, err := expandGlobs(flagSource, flagGlobs)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no files match %v under %s", flagGlobs, flagSource)
		}

		docs := extract.New(flagSource, log).ExtractAll(files)

		writer, err := emit.New(runOut, runExt, log)
		if err != nil {
			return err
		}

		index := facet.NewTagIndex(log)
		for _, doc := range docs {
			if err := writer.WriteDoc(doc); err != nil {
				return err
			}
			index.Add(doc.Name, doc.Tags)
		}

		result := facet.BuildIndexSet(index, flagDepth, log)
		for _, page := range result.Pages {
			if err := writer.WritePage(page); err != nil {
				return err
			}
		}

		if err := writer.WriteJSON("tags", index.TagMap()); err != nil {
			return err
		}
		if err := writer.WriteJSON("indexfiles", result.PageIDs()); err != nil {
			return err
		}
		if err := writer.WriteTOCTree(docStems(index), result.PageIDs()); err != nil {
			return err
		}

		FormatSummary(cmd.OutOrStdout(), len(files), result)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOut, "out", "o", "userdocs", "Output directory")
	runCmd.Flags().StringVar(&runExt, "ext", emit.DefaultExt, "Extension for written pages")
	rootCmd.AddCommand(runCmd)
}

// expandGlobs resolves the patterns relative to source and returns the
// sorted, deduplicated matches as source-relative paths.
func expandGlobs(source string, patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(source, pattern))
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			rel, err := filepath.Rel(source, m)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[rel]; ok {
				continue
			}
			seen[rel] = struct{}{}
			files = append(files, rel)
		}
	}
	sort.Strings(files)
	return files, nil
}

// docStems returns the sorted identifiers of every indexed document.
func docStems(index *facet.TagIndex) []string {
	rev := index.Reverse()
	stems := make([]string, 0, len(rev))
	for stem := range rev {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}
