// Package emit persists the outputs of an index build: extracted
// document pages, generated index pages, and the JSON companion files
// downstream tooling consumes.
package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tagdex/tagdex/internal/extract"
	"github.com/tagdex/tagdex/internal/facet"
)

// DefaultExt is the file extension given to written pages.
const DefaultExt = ".rst"

// Writer writes all build outputs under a single directory.
type Writer struct {
	outdir string
	ext    string
	log    zerolog.Logger
}

// New creates the output directory if needed and returns a writer. An
// empty ext selects DefaultExt.
func New(outdir, ext string, log zerolog.Logger) (*Writer, error) {
	if ext == "" {
		ext = DefaultExt
	}
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outdir, err)
	}
	log.Info().Str("dir", outdir).Msg("writing output")
	return &Writer{outdir: outdir, ext: ext, log: log}, nil
}

// WriteDoc writes an extracted document body under its name stem.
func (w *Writer) WriteDoc(doc extract.Doc) error {
	return w.writeText(doc.Name, doc.Body)
}

// WritePage writes a rendered index page under its identifier.
func (w *Writer) WritePage(page facet.Page) error {
	return w.writeText(page.ID, page.Text)
}

func (w *Writer) writeText(stem, text string) error {
	name := filepath.Join(w.outdir, stem+w.ext)
	w.log.Debug().Str("file", name).Msg("writing page")
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// WriteJSON stores v under name with a .json extension.
func (w *Writer) WriteJSON(name string, v any) error {
	out := filepath.Join(w.outdir, name+".json")
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	w.log.Info().Str("file", out).Msg("data saved")
	return nil
}

// WriteTOCTree writes the combined, deduplicated list of document stems
// and index page identifiers used for table-of-contents assembly.
func (w *Writer) WriteTOCTree(docStems, pageIDs []string) error {
	seen := map[string]struct{}{}
	var entries []string
	for _, s := range append(append([]string{}, docStems...), pageIDs...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		entries = append(entries, s)
	}
	sort.Strings(entries)
	return w.WriteJSON("toc-tree", entries)
}
