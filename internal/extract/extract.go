// Package extract ingests user documentation from source trees. A
// documentation block sits between BeginUserDocs and EndUserDocs
// markers; BeginUserDocs may be followed by a colon and a comma
// separated tag list, so tags can contain spaces. Each extracted block
// becomes a (document, tags, body) unit for the index builder.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNoUserDocs reports that a file carries no documentation block.
var ErrNoUserDocs = errors.New("no user documentation found")

// The tag list is confined to the marker line, so a body line of plain
// words can never be mistaken for tags.
var docPattern = regexp.MustCompile(`(?s)BeginUserDocs:?[ \t]*(?P<tags>([\w -]+(,[ \t]*)?)*)\r?\n\s*(?P<doc>.*)EndUserDocs`)

// Doc is one ingested documentation unit. Name is the source filename
// stem and doubles as the document identifier and output page stem.
type Doc struct {
	Name string
	Tags []string
	Body string
}

// Extractor scans files relative to a base directory.
type Extractor struct {
	basedir string
	log     zerolog.Logger
}

// New returns an extractor reading files relative to basedir.
func New(basedir string, log zerolog.Logger) *Extractor {
	return &Extractor{basedir: basedir, log: log}
}

// ExtractFile extracts the documentation block from one file and
// rewrites its short-description and see-also sections. Returns
// ErrNoUserDocs when the file has no block.
func (e *Extractor) ExtractFile(name string) (Doc, error) {
	data, err := os.ReadFile(filepath.Join(e.basedir, name))
	if err != nil {
		return Doc{}, fmt.Errorf("reading %s: %w", name, err)
	}

	match := docPattern.FindStringSubmatch(string(data))
	if match == nil {
		return Doc{}, ErrNoUserDocs
	}
	tags := splitTags(match[docPattern.SubexpIndex("tags")])
	body := match[docPattern.SubexpIndex("doc")]

	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	if rewritten, err := RewriteShortDescription(body, stem, e.log); err != nil {
		e.log.Warn().Str("file", name).Err(err).Msg("documentation added unfixed")
	} else {
		body = rewritten
	}
	if rewritten, err := RewriteSeeAlso(body, stem, tags, e.log); err != nil {
		e.log.Info().Str("file", name).Err(err).Msg("could not rebuild see-also section")
	} else {
		body = rewritten
	}

	return Doc{Name: stem, Tags: tags, Body: body}, nil
}

// ExtractAll extracts every named file, skipping files without
// documentation. Per-file failures never abort the batch.
func (e *Extractor) ExtractAll(names []string) []Doc {
	var docs []Doc
	for _, name := range names {
		doc, err := e.ExtractFile(name)
		switch {
		case errors.Is(err, ErrNoUserDocs):
			e.log.Debug().Str("file", name).Msg("no user documentation found")
		case err != nil:
			e.log.Warn().Str("file", name).Err(err).Msg("skipping file")
		default:
			docs = append(docs, doc)
		}
	}
	e.log.Info().Int("files", len(names)).Int("documents", len(docs)).Msg("extraction complete")
	return docs
}

// splitTags parses the comma separated tag list, trimming whitespace
// and dropping empty entries.
func splitTags(field string) []string {
	var tags []string
	for _, t := range strings.Split(field, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
