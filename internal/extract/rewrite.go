package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tagdex/tagdex/internal/facet"
)

const (
	shortDescriptionTitle = "Short description"
	seeAlsoTitle          = "See also"
)

// Section titles inside extracted bodies are underlined with '+' so they
// stay below any title level the generated pages introduce.
var titlePattern = regexp.MustCompile(`(?m)^(.+)\n(\++)$`)

// TitleMatch is one section title found in a document body, with byte
// offsets into the scanned text.
type TitleMatch struct {
	Title     string
	Start     int // offset of the title line
	BodyStart int // offset just past the underline
}

// Titles scans a document body for +-underlined section titles. A
// title/underline length mismatch is tolerated with a warning.
func Titles(text string, log zerolog.Logger) []TitleMatch {
	var titles []TitleMatch
	for _, loc := range titlePattern.FindAllStringSubmatchIndex(text, -1) {
		title := text[loc[2]:loc[3]]
		underline := text[loc[4]:loc[5]]
		if len(title) != len(underline) {
			log.Warn().
				Str("title", title).
				Int("title_len", len(title)).
				Int("underline_len", len(underline)).
				Msg("section title length does not match underline")
		}
		titles = append(titles, TitleMatch{Title: title, Start: loc[0], BodyStart: loc[1]})
	}
	return titles
}

// RewriteShortDescription replaces the "Short description" section with
// a document title of the form "name – description", underlined as the
// top-level page title.
func RewriteShortDescription(doc, name string, log zerolog.Logger) (string, error) {
	titles := Titles(doc, log)
	if len(titles) == 0 {
		return "", fmt.Errorf("no sections found in %q", name)
	}
	for i, title := range titles {
		if title.Title != shortDescriptionTitle {
			continue
		}
		secEnd := sectionEnd(titles, i, doc)
		desc := strings.ReplaceAll(strings.TrimSpace(doc[title.BodyStart:secEnd]), "\n", " ")
		fixed := name + " – " + desc
		underline := strings.Repeat("=", utf8.RuneCountInString(fixed))
		return doc[:title.Start] + fixed + "\n" + underline + "\n\n" + doc[secEnd:], nil
	}
	return "", fmt.Errorf("no %q section found in %q", shortDescriptionTitle, name)
}

// RewriteSeeAlso replaces the body of the "See also" section with links
// to the singleton index page of every tag the document carries. A
// non-empty manual list is discarded and logged.
func RewriteSeeAlso(doc, name string, tags []string, log zerolog.Logger) (string, error) {
	titles := Titles(doc, log)
	if len(titles) == 0 {
		return "", fmt.Errorf("no sections found in %q", name)
	}
	for i, title := range titles {
		if title.Title != seeAlsoTitle {
			continue
		}
		secEnd := sectionEnd(titles, i, doc)
		original := strings.ReplaceAll(strings.TrimSpace(doc[title.BodyStart:secEnd]), "\n", " ")
		if original != "" {
			log.Info().Str("doc", name).Str("dropped", original).Msg("dropping manual see-also list")
		}

		links := make([]string, 0, len(tags))
		for _, tag := range tags {
			links = append(links, fmt.Sprintf(":doc:`%s <%s>`", facet.RightCase(tag), facet.PageID([]string{tag})))
		}
		return doc[:title.BodyStart] + "\n" + strings.Join(links, ", ") + "\n\n" + doc[secEnd:], nil
	}
	return "", fmt.Errorf("no %q section found in %q", seeAlsoTitle, name)
}

// sectionEnd returns the offset where section i ends: the start of the
// next title, or the end of the document for the last section.
func sectionEnd(titles []TitleMatch, i int, doc string) int {
	if i+1 < len(titles) {
		return titles[i+1].Start
	}
	return len(doc)
}
