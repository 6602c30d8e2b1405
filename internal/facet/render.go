package facet

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
)

// underlineAlphabet holds the section underline characters by nesting
// depth. Depths beyond the alphabet reuse the last character, so very
// deep nestings flatten visually; a bounded-depth limitation shared with
// the enumeration cap.
const underlineAlphabet = "=-~"

// pageTitle and pageDescription form the fixed preamble emitted exactly
// once per rendered page.
const (
	pageTitle       = "Document directory"
	pageDescription = "Pages in this directory are organized and autogenerated by keyword.\n" +
		"A document tagged with a keyword is listed under that keyword, and\n" +
		"every combination of keywords links to a narrower index."
)

// RightCase returns the display casing for a tag label: title case,
// unless the label is entirely upper-case, which marks an acronym to be
// rendered unchanged. Every place a tag is shown to a reader goes
// through this function.
func RightCase(label string) string {
	if label != strings.ToUpper(label) {
		return titleCase(label)
	}
	return label
}

// titleCase upper-cases the first letter of every word and lower-cases
// the rest, treating any non-letter as a word boundary.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PageID returns the stable page identifier for a tag combination. The
// tags are sorted before encoding, so the same logical combination maps
// to the same identifier regardless of the order its tags were supplied.
func PageID(tags []string) string {
	sorted := make([]string, len(tags))
	copy(sorted, tags)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("index")
	for _, t := range sorted {
		b.WriteString("_")
		b.WriteString(t)
	}
	return b.String()
}

// RenderIndex renders the partition computed for base into a single RST
// page. It performs no I/O; output is a pure function of the node and
// the combination, byte-identical across invocations.
func RenderIndex(node *Node, base []string, log zerolog.Logger) string {
	r := &renderer{log: log}
	var b strings.Builder

	title := pageTitle
	if len(base) > 0 {
		title += ": " + strings.Join(base, ", ")
	}
	// Orphan role keeps page generators from expecting the page in a toctree.
	b.WriteString(":orphan:\n\n")
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat(string(r.underlineFor(0)), len(title)) + "\n\n")
	b.WriteString(pageDescription + "\n\n")

	r.renderNode(&b, node, base, 1)
	return b.String()
}

// renderer tracks per-render state so the clamp warning fires at most
// once per page.
type renderer struct {
	log    zerolog.Logger
	warned bool
}

// underlineFor returns the underline character for a nesting depth,
// clamping to the deepest style when the alphabet runs out.
func (r *renderer) underlineFor(depth int) byte {
	if depth >= len(underlineAlphabet) {
		if !r.warned {
			r.log.Warn().Int("depth", depth).Msg("nesting exceeds underline styles, clamping")
			r.warned = true
		}
		return underlineAlphabet[len(underlineAlphabet)-1]
	}
	return underlineAlphabet[depth]
}

// renderNode writes the children of an internal node in sorted key
// order. The uncategorized bucket has no heading and sorts first; a
// heading is also suppressed when the node has a single child, since the
// page title already names the selection.
func (r *renderer) renderNode(b *strings.Builder, node *Node, base []string, depth int) {
	for _, key := range node.SortedKeys() {
		if key == TagNoIndex {
			continue
		}
		child := node.Children[key]

		if key != TagUncategorized && len(node.Children) != 1 {
			text := RightCase(key)
			if child.IsLeaf() {
				text += fmt.Sprintf(" (%d)", len(child.Docs))
			}
			r.writeHeading(b, text, PageID(append(append([]string{}, base...), key)), depth)
		}

		if child.IsLeaf() {
			// Document identifiers are extension-less page stems.
			for _, id := range child.Docs.Sorted() {
				fmt.Fprintf(b, "* :doc:`%s`\n", id)
			}
			b.WriteString("\n")
		} else {
			r.renderNode(b, child, append(append([]string{}, base...), key), depth+1)
		}
	}
}

// writeHeading emits a cross-linked section title with its underline.
func (r *renderer) writeHeading(b *strings.Builder, text, target string, depth int) {
	line := fmt.Sprintf(":doc:`%s <%s>`", text, target)
	b.WriteString(line + "\n")
	b.WriteString(strings.Repeat(string(r.underlineFor(depth)), len(line)) + "\n\n")
}
