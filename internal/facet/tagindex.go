// Package facet builds browsable, hierarchical index pages from a flat
// tag→documents relation. Given documents annotated with free-text tags,
// it enumerates tag combinations up to a bounded depth, partitions the
// matching documents into sub-facets for each combination, and renders
// every non-empty partition as a cross-linked index page.
package facet

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Reserved tag values. NOINDEX excludes a document from every generated
// index. The empty tag keys the uncategorized bucket inside partitions
// and is never accepted as a real input tag.
const (
	TagNoIndex       = "NOINDEX"
	TagUncategorized = ""
)

// DocSet is a set of document identifiers.
type DocSet map[string]struct{}

// NewDocSet builds a DocSet from the given identifiers.
func NewDocSet(ids ...string) DocSet {
	s := make(DocSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s DocSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy of the set.
func (s DocSet) Clone() DocSet {
	c := make(DocSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Intersect returns the documents present in both sets.
func (s DocSet) Intersect(other DocSet) DocSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := DocSet{}
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// AddAll inserts every document of other into s.
func (s DocSet) AddAll(other DocSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Diff returns the documents in s that are not in other.
func (s DocSet) Diff(other DocSet) DocSet {
	out := DocSet{}
	for id := range s {
		if !other.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Sorted returns the identifiers in lexicographic order.
func (s DocSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON encodes the set as a sorted array of identifiers, the
// shape downstream cataloguing tools expect.
func (s DocSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// TagMap maps a tag to the set of documents carrying it.
type TagMap map[string]DocSet

// Clone returns a deep copy of the relation.
func (m TagMap) Clone() TagMap {
	c := make(TagMap, len(m))
	for tag, docs := range m {
		c[tag] = docs.Clone()
	}
	return c
}

// TagIndex accumulates the tag→documents relation from ingested
// documents. It is built once and treated as immutable afterwards; every
// downstream computation works on snapshots.
type TagIndex struct {
	tags TagMap
	docs DocSet
	log  zerolog.Logger
}

// NewTagIndex returns an empty index reporting input hygiene problems to
// the given logger.
func NewTagIndex(log zerolog.Logger) *TagIndex {
	return &TagIndex{tags: TagMap{}, docs: DocSet{}, log: log}
}

// Add records docID under every tag in tags. Tags are trimmed;
// duplicates collapse via set semantics and whitespace-only tags are
// dropped with a warning. A document whose every tag is dropped never
// enters the relation.
func (ix *TagIndex) Add(docID string, tags []string) {
	recorded := false
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == TagUncategorized {
			ix.log.Warn().Str("doc", docID).Msg("dropping whitespace-only tag")
			continue
		}
		docs, ok := ix.tags[trimmed]
		if !ok {
			docs = DocSet{}
			ix.tags[trimmed] = docs
		}
		docs[docID] = struct{}{}
		recorded = true
	}
	if recorded {
		ix.docs[docID] = struct{}{}
	} else {
		ix.log.Warn().Str("doc", docID).Msg("document has no usable tags, not indexed")
	}
}

// TagMap returns a snapshot of the relation, including reserved tags.
func (ix *TagIndex) TagMap() TagMap {
	return ix.tags.Clone()
}

// DistinctTags returns the sorted tags eligible for index generation,
// excluding NOINDEX and the reserved empty tag.
func (ix *TagIndex) DistinctTags() []string {
	tags := make([]string, 0, len(ix.tags))
	for tag := range ix.tags {
		if tag == TagNoIndex || tag == TagUncategorized {
			continue
		}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Reverse returns the document→tags relation with sorted tag lists, for
// downstream cataloguing.
func (ix *TagIndex) Reverse() map[string][]string {
	rev := map[string][]string{}
	for tag, docs := range ix.tags {
		for id := range docs {
			rev[id] = append(rev[id], tag)
		}
	}
	for id := range rev {
		sort.Strings(rev[id])
	}
	return rev
}

// DocCount returns the number of indexed documents.
func (ix *TagIndex) DocCount() int {
	return len(ix.docs)
}

// TagCount returns the number of distinct eligible tags.
func (ix *TagIndex) TagCount() int {
	return len(ix.DistinctTags())
}
