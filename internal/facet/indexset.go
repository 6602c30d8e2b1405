package facet

import "github.com/rs/zerolog"

// Page is one rendered index page, identified by the sorted tag
// combination it represents.
type Page struct {
	Tags []string
	ID   string
	Text string
}

// Result collects the pages of a full index build together with the
// summary figures reported after the run.
type Result struct {
	Pages        []Page
	DistinctTags int
	Documents    int
	Possible     int
}

// PageIDs returns the identifiers of all generated pages, for
// table-of-contents assembly.
func (r Result) PageIDs() []string {
	ids := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		ids[i] = p.ID
	}
	return ids
}

// BuildIndexSet drives the full pipeline: enumerate every tag
// combination up to maxDepth, partition the matching documents, prune
// empty combinations and render the rest. Combinations are independent,
// so emptiness of one never affects another.
func BuildIndexSet(ix *TagIndex, maxDepth int, log zerolog.Logger) Result {
	tags := ix.TagMap()
	enum := NewEnumerator(ix.DistinctTags(), maxDepth)

	result := Result{
		DistinctTags: ix.TagCount(),
		Documents:    ix.DocCount(),
		Possible:     enum.Count(),
	}
	log.Info().
		Int("tags", result.DistinctTags).
		Int("depth", enum.Depth()).
		Int("combinations", result.Possible).
		Msg("enumerating keyword combinations")

	enum.All(func(base []string) bool {
		node := BuildHierarchy(tags, base)
		if node.Empty() {
			log.Debug().Strs("tags", base).Msg("empty combination, skipped")
			return true
		}
		result.Pages = append(result.Pages, Page{
			Tags: base,
			ID:   PageID(base),
			Text: RenderIndex(node, base, log),
		})
		return true
	})

	generated := len(result.Pages)
	log.Info().
		Int("pages", generated).
		Int("possible", result.Possible).
		Int("documents", result.Documents).
		Msg("index build complete")
	// A large shortfall against the theoretical maximum usually means the
	// tag relation is sparser than expected or the input is broken.
	if result.Possible > 0 && generated*2 < result.Possible {
		log.Warn().
			Int("pages", generated).
			Int("possible", result.Possible).
			Msg("far fewer non-empty indices than combinations")
	}
	return result
}
