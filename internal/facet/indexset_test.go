package facet

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuildIndexSetScenario(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"A"})
	ix.Add("d2", []string{"A", "B"})
	ix.Add("d3", []string{"B"})

	result := BuildIndexSet(ix, 2, zerolog.Nop())

	if result.Possible != 4 {
		t.Errorf("Possible = %d, want 4", result.Possible)
	}
	if result.DistinctTags != 2 || result.Documents != 3 {
		t.Errorf("stats = %d tags / %d docs, want 2 / 3", result.DistinctTags, result.Documents)
	}

	wantIDs := []string{"index", "index_A", "index_B", "index_A_B"}
	if got := result.PageIDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Fatalf("PageIDs = %v, want %v", got, wantIDs)
	}

	byID := map[string]Page{}
	for _, p := range result.Pages {
		byID[p.ID] = p
	}
	if p := byID["index_A"]; !strings.Contains(p.Text, "* :doc:`d1`") || !strings.Contains(p.Text, "<index_A_B>") {
		t.Errorf("index_A page incomplete:\n%s", p.Text)
	}
	if p := byID["index_A_B"]; !strings.Contains(p.Text, "* :doc:`d2`") {
		t.Errorf("index_A_B page should list d2:\n%s", p.Text)
	}
}

func TestBuildIndexSetPrunesEmptyCombinations(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"A"})
	ix.Add("d2", []string{"B"})

	result := BuildIndexSet(ix, 2, zerolog.Nop())

	// A and B are disjoint, so the (A, B) combination is pruned.
	wantIDs := []string{"index", "index_A", "index_B"}
	if got := result.PageIDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("PageIDs = %v, want %v", got, wantIDs)
	}
	if result.Possible != 4 {
		t.Errorf("Possible = %d, want 4", result.Possible)
	}
}

func TestBuildIndexSetNoindexDocument(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"A"})
	ix.Add("d4", []string{"NOINDEX"})

	result := BuildIndexSet(ix, 4, zerolog.Nop())

	for _, p := range result.Pages {
		if strings.Contains(p.ID, "NOINDEX") {
			t.Errorf("page id %q contains the sentinel tag", p.ID)
		}
		if strings.Contains(p.Text, "d4") {
			t.Errorf("NOINDEX-only document d4 rendered in page %q:\n%s", p.ID, p.Text)
		}
	}
}

func TestBuildIndexSetNoindexWithOtherTag(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"A"})
	ix.Add("d4", []string{"NOINDEX", "A"})

	result := BuildIndexSet(ix, 4, zerolog.Nop())

	found := false
	for _, p := range result.Pages {
		if strings.Contains(p.Text, "d4") {
			found = true
		}
		if strings.Contains(p.ID, "NOINDEX") {
			t.Errorf("page id %q contains the sentinel tag", p.ID)
		}
	}
	if !found {
		t.Error("d4 carries a real tag and should appear under it")
	}
}

func TestBuildIndexSetEmptyIndex(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	result := BuildIndexSet(ix, 4, zerolog.Nop())
	if len(result.Pages) != 0 {
		t.Errorf("expected no pages for an empty relation, got %d", len(result.Pages))
	}
	if result.Possible != 1 { // the empty combination
		t.Errorf("Possible = %d, want 1", result.Possible)
	}
}
