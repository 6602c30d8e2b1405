package facet

import (
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestTagIndexAdd(t *testing.T) {
	t.Run("set semantics", func(t *testing.T) {
		ix := NewTagIndex(zerolog.Nop())
		ix.Add("d1", []string{"alpha", "alpha"})
		ix.Add("d1", []string{"alpha"})
		docs := ix.TagMap()["alpha"]
		if len(docs) != 1 || !docs.Has("d1") {
			t.Errorf("expected alpha -> {d1}, got %v", docs)
		}
	})

	t.Run("trims tags", func(t *testing.T) {
		ix := NewTagIndex(zerolog.Nop())
		ix.Add("d1", []string{"  alpha ", "beta"})
		if !ix.TagMap()["alpha"].Has("d1") {
			t.Error("expected trimmed tag 'alpha' to hold d1")
		}
	})

	t.Run("drops whitespace-only tags", func(t *testing.T) {
		ix := NewTagIndex(zerolog.Nop())
		ix.Add("d1", []string{"   ", "alpha"})
		if _, ok := ix.TagMap()[""]; ok {
			t.Error("whitespace-only tag must not enter the relation")
		}
		if ix.DocCount() != 1 {
			t.Errorf("expected 1 document, got %d", ix.DocCount())
		}
	})

	t.Run("document with only unusable tags is not indexed", func(t *testing.T) {
		ix := NewTagIndex(zerolog.Nop())
		ix.Add("d1", []string{" ", ""})
		if ix.DocCount() != 0 {
			t.Errorf("expected 0 documents, got %d", ix.DocCount())
		}
	})
}

func TestDistinctTags(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"beta", "alpha"})
	ix.Add("d2", []string{"NOINDEX"})

	got := ix.DistinctTags()
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctTags() = %v, want %v", got, want)
	}
	if ix.TagCount() != 2 {
		t.Errorf("TagCount() = %d, want 2", ix.TagCount())
	}
}

func TestReverse(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"beta", "alpha"})
	ix.Add("d2", []string{"beta"})

	got := ix.Reverse()
	want := map[string][]string{
		"d1": {"alpha", "beta"},
		"d2": {"beta"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reverse() = %v, want %v", got, want)
	}
}

func TestTagMapSnapshot(t *testing.T) {
	ix := NewTagIndex(zerolog.Nop())
	ix.Add("d1", []string{"alpha"})

	snap := ix.TagMap()
	snap["alpha"]["d9"] = struct{}{}
	snap["rogue"] = NewDocSet("d9")

	if ix.TagMap()["alpha"].Has("d9") {
		t.Error("mutating a snapshot must not affect the index")
	}
	if _, ok := ix.TagMap()["rogue"]; ok {
		t.Error("mutating a snapshot must not affect the index")
	}
}

func TestDocSetOps(t *testing.T) {
	a := NewDocSet("d1", "d2", "d3")
	b := NewDocSet("d2", "d3", "d4")

	if got := a.Intersect(b); !reflect.DeepEqual(got.Sorted(), []string{"d2", "d3"}) {
		t.Errorf("Intersect = %v", got.Sorted())
	}
	if got := a.Diff(b); !reflect.DeepEqual(got.Sorted(), []string{"d1"}) {
		t.Errorf("Diff = %v", got.Sorted())
	}

	u := a.Clone()
	u.AddAll(b)
	if !reflect.DeepEqual(u.Sorted(), []string{"d1", "d2", "d3", "d4"}) {
		t.Errorf("AddAll = %v", u.Sorted())
	}
	if len(a) != 3 {
		t.Error("Clone must not alias the receiver")
	}
}
