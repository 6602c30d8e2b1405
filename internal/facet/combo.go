package facet

import "sort"

// DefaultMaxDepth bounds how many tags a combination may contain. The
// combination count grows binomially with depth, so uncapped enumeration
// is intentionally not offered.
const DefaultMaxDepth = 4

// Enumerator produces every combination of its tags with size 0 through
// the configured depth. The same enumerator always yields the same
// sequence: increasing size first, lexicographic within each size.
type Enumerator struct {
	tags  []string
	depth int
}

// NewEnumerator normalizes tags (sorted, deduplicated) and clamps
// maxDepth to the number of distinct tags. A maxDepth below zero selects
// DefaultMaxDepth.
func NewEnumerator(tags []string, maxDepth int) *Enumerator {
	seen := map[string]struct{}{}
	distinct := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		distinct = append(distinct, t)
	}
	sort.Strings(distinct)

	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxDepth > len(distinct) {
		maxDepth = len(distinct)
	}
	return &Enumerator{tags: distinct, depth: maxDepth}
}

// Depth returns the effective maximum combination size.
func (e *Enumerator) Depth() int {
	return e.depth
}

// Count returns the exact number of combinations All will produce:
// the sum of C(n, L) for L from 0 through the depth.
func (e *Enumerator) Count() int {
	total := 0
	for size := 0; size <= e.depth; size++ {
		total += choose(len(e.tags), size)
	}
	return total
}

// choose computes the binomial coefficient C(n, k) exactly.
func choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// All calls yield with each combination in order. Every slice passed to
// yield is a fresh sorted copy the callback may retain. Enumeration
// stops early when yield returns false.
func (e *Enumerator) All(yield func(tags []string) bool) {
	for size := 0; size <= e.depth; size++ {
		if !e.combinations(size, yield) {
			return
		}
	}
}

// combinations yields every size-length combination in lexicographic
// order. Returns false when the callback requested a stop.
func (e *Enumerator) combinations(size int, yield func([]string) bool) bool {
	current := make([]string, size)
	var recurse func(start, filled int) bool
	recurse = func(start, filled int) bool {
		if filled == size {
			out := make([]string, size)
			copy(out, current)
			return yield(out)
		}
		for i := start; i <= len(e.tags)-(size-filled); i++ {
			current[filled] = e.tags[i]
			if !recurse(i+1, filled+1) {
				return false
			}
		}
		return true
	}
	return recurse(0, 0)
}
