package facet

import "sort"

// Node is one element of a computed partition: either a leaf holding a
// document set or an internal node mapping facet tags to children.
// Exactly one of Docs and Children is non-nil.
type Node struct {
	Docs     DocSet
	Children map[string]*Node
}

// Leaf wraps a document set as a leaf node.
func Leaf(docs DocSet) *Node {
	return &Node{Docs: docs}
}

// Internal returns an internal node with no children yet.
func Internal() *Node {
	return &Node{Children: map[string]*Node{}}
}

// IsLeaf reports whether the node carries documents directly.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Empty reports whether the node holds neither documents nor children.
func (n *Node) Empty() bool {
	return len(n.Docs) == 0 && len(n.Children) == 0
}

// SortedKeys returns the child keys in lexicographic order. The
// uncategorized key, being empty, always sorts first.
func (n *Node) SortedKeys() []string {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AllDocs returns the union of every leaf document set under the node.
func (n *Node) AllDocs() DocSet {
	out := DocSet{}
	var walk func(*Node)
	walk = func(node *Node) {
		if node.IsLeaf() {
			out.AddAll(node.Docs)
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return out
}

// BuildHierarchy partitions the documents matching every tag in basetags
// into one leaf per remaining tag that intersects them, plus an
// uncategorized leaf (keyed by the empty tag) for baseitems not covered
// by any facet. With empty basetags the baseitems are the union of all
// indexable documents, which makes the root index the unfiltered view of
// every facet. An unknown tag in basetags yields an empty intersection,
// so the result degrades to a childless node the caller should skip.
func BuildHierarchy(tags TagMap, basetags []string) *Node {
	node := Internal()
	base := baseItems(tags, basetags)
	if len(base) == 0 {
		return node
	}

	inBase := map[string]struct{}{}
	for _, t := range basetags {
		inBase[t] = struct{}{}
	}

	covered := DocSet{}
	for tag, docs := range tags {
		if tag == TagNoIndex || tag == TagUncategorized {
			continue
		}
		if _, ok := inBase[tag]; ok {
			continue
		}
		sub := docs.Intersect(base)
		if len(sub) == 0 {
			continue
		}
		node.Children[tag] = Leaf(sub)
		covered.AddAll(sub)
	}

	if remaining := base.Diff(covered); len(remaining) > 0 {
		node.Children[TagUncategorized] = Leaf(remaining)
	}
	return node
}

// baseItems computes the documents carrying every tag in basetags, or
// the union of all indexable documents when basetags is empty.
func baseItems(tags TagMap, basetags []string) DocSet {
	if len(basetags) == 0 {
		all := DocSet{}
		for tag, docs := range tags {
			if tag == TagNoIndex || tag == TagUncategorized {
				continue
			}
			all.AddAll(docs)
		}
		return all
	}

	docs, ok := tags[basetags[0]]
	if !ok {
		return DocSet{}
	}
	base := docs.Clone()
	for _, tag := range basetags[1:] {
		docs, ok := tags[tag]
		if !ok {
			return DocSet{}
		}
		base = base.Intersect(docs)
		if len(base) == 0 {
			return base
		}
	}
	return base
}
