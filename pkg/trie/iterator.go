package trie

import (
	"iter"
	"slices"
)

// frame is a pending branch of an enumeration: a node still to be visited
// and the label accumulated on the way down to it.
type frame struct {
	node  *node
	label string
}

// Iterator lazily enumerates the strings stored below one node of a trie.
//
// Items are produced one at a time by Next, the iterator only keeps the
// branches that are still pending, never the full result set.
// The order of the items is arbitrary.
//
// An Iterator reads the trie it was created from. Mutating that trie while the
// iterator is still in use is a programming error and makes Next panic.
type Iterator struct {
	frontier []frame
	prefix   string // prepended to every item
	owner    *Trie
	version  uint64
}

func newIterator(owner *Trie, start *node, prefix string) *Iterator {
	it := &Iterator{
		prefix:  prefix,
		owner:   owner,
		version: owner.version,
	}
	if start != nil {
		it.frontier = []frame{{node: start}}
	}
	return it
}

// Next returns the next item, or false once the enumeration is exhausted.
func (it *Iterator) Next() (string, bool) {
	for len(it.frontier) > 0 {
		if it.owner.version != it.version {
			panic("[BUG] Iterator.Next: trie was modified during iteration")
		}

		top := it.frontier[len(it.frontier)-1]
		it.frontier = it.frontier[:len(it.frontier)-1]

		for r, child := range top.node.children {
			it.frontier = append(it.frontier, frame{node: child, label: top.label + string(r)})
		}

		if top.node.end {
			return it.prefix + top.label, true
		}
	}
	it.frontier = nil
	return "", false
}

// All adapts the iterator to a range-over-func sequence.
// Breaking out of the loop leaves the iterator where it stopped.
func (it *Iterator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Pending reports how many branches are still waiting to be visited.
func (it *Iterator) Pending() int {
	return len(it.frontier)
}

// Limit is All stopping after n items, n <= 0 means no limit.
func (it *Iterator) Limit(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for taken := 0; n <= 0 || taken < n; taken++ {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Sorted drains the iterator and returns the first n items in sorted order,
// n <= 0 means all of them. The result is never nil.
func (it *Iterator) Sorted(n int) []string {
	items := append([]string{}, slices.Sorted(it.All())...)
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}
