package trie

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNotFound is returned when a string or a prefix to be removed is not in the trie.
var ErrNotFound = errors.New("not found")

// Trie is a prefix tree over runes.
//
// Common prefixes are stored only once, so enumerating everything below a prefix
// costs time proportional to the matching subtree and not to the whole trie.
// A Trie is not safe for concurrent use.
type Trie struct {
	root    *node  // never nil, even for an empty trie
	version uint64 // bumped on every mutation, checked by iterators
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// From creates a trie holding the given words.
//
//	t := trie.From("Hallo", "Hallöchen", "Tschüs")
func From(words ...string) *Trie {
	t := New()
	for _, word := range words {
		t.Insert(word)
	}
	return t
}

// Collect creates a trie from every word produced by seq.
func Collect(seq iter.Seq[string]) *Trie {
	t := New()
	for word := range seq {
		t.Insert(word)
	}
	return t
}

func (t *Trie) modified() {
	t.version++
}

// Insert adds a word. Inserting a word twice is a no-op.
func (t *Trie) Insert(word string) {
	if t.root.insert([]rune(word)) {
		t.modified()
	}
}

// Remove deletes a word and prunes the nodes only it was using.
//
// Returns an error wrapping ErrNotFound if the word was not stored, in which case
// the trie is left untouched.
func (t *Trie) Remove(word string) error {
	if !t.root.remove([]rune(word)) {
		return fmt.Errorf("remove %q: %w", word, ErrNotFound)
	}
	t.modified()
	return nil
}

// Contains checks if exactly this word was inserted.
func (t *Trie) Contains(word string) bool {
	n, ok := t.root.getNode([]rune(word))
	return ok && n.end
}

// ContainsPrefix checks if any stored word starts with prefix.
// The empty prefix is always contained, even in an empty trie.
func (t *Trie) ContainsPrefix(prefix string) bool {
	_, ok := t.root.getNode([]rune(prefix))
	return ok
}

// IterSuffixes enumerates the remainders of all words starting with prefix.
// A prefix that is not in the trie yields nothing.
//
//	it := trie.From("Hallo", "Hallöchen").IterSuffixes("Hall")
//	// yields "o" and "öchen", in any order
func (t *Trie) IterSuffixes(prefix string) *Iterator {
	n, _ := t.root.getNode([]rune(prefix))
	return newIterator(t, n, "")
}

// IterContent enumerates all stored words starting with prefix.
// The order is arbitrary, sort the results if you need them sorted.
func (t *Trie) IterContent(prefix string) *Iterator {
	n, _ := t.root.getNode([]rune(prefix))
	return newIterator(t, n, prefix)
}

// Suffixes is IterSuffixes as a range-over-func sequence.
func (t *Trie) Suffixes(prefix string) iter.Seq[string] {
	return t.IterSuffixes(prefix).All()
}

// Content is IterContent as a range-over-func sequence.
//
//	for word := range t.Content("Hall") {
//		fmt.Println(word)
//	}
func (t *Trie) Content(prefix string) iter.Seq[string] {
	return t.IterContent(prefix).All()
}

// RemoveSuffixes cuts off everything stored below prefix and returns it as a new
// trie holding the suffixes, i.e. the removed words minus the prefix.
// The cut costs O(len(prefix)) no matter how many words are removed.
//
//	removed, _ := trie.From("Hallo", "Hallöchen", "Tschüs").RemoveSuffixes("Hal")
//	// removed holds "lo" and "löchen"
//
// Returns an error wrapping ErrNotFound if prefix is not in the trie; the trie is
// left untouched in that case.
func (t *Trie) RemoveSuffixes(prefix string) (*Trie, error) {
	path := []rune(prefix)

	var detached *node
	if len(path) == 0 {
		detached = t.root
		t.root = newNode()
	} else {
		n, ok := t.root.removeSubtree(path)
		if !ok {
			return nil, fmt.Errorf("remove suffixes of %q: %w", prefix, ErrNotFound)
		}
		detached = n
	}

	t.modified()
	return &Trie{root: detached}, nil
}

// IsEmpty returns true if the trie holds no words.
func (t *Trie) IsEmpty() bool {
	return t.root.isDangling()
}

// Len counts the stored words. It walks the whole trie.
func (t *Trie) Len() int {
	count := 0
	for range t.Content("") {
		count++
	}
	return count
}

// NodeCount returns the number of nodes, the root included.
// An empty trie has exactly one node.
func (t *Trie) NodeCount() int {
	return t.root.countNodes()
}
