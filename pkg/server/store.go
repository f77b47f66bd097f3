package server

import (
	"slices"
	"sync"

	"github.com/khalid-nowaf/runetrie/pkg/trie"
)

// Store guards a trie with a read/write lock so HTTP handlers can share it.
// Enumerations run under the read lock and never hand out a live iterator.
type Store struct {
	mu   sync.RWMutex
	trie *trie.Trie
}

// Stats describes the content of a store.
type Stats struct {
	Words int  `json:"words"`
	Nodes int  `json:"nodes"`
	Empty bool `json:"empty"`
}

func NewStore(t *trie.Trie) *Store {
	if t == nil {
		t = trie.New()
	}
	return &Store{trie: t}
}

// Insert adds a word and reports whether it was new.
func (s *Store) Insert(word string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trie.Contains(word) {
		return false
	}
	s.trie.Insert(word)
	return true
}

func (s *Store) Remove(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trie.Remove(word)
}

func (s *Store) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.Contains(word)
}

func (s *Store) ContainsPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.ContainsPrefix(prefix)
}

// Content returns at most limit words starting with prefix, limit <= 0 means all of them.
func (s *Store) Content(prefix string, sorted bool, limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return take(s.trie.IterContent(prefix), sorted, limit)
}

// Suffixes is Content without the prefix.
func (s *Store) Suffixes(prefix string, sorted bool, limit int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return take(s.trie.IterSuffixes(prefix), sorted, limit)
}

// RemoveSuffixes cuts everything below prefix off and returns the removed suffixes.
func (s *Store) RemoveSuffixes(prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.trie.RemoveSuffixes(prefix)
	if err != nil {
		return nil, err
	}
	return take(removed.IterContent(""), true, 0), nil
}

// Walk calls f for every word starting with prefix until f returns an error.
// The words are collected under the read lock and f runs after it was released,
// so a slow f never holds up writers.
func (s *Store) Walk(prefix string, f func(word string) error) error {
	for _, word := range s.Content(prefix, false, 0) {
		if err := f(word); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Words: s.trie.Len(),
		Nodes: s.trie.NodeCount(),
		Empty: s.trie.IsEmpty(),
	}
}

func take(it *trie.Iterator, sorted bool, limit int) []string {
	if sorted {
		return it.Sorted(limit)
	}
	return slices.AppendSeq([]string{}, it.Limit(limit))
}
