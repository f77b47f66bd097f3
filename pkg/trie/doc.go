// ## Overview
// Package trie implements a prefix tree over Unicode scalar values (runes).
// Every word is stored as a path of runes starting at the root, and words sharing a
// prefix share the nodes of that prefix. The package supports inserting and removing
// words, checking for words and prefixes, lazily enumerating everything stored below a
// prefix, and cutting a whole prefix subtree off into a trie of its own.
//
// ## Example usage:
//
//	t := trie.From("Hallo", "Hallöchen", "Tschüs")
//
//	fmt.Println(t.ContainsPrefix("Hall")) // Output: true
//	fmt.Println(t.Contains("Hall"))       // Output: false
//
//	// enumeration order is arbitrary
//	for word := range t.Content("Hall") {
//		fmt.Println(word) // Hallo, Hallöchen
//	}
//
//	// pull items one at a time
//	it := t.IterSuffixes("Hall")
//	for suffix, ok := it.Next(); ok; suffix, ok = it.Next() {
//		fmt.Println(suffix) // o, öchen
//	}
//
//	if err := t.Remove("Tschüs"); errors.Is(err, trie.ErrNotFound) {
//		// was never there
//	}
//
//	// move everything under "Hal" into a new trie
//	removed, _ := t.RemoveSuffixes("Hal")
//	fmt.Println(removed.Contains("lo")) // Output: true
//	fmt.Println(t.IsEmpty())            // Output: true
//
// A Trie must not be modified while one of its iterators is still being consumed,
// Iterator.Next panics if it detects that.
package trie
