// Package dedup implements the duplicate detector collaborator from
// spec §6: two documents are duplicates iff their term sets (keys only,
// frequencies ignored) are equal, and all but the id-ascending first
// survive.
package dedup

import (
	"sort"
	"strings"
)

// Remover is the subset of the engine façade the duplicate detector
// needs: iterate_ids, get_word_frequencies, and remove_document.
type Remover interface {
	IterateIDs() []int
	GetWordFrequencies(id int) map[string]float64
	RemoveDocument(id int) error
}

// RemoveDuplicates walks ids in ascending order (the order IterateIDs
// already returns), removes every document whose term-key set has been
// seen before, and returns the removed ids in the order they were
// removed.
func RemoveDuplicates(e Remover) ([]int, error) {
	seen := make(map[string]struct{})
	var removed []int

	for _, id := range e.IterateIDs() {
		key := termSetKey(e.GetWordFrequencies(id))
		if _, dup := seen[key]; dup {
			if err := e.RemoveDocument(id); err != nil {
				return removed, err
			}
			removed = append(removed, id)
			continue
		}
		seen[key] = struct{}{}
	}
	return removed, nil
}

// termSetKey canonicalizes a frequency mapping's key set into a string
// fit for use as a map key, independent of iteration order.
func termSetKey(freqs map[string]float64) string {
	terms := make([]string, 0, len(freqs))
	for term := range freqs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return strings.Join(terms, "\x00")
}
