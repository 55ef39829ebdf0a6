// Package index holds the inverted index: the mapping from term to the
// posting list of documents containing that term, together with each
// document's term frequency in that posting.
package index

import "sync"

// Postings maps a document id to its term frequency for one term.
type Postings map[int]float64

// InvertedIndex is term -> Postings. It owns its own RWMutex so it can
// be read concurrently by many search calls while a single write holds
// the lock exclusively; the engine façade additionally serializes
// writers against all other operations at its own level (spec §5), so
// this mutex is a second line of defense rather than the sole guard.
type InvertedIndex struct {
	Mu    sync.RWMutex
	Terms map[string]Postings
}

// New creates an empty inverted index.
func New() *InvertedIndex {
	return &InvertedIndex{Terms: make(map[string]Postings)}
}

// Add contributes tf to term's posting for doc, creating the posting
// list if this is the term's first occurrence.
func (ii *InvertedIndex) Add(term string, doc int, tf float64) {
	ii.Mu.Lock()
	defer ii.Mu.Unlock()
	p, ok := ii.Terms[term]
	if !ok {
		p = make(Postings)
		ii.Terms[term] = p
	}
	p[doc] += tf
}

// Get returns the posting list for term, if any.
func (ii *InvertedIndex) Get(term string) (Postings, bool) {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	p, ok := ii.Terms[term]
	return p, ok
}

// RemoveDoc removes doc from term's posting list, pruning the term
// entirely if that was its last document (spec §3: postings[t] must be
// non-empty for every key t).
func (ii *InvertedIndex) RemoveDoc(term string, doc int) {
	ii.Mu.Lock()
	defer ii.Mu.Unlock()
	p, ok := ii.Terms[term]
	if !ok {
		return
	}
	delete(p, doc)
	if len(p) == 0 {
		delete(ii.Terms, term)
	}
}

// TermCount returns the number of distinct indexed terms. Used by
// diagnostics and tests; not part of the spec's external interface.
func (ii *InvertedIndex) TermCount() int {
	ii.Mu.RLock()
	defer ii.Mu.RUnlock()
	return len(ii.Terms)
}
