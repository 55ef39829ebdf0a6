// Package store holds the document registry (id -> metadata + owned
// text) and the forward index (id -> term -> term frequency) required
// for O(document-size) deletion and the GetWordFrequencies read surface.
package store

import (
	"sort"
	"sync"

	"github.com/gcbaptista/tfidx-engine/model"
)

// record is one document's registry entry plus its forward index.
type record struct {
	meta  model.DocumentMeta
	text  string
	terms map[string]float64
}

// DocumentStore is the document registry and forward index. Like
// InvertedIndex, it owns its own RWMutex as a second line of defense
// behind the engine façade's own top-level lock.
type DocumentStore struct {
	Mu   sync.RWMutex
	docs map[int]*record
}

// New creates an empty document store.
func New() *DocumentStore {
	return &DocumentStore{docs: make(map[int]*record)}
}

// Exists reports whether id is present.
func (ds *DocumentStore) Exists(id int) bool {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	_, ok := ds.docs[id]
	return ok
}

// Put inserts a new document. Callers must have already checked that
// id does not exist (add_document's InvalidId contract lives one layer
// up, in internal/indexing, where the error kind is known).
func (ds *DocumentStore) Put(id int, meta model.DocumentMeta, text string, terms map[string]float64) {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()
	ds.docs[id] = &record{meta: meta, text: text, terms: terms}
}

// Get returns id's metadata and text.
func (ds *DocumentStore) Get(id int) (model.DocumentMeta, string, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	r, ok := ds.docs[id]
	if !ok {
		return model.DocumentMeta{}, "", false
	}
	return r.meta, r.text, true
}

// Terms returns the forward-index entry for id: term -> term frequency.
// Returns (nil, false) if id is absent; callers needing an empty map
// for an unknown id (GetWordFrequencies) handle that at the engine
// layer per spec §6.
func (ds *DocumentStore) Terms(id int) (map[string]float64, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	r, ok := ds.docs[id]
	if !ok {
		return nil, false
	}
	return r.terms, true
}

// Delete removes id from the registry and returns its forward-index
// terms so the caller can prune the inverted index, or (nil, false) if
// id was not present.
func (ds *DocumentStore) Delete(id int) (map[string]float64, bool) {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()
	r, ok := ds.docs[id]
	if !ok {
		return nil, false
	}
	delete(ds.docs, id)
	return r.terms, true
}

// Count returns the number of documents currently registered.
func (ds *DocumentStore) Count() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	return len(ds.docs)
}

// IDs returns every registered document id in ascending order.
func (ds *DocumentStore) IDs() []int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()
	ids := make([]int, 0, len(ds.docs))
	for id := range ds.docs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
