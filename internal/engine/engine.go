// Package engine wires the write path (internal/indexing) and the read
// path (internal/search) around a shared inverted index and document
// store, and enforces the engine-wide exclusion rule from spec §5: no
// other operation may run concurrently with a writer. index.InvertedIndex
// and store.DocumentStore each carry their own sync.RWMutex as a second
// line of defense, but Engine's own lock is the single choke point every
// operation goes through, regardless of which read/write path it calls.
package engine

import (
	"github.com/gcbaptista/tfidx-engine/index"
	"github.com/gcbaptista/tfidx-engine/internal/indexing"
	"github.com/gcbaptista/tfidx-engine/internal/search"
	"github.com/gcbaptista/tfidx-engine/internal/stopwords"
	"github.com/gcbaptista/tfidx-engine/model"
	"github.com/gcbaptista/tfidx-engine/store"

	"sync"
)

// Engine is the façade described by spec §6's external interfaces table.
type Engine struct {
	mu sync.RWMutex

	index    *index.InvertedIndex
	store    *store.DocumentStore
	stop     *stopwords.Set
	indexer  *indexing.Service
	searcher *search.Service
}

// New constructs an Engine over the given stop-word list. Fails with
// InvalidStopWord if any entry contains a control byte.
func New(stopWords []string) (*Engine, error) {
	stop, err := stopwords.New(stopWords)
	if err != nil {
		return nil, err
	}

	ii := index.New()
	docs := store.New()

	return &Engine{
		index:    ii,
		store:    docs,
		stop:     stop,
		indexer:  indexing.NewService(ii, docs, stop),
		searcher: search.NewService(ii, docs, stop),
	}, nil
}

// AddDocument is an exclusive writer operation. See spec §4.3.
func (e *Engine) AddDocument(id int, text string, status model.Status, ratings []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexer.AddDocument(id, text, status, ratings)
}

// RemoveDocument is an exclusive writer operation, run sequentially.
func (e *Engine) RemoveDocument(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexer.RemoveDocument(id)
}

// RemoveDocumentParallel is an exclusive writer operation; the per-term
// posting erasures run concurrently under the same engine-wide lock, so no
// reader can observe a partially removed document.
func (e *Engine) RemoveDocumentParallel(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexer.RemoveDocumentParallel(id)
}

// DocumentCount is a concurrent-safe read.
func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Count()
}

// IterateIDs returns every known id in ascending order.
func (e *Engine) IterateIDs() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.IDs()
}

// GetWordFrequencies returns the term-frequency mapping for id, or an
// empty mapping if id is unknown. Never fails.
func (e *Engine) GetWordFrequencies(id int) map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	freqs, ok := e.store.Terms(id)
	if !ok {
		return map[string]float64{}
	}
	return freqs
}

// FindTop runs the sequential scorer under predicate. See spec §4.5.
func (e *Engine) FindTop(query string, predicate search.Predicate) ([]model.Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.FindTop(query, predicate)
}

// FindTopParallel runs the sharded-accumulator scorer under predicate.
func (e *Engine) FindTopParallel(query string, predicate search.Predicate) ([]model.Result, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.FindTopParallel(query, predicate)
}

// FindTopByStatus is the common case of FindTop restricted to a status.
func (e *Engine) FindTopByStatus(query string, status model.Status) ([]model.Result, error) {
	return e.FindTop(query, search.ByStatus(status))
}

// FindTopByStatusParallel is the common case of FindTopParallel
// restricted to a status.
func (e *Engine) FindTopByStatusParallel(query string, status model.Status) ([]model.Result, error) {
	return e.FindTopParallel(query, search.ByStatus(status))
}

// Match runs the sequential matcher. See spec §4.4.
func (e *Engine) Match(query string, id int) (model.Match, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.Match(query, id)
}

// MatchParallel runs the concurrent matcher.
func (e *Engine) MatchParallel(query string, id int) (model.Match, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.MatchParallel(query, id)
}
