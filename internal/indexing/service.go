// Package indexing implements the engine's write path: adding and
// removing documents while maintaining the inverted/forward index
// invariants from spec §3.
package indexing

import (
	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/tfidx-engine/index"
	"github.com/gcbaptista/tfidx-engine/internal/errors"
	"github.com/gcbaptista/tfidx-engine/internal/stopwords"
	"github.com/gcbaptista/tfidx-engine/internal/tokenizer"
	"github.com/gcbaptista/tfidx-engine/model"
	"github.com/gcbaptista/tfidx-engine/store"
)

// Service owns no state of its own; it mutates the shared index and
// store it is constructed with under the engine façade's exclusive
// writer lock.
type Service struct {
	index *index.InvertedIndex
	store *store.DocumentStore
	stop  *stopwords.Set
}

// NewService creates a new indexing Service.
func NewService(idx *index.InvertedIndex, docs *store.DocumentStore, stop *stopwords.Set) *Service {
	return &Service{index: idx, store: docs, stop: stop}
}

// AddDocument stores a new document and contributes its term
// frequencies to the inverted and forward indexes. See spec §4.3.
func (s *Service) AddDocument(id int, text string, status model.Status, ratings []int) error {
	if id < 0 {
		return errors.NewInvalidIDError(id, "id must be non-negative")
	}
	if s.store.Exists(id) {
		return errors.NewInvalidIDError(id, "id already exists")
	}
	if tokenizer.HasControlByte(text) {
		return errors.NewInvalidDocumentError(id)
	}

	terms := s.filterStopWords(tokenizer.Tokenize(text))
	freqs := termFrequencies(terms)

	meta := model.DocumentMeta{Rating: model.ComputeAverageRating(ratings), Status: status}
	s.store.Put(id, meta, text, freqs)
	for term, tf := range freqs {
		s.index.Add(term, id, tf)
	}
	return nil
}

// filterStopWords drops stop-words from terms, preserving order.
func (s *Service) filterStopWords(terms []string) []string {
	kept := make([]string, 0, len(terms))
	for _, t := range terms {
		if !s.stop.Contains(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// termFrequencies computes, for each surviving term, occurrences/N
// where N is the number of surviving terms. If a term occurs k times
// its final frequency is k/N, matching spec §4.3.
func termFrequencies(terms []string) map[string]float64 {
	freqs := make(map[string]float64, len(terms))
	if len(terms) == 0 {
		return freqs
	}
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	n := float64(len(terms))
	for t, c := range counts {
		freqs[t] = float64(c) / n
	}
	return freqs
}

// RemoveDocument removes a document and every posting referencing it,
// sequentially. See spec §4.3.
func (s *Service) RemoveDocument(id int) error {
	terms, ok := s.store.Delete(id)
	if !ok {
		return errors.NewUnknownIDError(id)
	}
	for term := range terms {
		s.index.RemoveDoc(term, id)
	}
	return nil
}

// RemoveDocumentParallel has identical semantics to RemoveDocument, but
// materializes the document's terms first and performs the per-term
// posting erasures concurrently. No other engine operation may run
// concurrently with a remove (enforced by the engine façade's lock, not
// by this function).
func (s *Service) RemoveDocumentParallel(id int) error {
	terms, ok := s.store.Delete(id)
	if !ok {
		return errors.NewUnknownIDError(id)
	}

	termList := make([]string, 0, len(terms))
	for term := range terms {
		termList = append(termList, term)
	}

	var g errgroup.Group
	for _, term := range termList {
		term := term
		g.Go(func() error {
			s.index.RemoveDoc(term, id)
			return nil
		})
	}
	return g.Wait()
}
