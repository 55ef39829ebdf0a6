// Package search implements the engine's read path: ranked TF-IDF
// retrieval and query/document matching, each with a sequential and a
// parallel variant. See spec §4.4-4.7.
package search

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/tfidx-engine/config"
	"github.com/gcbaptista/tfidx-engine/index"
	"github.com/gcbaptista/tfidx-engine/internal/accumulator"
	"github.com/gcbaptista/tfidx-engine/internal/queryparser"
	"github.com/gcbaptista/tfidx-engine/internal/stopwords"
	"github.com/gcbaptista/tfidx-engine/model"
	"github.com/gcbaptista/tfidx-engine/store"
)

// Predicate is the user-supplied admission filter applied per candidate
// document before scoring accumulation.
type Predicate func(id int, status model.Status, rating int) bool

// ByStatus returns a Predicate admitting only documents tagged status.
func ByStatus(status model.Status) Predicate {
	return func(_ int, docStatus model.Status, _ int) bool {
		return docStatus == status
	}
}

// Service implements the read path over a shared index and store.
type Service struct {
	index *index.InvertedIndex
	store *store.DocumentStore
	stop  *stopwords.Set
}

// NewService creates a new search Service.
func NewService(idx *index.InvertedIndex, docs *store.DocumentStore, stop *stopwords.Set) *Service {
	return &Service{index: idx, store: docs, stop: stop}
}

// rankLess implements the ranking law from spec §4.5: relevance
// descending with an epsilon tolerance, then rating descending.
func rankLess(a, b model.Result) bool {
	if math.Abs(a.Relevance-b.Relevance) >= config.Epsilon {
		return a.Relevance > b.Relevance
	}
	return a.Rating > b.Rating
}

func (s *Service) idf(term string, totalDocs int) float64 {
	postings, ok := s.index.Get(term)
	if !ok || len(postings) == 0 {
		return 0
	}
	return math.Log(float64(totalDocs) / float64(len(postings)))
}

// FindTop returns up to config.MaxResults documents matching query and
// admitted by predicate, ranked by TF-IDF relevance. See spec §4.5.
func (s *Service) FindTop(query string, predicate Predicate) ([]model.Result, error) {
	q, err := queryparser.Parse(query, s.stop, true)
	if err != nil {
		return nil, err
	}

	totalDocs := s.store.Count()
	scores := make(map[int]float64)

	for _, term := range q.Plus {
		postings, ok := s.index.Get(term)
		if !ok {
			continue
		}
		termIDF := s.idf(term, totalDocs)
		for doc, tf := range postings {
			meta, _, ok := s.store.Get(doc)
			if !ok || !predicate(doc, meta.Status, meta.Rating) {
				continue
			}
			scores[doc] += tf * termIDF
		}
	}

	for _, term := range q.Minus {
		postings, ok := s.index.Get(term)
		if !ok {
			continue
		}
		for doc := range postings {
			delete(scores, doc)
		}
	}

	return s.buildResults(scores), nil
}

// FindTopParallel produces the same results as FindTop but scores
// plus-terms and minus-terms concurrently through a sharded
// accumulator, per spec §4.5's parallel scoring algorithm.
func (s *Service) FindTopParallel(query string, predicate Predicate) ([]model.Result, error) {
	q, err := queryparser.Parse(query, s.stop, true)
	if err != nil {
		return nil, err
	}

	totalDocs := s.store.Count()
	acc := accumulator.New(config.ShardCount)

	var plusGroup errgroup.Group
	for _, term := range q.Plus {
		term := term
		plusGroup.Go(func() error {
			postings, ok := s.index.Get(term)
			if !ok {
				return nil
			}
			termIDF := s.idf(term, totalDocs)
			for doc, tf := range postings {
				meta, _, ok := s.store.Get(doc)
				if !ok || !predicate(doc, meta.Status, meta.Rating) {
					continue
				}
				h := acc.At(doc)
				h.Add(tf * termIDF)
				h.Release()
			}
			return nil
		})
	}
	_ = plusGroup.Wait()

	var minusGroup errgroup.Group
	for _, term := range q.Minus {
		term := term
		minusGroup.Go(func() error {
			postings, ok := s.index.Get(term)
			if !ok {
				return nil
			}
			for doc := range postings {
				acc.Erase(doc)
			}
			return nil
		})
	}
	_ = minusGroup.Wait()

	scores := acc.BuildOrdinaryMap()
	return s.buildResultsParallel(scores), nil
}

// buildResults converts a score map into a sorted, truncated result
// list using the sequential sort.
func (s *Service) buildResults(scores map[int]float64) []model.Result {
	results := make([]model.Result, 0, len(scores))
	for doc, relevance := range scores {
		meta, _, ok := s.store.Get(doc)
		if !ok {
			continue
		}
		results = append(results, model.Result{ID: doc, Relevance: relevance, Rating: meta.Rating})
	}
	sort.SliceStable(results, func(i, j int) bool { return rankLess(results[i], results[j]) })
	if len(results) > config.MaxResults {
		results = results[:config.MaxResults]
	}
	return results
}

// buildResultsParallel is the parallel counterpart: candidates are
// split across runtime.GOMAXPROCS(0) chunks, each sorted concurrently, then
// merged. The ranking law is a total order, so the merge is exact.
func (s *Service) buildResultsParallel(scores map[int]float64) []model.Result {
	results := make([]model.Result, 0, len(scores))
	for doc, relevance := range scores {
		meta, _, ok := s.store.Get(doc)
		if !ok {
			continue
		}
		results = append(results, model.Result{ID: doc, Relevance: relevance, Rating: meta.Rating})
	}

	chunks := splitChunks(results, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i := range chunks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sort.SliceStable(chunks[i], func(a, b int) bool { return rankLess(chunks[i][a], chunks[i][b]) })
		}(i)
	}
	wg.Wait()

	merged := mergeSorted(chunks)
	if len(merged) > config.MaxResults {
		merged = merged[:config.MaxResults]
	}
	return merged
}

func splitChunks(results []model.Result, n int) [][]model.Result {
	if n < 1 {
		n = 1
	}
	if len(results) < n {
		n = len(results)
	}
	if n == 0 {
		return nil
	}
	chunks := make([][]model.Result, n)
	size := (len(results) + n - 1) / n
	for i := 0; i < n; i++ {
		start := i * size
		if start >= len(results) {
			chunks[i] = []model.Result{}
			continue
		}
		end := start + size
		if end > len(results) {
			end = len(results)
		}
		chunks[i] = results[start:end]
	}
	return chunks
}

// mergeSorted k-way merges already-sorted chunks under the ranking law.
func mergeSorted(chunks [][]model.Result) []model.Result {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	merged := make([]model.Result, 0, total)
	idx := make([]int, len(chunks))
	for {
		best := -1
		for i, c := range chunks {
			if idx[i] >= len(c) {
				continue
			}
			if best == -1 || rankLess(c[idx[i]], chunks[best][idx[best]]) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		merged = append(merged, chunks[best][idx[best]])
		idx[best]++
	}
	return merged
}
