package search

import (
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/tfidx-engine/internal/queryparser"
	"github.com/gcbaptista/tfidx-engine/model"
)

// Match parses query (sorted and de-duplicated) and returns every
// plus-term whose posting contains id, or an empty list and the
// document's status if any minus-term hits id. See spec §4.4.
func (s *Service) Match(query string, id int) (model.Match, error) {
	q, err := queryparser.Parse(query, s.stop, true)
	if err != nil {
		return model.Match{}, err
	}

	meta, _, ok := s.store.Get(id)
	if !ok {
		return model.Match{}, nil
	}

	for _, term := range q.Minus {
		if s.postingHas(term, id) {
			return model.Match{Status: meta.Status}, nil
		}
	}

	var matched []string
	for _, term := range q.Plus {
		if s.postingHas(term, id) {
			matched = append(matched, term)
		}
	}
	return model.Match{MatchedTerms: matched, Status: meta.Status}, nil
}

// MatchParallel produces the same result as Match, but the minus-term
// exclusion check and the plus-term filter each run concurrently across
// terms. Query parsing does not sort/dedup up front (duplicates are
// harmless since any hit short-circuits); the final plus-term list is
// sorted and de-duplicated only after the parallel filter completes,
// per spec §4.4.
func (s *Service) MatchParallel(query string, id int) (model.Match, error) {
	q, err := queryparser.Parse(query, s.stop, false)
	if err != nil {
		return model.Match{}, err
	}

	meta, _, ok := s.store.Get(id)
	if !ok {
		return model.Match{}, nil
	}

	var excluded atomic.Bool
	var g errgroup.Group
	for _, term := range q.Minus {
		term := term
		g.Go(func() error {
			if s.postingHas(term, id) {
				excluded.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()
	if excluded.Load() {
		return model.Match{Status: meta.Status}, nil
	}

	var mu sync.Mutex
	var matched []string
	var g2 errgroup.Group
	for _, term := range q.Plus {
		term := term
		g2.Go(func() error {
			if s.postingHas(term, id) {
				mu.Lock()
				matched = append(matched, term)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g2.Wait()

	matched = sortDedupStrings(matched)
	return model.Match{MatchedTerms: matched, Status: meta.Status}, nil
}

func (s *Service) postingHas(term string, id int) bool {
	postings, ok := s.index.Get(term)
	if !ok {
		return false
	}
	_, ok = postings[id]
	return ok
}

func sortDedupStrings(terms []string) []string {
	if len(terms) == 0 {
		return terms
	}
	sorted := append([]string(nil), terms...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, t := range sorted[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return out
}
