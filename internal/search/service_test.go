package search

import (
	"testing"

	idx "github.com/gcbaptista/tfidx-engine/index"
	"github.com/gcbaptista/tfidx-engine/internal/indexing"
	"github.com/gcbaptista/tfidx-engine/internal/stopwords"
	"github.com/gcbaptista/tfidx-engine/model"
	docstore "github.com/gcbaptista/tfidx-engine/store"
)

// setupCorpus builds the S1 scenario from spec §8: Russian pet-listing
// documents with a small stop-word set.
func setupCorpus(t *testing.T) (*Service, *indexing.Service) {
	t.Helper()
	stop, err := stopwords.New([]string{"и", "в", "на"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ii := idx.New()
	ds := docstore.New()
	indexer := indexing.NewService(ii, ds, stop)
	searcher := NewService(ii, ds, stop)

	docs := []struct {
		id      int
		text    string
		ratings []int
	}{
		{1, "белый кот и модный ошейник", []int{8, -3}},
		{2, "пушистый кот пушистый хвост", []int{7, 2, 7}},
		{3, "ухоженный пёс выразительные глаза", []int{5, -12, 2, 1}},
	}
	for _, d := range docs {
		if err := indexer.AddDocument(d.id, d.text, model.Actual, d.ratings); err != nil {
			t.Fatalf("AddDocument(%d): %v", d.id, err)
		}
	}
	return searcher, indexer
}

func TestFindTopS1(t *testing.T) {
	searcher, _ := setupCorpus(t)
	results, err := searcher.FindTop("пушистый ухоженный кот", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []int{2, 3, 1}
	if len(results) != len(wantOrder) {
		t.Fatalf("got %d results, want %d: %+v", len(results), len(wantOrder), results)
	}
	for i, r := range results {
		if r.ID != wantOrder[i] {
			t.Fatalf("position %d: got id=%d, want id=%d (full: %+v)", i, r.ID, wantOrder[i], results)
		}
	}
}

func TestFindTopS2MinusWordExclusion(t *testing.T) {
	searcher, _ := setupCorpus(t)
	results, err := searcher.FindTop("пушистый -ошейник", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Fatalf("got %+v, want only id=2", results)
	}
}

func TestMatchS3(t *testing.T) {
	searcher, _ := setupCorpus(t)

	m, err := searcher.Match("пушистый -кот", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.MatchedTerms) != 0 {
		t.Fatalf("expected empty matched terms, got %v", m.MatchedTerms)
	}
	if m.Status != model.Actual {
		t.Fatalf("got status=%v", m.Status)
	}

	m2, err := searcher.Match("пушистый", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m2.MatchedTerms) != 1 || m2.MatchedTerms[0] != "пушистый" {
		t.Fatalf("got %v", m2.MatchedTerms)
	}
}

func TestFindTopTieBreakByRatingS4(t *testing.T) {
	stop, _ := stopwords.New(nil)
	ii := idx.New()
	ds := docstore.New()
	indexer := indexing.NewService(ii, ds, stop)
	searcher := NewService(ii, ds, stop)

	ratingsByID := map[int][]int{
		10: {1, 1},
		11: {1, 2},
		12: {1, 3},
		13: {1, 4},
		14: {1, 5},
	}
	for _, id := range []int{10, 11, 12, 13, 14} {
		if err := indexer.AddDocument(id, "shared term", model.Actual, ratingsByID[id]); err != nil {
			t.Fatalf("AddDocument(%d): %v", id, err)
		}
	}

	results, err := searcher.FindTop("shared", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// All relevances are equal, so rating decides. Ratings are truncated
	// means: 14 -> 3, 13 -> 2, 12 -> 2, 11 -> 1, 10 -> 1; documents with
	// equal ratings have no defined order among themselves.
	wantRatings := []int{3, 2, 2, 1, 1}
	if len(results) != len(wantRatings) {
		t.Fatalf("got %d results, want %d", len(results), len(wantRatings))
	}
	for i, r := range results {
		if r.Rating != wantRatings[i] {
			t.Fatalf("position %d: got id=%d rating=%d, want rating=%d", i, r.ID, r.Rating, wantRatings[i])
		}
	}
}

func TestFindTopTruncatesAtMaxResults(t *testing.T) {
	stop, _ := stopwords.New(nil)
	ii := idx.New()
	ds := docstore.New()
	indexer := indexing.NewService(ii, ds, stop)
	searcher := NewService(ii, ds, stop)

	for i := 0; i < 8; i++ {
		if err := indexer.AddDocument(i, "term", model.Actual, []int{i}); err != nil {
			t.Fatalf("AddDocument(%d): %v", i, err)
		}
	}
	results, err := searcher.FindTop("term", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d results, want 5", len(results))
	}
}

func TestFindTopEmptyAfterRemoval(t *testing.T) {
	stop, _ := stopwords.New(nil)
	ii := idx.New()
	ds := docstore.New()
	indexer := indexing.NewService(ii, ds, stop)
	searcher := NewService(ii, ds, stop)

	if err := indexer.AddDocument(1, "a b c", model.Actual, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := indexer.RemoveDocument(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	results, err := searcher.FindTop("a", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty results, got %+v", results)
	}
}

func TestFindTopParallelMatchesSequential(t *testing.T) {
	searcher, _ := setupCorpus(t)

	seq, err := searcher.FindTop("пушистый ухоженный кот", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	par, err := searcher.FindTopParallel("пушистый ухоженный кот", ByStatus(model.Actual))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seq) != len(par) {
		t.Fatalf("length mismatch: seq=%d par=%d", len(seq), len(par))
	}
	seqIDs := map[int]float64{}
	for _, r := range seq {
		seqIDs[r.ID] = r.Relevance
	}
	for _, r := range par {
		rel, ok := seqIDs[r.ID]
		if !ok {
			t.Fatalf("id %d present in parallel but not sequential results", r.ID)
		}
		if diff := rel - r.Relevance; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("id %d relevance mismatch: seq=%v par=%v", r.ID, rel, r.Relevance)
		}
	}
}

func TestMatchParallelMatchesSequential(t *testing.T) {
	searcher, _ := setupCorpus(t)

	seq, err := searcher.Match("пушистый хвост", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	par, err := searcher.MatchParallel("пушистый хвост", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq.Status != par.Status {
		t.Fatalf("status mismatch: seq=%v par=%v", seq.Status, par.Status)
	}
	if len(seq.MatchedTerms) != len(par.MatchedTerms) {
		t.Fatalf("matched terms mismatch: seq=%v par=%v", seq.MatchedTerms, par.MatchedTerms)
	}
	for i := range seq.MatchedTerms {
		if seq.MatchedTerms[i] != par.MatchedTerms[i] {
			t.Fatalf("matched terms mismatch: seq=%v par=%v", seq.MatchedTerms, par.MatchedTerms)
		}
	}
}
