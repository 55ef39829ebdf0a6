// Package batch implements the batch query driver collaborator from
// spec §6: run a list of queries against find_top concurrently and
// return either the per-query result lists or their concatenation.
package batch

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/tfidx-engine/model"
)

// Searcher is the subset of the engine façade the batch driver needs.
type Searcher interface {
	FindTopByStatus(query string, status model.Status) ([]model.Result, error)
}

// Run executes queries against searcher concurrently, restricted to
// status, and returns one result list per query in the same order as
// queries. runID is a fresh UUID identifying this call; Run itself does
// not log it.
func Run(searcher Searcher, queries []string, status model.Status) (runID string, results [][]model.Result, err error) {
	runID = uuid.NewString()
	results = make([][]model.Result, len(queries))

	g, _ := errgroup.WithContext(context.Background())
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			r, err := searcher.FindTopByStatus(q, status)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return runID, nil, err
	}
	return runID, results, nil
}

// RunJoined is Run, but flattens the per-query result lists into a
// single slice, preserving query order and within-query rank order.
func RunJoined(searcher Searcher, queries []string, status model.Status) (runID string, joined []model.Result, err error) {
	runID, results, err := Run(searcher, queries, status)
	if err != nil {
		return runID, nil, err
	}
	for _, r := range results {
		joined = append(joined, r...)
	}
	return runID, joined, nil
}
