// Package testutil provides shared test-engine helpers, mirroring the
// teacher's internal/testing package but trimmed to this engine's
// single-instance, in-memory construction.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/tfidx-engine/internal/engine"
	"github.com/gcbaptista/tfidx-engine/model"
)

// NewEngine constructs an Engine with stopWords, failing the test on
// construction error.
func NewEngine(t *testing.T, stopWords ...string) *engine.Engine {
	t.Helper()
	e, err := engine.New(stopWords)
	require.NoError(t, err, "failed to construct engine")
	return e
}

// Doc is one document to seed into a test engine via SeedDocuments.
type Doc struct {
	ID      int
	Text    string
	Status  model.Status
	Ratings []int
}

// SeedDocuments adds each doc to e in order, failing the test on the
// first error.
func SeedDocuments(t *testing.T, e *engine.Engine, docs []Doc) {
	t.Helper()
	for _, d := range docs {
		err := e.AddDocument(d.ID, d.Text, d.Status, d.Ratings)
		require.NoError(t, err, "AddDocument(%d)", d.ID)
	}
}

// AssertResultIDsInOrder checks that results' ids match want, in order.
func AssertResultIDsInOrder(t *testing.T, results []model.Result, want []int) {
	t.Helper()
	got := make([]int, len(results))
	for i, r := range results {
		got[i] = r.ID
	}
	require.Equal(t, want, got)
}
