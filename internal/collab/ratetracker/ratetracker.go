// Package ratetracker implements the request-rate tracker collaborator
// from spec §6: it wraps find_top, remembers whether each of the last
// config.RequestWindowSize queries came back empty, and reports how many
// in the current window did. Grounded on the original RequestQueue's
// fixed-size sliding window of query outcomes.
package ratetracker

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/gcbaptista/tfidx-engine/config"
	"github.com/gcbaptista/tfidx-engine/model"
)

// Searcher is the subset of the engine façade the rate tracker needs.
type Searcher interface {
	FindTopByStatus(query string, status model.Status) ([]model.Result, error)
}

// Tracker wraps a Searcher and maintains a sliding window over the
// emptiness of the last config.RequestWindowSize find_top calls.
type Tracker struct {
	searcher Searcher

	mu         sync.Mutex
	window     []bool // ring buffer of "was this call's result list empty"
	next       int    // next write position in window
	filled     int    // number of valid entries (caps at len(window))
	emptyCount int    // count of true entries currently in window

	snapshots singleflight.Group
	recent    *lru.Cache[string, int] // distinct empty queries -> occurrence count, for diagnostics
}

// New creates a Tracker over searcher with a window of windowSize
// entries (config.RequestWindowSize in production use) and a recency
// cache of recentCap distinct empty queries for diagnostics.
func New(searcher Searcher, windowSize, recentCap int) (*Tracker, error) {
	if windowSize < 1 {
		windowSize = config.RequestWindowSize
	}
	if recentCap < 1 {
		recentCap = 64
	}
	cache, err := lru.New[string, int](recentCap)
	if err != nil {
		return nil, err
	}
	return &Tracker{
		searcher: searcher,
		window:   make([]bool, windowSize),
		recent:   cache,
	}, nil
}

// AddFindRequest runs query through the wrapped searcher, records
// whether it came back empty, and returns the results unchanged.
func (t *Tracker) AddFindRequest(query string, status model.Status) ([]model.Result, error) {
	results, err := t.searcher.FindTopByStatus(query, status)
	if err != nil {
		return nil, err
	}

	empty := len(results) == 0
	t.record(empty)
	if empty {
		t.mu.Lock()
		count, _ := t.recent.Get(query)
		t.recent.Add(query, count+1)
		t.mu.Unlock()
	}
	return results, nil
}

func (t *Tracker) record(empty bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.filled == len(t.window) {
		if t.window[t.next] {
			t.emptyCount--
		}
	} else {
		t.filled++
	}
	t.window[t.next] = empty
	if empty {
		t.emptyCount++
	}
	t.next = (t.next + 1) % len(t.window)
}

// NoResultRequests reports how many calls in the current window came
// back empty. Concurrent callers collapse into a single computation via
// singleflight, since the count only changes on AddFindRequest.
func (t *Tracker) NoResultRequests() int {
	v, _, _ := t.snapshots.Do("snapshot", func() (interface{}, error) {
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.emptyCount, nil
	})
	return v.(int)
}

// RecentEmptyQueries returns the distinct empty queries still tracked
// in the diagnostics cache, least-recently-used first.
func (t *Tracker) RecentEmptyQueries() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recent.Keys()
}
