// Package stopwords holds the immutable set of terms ignored during
// tokenization of both documents and queries.
package stopwords

import (
	"github.com/gcbaptista/tfidx-engine/internal/errors"
	"github.com/gcbaptista/tfidx-engine/internal/tokenizer"
)

// Set is a fixed, distinct collection of non-empty stop-words. It is
// built once at engine construction and never mutated afterward.
type Set struct {
	words map[string]struct{}
}

// New validates every word and builds the stop-word set. It fails with
// an InvalidStopWordError naming the first offending word if any word
// contains a control byte.
func New(words []string) (*Set, error) {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if tokenizer.HasControlByte(w) {
			return nil, errors.NewInvalidStopWordError(w)
		}
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s, nil
}

// Contains reports whether term is a stop-word. It does not allocate.
func (s *Set) Contains(term string) bool {
	_, ok := s.words[term]
	return ok
}
