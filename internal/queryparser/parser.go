// Package queryparser converts a raw query string into plus-terms
// (required) and minus-terms (forbidden), filtering out stop-words.
package queryparser

import (
	"sort"

	"github.com/gcbaptista/tfidx-engine/internal/errors"
	"github.com/gcbaptista/tfidx-engine/internal/stopwords"
	"github.com/gcbaptista/tfidx-engine/internal/tokenizer"
)

// Query holds the two term lists produced by Parse.
type Query struct {
	Plus  []string
	Minus []string
}

// Parse tokenizes raw, classifies each token as plus or minus, drops
// stop-words, and optionally sorts and de-duplicates both lists.
// sortAndDedup must be true for callers that depend on deterministic
// iteration order (sequential ranked search); the parallel match path
// may pass false since duplicates are harmless when any hit
// short-circuits the search.
func Parse(raw string, stop *stopwords.Set, sortAndDedup bool) (Query, error) {
	if tokenizer.HasControlByte(raw) {
		return Query{}, errors.NewInvalidQueryError(raw, "query contains a control byte")
	}

	var q Query
	for _, token := range tokenizer.Tokenize(raw) {
		word, isMinus, err := parseToken(token)
		if err != nil {
			return Query{}, err
		}
		if stop.Contains(word) {
			continue
		}
		if isMinus {
			q.Minus = append(q.Minus, word)
		} else {
			q.Plus = append(q.Plus, word)
		}
	}

	if sortAndDedup {
		q.Plus = sortDedup(q.Plus)
		q.Minus = sortDedup(q.Minus)
	}
	return q, nil
}

// parseToken strips a leading '-' marking a minus-token and rejects the
// malformed shapes from spec §4.2 step 2: a bare "-", a double-minus
// "--foo", or (after stripping) an empty token.
func parseToken(token string) (word string, isMinus bool, err error) {
	if token[0] != '-' {
		return token, false, nil
	}
	stripped := token[1:]
	if stripped == "" || stripped[0] == '-' {
		return "", false, errors.NewInvalidQueryError(token, "minus-word must be '-word', not empty or doubly-negated")
	}
	return stripped, true, nil
}

// sortDedup sorts terms ascending and removes adjacent duplicates,
// in place over a fresh slice so the caller's slice is untouched.
func sortDedup(terms []string) []string {
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
