// Package tokenizer splits document and query text into whitespace
// delimited terms and validates that text contains no control bytes.
package tokenizer

// Tokenize splits text into maximal runs of non-space bytes. The only
// delimiter is the ASCII space (0x20); empty runs between consecutive
// spaces are skipped. Terms are returned in source order as substrings
// of text, so they alias text's backing array.
//
// This is a from-scratch scan rather than a port of any prior
// implementation: the usual bug in a hand-rolled version of this
// function is letting the run-start bookkeeping depend on the
// delimiter resetting it, which only happens to work for a single
// delimiter byte. Tracking the run's start explicitly when a
// non-space byte is first seen avoids that trap entirely.
func Tokenize(text string) []string {
	var terms []string
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				terms = append(terms, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		terms = append(terms, text[start:])
	}
	return terms
}

// HasControlByte reports whether s contains any byte value below 0x20.
func HasControlByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return true
		}
	}
	return false
}
