package queryparser

import (
	"reflect"
	"testing"

	"github.com/gcbaptista/tfidx-engine/internal/stopwords"
)

func newStop(t *testing.T, words ...string) *stopwords.Set {
	t.Helper()
	s, err := stopwords.New(words)
	if err != nil {
		t.Fatalf("unexpected error building stop-words: %v", err)
	}
	return s
}

func TestParseBasic(t *testing.T) {
	stop := newStop(t, "и", "в", "на")
	q, err := Parse("пушистый ухоженный кот", stop, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"кот", "пушистый", "ухоженный"}
	if !reflect.DeepEqual(q.Plus, want) {
		t.Fatalf("got plus=%v, want %v", q.Plus, want)
	}
	if len(q.Minus) != 0 {
		t.Fatalf("expected no minus terms, got %v", q.Minus)
	}
}

func TestParseMinusTerms(t *testing.T) {
	stop := newStop(t)
	q, err := Parse("пушистый -ошейник", stop, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"пушистый"}) {
		t.Fatalf("got plus=%v", q.Plus)
	}
	if !reflect.DeepEqual(q.Minus, []string{"ошейник"}) {
		t.Fatalf("got minus=%v", q.Minus)
	}
}

func TestParseStopWordsDropped(t *testing.T) {
	stop := newStop(t, "and")
	q, err := Parse("cats and dogs", stop, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"cats", "dogs"}) {
		t.Fatalf("got plus=%v", q.Plus)
	}
}

func TestParseSortAndDedup(t *testing.T) {
	stop := newStop(t)
	q, err := Parse("b a b a", stop, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"a", "b"}) {
		t.Fatalf("got plus=%v", q.Plus)
	}
}

func TestParseWithoutSortAndDedup(t *testing.T) {
	stop := newStop(t)
	q, err := Parse("b a b a", stop, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Plus, []string{"b", "a", "b", "a"}) {
		t.Fatalf("got plus=%v", q.Plus)
	}
}

func TestParseInvalidQuery(t *testing.T) {
	stop := newStop(t)
	cases := []string{"-", "--word", "text\x01withcontrol"}
	for _, c := range cases {
		if _, err := Parse(c, stop, true); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", c)
		}
	}
}

func TestParseMinusStopWordLeavesOnlyDash(t *testing.T) {
	stop := newStop(t, "the")
	// "-the" strips to "the", a stop-word, and is simply dropped, not an error.
	q, err := Parse("-the", stop, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Plus) != 0 || len(q.Minus) != 0 {
		t.Fatalf("expected empty query, got %+v", q)
	}
}
