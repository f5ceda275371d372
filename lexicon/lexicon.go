// Package lexicon provides word lookup used to decide whether a hyphen-split
// word pair forms a legitimate compound or a line-wrap artifact.
//
// Implementations resolve a single word to its canonical root form. The
// package ships two implementations: a [Static] in-memory lexicon seeded with
// a common-word list, and a SQLite-backed [DB] for larger vocabularies.
package lexicon

import "strings"

// Lexicon resolves a single word to its canonical root form.
// Lookup returns the root and true when the word is recognized.
type Lexicon interface {
	Lookup(word string) (root string, ok bool)
}

// Static is an in-memory lexicon backed by a word set.
// The zero value is empty; use NewStatic to seed it.
type Static struct {
	words map[string]struct{}
}

// NewStatic creates a lexicon containing the given words plus a built-in
// set of common English words.
func NewStatic(words ...string) *Static {
	s := &Static{words: make(map[string]struct{}, len(commonWords)+len(words))}
	for _, w := range commonWords {
		s.words[w] = struct{}{}
	}
	for _, w := range words {
		s.words[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// NewEmpty creates a lexicon with no entries. Every lookup misses, which
// makes hyphen joins always drop the hyphen.
func NewEmpty() *Static {
	return &Static{words: make(map[string]struct{})}
}

// Add inserts a word into the lexicon.
func (s *Static) Add(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

// Lookup resolves word to its root form. Besides an exact match it tries a
// small set of suffix reductions (plural and inflected forms), mirroring a
// morphological dictionary lookup.
func (s *Static) Lookup(word string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "", false
	}
	if _, ok := s.words[w]; ok {
		return w, true
	}
	for _, stem := range stems(w) {
		if _, ok := s.words[stem]; ok {
			return stem, true
		}
	}
	return "", false
}

// stems generates candidate root forms for an inflected word.
func stems(w string) []string {
	var out []string
	trim := func(suffix, add string) {
		if strings.HasSuffix(w, suffix) && len(w) > len(suffix)+1 {
			out = append(out, strings.TrimSuffix(w, suffix)+add)
		}
	}
	trim("ies", "y")
	trim("es", "")
	trim("s", "")
	trim("ing", "")
	trim("ing", "e")
	trim("ed", "")
	trim("ed", "e")
	trim("er", "")
	trim("est", "")
	return out
}

// commonWords seeds Static lexicons. The list is intentionally small: it
// only needs to cover words that plausibly appear around line-wrap hyphens
// in scientific prose.
var commonWords = []string{
	"able", "accuracy", "algorithm", "analysis", "approach", "architecture",
	"area", "art", "attention", "base", "baseline", "based", "benchmark",
	"best", "body", "case", "class", "column", "compound", "computer",
	"context", "corpus", "cross", "data", "dataset", "deep", "design",
	"detection", "document", "domain", "down", "end", "error", "evaluation",
	"experiment", "feature", "field", "figure", "fine", "form", "frame",
	"free", "function", "general", "grained", "graph", "ground", "head",
	"high", "image", "information", "input", "know", "known", "language",
	"large", "layer", "layout", "learn", "learning", "level", "light",
	"line", "long", "low", "machine", "main", "margin", "method", "model",
	"multi", "natural", "network", "neural", "noise", "open", "order",
	"output", "page", "paper", "part", "performance", "pipeline", "point",
	"post", "pre", "process", "public", "real", "region", "result", "scale",
	"score", "section", "self", "sentence", "set", "shot", "short", "single",
	"source", "space", "state", "structure", "study", "supervised", "system",
	"table", "task", "term", "test", "text", "time", "token", "train",
	"training", "transformer", "tune", "tuned", "tuning", "two", "type",
	"under", "up", "value", "vision", "weight", "well", "wide", "word",
	"work", "world", "zero",
}
