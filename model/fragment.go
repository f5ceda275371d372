package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/akitenkrad/paper-parser/lexicon"
)

// Fragment is one positioned, typed unit of extracted document content.
// Fragments are created once from upstream layout-engine output; only the
// column normalizer rewrites their bounds, and then only on its own copy.
type Fragment struct {
	Type       FragmentType
	Text       string
	PageNumber int
	Bounds     Rect

	// Source page layout dimensions.
	LayoutWidth  int
	LayoutHeight int

	// File provenance, when the engine reports it.
	FileDirectory string
	Filename      string
	Filetype      string

	Languages []string
}

// NewFragment constructs a fragment with its text cleaned via CleanText.
// lex may be nil.
func NewFragment(typ FragmentType, text string, page int, bounds Rect, lex lexicon.Lexicon) Fragment {
	return Fragment{
		Type:       typ,
		Text:       CleanText(text, lex),
		PageNumber: page,
		Bounds:     bounds,
	}
}

// fixedCompounds are word pairs that are always rejoined when a layout engine
// splits them across a line break.
var fixedCompounds = map[string]struct{}{
	"end-to-end":       {},
	"state-of-the-art": {},
}

// CleanText merges spurious hyphenation introduced by line wrapping. Scanning
// adjacent space-separated tokens, a pair that forms a known fixed compound is
// merged unconditionally. Otherwise, a token ending in a hyphen is joined to
// the next token: the hyphen is kept when both halves resolve in the lexicon
// (a legitimate compound) and dropped when they do not (a wrap artifact).
// A trailing period on the following token is stripped before the checks.
// Text is NFC-normalized first so composed and decomposed forms compare equal.
func CleanText(text string, lex lexicon.Lexicon) string {
	text = norm.NFC.String(text)
	tokens := strings.Split(text, " ")
	if len(tokens) < 2 {
		return text
	}

	out := make([]string, 0, len(tokens))
	consumed := false
	for i := 0; i < len(tokens)-1; i++ {
		if consumed {
			consumed = false
			continue
		}
		prev := tokens[i]
		next := strings.TrimSuffix(tokens[i+1], ".")

		switch {
		case isFixedCompound(prev + next):
			out = append(out, prev+next)
			consumed = true
		case strings.HasSuffix(prev, "-"):
			stem := strings.TrimSuffix(prev, "-")
			if inLexicon(lex, stem) && inLexicon(lex, next) {
				out = append(out, prev+next)
			} else {
				out = append(out, stem+next)
			}
			consumed = true
		default:
			out = append(out, prev)
		}
	}
	if !consumed {
		out = append(out, tokens[len(tokens)-1])
	}

	return strings.Join(out, " ")
}

func isFixedCompound(joined string) bool {
	_, ok := fixedCompounds[strings.ToLower(joined)]
	return ok
}

func inLexicon(lex lexicon.Lexicon, word string) bool {
	if lex == nil {
		return false
	}
	_, ok := lex.Lookup(word)
	return ok
}
