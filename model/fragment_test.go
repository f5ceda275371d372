package model

import (
	"testing"

	"github.com/akitenkrad/paper-parser/lexicon"
)

func TestParseFragmentType(t *testing.T) {
	tests := []struct {
		label string
		want  FragmentType
	}{
		{"NarrativeText", NarrativeText},
		{"Title", Title},
		{"FigureCaption", FigureCaption},
		{"Footer", Footer},
		{"Header", Header},
		{"Image", Image},
		{"ListItem", ListItem},
		{"Table", Table},
		{"UncategorizedText", UncategorizedText},
		{"Formula", UncategorizedText},
		{"narrativetext", UncategorizedText},
		{"", UncategorizedText},
	}

	for _, tt := range tests {
		if got := ParseFragmentType(tt.label); got != tt.want {
			t.Errorf("ParseFragmentType(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestFragmentTypeString(t *testing.T) {
	if got := NarrativeText.String(); got != "NarrativeText" {
		t.Errorf("String() = %q, want %q", got, "NarrativeText")
	}
	if got := FragmentType(99).String(); got != "UncategorizedText" {
		t.Errorf("String() = %q, want %q", got, "UncategorizedText")
	}
}

func TestCleanTextFixedCompounds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"end-to-end split", "an end- to-end model", "an end-to-end model"},
		{"state-of-the-art split", "the state- of-the-art results", "the state-of-the-art results"},
		{"compound at end", "we train end- to-end", "we train end-to-end"},
		{"case insensitive", "End- to-end training", "End-to-end training"},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in, nil); got != tt.want {
			t.Errorf("%s: CleanText(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestCleanTextHyphenJoin(t *testing.T) {
	lex := lexicon.NewStatic()

	tests := []struct {
		name string
		in   string
		want string
	}{
		// Both halves in the lexicon: legitimate compound, hyphen kept.
		{"compound kept", "a well- known method", "a well-known method"},
		{"fine-tuned kept", "the fine- tuned model", "the fine-tuned model"},
		// Halves not recognized: line-wrap artifact, hyphen dropped.
		{"artifact dropped", "the hy- phenation case", "the hyphenation case"},
		{"artifact dropped mid", "seg- mentation of pages", "segmentation of pages"},
		// Trailing period on the following token is stripped before joining.
		{"period stripped", "recog- nition. Next sentence", "recognition Next sentence"},
		// No hyphen: untouched.
		{"plain text", "no hyphens here", "no hyphens here"},
		{"single token", "word", "word"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		if got := CleanText(tt.in, lex); got != tt.want {
			t.Errorf("%s: CleanText(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestCleanTextNilLexicon(t *testing.T) {
	// Without a lexicon every hyphen join drops the hyphen.
	if got := CleanText("well- known", nil); got != "wellknown" {
		t.Errorf("CleanText() = %q, want %q", got, "wellknown")
	}
}

func TestCleanTextConsumesTokensOnce(t *testing.T) {
	// A merge at the end of the token stream must not re-emit the merged token.
	got := CleanText("state- of-the-art", nil)
	if got != "state-of-the-art" {
		t.Errorf("CleanText() = %q, want %q", got, "state-of-the-art")
	}
}

func TestNewFragmentCleansText(t *testing.T) {
	f := NewFragment(NarrativeText, "seg- mented text", 1, NewRect(0, 0, 10, 10), nil)
	if f.Text != "segmented text" {
		t.Errorf("Text = %q, want %q", f.Text, "segmented text")
	}
	if f.Type != NarrativeText || f.PageNumber != 1 {
		t.Errorf("unexpected fragment fields: %+v", f)
	}
}
