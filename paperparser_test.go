package paperparser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/akitenkrad/paper-parser/model"
)

func frag(typ model.FragmentType, text string, page, left, top, right, bottom int) model.Fragment {
	return model.Fragment{
		Type:       typ,
		Text:       text,
		PageNumber: page,
		Bounds:     model.NewRect(left, top, right, bottom),
	}
}

// paperFragments models a small single-column paper: an author line in the
// margin, abstract, introduction, a figure with caption, a table with caption
// and cell text, and a references section that must be suppressed.
func paperFragments() []model.Fragment {
	return []model.Fragment{
		// page 1
		frag(model.NarrativeText, "A. Author, Some University", 1, 300, 60, 700, 90),
		frag(model.Title, "Abstract", 1, 420, 110, 580, 130),
		frag(model.NarrativeText, "We present a method for section reconstruction.", 1, 150, 140, 850, 200),
		frag(model.Title, "1. Introduction", 1, 100, 220, 400, 240),
		frag(model.NarrativeText, "Intro text about papers.", 1, 100, 260, 880, 420),
		frag(model.Image, "", 1, 100, 440, 880, 600),
		frag(model.NarrativeText, "Figure 1: pipeline overview", 1, 100, 610, 880, 640),
		frag(model.Footer, "1", 1, 400, 760, 600, 780),
		// page 2
		frag(model.Title, "2. Results", 2, 100, 120, 400, 140),
		frag(model.NarrativeText, "Results text with numbers.", 2, 100, 160, 880, 300),
		frag(model.NarrativeText, "Table 1: accuracy", 2, 100, 310, 880, 330),
		frag(model.Table, "", 2, 100, 340, 880, 500),
		frag(model.NarrativeText, "0.95", 2, 200, 360, 300, 390),
		frag(model.Title, "References", 2, 100, 550, 300, 570),
		frag(model.NarrativeText, "[1] Someone et al. 2024.", 2, 100, 600, 880, 660),
	}
}

func TestParseEndToEnd(t *testing.T) {
	sections, err := NewParser().Parse(paperFragments())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	wantNames := []string{"Abstract", "1. Introduction", "2. Results"}
	if got := sections.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Fatalf("Names() = %v, want %v", got, wantNames)
	}

	tests := []struct {
		name, want string
	}{
		{"Abstract", "We present a method for section reconstruction."},
		{"1. Introduction", "Intro text about papers."},
		{"2. Results", "Results text with numbers."},
	}
	for _, tt := range tests {
		if text, _ := sections.Get(tt.name); text != tt.want {
			t.Errorf("section %q = %q, want %q", tt.name, text, tt.want)
		}
	}
}

// Nothing after the references heading may reach any output section.
func TestParseTruncatesAtReferences(t *testing.T) {
	fragments := append(paperFragments(),
		frag(model.Title, "3. Hidden", 3, 100, 120, 400, 140),
		frag(model.NarrativeText, "Post-reference text.", 3, 100, 160, 880, 300),
	)

	sections, err := NewParser().Parse(fragments)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, name := range sections.Names() {
		text, _ := sections.Get(name)
		if strings.Contains(text, "Post-reference") || strings.Contains(text, "Someone et al") {
			t.Errorf("section %q leaks post-reference text: %q", name, text)
		}
		if name == "3. Hidden" {
			t.Error("section after references heading must not appear")
		}
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	fragments := paperFragments()
	before := make([]model.Rect, len(fragments))
	for i, f := range fragments {
		before[i] = f.Bounds
	}

	if _, err := NewParser().Parse(fragments); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for i, f := range fragments {
		if f.Bounds != before[i] {
			t.Fatalf("fragment %d bounds mutated: %+v -> %+v", i, before[i], f.Bounds)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	if _, err := NewParser().Parse(nil); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("err = %v, want ErrEmptyDocument", err)
	}
}

func TestParseNoContent(t *testing.T) {
	fragments := []model.Fragment{
		frag(model.Title, "Lonely title", 1, 100, 100, 400, 130),
	}
	if _, err := NewParser().Parse(fragments); !errors.Is(err, ErrNoContent) {
		t.Errorf("err = %v, want ErrNoContent", err)
	}
}

func TestParsePartitions(t *testing.T) {
	// The image stretches the content area above the title; without it the
	// title would fall outside the estimated text area and be filtered.
	const records = `[
	  {"type": "Image", "text": "",
	   "metadata": {"page_number": 1, "coordinates": {
	     "points": [[100, 60], [100, 100], [880, 100], [880, 60]],
	     "layout_width": 1000, "layout_height": 800}}},
	  {"type": "Title", "text": "1. Introduction",
	   "metadata": {"page_number": 1, "coordinates": {
	     "points": [[100, 140], [100, 170], [500, 170], [500, 140]],
	     "layout_width": 1000, "layout_height": 800}}},
	  {"type": "NarrativeText", "text": "Foo bar.",
	   "metadata": {"page_number": 1, "coordinates": {
	     "points": [[100, 180], [100, 400], [880, 400], [880, 180]],
	     "layout_width": 1000, "layout_height": 800}}}
	]`

	sections, err := NewParser().ParsePartitions(strings.NewReader(records))
	if err != nil {
		t.Fatalf("ParsePartitions failed: %v", err)
	}

	if got := sections.Names(); !reflect.DeepEqual(got, []string{"1. Introduction"}) {
		t.Fatalf("Names() = %v, want [1. Introduction]", got)
	}
	if text, _ := sections.Get("1. Introduction"); text != "Foo bar." {
		t.Errorf("text = %q, want %q", text, "Foo bar.")
	}
}
