package partition

import (
	"strings"
	"testing"

	"github.com/akitenkrad/paper-parser/model"
)

const sampleRecords = `[
  {
    "type": "Title",
    "text": "1. Introduction",
    "metadata": {
      "page_number": 1,
      "coordinates": {
        "points": [[100, 50], [100, 80], [500, 80], [500, 50]],
        "layout_width": 612,
        "layout_height": 792
      },
      "languages": ["en"],
      "file_directory": "/tmp",
      "filename": "paper.pdf",
      "filetype": "application/pdf"
    }
  },
  {
    "type": "NarrativeText",
    "text": "We study seg- mentation of scanned pages.",
    "metadata": {
      "page_number": 1,
      "coordinates": {
        "points": [[100, 100], [100, 160], [500, 160], [500, 100]],
        "layout_width": 612,
        "layout_height": 792
      }
    }
  },
  {
    "type": "Formula",
    "text": "E = mc2",
    "metadata": {
      "page_number": 2,
      "coordinates": {
        "points": [[0, 0], [0, 10], [10, 10], [10, 0]],
        "layout_width": 612,
        "layout_height": 792
      }
    }
  }
]`

func TestDecoderDecode(t *testing.T) {
	dec := NewDecoder(nil)
	fragments, err := dec.Decode(strings.NewReader(sampleRecords))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(fragments) != 3 {
		t.Fatalf("got %d fragments, want 3", len(fragments))
	}

	title := fragments[0]
	if title.Type != model.Title {
		t.Errorf("Type = %v, want Title", title.Type)
	}
	if title.Text != "1. Introduction" {
		t.Errorf("Text = %q", title.Text)
	}
	if title.PageNumber != 1 {
		t.Errorf("PageNumber = %d, want 1", title.PageNumber)
	}
	if title.Bounds.Left() != 100 || title.Bounds.Top() != 50 || title.Bounds.Right() != 500 || title.Bounds.Bottom() != 80 {
		t.Errorf("Bounds edges = (%d,%d,%d,%d), want (100,50,500,80)",
			title.Bounds.Left(), title.Bounds.Top(), title.Bounds.Right(), title.Bounds.Bottom())
	}
	if title.LayoutWidth != 612 || title.LayoutHeight != 792 {
		t.Errorf("layout dims = %dx%d, want 612x792", title.LayoutWidth, title.LayoutHeight)
	}
	if title.Filename != "paper.pdf" || title.FileDirectory != "/tmp" || title.Filetype != "application/pdf" {
		t.Errorf("unexpected provenance: %+v", title)
	}
	if len(title.Languages) != 1 || title.Languages[0] != "en" {
		t.Errorf("Languages = %v, want [en]", title.Languages)
	}

	// Hyphen cleanup runs at decode time.
	if got := fragments[1].Text; got != "We study segmentation of scanned pages." {
		t.Errorf("cleaned text = %q", got)
	}

	// Unknown labels fold to UncategorizedText.
	if fragments[2].Type != model.UncategorizedText {
		t.Errorf("Type = %v, want UncategorizedText", fragments[2].Type)
	}
}

func TestDecoderBadCorners(t *testing.T) {
	const bad = `[{"type": "Title", "text": "x", "metadata": {"page_number": 1,
		"coordinates": {"points": [[0, 0]], "layout_width": 1, "layout_height": 1}}}]`

	if _, err := NewDecoder(nil).Decode(strings.NewReader(bad)); err == nil {
		t.Fatal("expected error for malformed corner points")
	}
}

func TestDecoderBadJSON(t *testing.T) {
	if _, err := NewDecoder(nil).Decode(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLanguageTaggerBackfill(t *testing.T) {
	if testing.Short() {
		t.Skip("language models are slow to load")
	}

	dec := NewDecoder(nil).WithLanguageTagger(NewLanguageTagger())
	fragments, err := dec.Decode(strings.NewReader(sampleRecords))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// Record 1 carries its own tag; record 2 gets backfilled.
	if fragments[0].Languages[0] != "en" {
		t.Errorf("Languages = %v, want [en]", fragments[0].Languages)
	}
	if len(fragments[1].Languages) != 1 || fragments[1].Languages[0] != "en" {
		t.Errorf("backfilled Languages = %v, want [en]", fragments[1].Languages)
	}
}
