// Package partition decodes the records emitted by the external layout/OCR
// engine into model fragments. The engine is an external collaborator: this
// package only consumes its output, it never drives it.
package partition

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akitenkrad/paper-parser/lexicon"
	"github.com/akitenkrad/paper-parser/model"
)

// Record is one raw fragment as serialized by the layout engine.
type Record struct {
	Type     string   `json:"type"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// Metadata carries the positional and provenance data of a record.
type Metadata struct {
	PageNumber    int         `json:"page_number"`
	Coordinates   Coordinates `json:"coordinates"`
	Languages     []string    `json:"languages"`
	FileDirectory string      `json:"file_directory"`
	Filename      string      `json:"filename"`
	Filetype      string      `json:"filetype"`
}

// Coordinates holds the four corner points of a record plus the source page
// layout dimensions. Points are listed in the engine's order: top-left,
// bottom-left, bottom-right, top-right.
type Coordinates struct {
	Points       [][2]float64 `json:"points"`
	LayoutWidth  float64      `json:"layout_width"`
	LayoutHeight float64      `json:"layout_height"`
}

// Decoder converts engine records into fragments.
type Decoder struct {
	lex    lexicon.Lexicon
	tagger *LanguageTagger
}

// NewDecoder creates a decoder. lex may be nil, in which case hyphen joins
// always drop the hyphen.
func NewDecoder(lex lexicon.Lexicon) *Decoder {
	return &Decoder{lex: lex}
}

// WithLanguageTagger enables language-tag backfill for records the engine
// left untagged. Returns the decoder for chaining.
func (d *Decoder) WithLanguageTagger(tagger *LanguageTagger) *Decoder {
	d.tagger = tagger
	return d
}

// Decode reads a JSON array of records and converts each into a fragment.
func (d *Decoder) Decode(r io.Reader) ([]model.Fragment, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode partition records: %w", err)
	}
	return d.Fragments(records)
}

// Fragments converts already-parsed records into fragments, folding type
// labels onto the closed fragment type set and cleaning text.
func (d *Decoder) Fragments(records []Record) ([]model.Fragment, error) {
	fragments := make([]model.Fragment, 0, len(records))
	for i, rec := range records {
		frag, err := d.fragment(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		fragments = append(fragments, frag)
	}
	return fragments, nil
}

func (d *Decoder) fragment(rec Record) (model.Fragment, error) {
	bounds, err := rec.Metadata.Coordinates.rect()
	if err != nil {
		return model.Fragment{}, err
	}

	frag := model.Fragment{
		Type:          model.ParseFragmentType(rec.Type),
		Text:          model.CleanText(rec.Text, d.lex),
		PageNumber:    rec.Metadata.PageNumber,
		Bounds:        bounds,
		LayoutWidth:   int(rec.Metadata.Coordinates.LayoutWidth),
		LayoutHeight:  int(rec.Metadata.Coordinates.LayoutHeight),
		FileDirectory: rec.Metadata.FileDirectory,
		Filename:      rec.Metadata.Filename,
		Filetype:      rec.Metadata.Filetype,
		Languages:     rec.Metadata.Languages,
	}

	if len(frag.Languages) == 0 && d.tagger != nil {
		frag.Languages = d.tagger.Tag(frag.Text)
	}

	return frag, nil
}

// rect maps the engine's corner order onto a Rect.
func (c Coordinates) rect() (model.Rect, error) {
	if len(c.Points) != 4 {
		return model.Rect{}, fmt.Errorf("expected 4 corner points, got %d", len(c.Points))
	}
	point := func(p [2]float64) model.Point {
		return model.Point{X: int(p[0]), Y: int(p[1])}
	}
	return model.Rect{
		TopLeft:     point(c.Points[0]),
		BottomLeft:  point(c.Points[1]),
		BottomRight: point(c.Points[2]),
		TopRight:    point(c.Points[3]),
	}, nil
}
