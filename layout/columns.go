package layout

import (
	"math"

	"github.com/akitenkrad/paper-parser/model"
)

// ColumnLayout represents the detected column structure of a document.
type ColumnLayout int

const (
	SingleColumn ColumnLayout = iota + 1
	TwoColumn
)

func (l ColumnLayout) String() string {
	switch l {
	case TwoColumn:
		return "two-column"
	default:
		return "single-column"
	}
}

// NormalizerConfig holds the column normalization heuristics.
type NormalizerConfig struct {
	// Inset is the horizontal inset from the text-area edges when snapping,
	// in pixels.
	Inset int

	// SlotDivisor divides the text-area width to get the column slot width.
	// Slightly above 2 leaves a gutter between the two slots.
	SlotDivisor float64

	// SingleColumnRatio divides the text-area width to get the threshold the
	// mean narrative width is compared against: a smaller mean means the text
	// flows in two columns.
	SingleColumnRatio float64
}

// DefaultNormalizerConfig returns the normalization defaults.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		Inset:             10,
		SlotDivisor:       2.2,
		SingleColumnRatio: 1.5,
	}
}

// Normalizer snaps fragment bounds onto a canonical column grid. The snap
// exists solely to make the reading-order comparator correct: raw OCR boxes
// are noisy enough that naive x-then-y sorting misorders two-column text.
type Normalizer struct {
	config NormalizerConfig
}

// NewNormalizer creates a normalizer with default configuration.
func NewNormalizer() *Normalizer {
	return &Normalizer{config: DefaultNormalizerConfig()}
}

// NewNormalizerWithConfig creates a normalizer with custom configuration.
func NewNormalizerWithConfig(config NormalizerConfig) *Normalizer {
	return &Normalizer{config: config}
}

// Detect classifies the document as single- or two-column by comparing the
// mean width of narrative fragments against the text-area width. A document
// with no narrative fragments is treated as single-column.
func (n *Normalizer) Detect(fragments []model.Fragment, textArea model.Rect) ColumnLayout {
	sum := 0
	count := 0
	for _, f := range fragments {
		if f.Type == model.NarrativeText {
			sum += f.Bounds.Width()
			count++
		}
	}
	if count == 0 {
		return SingleColumn
	}

	mean := float64(sum) / float64(count)
	if mean < float64(textArea.Width())/n.config.SingleColumnRatio {
		return TwoColumn
	}
	return SingleColumn
}

// Normalize returns a new fragment list whose horizontal bounds are snapped
// onto the detected column grid. Vertical bounds are untouched and the input
// list is never mutated, so callers may keep the original geometry.
func (n *Normalizer) Normalize(fragments []model.Fragment, textArea model.Rect) []model.Fragment {
	out := make([]model.Fragment, len(fragments))
	copy(out, fragments)

	inset := n.config.Inset

	switch n.Detect(fragments, textArea) {
	case TwoColumn:
		slot := float64(textArea.Width()) / n.config.SlotDivisor
		midpoint := float64(textArea.Left()) + float64(textArea.Width())/2

		for i := range out {
			if float64(out[i].Bounds.Right()) < midpoint {
				left := textArea.Left() + inset
				right := textArea.Left() + int(math.Round(slot)) - inset
				out[i].Bounds = snapHorizontal(out[i].Bounds, left, right)
			} else {
				left := textArea.Right() - int(math.Round(slot)) - inset
				right := textArea.Right() - inset
				out[i].Bounds = snapHorizontal(out[i].Bounds, left, right)
			}
		}
	default:
		for i := range out {
			left := textArea.Left() + inset
			right := textArea.Right() - inset
			out[i].Bounds = snapHorizontal(out[i].Bounds, left, right)
		}
	}

	return out
}

// snapHorizontal rewrites the horizontal bounds of r, keeping vertical edges.
func snapHorizontal(r model.Rect, left, right int) model.Rect {
	r.TopLeft.X = left
	r.BottomLeft.X = left
	r.TopRight.X = right
	r.BottomRight.X = right
	return r
}
