package layout

import (
	"errors"
	"math"
	"sort"

	"github.com/akitenkrad/paper-parser/model"
)

var (
	// ErrEmptyDocument is returned when a document has no fragments.
	ErrEmptyDocument = errors.New("empty document: no fragments")

	// ErrNoContent is returned when no fragment of a content-bearing type
	// exists, so no text area can be estimated.
	ErrNoContent = errors.New("no content fragments to estimate text area from")
)

// contentTypes are the fragment types that bound genuine page content.
var contentTypes = map[model.FragmentType]struct{}{
	model.NarrativeText: {},
	model.ListItem:      {},
	model.Image:         {},
	model.Table:         {},
	model.FigureCaption: {},
}

func isContentType(t model.FragmentType) bool {
	_, ok := contentTypes[t]
	return ok
}

// EstimateTextArea derives the rectangle bounding genuine content across the
// document. For each page it collects the minimum top and left edges (ignoring
// non-positive coordinates, which denote unset) and the maximum right and
// bottom edges of content-bearing fragments. Pages without a qualifying value
// fall back to 0 for top/left and to the global maximum for right/bottom.
// The per-edge median across pages gives one page-independent rectangle.
func EstimateTextArea(fragments []model.Fragment) (model.Rect, error) {
	if len(fragments) == 0 {
		return model.Rect{}, ErrEmptyDocument
	}

	pageCount := 0
	for _, f := range fragments {
		if f.PageNumber > pageCount {
			pageCount = f.PageNumber
		}
	}
	if pageCount == 0 {
		return model.Rect{}, ErrNoContent
	}

	tops := make([]float64, pageCount)
	lefts := make([]float64, pageCount)
	rights := make([]float64, pageCount)
	bottoms := make([]float64, pageCount)

	haveRight := make([]bool, pageCount)
	haveBottom := make([]bool, pageCount)
	globalRight := math.Inf(-1)
	globalBottom := math.Inf(-1)

	for page := 1; page <= pageCount; page++ {
		i := page - 1
		tops[i] = math.Inf(1)
		lefts[i] = math.Inf(1)
		rights[i] = math.Inf(-1)
		bottoms[i] = math.Inf(-1)

		for _, f := range fragments {
			if f.PageNumber != page || !isContentType(f.Type) {
				continue
			}
			if y := f.Bounds.Top(); y > 0 && float64(y) < tops[i] {
				tops[i] = float64(y)
			}
			if x := f.Bounds.Left(); x > 0 && float64(x) < lefts[i] {
				lefts[i] = float64(x)
			}
			if x := float64(f.Bounds.Right()); x > rights[i] {
				rights[i] = x
				haveRight[i] = true
			}
			if y := float64(f.Bounds.Bottom()); y > bottoms[i] {
				bottoms[i] = y
				haveBottom[i] = true
			}
		}

		if haveRight[i] && rights[i] > globalRight {
			globalRight = rights[i]
		}
		if haveBottom[i] && bottoms[i] > globalBottom {
			globalBottom = bottoms[i]
		}
	}

	if math.IsInf(globalRight, -1) || math.IsInf(globalBottom, -1) {
		return model.Rect{}, ErrNoContent
	}

	for i := 0; i < pageCount; i++ {
		if math.IsInf(tops[i], 1) {
			tops[i] = 0
		}
		if math.IsInf(lefts[i], 1) {
			lefts[i] = 0
		}
		if !haveRight[i] {
			rights[i] = globalRight
		}
		if !haveBottom[i] {
			bottoms[i] = globalBottom
		}
	}

	return model.NewRect(
		median(lefts),
		median(tops),
		median(rights),
		median(bottoms),
	), nil
}

// median returns the median of values rounded to the nearest pixel. An even
// count averages the middle pair.
func median(values []float64) int {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return int(math.Round(sorted[mid]))
	}
	return int(math.Round((sorted[mid-1] + sorted[mid]) / 2))
}
