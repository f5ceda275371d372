// Package classify decides, per fragment, whether it is genuine body text, a
// caption, part of a table, an implausible title, or outside the content
// area. All predicates are pure and order-independent; they see the fragment
// plus the document's full fragment list (via PageIndex) and never mutate
// either.
package classify

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/akitenkrad/paper-parser/model"
)

// PageIndex indexes a document's Table and Image fragments by page so the
// caption and table-membership predicates can retrieve geometric candidates
// without scanning the whole list per query.
type PageIndex struct {
	tables map[int]*rtree.RTreeG[model.Fragment]
	images map[int]*rtree.RTreeG[model.Fragment]
}

// NewPageIndex builds the index from the document's full fragment list.
func NewPageIndex(fragments []model.Fragment) *PageIndex {
	ix := &PageIndex{
		tables: make(map[int]*rtree.RTreeG[model.Fragment]),
		images: make(map[int]*rtree.RTreeG[model.Fragment]),
	}
	for _, f := range fragments {
		switch f.Type {
		case model.Table:
			insert(ix.tables, f)
		case model.Image:
			insert(ix.images, f)
		}
	}
	return ix
}

func insert(trees map[int]*rtree.RTreeG[model.Fragment], f model.Fragment) {
	tr, ok := trees[f.PageNumber]
	if !ok {
		tr = &rtree.RTreeG[model.Fragment]{}
		trees[f.PageNumber] = tr
	}
	tr.Insert(
		[2]float64{float64(f.Bounds.Left()), float64(f.Bounds.Top())},
		[2]float64{float64(f.Bounds.Right()), float64(f.Bounds.Bottom())},
		f,
	)
}

// tablesNear returns the page's table fragments whose vertical extent falls
// within margin of bounds. The caption proximity rules ignore horizontal
// position, so the search spans the full page width.
func (ix *PageIndex) tablesNear(page int, bounds model.Rect, margin int) []model.Fragment {
	return search(ix.tables[page], bounds, margin)
}

// imagesNear is the image counterpart of tablesNear.
func (ix *PageIndex) imagesNear(page int, bounds model.Rect, margin int) []model.Fragment {
	return search(ix.images[page], bounds, margin)
}

func search(tr *rtree.RTreeG[model.Fragment], bounds model.Rect, margin int) []model.Fragment {
	if tr == nil {
		return nil
	}
	var out []model.Fragment
	tr.Search(
		[2]float64{math.Inf(-1), float64(bounds.Top() - margin)},
		[2]float64{math.Inf(1), float64(bounds.Bottom() + margin)},
		func(_, _ [2]float64, f model.Fragment) bool {
			out = append(out, f)
			return true
		},
	)
	return out
}
