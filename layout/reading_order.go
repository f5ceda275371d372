package layout

import (
	"sort"

	"github.com/akitenkrad/paper-parser/model"
)

// SortReadingOrder returns the document's linear reading sequence: fragments
// grouped by page, each page sorted with the column-aware comparator, pages
// concatenated in page-number order. The per-page sort is stable, so
// fragments comparing equal (overlapping horizontal span, same top edge)
// keep their input order.
func SortReadingOrder(fragments []model.Fragment) []model.Fragment {
	byPage := make(map[int][]model.Fragment)
	var pages []int
	for _, f := range fragments {
		if _, seen := byPage[f.PageNumber]; !seen {
			pages = append(pages, f.PageNumber)
		}
		byPage[f.PageNumber] = append(byPage[f.PageNumber], f)
	}
	sort.Ints(pages)

	out := make([]model.Fragment, 0, len(fragments))
	for _, page := range pages {
		pageFragments := byPage[page]
		sort.SliceStable(pageFragments, func(i, j int) bool {
			return pageFragments[i].Bounds.Before(pageFragments[j].Bounds)
		})
		out = append(out, pageFragments...)
	}
	return out
}
