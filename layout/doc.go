// Package layout reconstructs the geometric structure of a document from its
// fragments.
//
// Three passes run in sequence:
//
//   - [EstimateTextArea] derives the page-independent rectangle bounding
//     genuine content, taking per-page edge extremes and the median across
//     pages so outlier pages (title page, appendix tables) do not skew it.
//   - [Normalizer] detects single- vs two-column layout and snaps every
//     fragment's horizontal bounds onto a canonical column grid. Raw OCR
//     boxes are too noisy for naive x-then-y sorting; the snap makes column
//     membership unambiguous before sorting.
//   - [SortReadingOrder] orders each page's fragments with the column-aware
//     comparator and concatenates pages in page-number order.
package layout
