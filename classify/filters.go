package classify

import (
	"math"
	"regexp"
	"strings"

	"github.com/akitenkrad/paper-parser/model"
)

const (
	// DefaultAreaThreshold is the fraction of a fragment's area that must fall
	// inside the text area for the fragment to count as content.
	DefaultAreaThreshold = 0.7

	// DefaultCaptionDistance is the vertical distance in pixels within which a
	// caption is associated with its figure or table.
	DefaultCaptionDistance = 50

	// DefaultTitleSigma is the number of standard deviations a title's height
	// may deviate from the document's mean title height.
	DefaultTitleSigma = 3.0

	// DefaultReferenceMaxLen is the maximum raw text length for a fragment to
	// qualify as the references heading.
	DefaultReferenceMaxLen = 15
)

// InTextArea reports whether the fraction of the fragment's own area covered
// by the text area exceeds threshold. Zero-area fragments are never in the
// text area.
func InTextArea(f model.Fragment, textArea model.Rect, threshold float64) bool {
	fragmentArea := f.Bounds.Area()
	if fragmentArea <= 0 {
		return false
	}
	overlap := f.Bounds.IntersectionArea(textArea)
	return float64(overlap)/float64(fragmentArea) > threshold
}

// IsTableMember reports whether the fragment is a table itself or overlaps a
// table fragment on the same page.
func IsTableMember(f model.Fragment, ix *PageIndex) bool {
	if f.Type == model.Table {
		return true
	}
	for _, table := range ix.tablesNear(f.PageNumber, f.Bounds, 0) {
		if f.Bounds.Intersects(table.Bounds) {
			return true
		}
	}
	return false
}

// IsFigureCaption reports whether the fragment captions a figure: either it
// carries the FigureCaption type, or its text starts with "fig" and it
// overlaps an image on the same page or sits within distance pixels directly
// below an image's bottom edge.
func IsFigureCaption(f model.Fragment, ix *PageIndex, distance int) bool {
	if f.Type == model.FigureCaption {
		return true
	}

	for _, img := range ix.imagesNear(f.PageNumber, f.Bounds, distance) {
		if f.Bounds.Intersects(img.Bounds) && startsWithFold(f.Text, "fig") {
			return true
		}
		yDiff := f.Bounds.Top() - img.Bounds.Bottom()
		if yDiff > 0 && yDiff < distance && startsWithFold(f.Text, "fig") {
			return true
		}
	}
	return false
}

// IsTableCaption is the table counterpart of IsFigureCaption: text starting
// with "table" that overlaps a table or sits within distance pixels directly
// above a table's top edge.
//
// TODO: confirm with the product owner whether the self-type check below
// should test for a table-caption type instead of FigureCaption. The current
// behavior is kept as is.
func IsTableCaption(f model.Fragment, ix *PageIndex, distance int) bool {
	if f.Type == model.FigureCaption {
		return true
	}

	for _, table := range ix.tablesNear(f.PageNumber, f.Bounds, distance) {
		if f.Bounds.Intersects(table.Bounds) && startsWithFold(f.Text, "table") {
			return true
		}
		yDiff := table.Bounds.Top() - f.Bounds.Bottom()
		if yDiff > 0 && yDiff < distance && startsWithFold(f.Text, "table") {
			return true
		}
	}
	return false
}

// IsPlausibleTitle reports whether a Title fragment's height lies within
// sigma standard deviations of the mean height of all Title fragments in the
// document. Mis-tagged running headers and footers fall outside the band.
func IsPlausibleTitle(f model.Fragment, fragments []model.Fragment, sigma float64) bool {
	var heights []float64
	for _, other := range fragments {
		if other.Type == model.Title {
			heights = append(heights, float64(other.Bounds.Height()))
		}
	}
	if len(heights) == 0 {
		return false
	}

	mean, std := meanStd(heights)
	h := float64(f.Bounds.Height())
	return mean-std*sigma <= h && h <= mean+std*sigma
}

var referencePattern = regexp.MustCompile(`(?i)references?$`)

// IsReferenceHeading reports whether the fragment is the references section
// heading: a Title whose trimmed text ends in "reference"/"references" and
// whose raw text is shorter than maxLen characters. The tight length cap
// avoids false positives on body sentences ending in "references".
func IsReferenceHeading(f model.Fragment, maxLen int) bool {
	return f.Type == model.Title &&
		referencePattern.MatchString(strings.TrimSpace(f.Text)) &&
		len(f.Text) < maxLen
}

func startsWithFold(text, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(text), prefix)
}

// meanStd returns the mean and population standard deviation.
func meanStd(values []float64) (float64, float64) {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
