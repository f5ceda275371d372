package classify

import (
	"regexp"
	"strings"

	"github.com/akitenkrad/paper-parser/model"
)

// headerPatterns match numbered section prefixes, one pattern per level.
// Single-digit components only, matching the numbering style of paper
// sections.
var headerPatterns = []struct {
	re    *regexp.Regexp
	level model.HeaderLevel
}{
	{regexp.MustCompile(`^\d\.?\s`), model.FirstHeader},
	{regexp.MustCompile(`^\d\.\d\.?\s`), model.SecondHeader},
	{regexp.MustCompile(`^\d\.\d\.\d\.?\s`), model.ThirdHeader},
	{regexp.MustCompile(`^\d\.\d\.\d\.\d\.?\s`), model.FourthHeader},
	{regexp.MustCompile(`^\d\.\d\.\d\.\d\.\d\.?\s`), model.FifthHeader},
}

// HeaderLevel classifies a fragment's text as a numbered section header,
// an appendix header, or unknown.
func HeaderLevel(text string) model.HeaderLevel {
	for _, p := range headerPatterns {
		if p.re.MatchString(text) {
			return p.level
		}
	}
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), "appendix") {
		return model.AppendixHeader
	}
	return model.HeaderUnknown
}
