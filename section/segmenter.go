package section

import (
	"strings"

	"github.com/akitenkrad/paper-parser/classify"
	"github.com/akitenkrad/paper-parser/model"
)

// abstractSection is the seed section collecting text before any heading.
const abstractSection = "Abstract"

// Segment walks filtered, reading-ordered fragments and buckets their text
// under section names. The walk expects its input already truncated at the
// references heading and restricted to Title, NarrativeText, and ListItem
// fragments.
//
// A Title fragment opens a new section when it mentions the abstract or the
// introduction, or classifies as a first-level or appendix header. Every
// other fragment, including deeper-level titles, appends its trimmed text to
// the current section. Sections whose final text is empty are dropped.
func Segment(fragments []model.Fragment) *Sections {
	sections := NewSections()
	sections.start(abstractSection)
	current := abstractSection

	for _, f := range fragments {
		if f.Type == model.Title {
			lower := strings.ToLower(f.Text)
			if strings.Contains(lower, "abstract") {
				current = abstractSection
				sections.start(current)
				continue
			}
			if strings.Contains(lower, "introduction") {
				current = f.Text
				sections.start(current)
				continue
			}
			switch classify.HeaderLevel(f.Text) {
			case model.FirstHeader, model.AppendixHeader:
				current = strings.TrimSpace(f.Text)
				sections.start(current)
				continue
			}
		}
		sections.add(current, strings.TrimSpace(f.Text)+" ")
	}

	sections.compact()
	return sections
}
