// Package section segments an ordered stream of body fragments into named
// sections: Abstract, Introduction, numbered headers, and Appendix.
package section

import "strings"

// Sections is an insertion-ordered mapping from section name to body text.
// Keys are unique; iteration order is order of first appearance.
type Sections struct {
	names []string
	texts map[string]string
}

// NewSections creates an empty section mapping.
func NewSections() *Sections {
	return &Sections{texts: make(map[string]string)}
}

// start opens (or reopens) a section with an empty buffer.
func (s *Sections) start(name string) {
	if _, ok := s.texts[name]; !ok {
		s.names = append(s.names, name)
	}
	s.texts[name] = ""
}

// add appends text to a section's buffer, opening the section if needed.
func (s *Sections) add(name, text string) {
	if _, ok := s.texts[name]; !ok {
		s.names = append(s.names, name)
	}
	s.texts[name] += text
}

// Names returns the section names in order of first appearance.
func (s *Sections) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns a section's text.
func (s *Sections) Get(name string) (string, bool) {
	text, ok := s.texts[name]
	return text, ok
}

// Len returns the number of sections.
func (s *Sections) Len() int {
	return len(s.names)
}

// Map returns a copy of the mapping. Iteration order is not preserved in the
// returned map; use Names for ordered traversal.
func (s *Sections) Map() map[string]string {
	out := make(map[string]string, len(s.texts))
	for k, v := range s.texts {
		out[k] = v
	}
	return out
}

// compact strips every buffer and drops sections left empty, preserving the
// order of the survivors.
func (s *Sections) compact() {
	kept := s.names[:0]
	for _, name := range s.names {
		text := strings.TrimSpace(s.texts[name])
		if text == "" {
			delete(s.texts, name)
			continue
		}
		s.texts[name] = text
		kept = append(kept, name)
	}
	s.names = kept
}
