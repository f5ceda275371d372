// Package paperparser reconstructs a clean, ordered, section-labeled text
// representation of a scientific paper from the raw page-positioned fragments
// an external PDF layout/OCR engine produces.
//
// Basic usage:
//
//	parser := paperparser.NewParser()
//	sections, err := parser.Parse(fragments)
//	if err != nil {
//	    // handle error
//	}
//	for _, name := range sections.Names() {
//	    text, _ := sections.Get(name)
//	    fmt.Printf("%s: %s\n", name, text)
//	}
//
// With a lexicon and logging:
//
//	lex, _ := lexicon.Open("words.db")
//	defer lex.Close()
//	sections, err := paperparser.NewParser().
//	    WithLexicon(lex).
//	    WithLogger(logger).
//	    ParsePartitions(file)
//
// The pipeline is single-threaded and synchronous; process multiple documents
// in parallel by running independent Parse calls, which share no state.
package paperparser

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/akitenkrad/paper-parser/classify"
	"github.com/akitenkrad/paper-parser/layout"
	"github.com/akitenkrad/paper-parser/lexicon"
	"github.com/akitenkrad/paper-parser/model"
	"github.com/akitenkrad/paper-parser/partition"
	"github.com/akitenkrad/paper-parser/section"
)

// Errors surfaced by the pipeline. Both originate in the text-area estimator.
var (
	ErrEmptyDocument = layout.ErrEmptyDocument
	ErrNoContent     = layout.ErrNoContent
)

// Parser runs the reconstruction pipeline: text-area estimation, column
// normalization, reading-order sorting, classification filtering, and
// section segmentation.
type Parser struct {
	config Config
	lex    lexicon.Lexicon
	logger *logrus.Logger
	tagger *partition.LanguageTagger
}

// NewParser creates a parser with default configuration.
func NewParser() *Parser {
	return &Parser{config: DefaultConfig()}
}

// NewParserWithConfig creates a parser with custom configuration.
func NewParserWithConfig(config Config) *Parser {
	return &Parser{config: config}
}

// WithLexicon sets the dictionary used for hyphen-rejoin decisions when
// decoding partition records. Returns the parser for chaining.
func (p *Parser) WithLexicon(lex lexicon.Lexicon) *Parser {
	p.lex = lex
	return p
}

// WithLogger enables stage-count logging. Returns the parser for chaining.
func (p *Parser) WithLogger(logger *logrus.Logger) *Parser {
	p.logger = logger
	return p
}

// WithLanguageTagger enables language-tag backfill for untagged partition
// records. Returns the parser for chaining.
func (p *Parser) WithLanguageTagger(tagger *partition.LanguageTagger) *Parser {
	p.tagger = tagger
	return p
}

// ParsePartitions decodes a JSON array of layout-engine records and parses
// the resulting fragments.
func (p *Parser) ParsePartitions(r io.Reader) (*section.Sections, error) {
	dec := partition.NewDecoder(p.lex)
	if p.tagger != nil {
		dec.WithLanguageTagger(p.tagger)
	}
	fragments, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	p.infof("number of partitions: %d", len(fragments))
	return p.Parse(fragments)
}

// Parse reconstructs the document's sections from its fragments. The input
// list is not mutated; column normalization works on a copy.
func (p *Parser) Parse(fragments []model.Fragment) (*section.Sections, error) {
	if len(fragments) == 0 {
		return nil, ErrEmptyDocument
	}

	textArea, err := layout.EstimateTextArea(fragments)
	if err != nil {
		return nil, err
	}

	normalizer := layout.NewNormalizerWithConfig(p.config.normalizerConfig())
	normalized := normalizer.Normalize(fragments, textArea)
	ordered := layout.SortReadingOrder(normalized)

	p.infof("layout: %s", normalizer.Detect(fragments, textArea))
	p.infof("number of pages: %d", pageCount(ordered))
	p.infof("number of fragments: %d", len(ordered))

	text := p.filterText(ordered, textArea)
	p.infof("number of text fragments: %d", len(text))

	return section.Segment(text), nil
}

// filterText walks the ordered fragments, truncates at the references
// heading, and keeps only genuine body text: titles, narrative text, and
// list items inside the text area that are not captions, table members, or
// implausible title outliers.
func (p *Parser) filterText(ordered []model.Fragment, textArea model.Rect) []model.Fragment {
	ix := classify.NewPageIndex(ordered)

	var text []model.Fragment
	for _, f := range ordered {
		if classify.IsReferenceHeading(f, p.config.ReferenceMaxLen) {
			break
		}
		if !isTextType(f.Type) {
			continue
		}
		if !classify.InTextArea(f, textArea, p.config.AreaThreshold) {
			continue
		}
		if classify.IsFigureCaption(f, ix, p.config.CaptionDistance) ||
			classify.IsTableCaption(f, ix, p.config.CaptionDistance) ||
			classify.IsTableMember(f, ix) {
			continue
		}
		if f.Type == model.Title && !classify.IsPlausibleTitle(f, ordered, p.config.TitleSigma) {
			continue
		}
		text = append(text, f)
	}
	return text
}

func isTextType(t model.FragmentType) bool {
	switch t {
	case model.Title, model.NarrativeText, model.ListItem:
		return true
	}
	return false
}

func pageCount(fragments []model.Fragment) int {
	maxPage := 0
	for _, f := range fragments {
		if f.PageNumber > maxPage {
			maxPage = f.PageNumber
		}
	}
	return maxPage
}

func (p *Parser) infof(format string, args ...any) {
	if p.logger != nil {
		p.logger.Infof(format, args...)
	}
}
