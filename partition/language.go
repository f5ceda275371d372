package partition

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageTagger detects the language of fragment text for records the
// layout engine left untagged. Building the detector loads language models,
// so construct one tagger and share it across documents.
type LanguageTagger struct {
	detector lingua.LanguageDetector
}

// NewLanguageTagger creates a tagger covering the scripts the pipeline
// supports (left-to-right single scripts).
func NewLanguageTagger() *LanguageTagger {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.French,
			lingua.German,
			lingua.Italian,
			lingua.Portuguese,
			lingua.Spanish,
		).
		Build()
	return &LanguageTagger{detector: detector}
}

// Tag returns the ISO 639-1 code of the detected language, or nil when the
// text is too short or ambiguous to classify.
func (t *LanguageTagger) Tag(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lang, ok := t.detector.DetectLanguageOf(text)
	if !ok {
		return nil
	}
	return []string{strings.ToLower(lang.IsoCode639_1().String())}
}
