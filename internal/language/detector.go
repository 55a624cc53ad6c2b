// Package language guesses the language of extracted text.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// minLetters is the shortest input worth detecting; shorter text returns "".
const minLetters = 12

// Detector returns an ISO 639-1 code for text, or "" when unsure.
type Detector interface {
	Detect(text string) string
}

type implDetector struct {
	detector lingua.LanguageDetector
}

// Supported lists the languages the detector can tell apart. It mirrors the
// translation targets offered to users plus English.
var Supported = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Vietnamese,
}

// New builds a detector restricted to Supported languages.
func New() Detector {
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(Supported...).
		Build()
	return &implDetector{detector: d}
}

func (d *implDetector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minLetters {
		return ""
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Fixed always reports the same code. Useful when detection is disabled.
type Fixed string

func (f Fixed) Detect(string) string { return string(f) }
