package models

import (
	"strings"
	"time"
)

// Sentiment is the overall tone reported by the generator.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment normalises a model label. Unknown labels yield "" (absent).
func ParseSentiment(s string) Sentiment {
	switch Sentiment(strings.ToLower(strings.TrimSpace(s))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	case SentimentNeutral:
		return SentimentNeutral
	}
	return ""
}

// WordCount holds word totals of the source text and of the summary.
type WordCount struct {
	Original int `json:"original"`
	Summary  int `json:"summary"`
}

// SummaryResult is created fresh by each generator call. Only the enrichment
// fields below the blank line are set afterwards, by the processor.
type SummaryResult struct {
	Summary         string    `json:"summary"`
	Keywords        []string  `json:"keywords,omitempty"`
	Sentiment       Sentiment `json:"sentiment,omitempty"`
	WordCount       WordCount `json:"word_count"`
	TranslationText string    `json:"translation,omitempty"`
	SourceLanguage  string    `json:"language,omitempty"`
	TargetLanguage  string    `json:"target_language,omitempty"`

	OriginalText   string        `json:"original_text,omitempty"`
	FileName       string        `json:"file_name,omitempty"`
	FileType       string        `json:"file_type,omitempty"`
	FileSize       int64         `json:"file_size,omitempty"`
	ProcessingTime time.Duration `json:"processing_time_ns,omitempty"`
}

// CountWords counts whitespace separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CombinedResult is the outcome of a batch: a summary over every successful file.
type CombinedResult struct {
	*SummaryResult
	FileNames     []string `json:"file_names"`
	DocumentCount int      `json:"document_count"`
}
