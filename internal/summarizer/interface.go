package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// Generator turns text into a summary bundle: summary, keywords, sentiment, translation.
type Generator interface {
	Configured() bool
	Generate(ctx context.Context, text string, opts models.SummaryOptions) (*models.SummaryResult, error)
}

// OCR reads text out of an image.
type OCR interface {
	Configured() bool
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}

// Transcriber converts recorded speech to text.
type Transcriber interface {
	Configured() bool
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Summarizer is the Gemini-backed implementation of every AI collaborator.
type Summarizer interface {
	Generator
	OCR
	Transcriber
}
