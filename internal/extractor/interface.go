package extractor

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// Extractor turns one artifact into plain text.
type Extractor interface {
	Extract(ctx context.Context, artifact models.Artifact) (string, error)
}

// OCR reads text out of raster images through an external vision service.
type OCR interface {
	Configured() bool
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}

// PageReader opens a PDF and returns the ordered text items of every page.
type PageReader interface {
	ReadPages(data []byte) ([][]string, error)
}

// RawTextReader returns the raw text of a word-processor document.
type RawTextReader interface {
	RawText(data []byte) (string, error)
}
