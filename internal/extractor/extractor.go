package extractor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

var (
	errInvalidUTF8 = errors.New("content is not valid UTF-8")
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
)

// Extract dispatches on the artifact kind and returns trimmed, non-empty text.
func (e *implExtractor) Extract(ctx context.Context, a models.Artifact) (string, error) {
	kind := Classify(a.MediaType, a.Name)
	name := a.DisplayName()

	e.logger.Debug(ctx, "Extracting %s as %s (declared type %q)", name, kind, a.MediaType)

	var (
		text string
		err  error
	)
	switch kind {
	case KindPDF:
		text, err = e.extractPDF(a)
	case KindDOCX:
		text, err = e.extractDOCX(a)
	case KindText:
		text, err = e.extractText(a)
	case KindImage:
		text, err = e.extractImage(ctx, a)
	default:
		return "", &models.UnsupportedTypeError{MediaType: a.MediaType, FileName: name}
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &models.EmptyExtractionError{FileName: name}
	}
	return text, nil
}

// extractPDF joins the text items of a page with a space and pages with a newline.
func (e *implExtractor) extractPDF(a models.Artifact) (string, error) {
	pages, err := e.pdf.ReadPages(a.Bytes())
	if err != nil {
		return "", &models.ExtractionError{FileName: a.DisplayName(), Format: models.FormatPDF, Err: err}
	}

	var sb strings.Builder
	for _, items := range pages {
		sb.WriteString(strings.Join(items, " "))
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String()), nil
}

func (e *implExtractor) extractDOCX(a models.Artifact) (string, error) {
	text, err := e.docx.RawText(a.Bytes())
	if err != nil {
		return "", &models.ExtractionError{FileName: a.DisplayName(), Format: models.FormatDOCX, Err: err}
	}
	return text, nil
}

func (e *implExtractor) extractText(a models.Artifact) (string, error) {
	raw := bytes.TrimPrefix(a.Bytes(), utf8BOM)
	if !utf8.Valid(raw) {
		return "", &models.ExtractionError{FileName: a.DisplayName(), Format: models.FormatText, Err: errInvalidUTF8}
	}
	return string(raw), nil
}

func (e *implExtractor) extractImage(ctx context.Context, a models.Artifact) (string, error) {
	if e.ocr == nil || !e.ocr.Configured() {
		return "", &models.ConfigurationError{Service: "image text extraction"}
	}

	text, err := e.ocr.ExtractText(ctx, a.Bytes(), ImageMediaType(a.MediaType, a.Name))
	if err != nil {
		if models.IsConfiguration(err) {
			return "", err
		}
		return "", &models.ExtractionError{FileName: a.DisplayName(), Format: models.FormatOCR, Err: err}
	}
	return text, nil
}
