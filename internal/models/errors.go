package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoArtifacts is returned when a batch is submitted without any artifact.
var ErrNoArtifacts = errors.New("no artifacts provided")

// UnsupportedTypeError means neither the media type nor the extension matched a handler.
type UnsupportedTypeError struct {
	MediaType string
	FileName  string
}

func (e *UnsupportedTypeError) Error() string {
	mt := e.MediaType
	if mt == "" {
		mt = "unknown"
	}
	return fmt.Sprintf("Unsupported file type: %s (%s)", mt, e.FileName)
}

// EmptyExtractionError means extraction worked but produced only whitespace.
type EmptyExtractionError struct {
	FileName string
}

func (e *EmptyExtractionError) Error() string {
	return fmt.Sprintf("No text could be extracted from the file (%s)", e.FileName)
}

// ConfigurationError means a backing service is not configured, so no call can succeed.
type ConfigurationError struct {
	Service string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Service)
}

// Format names the extraction path that failed.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "text"
	FormatOCR  Format = "ocr"
)

// ExtractionError is a parse or service failure for one artifact.
type ExtractionError struct {
	FileName string
	Format   Format
	Err      error
}

func (e *ExtractionError) Error() string {
	switch e.Format {
	case FormatPDF:
		return fmt.Sprintf("Failed to extract text from PDF %s: %v", e.FileName, e.Err)
	case FormatDOCX:
		return fmt.Sprintf("Failed to extract text from DOCX %s: %v", e.FileName, e.Err)
	case FormatText:
		return fmt.Sprintf("Failed to read text file %s: %v", e.FileName, e.Err)
	case FormatOCR:
		return fmt.Sprintf("Failed to extract text from image %s: %v", e.FileName, e.Err)
	}
	return fmt.Sprintf("Failed to extract text from %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsPdfParse, IsDocxParse, IsTextRead and IsOcr classify an ExtractionError by format.
func IsPdfParse(err error) bool  { return isFormat(err, FormatPDF) }
func IsDocxParse(err error) bool { return isFormat(err, FormatDOCX) }
func IsTextRead(err error) bool  { return isFormat(err, FormatText) }
func IsOcr(err error) bool       { return isFormat(err, FormatOCR) }

func isFormat(err error, f Format) bool {
	var ee *ExtractionError
	return errors.As(err, &ee) && ee.Format == f
}

// GenerationError is any failure of the Summary Generator: network, quota,
// auth, timeout or a malformed response. Sub-kinds are not distinguished.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// AllFilesFailedError is returned when no artifact of a batch succeeded.
type AllFilesFailedError struct {
	Failures []FileOutcome
}

func (e *AllFilesFailedError) Error() string {
	return "No documents were successfully processed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns one "<file>: <message>" entry per failure, in batch order.
func (e *AllFilesFailedError) Messages() []string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.FileName, f.ErrorMessage()))
	}
	return msgs
}

// IsConfiguration reports whether err is (or wraps) a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
