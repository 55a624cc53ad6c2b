package extractor

import (
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implExtractor struct {
	ocr    OCR
	pdf    PageReader
	docx   RawTextReader
	logger logger.Logger
}

// New creates an Extractor. ocr may be nil, in which case images fail with a ConfigurationError.
func New(ocr OCR, log logger.Logger) Extractor {
	return &implExtractor{
		ocr:    ocr,
		pdf:    pdfPageReader{},
		docx:   docxReader{},
		logger: log,
	}
}
