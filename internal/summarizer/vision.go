package summarizer

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// ExtractText runs the image through the vision model and returns the text it reads.
func (s *implSummarizer) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	if !s.Configured() {
		return "", &models.ConfigurationError{Service: "image text extraction"}
	}
	text, err := s.callMedia(ctx, ocrPrompt, image, mimeType)
	if err != nil {
		return "", &models.GenerationError{Op: "extract text from image", Err: err}
	}
	return text, nil
}

// Transcribe converts a speech recording into plain text.
func (s *implSummarizer) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if !s.Configured() {
		return "", &models.ConfigurationError{Service: "speech transcription"}
	}
	if mimeType == "" {
		mimeType = "audio/wav"
	}
	text, err := s.callMedia(ctx, transcribePrompt, audio, mimeType)
	if err != nil {
		return "", &models.GenerationError{Op: "transcribe audio", Err: err}
	}
	return text, nil
}

func (s *implSummarizer) callMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}
	text, err := s.call(ctx, s.visionModel, contents, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
