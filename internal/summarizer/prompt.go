package summarizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/language"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

const systemPrompt = `You are an expert text summarizer. Provide accurate, concise summaries while preserving the most important information. Always respond with valid JSON.`

const ocrPrompt = `Extract all text content from this image. Return only the extracted text, maintaining the original structure and formatting as much as possible.`

const transcribePrompt = `Transcribe the speech in this audio recording verbatim. Return only the transcript text, without timestamps or speaker labels.`

var lengthInstructions = map[models.LengthClass]string{
	models.LengthShort:  "in 2-3 sentences",
	models.LengthMedium: "in 1-2 paragraphs",
	models.LengthLong:   "in 3-4 detailed paragraphs",
}

// summaryResponse is the JSON document the model is asked to produce.
type summaryResponse struct {
	Summary   string   `json:"summary"`
	Keywords  []string `json:"keywords"`
	Sentiment string   `json:"sentiment"`
}

func buildSummaryPrompt(text string, opts models.SummaryOptions) string {
	length, ok := lengthInstructions[opts.LengthClass]
	if !ok {
		length = lengthInstructions[models.LengthMedium]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Please analyze and summarize the following text %s.\n", length)
	sb.WriteString("Focus on the main points, key insights, and important details.\n\n")
	sb.WriteString("Text to summarize:\n---\n")
	sb.WriteString(text)
	sb.WriteString("\n---\n\n")
	sb.WriteString("Respond with a JSON object with these fields:\n")
	sb.WriteString(`- "summary": a clear, concise summary` + "\n")
	if opts.IncludeKeywords {
		sb.WriteString(`- "keywords": an array of 5-8 key topics or keywords` + "\n")
	}
	if opts.IncludeSentiment {
		sb.WriteString(`- "sentiment": the overall sentiment, one of "positive", "negative" or "neutral"` + "\n")
	}
	return sb.String()
}

func buildTranslatePrompt(text, targetLanguage string) string {
	return fmt.Sprintf("Translate this text to %s while maintaining the original meaning and tone. Return only the translation.\n\n%s",
		language.Name(targetLanguage), text)
}

// stripCodeFence removes a ```json fence some models wrap around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
