package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

var (
	errEmptyInput    = errors.New("text to summarize is empty")
	errEmptyResponse = errors.New("empty response from Gemini")
	errEmptySummary  = errors.New("response has no summary")
)

// Generate asks Gemini for a JSON summary of text. Word counts are computed
// locally, and a translation is requested when the target language differs
// from the detected source language.
func (s *implSummarizer) Generate(ctx context.Context, text string, opts models.SummaryOptions) (*models.SummaryResult, error) {
	if !s.Configured() {
		return nil, &models.ConfigurationError{Service: "summary generator"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &models.GenerationError{Op: "generate summary", Err: errEmptyInput}
	}
	opts = opts.WithDefaults()
	start := time.Now()

	raw, err := s.call(ctx, s.model, genai.Text(buildSummaryPrompt(text, opts)), summaryConfig())
	if err != nil {
		return nil, &models.GenerationError{Op: "generate summary", Err: err}
	}

	var resp summaryResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &resp); err != nil {
		return nil, &models.GenerationError{Op: "parse summary response", Err: err}
	}
	summary := strings.TrimSpace(resp.Summary)
	if summary == "" {
		return nil, &models.GenerationError{Op: "parse summary response", Err: errEmptySummary}
	}

	result := &models.SummaryResult{
		Summary: summary,
		WordCount: models.WordCount{
			Original: models.CountWords(text),
			Summary:  models.CountWords(summary),
		},
		SourceLanguage: s.detector.Detect(text),
	}
	if opts.IncludeKeywords {
		result.Keywords = cleanKeywords(resp.Keywords)
	}
	if opts.IncludeSentiment {
		result.Sentiment = models.ParseSentiment(resp.Sentiment)
	}

	if opts.WantsTranslation() && !strings.EqualFold(opts.TargetLanguage, result.SourceLanguage) {
		translation, err := s.call(ctx, s.model, genai.Text(buildTranslatePrompt(summary, opts.TargetLanguage)), translateConfig())
		if err != nil {
			return nil, &models.GenerationError{Op: "translate summary", Err: err}
		}
		result.TranslationText = strings.TrimSpace(translation)
		result.TargetLanguage = opts.TargetLanguage
	}

	result.ProcessingTime = time.Since(start)
	s.logger.Debug(ctx, "Generated summary: %d -> %d words in %s", result.WordCount.Original, result.WordCount.Summary, result.ProcessingTime)
	return result, nil
}

func summaryConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.3),
	}
}

func translateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.1),
	}
}

// call runs one model request with bounded retries. Each attempt already
// rotates through every API key on quota errors.
func (s *implSummarizer) call(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := backoff(attempt, s.baseDelay, s.maxDelay)
			s.logger.Warn(ctx, "Gemini call failed (attempt %d/%d), retrying in %s: %v", attempt, s.maxRetries+1, delay, lastErr)
			if err := sleep(ctx, delay); err != nil {
				return "", err
			}
		}

		text, err := s.callWithRotation(ctx, model, contents, cfg)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			break
		}
	}
	return "", lastErr
}

// callWithRotation sends the request and rotates API keys on 429 / quota errors.
func (s *implSummarizer) callWithRotation(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	attempts := len(s.models)
	var lastErr error

	for range attempts {
		idx := s.keyIndex()

		if err := s.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		result, err := s.models[idx].GenerateContent(callCtx, model, contents, cfg)
		cancel()
		if err != nil {
			if isQuotaError(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey(idx)
				lastErr = err
				continue
			}
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				return "", fmt.Errorf("gemini call timed out after %s: %w", s.timeout, err)
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if text == "" {
			return "", errEmptyResponse
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func (s *implSummarizer) keyIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey
}

// rotateKey moves past from unless another goroutine already rotated away from it.
func (s *implSummarizer) rotateKey(from int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == from {
		s.currentKey = (s.currentKey + 1) % len(s.models)
	}
}
