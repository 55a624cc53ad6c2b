package summarizer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/language"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

// contentGenerator is the part of *genai.Models the summarizer uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type implSummarizer struct {
	models      []contentGenerator
	mu          sync.Mutex
	currentKey  int
	logger      logger.Logger
	detector    language.Detector
	limiter     *rate.Limiter
	model       string
	visionModel string
	timeout     time.Duration
	maxRetries  int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

// New creates one Gemini client per API key up front and rotates through them
// when a key hits its quota. With no keys the summarizer reports itself unconfigured.
func New(ctx context.Context, cfg config.GeminiConfig, detector language.Detector, log logger.Logger) (Summarizer, error) {
	models := make([]contentGenerator, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client %d: %w", i+1, err)
		}
		models = append(models, client.Models)
	}
	return newWithModels(models, cfg, detector, log), nil
}

func newWithModels(models []contentGenerator, cfg config.GeminiConfig, detector language.Detector, log logger.Logger) *implSummarizer {
	if detector == nil {
		detector = language.Fixed("")
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	visionModel := cfg.VisionModel
	if visionModel == "" {
		visionModel = model
	}

	return &implSummarizer{
		models:      models,
		logger:      log,
		detector:    detector,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
		model:       model,
		visionModel: visionModel,
		timeout:     timeout,
		maxRetries:  cfg.MaxRetries,
		baseDelay:   500 * time.Millisecond,
		maxDelay:    8 * time.Second,
	}
}

func (s *implSummarizer) Configured() bool {
	return len(s.models) > 0
}
