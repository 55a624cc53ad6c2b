package processor

import (
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

type implProcessor struct {
	extractor     extractor.Extractor
	generator     summarizer.Generator
	logger        logger.Logger
	maxConcurrent int
	defaults      models.SummaryOptions
}

// New creates a new Processor instance
func New(cfg *config.Config, ext extractor.Extractor, gen summarizer.Generator, log logger.Logger) Processor {
	maxConcurrent := cfg.Performance.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	return &implProcessor{
		extractor:     ext,
		generator:     gen,
		logger:        log,
		maxConcurrent: maxConcurrent,
		defaults: models.SummaryOptions{
			LengthClass:    models.LengthClass(cfg.Summary.DefaultLength),
			TargetLanguage: cfg.Summary.DefaultTargetLanguage,
		},
	}
}

// withDefaults fills unset options from the summary section of the config.
func (p *implProcessor) withDefaults(opts models.SummaryOptions) models.SummaryOptions {
	if opts.LengthClass == "" {
		opts.LengthClass = p.defaults.LengthClass
	}
	if opts.TargetLanguage == "" {
		opts.TargetLanguage = p.defaults.TargetLanguage
	}
	return opts.WithDefaults()
}
