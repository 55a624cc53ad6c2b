package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

func (p *implProcessor) ProcessOne(ctx context.Context, artifact models.Artifact, opts models.SummaryOptions) (*models.SummaryResult, error) {
	start := time.Now()

	text, err := p.extractor.Extract(ctx, artifact)
	if err != nil {
		return nil, err
	}

	result, err := p.generator.Generate(ctx, text, models.SummaryOptions{
		LengthClass:      opts.LengthClass,
		TargetLanguage:   opts.TargetLanguage,
		IncludeKeywords:  true,
		IncludeSentiment: true,
	})
	if err != nil {
		return nil, err
	}

	result.OriginalText = text
	result.FileName = artifact.Name
	result.FileType = artifact.MediaType
	result.FileSize = artifact.Size
	result.ProcessingTime = time.Since(start)
	return result, nil
}

// ProcessSingle summarizes one artifact with the configured defaults applied.
func (p *implProcessor) ProcessSingle(ctx context.Context, artifact models.Artifact, opts models.SummaryOptions) (*models.SummaryResult, error) {
	opts = p.withDefaults(opts)
	p.logger.Info(ctx, "Processing %s (%d bytes, length=%s)", artifact.DisplayName(), artifact.Size, opts.LengthClass)

	result, err := p.ProcessOne(ctx, artifact, opts)
	if err != nil {
		p.logger.Error(ctx, "Failed to process %s: %v", artifact.DisplayName(), err)
		return nil, err
	}

	p.logger.Info(ctx, "Processed %s in %s: %d -> %d words",
		artifact.DisplayName(), result.ProcessingTime, result.WordCount.Original, result.WordCount.Summary)
	return result, nil
}
