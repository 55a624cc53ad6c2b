package processor

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// ProcessMany processes up to maxConcurrent artifacts at once. Each goroutine
// owns one slot of the outcome slice, which keeps input order. Only a
// ConfigurationError or a cancelled parent context aborts the batch.
func (p *implProcessor) ProcessMany(ctx context.Context, artifacts []models.Artifact, opts models.SummaryOptions) ([]models.FileOutcome, error) {
	if len(artifacts) == 0 {
		return nil, models.ErrNoArtifacts
	}

	outcomes := make([]models.FileOutcome, len(artifacts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)

	for i, artifact := range artifacts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := artifact.DisplayName()

			result, err := p.ProcessOne(gctx, artifact, opts)
			if err != nil {
				if models.IsConfiguration(err) {
					return err
				}
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				p.logger.Warn(ctx, "File %d/%d (%s) failed: %v", i+1, len(artifacts), name, err)
				outcomes[i] = models.Failed(name, err)
				return nil
			}

			p.logger.Debug(ctx, "File %d/%d (%s) summarized", i+1, len(artifacts), name)
			outcomes[i] = models.Succeeded(name, result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// ProcessBatch runs ProcessMany followed by Combine.
func (p *implProcessor) ProcessBatch(ctx context.Context, artifacts []models.Artifact, opts models.SummaryOptions) (*models.CombinedResult, []models.FileOutcome, error) {
	start := time.Now()
	opts = p.withDefaults(opts)
	p.logger.Info(ctx, "Processing batch of %d files (length=%s, max concurrent=%d)", len(artifacts), opts.LengthClass, p.maxConcurrent)

	outcomes, err := p.ProcessMany(ctx, artifacts, opts)
	if err != nil {
		return nil, nil, err
	}

	combined, err := p.Combine(ctx, outcomes, opts)
	if err != nil {
		var allFailed *models.AllFilesFailedError
		if errors.As(err, &allFailed) {
			p.logger.Error(ctx, "All %d files failed", len(artifacts))
		}
		return nil, outcomes, err
	}

	p.logger.Info(ctx, "Batch completed: %d/%d files in %s", combined.DocumentCount, len(artifacts), time.Since(start))
	return combined, outcomes, nil
}
