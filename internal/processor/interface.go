package processor

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// Processor turns uploaded artifacts into summaries.
type Processor interface {
	// ProcessOne extracts and summarizes a single artifact. Errors propagate unchanged.
	ProcessOne(ctx context.Context, artifact models.Artifact, opts models.SummaryOptions) (*models.SummaryResult, error)
	// ProcessMany runs ProcessOne for every artifact and returns one outcome per
	// artifact in input order. Per-file failures are recorded, not returned.
	ProcessMany(ctx context.Context, artifacts []models.Artifact, opts models.SummaryOptions) ([]models.FileOutcome, error)
	// Combine merges successful outcomes into one result.
	Combine(ctx context.Context, outcomes []models.FileOutcome, opts models.SummaryOptions) (*models.CombinedResult, error)

	ProcessSingle(ctx context.Context, artifact models.Artifact, opts models.SummaryOptions) (*models.SummaryResult, error)
	// ProcessBatch returns the combined result together with every outcome so
	// callers can report each failure. On AllFilesFailedError the outcomes are still returned.
	ProcessBatch(ctx context.Context, artifacts []models.Artifact, opts models.SummaryOptions) (*models.CombinedResult, []models.FileOutcome, error)
}
