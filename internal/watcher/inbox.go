package watcher

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
	"github.com/nguyentantai21042004/summary-flow/internal/processor"
	"github.com/nguyentantai21042004/summary-flow/internal/report"
)

// NewInboxHandler returns an EventHandler that summarizes a dropped document,
// writes <name>.md and <name>.docx to the output folder and moves the source
// to the archived folder. A failed document is left in the input folder.
func NewInboxHandler(paths config.PathsConfig, proc processor.Processor, opts models.SummaryOptions, log logger.Logger) EventHandler {
	return func(ctx context.Context, filePath string) error {
		startTime := time.Now()
		filename := filepath.Base(filePath)
		stem := strings.TrimSuffix(filename, filepath.Ext(filename))

		data, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("read %s: %w", filename, err)
		}
		artifact := models.NewArtifact(filename, mime.TypeByExtension(filepath.Ext(filename)), data)

		result, err := proc.ProcessSingle(ctx, artifact, opts)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}

		mdPath := filepath.Join(paths.Output, stem+".md")
		if err := os.WriteFile(mdPath, []byte(report.Markdown(stem, result)), 0644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}

		docxPath := filepath.Join(paths.Output, stem+".docx")
		if err := report.SaveDocx(docxPath, stem, result); err != nil {
			log.Warn(ctx, "Failed to write docx for %s: %v", filename, err)
		}

		if err := moveToArchived(paths.Archived, filePath); err != nil {
			log.Warn(ctx, "Failed to move original to archived folder: %v", err)
		}

		log.Info(ctx, "Summarized %s in %s -> %s", filename, time.Since(startTime), mdPath)
		return nil
	}
}

// moveToArchived moves the processed source file into dir, keeping its name.
func moveToArchived(dir, filePath string) error {
	dest := filepath.Join(dir, filepath.Base(filePath))
	if err := os.Rename(filePath, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
