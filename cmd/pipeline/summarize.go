package main

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
	"github.com/nguyentantai21042004/summary-flow/internal/report"
)

// summaryOutput is the yaml/json shape printed by the summarize command.
type summaryOutput struct {
	Summary        string           `yaml:"summary" json:"summary"`
	Translation    string           `yaml:"translation,omitempty" json:"translation,omitempty"`
	Keywords       []string         `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Sentiment      models.Sentiment `yaml:"sentiment,omitempty" json:"sentiment,omitempty"`
	Language       string           `yaml:"language,omitempty" json:"language,omitempty"`
	WordCount      models.WordCount `yaml:"word_count" json:"word_count"`
	Files          []fileLine       `yaml:"files" json:"files"`
	ProcessingTime string           `yaml:"processing_time" json:"processing_time"`
}

type fileLine struct {
	Name  string `yaml:"name" json:"name"`
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

func defaultOptions(cfg *config.Config) models.SummaryOptions {
	return models.SummaryOptions{
		LengthClass:    models.LengthClass(cfg.Summary.DefaultLength),
		TargetLanguage: cfg.Summary.DefaultTargetLanguage,
	}
}

func summarizeAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one file is required")
	}

	format := strings.ToLower(c.String("format"))
	switch format {
	case "yaml", "json", "md", "txt":
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := c.Context

	opts := defaultOptions(a.cfg)
	if v := c.String("length"); v != "" {
		opts.LengthClass = models.LengthClass(v)
	}
	if v := c.String("lang"); v != "" {
		opts.TargetLanguage = v
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	artifacts := make([]models.Artifact, 0, c.NArg())
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		name := filepath.Base(path)
		artifacts = append(artifacts, models.NewArtifact(name, mime.TypeByExtension(filepath.Ext(name)), data))
	}

	var (
		result *models.SummaryResult
		files  []fileLine
	)
	if len(artifacts) == 1 {
		result, err = a.processor.ProcessSingle(ctx, artifacts[0], opts)
		if err != nil {
			return err
		}
		files = []fileLine{{Name: artifacts[0].Name}}
	} else {
		combined, outcomes, err := a.processor.ProcessBatch(ctx, artifacts, opts)
		for _, o := range outcomes {
			files = append(files, fileLine{Name: o.FileName, Error: o.ErrorMessage()})
			if !o.Success() {
				a.logger.Warn(ctx, "%s: %s", o.FileName, o.ErrorMessage())
			}
		}
		if err != nil {
			return err
		}
		result = combined.SummaryResult
	}

	title := c.String("title")
	if title == "" {
		title = strings.TrimSuffix(files[0].Name, filepath.Ext(files[0].Name))
	}
	sources := make([]string, 0, len(files))
	for _, f := range files {
		if f.Error == "" {
			sources = append(sources, f.Name)
		}
	}

	if path := c.String("docx"); path != "" {
		if err := report.SaveDocx(path, title, result, sources...); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		a.logger.Info(ctx, "Wrote %s", path)
	}

	return printResult(format, title, result, files, sources)
}

func printResult(format, title string, result *models.SummaryResult, files []fileLine, sources []string) error {
	out := summaryOutput{
		Summary:        result.Summary,
		Translation:    result.TranslationText,
		Keywords:       result.Keywords,
		Sentiment:      result.Sentiment,
		Language:       result.SourceLanguage,
		WordCount:      result.WordCount,
		Files:          files,
		ProcessingTime: result.ProcessingTime.Round(time.Millisecond).String(),
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "md":
		fmt.Print(report.Markdown(title, result, sources...))
	case "txt":
		fmt.Println(report.Text(title, result, time.Now()))
	default:
		yamlBytes, err := yaml.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		fmt.Print(string(yamlBytes))
	}
	return nil
}
