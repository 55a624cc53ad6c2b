package processor

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

const maxCombinedKeywords = 10

func (p *implProcessor) Combine(ctx context.Context, outcomes []models.FileOutcome, opts models.SummaryOptions) (*models.CombinedResult, error) {
	start := time.Now()

	var successes, failures []models.FileOutcome
	for _, o := range outcomes {
		if o.Success() {
			successes = append(successes, o)
		} else {
			failures = append(failures, o)
		}
	}

	switch len(successes) {
	case 0:
		return nil, &models.AllFilesFailedError{Failures: failures}
	case 1:
		// A single success is returned as is, without a meta-summary call.
		return &models.CombinedResult{
			SummaryResult: successes[0].Data,
			FileNames:     []string{successes[0].FileName},
			DocumentCount: 1,
		}, nil
	}

	labeled := make([]string, 0, len(successes))
	originals := make([]string, 0, len(successes))
	fileNames := make([]string, 0, len(successes))
	totalWords := 0
	for _, s := range successes {
		labeled = append(labeled, s.FileName+": "+s.Data.Summary)
		originals = append(originals, s.Data.OriginalText)
		fileNames = append(fileNames, s.FileName)
		totalWords += s.Data.WordCount.Original
	}

	meta, err := p.generator.Generate(ctx, strings.Join(labeled, "\n\n"), models.SummaryOptions{
		LengthClass:      opts.WithDefaults().LengthClass,
		TargetLanguage:   opts.TargetLanguage,
		IncludeKeywords:  false,
		IncludeSentiment: true,
	})
	if err != nil {
		return nil, err
	}

	return &models.CombinedResult{
		SummaryResult: &models.SummaryResult{
			Summary:   meta.Summary,
			Keywords:  mergeKeywords(successes),
			Sentiment: meta.Sentiment,
			WordCount: models.WordCount{
				Original: totalWords,
				Summary:  meta.WordCount.Summary,
			},
			TranslationText: meta.TranslationText,
			SourceLanguage:  meta.SourceLanguage,
			TargetLanguage:  meta.TargetLanguage,
			OriginalText:    strings.Join(originals, "\n\n"),
			ProcessingTime:  time.Since(start),
		},
		FileNames:     fileNames,
		DocumentCount: len(successes),
	}, nil
}

// mergeKeywords flattens keywords in success order, keeping the first
// occurrence of each and at most maxCombinedKeywords.
func mergeKeywords(successes []models.FileOutcome) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, maxCombinedKeywords)
	for _, s := range successes {
		for _, k := range s.Data.Keywords {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keywords = append(keywords, k)
			if len(keywords) == maxCombinedKeywords {
				return keywords
			}
		}
	}
	return keywords
}
