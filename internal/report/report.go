// Package report renders summary results as plain text, markdown and docx.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/language"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

var reUnsafe = regexp.MustCompile(`[^a-z0-9]`)

// Text is the plain-text download of a saved summary. created is omitted when zero.
func Text(title string, r *models.SummaryResult, created time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n\nSummary:\n%s\n\n", title, r.Summary)
	if r.TranslationText != "" {
		fmt.Fprintf(&sb, "Translation (%s):\n%s\n\n", language.Name(r.TargetLanguage), r.TranslationText)
	}
	fmt.Fprintf(&sb, "Original Word Count: %d\nSummary Word Count: %d", r.WordCount.Original, r.WordCount.Summary)
	if !created.IsZero() {
		fmt.Fprintf(&sb, "\nCreated: %s", created.Format("January 2, 2006"))
	}
	return sb.String()
}

// Markdown renders a result as a markdown document. sources lists the files
// a combined result was built from.
func Markdown(title string, r *models.SummaryResult, sources ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sb.WriteString("## Summary\n\n")
	sb.WriteString(r.Summary)
	sb.WriteString("\n\n")

	if r.TranslationText != "" {
		fmt.Fprintf(&sb, "## Translation (%s)\n\n%s\n\n", language.Name(r.TargetLanguage), r.TranslationText)
	}

	if len(r.Keywords) > 0 {
		sb.WriteString("## Keywords\n\n")
		for _, k := range r.Keywords {
			fmt.Fprintf(&sb, "- %s\n", k)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Details\n\n")
	if len(sources) > 0 {
		fmt.Fprintf(&sb, "- **Sources:** %s\n", strings.Join(sources, ", "))
	} else if r.FileName != "" {
		fmt.Fprintf(&sb, "- **Source:** %s\n", r.FileName)
	}
	if r.SourceLanguage != "" {
		fmt.Fprintf(&sb, "- **Language:** %s\n", language.Name(r.SourceLanguage))
	}
	if r.Sentiment != "" {
		fmt.Fprintf(&sb, "- **Sentiment:** %s\n", r.Sentiment)
	}
	fmt.Fprintf(&sb, "- **Original words:** %d\n", r.WordCount.Original)
	fmt.Fprintf(&sb, "- **Summary words:** %d\n", r.WordCount.Summary)
	if reduction := Reduction(r.WordCount); reduction > 0 {
		fmt.Fprintf(&sb, "- **Reduction:** %d%%\n", reduction)
	}
	return sb.String()
}

// Reduction is the percentage by which the summary shortened the original.
func Reduction(wc models.WordCount) int {
	if wc.Original <= 0 {
		return 0
	}
	return int((1 - float64(wc.Summary)/float64(wc.Original)) * 100)
}

// Filename lowercases title and replaces every character outside [a-z0-9] with '_'.
func Filename(title, ext string) string {
	name := reUnsafe.ReplaceAllString(strings.ToLower(title), "_")
	if name == "" {
		name = "summary"
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}
