package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

func sampleResult() *models.SummaryResult {
	return &models.SummaryResult{
		Summary:         "Quarterly revenue grew on **strong** demand.",
		Keywords:        []string{"revenue", "growth"},
		Sentiment:       models.SentimentPositive,
		WordCount:       models.WordCount{Original: 200, Summary: 50},
		TranslationText: "Los ingresos crecieron.",
		SourceLanguage:  "en",
		TargetLanguage:  "es",
		FileName:        "q3.pdf",
	}
}

func TestText(t *testing.T) {
	r := &models.SummaryResult{Summary: "Short.", WordCount: models.WordCount{Original: 10, Summary: 1}}

	got := Text("Q3 Report", r, time.Time{})
	want := "Title: Q3 Report\n\nSummary:\nShort.\n\nOriginal Word Count: 10\nSummary Word Count: 1"
	assert.Equal(t, want, got)

	created := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Contains(t, Text("Q3 Report", r, created), "\nCreated: March 5, 2024")
}

func TestTextIncludesTranslation(t *testing.T) {
	assert.Contains(t, Text("x", sampleResult(), time.Time{}), "Translation (Spanish):\nLos ingresos crecieron.")
}

func TestMarkdown(t *testing.T) {
	md := Markdown("Q3 Report", sampleResult())

	assert.Contains(t, md, "# Q3 Report\n")
	assert.Contains(t, md, "## Summary\n\nQuarterly revenue")
	assert.Contains(t, md, "## Translation (Spanish)")
	assert.Contains(t, md, "- revenue\n- growth\n")
	assert.Contains(t, md, "- **Source:** q3.pdf")
	assert.Contains(t, md, "- **Language:** English")
	assert.Contains(t, md, "- **Reduction:** 75%")
}

func TestMarkdownSources(t *testing.T) {
	md := Markdown("Batch", sampleResult(), "a.txt", "b.txt")
	assert.Contains(t, md, "- **Sources:** a.txt, b.txt")
	assert.NotContains(t, md, "**Source:**")
}

func TestReduction(t *testing.T) {
	tests := []struct {
		wc   models.WordCount
		want int
	}{
		{models.WordCount{Original: 100, Summary: 25}, 75},
		{models.WordCount{Original: 0, Summary: 5}, 0},
		{models.WordCount{Original: 3, Summary: 3}, 0},
	}

	for _, tt := range tests {
		if got := Reduction(tt.wc); got != tt.want {
			t.Errorf("Reduction(%+v) = %d, want %d", tt.wc, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title, ext, want string
	}{
		{"My Report 2024!", "txt", "my_report_2024_.txt"},
		{"notes.pdf", ".docx", "notes_pdf.docx"},
		{"", "md", "summary.md"},
	}

	for _, tt := range tests {
		if got := Filename(tt.title, tt.ext); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.title, tt.ext, got, tt.want)
		}
	}
}

func TestSaveDocxReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q3.docx")
	require.NoError(t, SaveDocx(path, "Q3 Report", sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text, err := extractor.New(nil, logger.Nop()).Extract(context.Background(),
		models.NewArtifact("q3.docx", "", data))
	require.NoError(t, err)

	assert.Contains(t, text, "Q3 Report")
	assert.Contains(t, text, "Quarterly revenue grew on strong demand.")
	assert.Contains(t, text, "• revenue")
	assert.NotContains(t, text, "**")
}

func TestDocxBytes(t *testing.T) {
	data, err := Docx("Q3 Report", sampleResult())
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "PK", string(data[:2]))
}
