package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArtifactIsImmutable(t *testing.T) {
	data := []byte("hello")
	a := NewArtifact("a.txt", "text/plain", data)
	data[0] = 'j'

	assert.Equal(t, "hello", string(a.Bytes()))
	assert.Equal(t, int64(5), a.Size)

	b := a.Bytes()
	b[0] = 'y'
	assert.Equal(t, "hello", string(a.Bytes()))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "unknown", NewArtifact("", "", nil).DisplayName())
	assert.Equal(t, "pasted-text.txt", NewTextArtifact("", "x").DisplayName())
}

func TestSummaryOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SummaryOptions
		wantErr bool
	}{
		{"empty", SummaryOptions{}, false},
		{"short", SummaryOptions{LengthClass: LengthShort}, false},
		{"with language", SummaryOptions{LengthClass: LengthLong, TargetLanguage: "es"}, false},
		{"bad length", SummaryOptions{LengthClass: "huge"}, true},
		{"bad language", SummaryOptions{TargetLanguage: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, LengthMedium, SummaryOptions{}.WithDefaults().LengthClass)
	assert.Equal(t, LengthShort, SummaryOptions{LengthClass: LengthShort}.WithDefaults().LengthClass)
}

func TestParseSentiment(t *testing.T) {
	assert.Equal(t, SentimentPositive, ParseSentiment(" Positive "))
	assert.Equal(t, SentimentNeutral, ParseSentiment("neutral"))
	assert.Equal(t, Sentiment(""), ParseSentiment("mixed"))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 2, CountWords("Hello world"))
	assert.Equal(t, 0, CountWords("  \n\t "))
	assert.Equal(t, 3, CountWords("a  b\nc"))
}

func TestExtractionErrorFormats(t *testing.T) {
	cause := errors.New("bad xref")
	err := fmt.Errorf("wrapped: %w", &ExtractionError{FileName: "r.pdf", Format: FormatPDF, Err: cause})

	assert.True(t, IsPdfParse(err))
	assert.False(t, IsDocxParse(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "r.pdf")
}

func TestAllFilesFailedMessages(t *testing.T) {
	err := &AllFilesFailedError{Failures: []FileOutcome{
		Failed("a.xyz", &UnsupportedTypeError{FileName: "a.xyz"}),
		Failed("b.txt", &EmptyExtractionError{FileName: "b.txt"}),
	}}

	msgs := err.Messages()
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Unsupported file type: unknown (a.xyz)")
	assert.Contains(t, msgs[1], "b.txt")
}

func TestFileOutcomeState(t *testing.T) {
	ok := Succeeded("a.txt", &SummaryResult{Summary: "s"})
	assert.True(t, ok.Success())
	assert.Empty(t, ok.ErrorMessage())

	failed := Failed("b.txt", errors.New("boom"))
	assert.False(t, failed.Success())
	assert.Equal(t, "boom", failed.ErrorMessage())

	empty := FileOutcome{FileName: "c.txt"}
	assert.False(t, empty.Success())
	assert.Equal(t, "no summary was produced", empty.ErrorMessage())
}

func TestIsConfiguration(t *testing.T) {
	assert.True(t, IsConfiguration(fmt.Errorf("x: %w", &ConfigurationError{Service: "gemini"})))
	assert.False(t, IsConfiguration(errors.New("x")))
}
