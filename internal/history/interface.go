package history

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

// ErrNotFound is returned when no summary with the given id belongs to the user.
var ErrNotFound = errors.New("summary not found")

// DefaultListLimit is used by ListByUser when limit <= 0.
const DefaultListLimit = 50

// Store persists saved summaries and per-user statistics.
type Store interface {
	// Save stores rec for userID and returns its new id. User stats are
	// updated as a side effect; a stats failure is logged, not returned.
	Save(ctx context.Context, userID string, rec Record) (string, error)
	Get(ctx context.Context, userID, id string) (Record, error)
	// ListByUser returns the user's summaries, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Record, error)
	Update(ctx context.Context, userID, id string, upd Update) error
	Delete(ctx context.Context, userID, id string) error
	Stats(ctx context.Context, userID string) (Stats, error)
	Close() error
}

// Record is one saved summary.
type Record struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Title           string           `json:"title" validate:"required,max=200"`
	Summary         string           `json:"summary" validate:"required"`
	Keywords        []string         `json:"keywords,omitempty"`
	Sentiment       models.Sentiment `json:"sentiment,omitempty"`
	TranslationText string           `json:"translation,omitempty"`
	SourceLanguage  string           `json:"language,omitempty"`
	TargetLanguage  string           `json:"target_language,omitempty"`
	LengthClass     string           `json:"length,omitempty"`
	FileNames       []string         `json:"file_names,omitempty"`
	WordCount       models.WordCount `json:"word_count"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Update holds the editable fields of a Record. Nil fields are left unchanged.
type Update struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Summary *string `json:"summary,omitempty" validate:"omitempty,min=1"`
}

// Stats summarises a user's saved summaries.
type Stats struct {
	TotalSummaries      int       `json:"total_summaries"`
	TotalWordsProcessed int       `json:"total_words_processed"`
	AverageReduction    int       `json:"average_reduction"`
	LanguagesUsed       int       `json:"languages_used"`
	LastActivity        time.Time `json:"last_activity,omitzero"`
}

// FromResult builds a Record from a processing result.
func FromResult(title string, r *models.SummaryResult, fileNames []string, length models.LengthClass) Record {
	if len(fileNames) == 0 && r.FileName != "" {
		fileNames = []string{r.FileName}
	}
	return Record{
		Title:           title,
		Summary:         r.Summary,
		Keywords:        r.Keywords,
		Sentiment:       r.Sentiment,
		TranslationText: r.TranslationText,
		SourceLanguage:  r.SourceLanguage,
		TargetLanguage:  r.TargetLanguage,
		LengthClass:     string(length),
		FileNames:       fileNames,
		WordCount:       r.WordCount,
	}
}

// Result converts a Record back into a SummaryResult for rendering.
func (r Record) Result() *models.SummaryResult {
	res := &models.SummaryResult{
		Summary:         r.Summary,
		Keywords:        r.Keywords,
		Sentiment:       r.Sentiment,
		WordCount:       r.WordCount,
		TranslationText: r.TranslationText,
		SourceLanguage:  r.SourceLanguage,
		TargetLanguage:  r.TargetLanguage,
	}
	if len(r.FileNames) == 1 {
		res.FileName = r.FileNames[0]
	}
	return res
}
