package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

const recordColumns = `id, user_id, title, summary, keywords, sentiment, translation, source_language,
	target_language, length_class, file_names, words_original, words_summary, created_at, updated_at`

func (s *implStore) Save(ctx context.Context, userID string, rec Record) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("save summary: user id is required")
	}
	keywords, err := marshalList(rec.Keywords)
	if err != nil {
		return "", fmt.Errorf("encode keywords: %w", err)
	}
	fileNames, err := marshalList(rec.FileNames)
	if err != nil {
		return "", fmt.Errorf("encode file names: %w", err)
	}

	id := uuid.NewString()
	now := formatTime(s.now())

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO summaries (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, rec.Title, rec.Summary, keywords, string(rec.Sentiment), rec.TranslationText,
		rec.SourceLanguage, rec.TargetLanguage, rec.LengthClass, fileNames,
		rec.WordCount.Original, rec.WordCount.Summary, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert summary: %w", err)
	}

	if err := s.bumpUserStats(ctx, userID, rec.WordCount.Original, now); err != nil {
		s.logger.Warn(ctx, "Failed to update stats for user %s: %v", userID, err)
	}
	return id, nil
}

func (s *implStore) bumpUserStats(ctx context.Context, userID string, words int, now string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, summaries_count, words_processed, last_activity)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			summaries_count = summaries_count + 1,
			words_processed = words_processed + excluded.words_processed,
			last_activity = excluded.last_activity`,
		userID, words, now,
	)
	return err
}

func (s *implStore) Get(ctx context.Context, userID, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM summaries WHERE id = ? AND user_id = ?`, id, userID)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get summary: %w", err)
	}
	return rec, nil
}

func (s *implStore) ListByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM summaries
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *implStore) Update(ctx context.Context, userID, id string, upd Update) error {
	sets := []string{"updated_at = ?"}
	args := []any{formatTime(s.now())}
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Summary != nil {
		sets = append(sets, "summary = ?", "words_summary = ?")
		args = append(args, *upd.Summary, models.CountWords(*upd.Summary))
	}
	args = append(args, id, userID)

	res, err := s.db.ExecContext(ctx,
		`UPDATE summaries SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	return expectOneRow(res)
}

func (s *implStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	return expectOneRow(res)
}

// Stats aggregates over the user's saved summaries. AverageReduction is the
// mean of (1 - summary/original) in percent, over rows with a non-zero original.
func (s *implStore) Stats(ctx context.Context, userID string) (Stats, error) {
	var (
		stats     Stats
		reduction sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(words_original), 0),
			AVG(CASE WHEN words_original > 0 THEN 1.0 - CAST(words_summary AS REAL) / words_original END),
			COUNT(DISTINCT NULLIF(target_language, ''))
		FROM summaries WHERE user_id = ?`, userID,
	).Scan(&stats.TotalSummaries, &stats.TotalWordsProcessed, &reduction, &stats.LanguagesUsed)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate stats: %w", err)
	}
	if reduction.Valid {
		stats.AverageReduction = int(math.Round(reduction.Float64 * 100))
	}

	var lastActivity sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT last_activity FROM user_stats WHERE user_id = ?`, userID).Scan(&lastActivity)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Stats{}, fmt.Errorf("read user stats: %w", err)
	case lastActivity.Valid:
		stats.LastActivity = parseTime(lastActivity.String)
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec                                             Record
		keywords, sentiment, translation, srcLang       sql.NullString
		targetLang, length, fileNames, created, updated sql.NullString
	)
	err := sc.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Summary, &keywords, &sentiment, &translation,
		&srcLang, &targetLang, &length, &fileNames, &rec.WordCount.Original, &rec.WordCount.Summary,
		&created, &updated)
	if err != nil {
		return Record{}, err
	}

	if rec.Keywords, err = unmarshalList(keywords.String); err != nil {
		return Record{}, fmt.Errorf("decode keywords: %w", err)
	}
	if rec.FileNames, err = unmarshalList(fileNames.String); err != nil {
		return Record{}, fmt.Errorf("decode file names: %w", err)
	}
	rec.Sentiment = models.Sentiment(sentiment.String)
	rec.TranslationText = translation.String
	rec.SourceLanguage = srcLang.String
	rec.TargetLanguage = targetLang.String
	rec.LengthClass = length.String
	rec.CreatedAt = parseTime(created.String)
	rec.UpdatedAt = parseTime(updated.String)
	return rec, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalList(list []string) (sql.NullString, error) {
	if len(list) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func unmarshalList(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// timeLayout is fixed width so that text comparison in ORDER BY matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
