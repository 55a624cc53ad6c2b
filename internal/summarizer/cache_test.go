package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

type countingGenerator struct {
	calls int
	err   error
}

func (g *countingGenerator) Configured() bool { return true }

func (g *countingGenerator) Generate(_ context.Context, text string, _ models.SummaryOptions) (*models.SummaryResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &models.SummaryResult{Summary: "summary of " + text, Keywords: []string{"k"}}, nil
}

func newTestCache(t *testing.T, next Generator) (Generator, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewCache(next, rdb, time.Hour, logger.Nop()), mr
}

func TestCacheHit(t *testing.T) {
	next := &countingGenerator{}
	c, _ := newTestCache(t, next)
	ctx := context.Background()
	opts := models.SummaryOptions{LengthClass: models.LengthShort}

	first, err := c.Generate(ctx, "doc", opts)
	require.NoError(t, err)
	second, err := c.Generate(ctx, "doc", opts)
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Keywords, second.Keywords)
	assert.NotSame(t, first, second)
}

func TestCacheKeyIncludesOptions(t *testing.T) {
	next := &countingGenerator{}
	c, _ := newTestCache(t, next)
	ctx := context.Background()

	_, err := c.Generate(ctx, "doc", models.SummaryOptions{LengthClass: models.LengthShort})
	require.NoError(t, err)
	_, err = c.Generate(ctx, "doc", models.SummaryOptions{LengthClass: models.LengthLong})
	require.NoError(t, err)
	_, err = c.Generate(ctx, "other", models.SummaryOptions{LengthClass: models.LengthShort})
	require.NoError(t, err)

	assert.Equal(t, 3, next.calls)
}

func TestCacheDefaultsLengthInKey(t *testing.T) {
	assert.Equal(t,
		cacheKey("doc", models.SummaryOptions{}.WithDefaults()),
		cacheKey("doc", models.SummaryOptions{LengthClass: models.LengthMedium}.WithDefaults()))
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	next := &countingGenerator{err: errors.New("boom")}
	c, mr := newTestCache(t, next)

	_, err := c.Generate(context.Background(), "doc", models.SummaryOptions{})
	require.Error(t, err)
	assert.Empty(t, mr.Keys())
}

func TestCacheFallsThroughWhenRedisDown(t *testing.T) {
	next := &countingGenerator{}
	c, mr := newTestCache(t, next)
	mr.Close()

	res, err := c.Generate(context.Background(), "doc", models.SummaryOptions{})
	require.NoError(t, err)
	assert.Equal(t, "summary of doc", res.Summary)
}

func TestCacheDropsCorruptEntries(t *testing.T) {
	next := &countingGenerator{}
	c, mr := newTestCache(t, next)
	key := cacheKey("doc", models.SummaryOptions{}.WithDefaults())
	require.NoError(t, mr.Set(key, "{not json"))

	res, err := c.Generate(context.Background(), "doc", models.SummaryOptions{})
	require.NoError(t, err)
	assert.Equal(t, "summary of doc", res.Summary)
	assert.Equal(t, 1, next.calls)
}
