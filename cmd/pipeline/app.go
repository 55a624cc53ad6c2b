package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/language"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/processor"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
)

// app holds the dependencies shared by every command.
type app struct {
	cfg        *config.Config
	logger     logger.Logger
	summarizer summarizer.Summarizer
	processor  processor.Processor
	rdb        *redis.Client
}

func setup(c *cli.Context) (*app, error) {
	ctx := c.Context

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	log.Debug(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	sum, err := summarizer.New(ctx, cfg.Gemini, language.New(), log)
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}
	if !sum.Configured() {
		log.Warn(ctx, "No Gemini API keys configured; summaries will fail until gemini.api_keys or GEMINI_API_KEYS is set")
	} else {
		log.Info(ctx, "Gemini ready with %d API key(s), model %s", len(cfg.Gemini.APIKeys), cfg.Gemini.Model)
	}

	a := &app{cfg: cfg, logger: log, summarizer: sum}

	var gen summarizer.Generator = sum
	if cfg.Redis.Enabled() {
		rdb, err := summarizer.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn(ctx, "Redis unavailable at %s, summary cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			a.rdb = rdb
			gen = summarizer.NewCache(sum, rdb, cfg.Redis.TTL, log)
			log.Info(ctx, "Summary cache enabled (ttl %s)", cfg.Redis.TTL)
		}
	}

	a.processor = processor.New(cfg, extractor.New(sum, log), gen, log)
	return a, nil
}

func (a *app) close() {
	if a.rdb != nil {
		a.rdb.Close()
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
