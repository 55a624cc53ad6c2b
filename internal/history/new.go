package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implStore struct {
	db     *sql.DB
	logger logger.Logger
	now    func() time.Time
}

// Open opens or creates the SQLite database at path and makes sure the schema exists.
func Open(path string, log logger.Logger) (Store, error) {
	return open(path, log)
}

func open(path string, log logger.Logger) (*implStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps the PRAGMAs in effect and avoids SQLITE_BUSY between writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &implStore{
		db:     db,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
