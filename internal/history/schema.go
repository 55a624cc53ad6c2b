package history

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

-- Saved summaries, one row per save
CREATE TABLE IF NOT EXISTS summaries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    summary TEXT NOT NULL,
    keywords TEXT,               -- JSON array
    sentiment TEXT,
    translation TEXT,
    source_language TEXT,
    target_language TEXT,
    length_class TEXT,
    file_names TEXT,             -- JSON array
    words_original INTEGER NOT NULL DEFAULT 0,
    words_summary INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_summaries_user_created ON summaries(user_id, created_at DESC);

-- Running totals per user, bumped on every save
CREATE TABLE IF NOT EXISTS user_stats (
    user_id TEXT PRIMARY KEY,
    summaries_count INTEGER NOT NULL DEFAULT 0,
    words_processed INTEGER NOT NULL DEFAULT 0,
    last_activity TEXT
);
`
