package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Grading reports: one row per graded piece of content
CREATE TABLE IF NOT EXISTS grading_reports (
    report_id INTEGER PRIMARY KEY AUTOINCREMENT,
    content_id TEXT NOT NULL,
    title TEXT,
    language TEXT NOT NULL,
    content_type TEXT,
    claimed_level TEXT,
    assigned_level TEXT NOT NULL,
    confidence REAL NOT NULL,

    -- Per-level scores and quality metrics as JSON objects
    level_scores TEXT NOT NULL,
    metrics TEXT NOT NULL,
    recommendations TEXT,

    overall_quality REAL,
    vocab_count INTEGER DEFAULT 0,
    source_url TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reports_content ON grading_reports(content_id);
CREATE INDEX IF NOT EXISTS idx_reports_language ON grading_reports(language);
CREATE INDEX IF NOT EXISTS idx_reports_level ON grading_reports(assigned_level);
CREATE INDEX IF NOT EXISTS idx_reports_created ON grading_reports(created_at DESC);
`
