package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"MarketAdvisor/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the scheduler writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			asset_class   TEXT NOT NULL,
			action        TEXT NOT NULL,
			score         REAL,
			confidence    REAL,
			current_price REAL,
			target_price  REAL,
			time_horizon  TEXT,
			reasoning     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,

		`CREATE TABLE IF NOT EXISTS scan_results (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			asset_class   TEXT NOT NULL,
			direction     TEXT NOT NULL,
			position      INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			name          TEXT,
			sector        TEXT,
			score         REAL,
			confidence    REAL,
			current_price REAL,
			target_price  REAL,
			price_change  REAL,
			fallback      INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_ts ON scan_results(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(rec *model.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO analyses
		(timestamp, symbol, asset_class, action, score, confidence,
		 current_price, target_price, time_horizon, reasoning)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Symbol, string(rec.AssetClass), string(rec.Action),
		rec.Score, rec.Confidence, rec.CurrentPrice, rec.TargetPrice,
		rec.TimeHorizon, strings.Join(rec.Reasoning, ". "),
	)
	return err
}

func (r *SQLiteRecorder) RecordScan(scan *ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	fallback := 0
	if scan.Fallback {
		fallback = 1
	}
	for rank, p := range scan.Picks {
		_, err := r.db.Exec(`INSERT INTO scan_results
			(timestamp, asset_class, direction, position, symbol, name, sector,
			 score, confidence, current_price, target_price, price_change, fallback)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			now, string(scan.AssetClass), string(scan.Direction), rank+1,
			p.Symbol, p.Name, p.Sector, p.Score, p.Confidence,
			p.CurrentPrice, p.TargetPrice, p.PriceChange, fallback,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
