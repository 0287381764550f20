package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/whoamihappyhacking/tgstat/internal/errors"
	"github.com/whoamihappyhacking/tgstat/internal/model"
)

// Store persists chat analyses keyed by chat id.
type Store interface {
	Upsert(ctx context.Context, analysis *model.ChatAnalysis) error
	Get(ctx context.Context, chatID int64) (*model.ChatAnalysis, error)
	Close() error
}

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	upsert *sql.Stmt
	get    *sql.Stmt
}

const schema = `
CREATE TABLE IF NOT EXISTS chat_analysis (
	chat_id        INTEGER PRIMARY KEY,
	chat_name      TEXT,
	total_messages INTEGER NOT NULL DEFAULT 0,
	monthly_stats  TEXT NOT NULL DEFAULT '[]',
	last_updated   TEXT NOT NULL
)`

// Open opens (creating if needed) the analysis database at path.
// Use ":memory:" for tests.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps ":memory:"
	// databases from being split across the pool.
	db.SetMaxOpenConns(1)
	s, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already-opened database, creating the schema if absent.
func New(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.upsert, err = s.db.Prepare(`
		INSERT INTO chat_analysis (chat_id, chat_name, total_messages, monthly_stats, last_updated)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			chat_name      = excluded.chat_name,
			total_messages = excluded.total_messages,
			monthly_stats  = excluded.monthly_stats,
			last_updated   = excluded.last_updated
	`)
	if err != nil {
		return err
	}

	s.get, err = s.db.Prepare(`
		SELECT chat_id, chat_name, total_messages, monthly_stats, last_updated
		FROM chat_analysis WHERE chat_id = ?
	`)
	return err
}

// Upsert stores the analysis, replacing any previous one for the same chat.
// The store owns the last_updated timestamp; the passed analysis is not
// mutated.
func (s *SQLiteStore) Upsert(ctx context.Context, analysis *model.ChatAnalysis) error {
	stats, err := json.Marshal(analysis.MonthlyStats)
	if err != nil {
		return fmt.Errorf("marshal monthly stats: %w", err)
	}

	var name sql.NullString
	if analysis.ChatName != nil {
		name = sql.NullString{String: *analysis.ChatName, Valid: true}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.upsert.ExecContext(ctx,
		analysis.ChatID, name, analysis.TotalMessages, string(stats), now,
	)
	if err != nil {
		return fmt.Errorf("upsert analysis: %w", err)
	}
	return nil
}

// Get retrieves the stored analysis for a chat.
func (s *SQLiteStore) Get(ctx context.Context, chatID int64) (*model.ChatAnalysis, error) {
	var (
		a        model.ChatAnalysis
		name     sql.NullString
		statsRaw string
	)
	err := s.get.QueryRowContext(ctx, chatID).Scan(
		&a.ChatID, &name, &a.TotalMessages, &statsRaw, &a.LastUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound(fmt.Sprintf("analysis for chat %d", chatID))
		}
		return nil, fmt.Errorf("get analysis: %w", err)
	}

	if name.Valid {
		a.ChatName = &name.String
	}
	if err := json.Unmarshal([]byte(statsRaw), &a.MonthlyStats); err != nil {
		return nil, fmt.Errorf("unmarshal monthly stats: %w", err)
	}
	return &a, nil
}

// Close releases prepared statements and the underlying database.
func (s *SQLiteStore) Close() error {
	for _, stmt := range []*sql.Stmt{s.upsert, s.get} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
