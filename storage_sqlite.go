package infoagent

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var _ Storage = &SQLiteStorage{}

// SQLiteStorage implements the Storage interface using SQLite.
// It provides functionality to store and retrieve conversation data.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a new SQLiteStorage instance with the provided database file path.
// It initializes the database schema if it doesn't exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initDB(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return storage, nil
}

// initDB creates the necessary tables if they don't exist.
func (s *SQLiteStorage) initDB() error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS exchanges (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		user_message TEXT NOT NULL,
		assistant_message TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_exchanges_session ON exchanges(session_id);`

	_, err := s.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveExchange stores a completed user/assistant exchange for the
// given session.
func (s *SQLiteStorage) SaveExchange(ctx context.Context, sessionID string, userMessage string, assistantMessage string) error {
	query := `
	INSERT INTO exchanges (id, session_id, user_message, assistant_message, created_at)
	VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, uuid.NewString(), sessionID, userMessage, assistantMessage, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save exchange: %w", err)
	}

	return nil
}

// History retrieves the most recent exchanges for the given session,
// newest first.
func (s *SQLiteStorage) History(ctx context.Context, sessionID string, limit int) ([]Exchange, error) {
	query := `
	SELECT id, session_id, user_message, assistant_message, created_at
	FROM exchanges
	WHERE session_id = ?
	ORDER BY created_at DESC
	LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	exchanges := []Exchange{}
	for rows.Next() {
		var e Exchange
		if err := rows.Scan(&e.ID, &e.SessionID, &e.UserMessage, &e.AssistantMessage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		exchanges = append(exchanges, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return exchanges, nil
}
