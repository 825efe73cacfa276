// Package store persists contact messages.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/navarrastar/devfolio/pkg/models"
)

// DBFile is the database file name inside the data directory
const DBFile = "devfolio.db"

// fixed width so received_at sorts chronologically as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// StoredMessage is a contact message together with when it was received
type StoredMessage struct {
	models.ContactMessage
	ReceivedAt time.Time `json:"received_at"`
}

// SQLiteStore keeps contact messages in a SQLite database
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database in dataDir
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", filepath.Join(dataDir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if err := initTables(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize database tables: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

func initTables(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS contact_messages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			received_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_contact_messages_received_at
		ON contact_messages(received_at);
	`)
	return err
}

// SaveMessage inserts a contact message
func (s *SQLiteStore) SaveMessage(ctx context.Context, msg models.ContactMessage, receivedAt time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, received_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message,
		receivedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListMessages returns up to limit messages, newest first. limit <= 0 means no limit.
func (s *SQLiteStore) ListMessages(ctx context.Context, limit int) ([]*StoredMessage, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, email, subject, message, received_at
		 FROM contact_messages
		 ORDER BY received_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*StoredMessage
	for rows.Next() {
		var (
			m          StoredMessage
			receivedAt string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &receivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		m.ReceivedAt, err = time.Parse(timeLayout, receivedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid received_at %q: %w", receivedAt, err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return messages, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
