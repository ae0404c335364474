package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"studyrank/internal/modules/session/domain"
	sessionout "studyrank/internal/modules/session/port/out"
	"studyrank/internal/platform/clock"
	apperrors "studyrank/internal/platform/errors"
)

// sessionKey is the fixed key holding the JSON-serialized current user, the
// durable analogue of the original client's single local-storage entry.
const sessionKey = "current_user"

type SQLiteSessionStore struct {
	db  *sql.DB
	clk clock.Clock
}

func NewSQLiteSessionStore(dbPath string, clk clock.Clock) (sessionout.SessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSessionStore{db: db, clk: clk}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	const stmt = `
INSERT INTO kv (key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at;
`
	if _, err := s.db.ExecContext(ctx, stmt, sessionKey, string(payload), s.clk.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Load(ctx context.Context) (domain.User, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM kv WHERE key = ?`, sessionKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperrors.ErrNoSession
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("read session: %w", err)
	}
	var user domain.User
	// Corrupt or foreign payloads load as absent so startup never fails on
	// a bad stored value.
	if err := json.Unmarshal([]byte(payload), &user); err != nil || user.ID == "" {
		return domain.User{}, apperrors.ErrNoSession
	}
	return user, nil
}

func (s *SQLiteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
