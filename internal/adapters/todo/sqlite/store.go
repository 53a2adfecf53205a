package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	_ "modernc.org/sqlite"
)

const dbDirMode = 0o700

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

type Store struct {
	db *sql.DB
}

var _ ports.TodoStore = (*Store)(nil)

func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("create todo database directory: %w", err)
	}

	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open todo database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, errors.Join(fmt.Errorf("todo database pragma %q: %w", p, err), db.Close())
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, errors.Join(fmt.Errorf("migrate todo database: %w", err), db.Close())
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS todos (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT NOT NULL UNIQUE,
			session_key TEXT NOT NULL,
			content     TEXT NOT NULL,
			status      TEXT NOT NULL,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_todos_session ON todos(session_key, status);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Add(ctx context.Context, todo domain.Todo) error {
	if !todo.Status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTodoStatus, todo.Status)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO todos (id, session_key, content, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.SessionKey, todo.Content, string(todo.Status),
		formatTime(todo.CreatedAt), formatTime(todo.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert todo %q: %w", todo.ID, err)
	}

	return nil
}

func (s *Store) SetStatus(ctx context.Context, sessionKey, id string, status domain.TodoStatus, updatedAt time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTodoStatus, status)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE todos SET status = ?, updated_at = ? WHERE session_key = ? AND id = ?`,
		string(status), formatTime(updatedAt), sessionKey, id,
	)
	if err != nil {
		return fmt.Errorf("update todo %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update todo %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", domain.ErrTodoNotFound, id)
	}

	return nil
}

func (s *Store) List(ctx context.Context, sessionKey string) ([]domain.Todo, error) {
	return s.query(ctx,
		`SELECT id, session_key, content, status, created_at, updated_at
		 FROM todos WHERE session_key = ? ORDER BY seq`,
		sessionKey,
	)
}

func (s *Store) Incomplete(ctx context.Context, sessionKey string) ([]domain.Todo, error) {
	return s.query(ctx,
		`SELECT id, session_key, content, status, created_at, updated_at
		 FROM todos WHERE session_key = ? AND status IN (?, ?) ORDER BY seq`,
		sessionKey, string(domain.TodoPending), string(domain.TodoInProgress),
	)
}

func (s *Store) Clear(ctx context.Context, sessionKey string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE session_key = ?`, sessionKey); err != nil {
		return fmt.Errorf("delete todos for %q: %w", sessionKey, err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var (
			todo               domain.Todo
			status             string
			createdAt, updated string
		)
		if err := rows.Scan(&todo.ID, &todo.SessionKey, &todo.Content, &status, &createdAt, &updated); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todo.Status = domain.TodoStatus(status)
		if todo.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parse todo %q created_at: %w", todo.ID, err)
		}
		if todo.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, fmt.Errorf("parse todo %q updated_at: %w", todo.ID, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}

	return todos, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
