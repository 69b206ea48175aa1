// Package store persists offline models in a SQLite database, one row per
// model name.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexiusacademia/csiapi/internal/seed/memseed"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no model is stored under a name.
var ErrNotFound = errors.New("model not found")

// Store holds saved model states.
type Store struct {
	db *sql.DB
}

// ModelInfo summarizes a stored model.
type ModelInfo struct {
	Name      string
	Version   string
	Locked    bool
	UpdatedAt string
}

// Open opens the database at dsn and applies pending migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite to avoid locking issues.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes st under name, replacing any earlier state.
func (s *Store) Save(ctx context.Context, name string, st *memseed.State) error {
	if name == "" {
		return fmt.Errorf("save model: empty name")
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal model %q: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO models (name, version, locked, state, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET version = excluded.version, locked = excluded.locked,
		 state = excluded.state, updated_at = excluded.updated_at`,
		name, st.Version, st.Locked, string(data), now(),
	)
	if err != nil {
		return fmt.Errorf("save model %q: %w", name, err)
	}
	return nil
}

// Load reads the state saved under name.
func (s *Store) Load(ctx context.Context, name string) (*memseed.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT state FROM models WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", name, err)
	}
	var st memseed.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("decode model %q: %w", name, err)
	}
	return &st, nil
}

// List returns every stored model ordered by name.
func (s *Store) List(ctx context.Context) ([]ModelInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, version, locked, updated_at FROM models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()

	var out []ModelInfo
	for rows.Next() {
		var mi ModelInfo
		if err := rows.Scan(&mi.Name, &mi.Version, &mi.Locked, &mi.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		out = append(out, mi)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM models WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete model %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Attach backs the model's File.Save and File.OpenFile with the store.
// The file path is the model name.
func (s *Store) Attach(m *memseed.Model) {
	m.OnSave = func(path string, st *memseed.State) error {
		return s.Save(context.Background(), path, st)
	}
	m.OnOpen = func(path string) (*memseed.State, error) {
		return s.Load(context.Background(), path)
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
