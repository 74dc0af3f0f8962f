// Package store persists analyst sessions (ciphertext + mapping) in a
// SQLite database so work can be resumed later.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/recipro/internal/logging"
	"github.com/katalvlaran/recipro/mapping"
)

var (
	// ErrSessionNotFound is returned by Load and Delete for unknown names.
	ErrSessionNotFound = errors.New("store: session not found")

	// ErrInvalidName is returned for blank session names.
	ErrInvalidName = errors.New("store: session name is empty")
)

// Record is one saved session.
type Record struct {
	Name       string
	Ciphertext string
	Mapping    mapping.Mapping
	Policy     mapping.SelfPairPolicy
	UpdatedAt  time.Time
}

// Summary is the listing view of a Record.
type Summary struct {
	Name      string
	Pairs     int
	UpdatedAt time.Time
}

// Store wraps a SQLite database connection.
type Store struct {
	sql *sql.DB
	log *slog.Logger
	now func() time.Time
}

// Open opens (or creates) the database at path and runs migrations.
// Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: sqlDB, log: logging.New("store"), now: time.Now}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	s.log.Debug("opened", slog.String("path", path))

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	version, err := s.schemaVersion()
	if err != nil {
		return err
	}

	if version < 1 {
		_, err := s.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS sessions (
				name        TEXT PRIMARY KEY,
				ciphertext  TEXT NOT NULL,
				mapping_key TEXT NOT NULL,
				policy      TEXT NOT NULL,
				updated_at  TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		s.log.Debug("applied migration v1")
	}

	return nil
}

// schemaVersion returns the highest applied migration, 0 for a fresh
// database.
func (s *Store) schemaVersion() (int, error) {
	var tables int
	err := s.sql.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`).Scan(&tables)
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	if tables == 0 {
		return 0, nil
	}

	var version int
	err = s.sql.QueryRow(`SELECT version FROM schema_version ORDER BY version DESC LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}

	return version, nil
}

// Save inserts or replaces the session named r.Name. UpdatedAt is set by
// the store.
func (s *Store) Save(ctx context.Context, r Record) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return ErrInvalidName
	}
	if !r.Mapping.IsReciprocal() {
		return fmt.Errorf("save %s: %w", name, mapping.ErrNotReciprocal)
	}
	_, err := s.sql.ExecContext(ctx, `
		INSERT INTO sessions (name, ciphertext, mapping_key, policy, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			ciphertext  = excluded.ciphertext,
			mapping_key = excluded.mapping_key,
			policy      = excluded.policy,
			updated_at  = excluded.updated_at`,
		name, r.Ciphertext, r.Mapping.Key(), r.Policy.String(), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	s.log.Info("session saved", slog.String("name", name))

	return nil
}

// Load returns the session named name.
func (s *Store) Load(ctx context.Context, name string) (Record, error) {
	var (
		r               Record
		key, policy, ts string
	)
	name = strings.TrimSpace(name)
	err := s.sql.QueryRowContext(ctx,
		`SELECT name, ciphertext, mapping_key, policy, updated_at FROM sessions WHERE name = ?`, name).
		Scan(&r.Name, &r.Ciphertext, &key, &policy, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %q", ErrSessionNotFound, name)
	}
	if err != nil {
		return Record{}, fmt.Errorf("load %s: %w", name, err)
	}

	if r.Mapping, err = mapping.ParseKey(key); err != nil {
		return Record{}, fmt.Errorf("load %s: %w", name, err)
	}
	if r.Policy, err = mapping.ParseSelfPairPolicy(policy); err != nil {
		return Record{}, fmt.Errorf("load %s: %w", name, err)
	}
	if r.UpdatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return Record{}, fmt.Errorf("load %s: updated_at: %w", name, err)
	}

	return r, nil
}

// List returns all saved sessions, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.sql.QueryContext(ctx,
		`SELECT name, mapping_key, updated_at FROM sessions ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var name, key, ts string
		if err := rows.Scan(&name, &key, &ts); err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		sum := Summary{Name: name}
		if m, err := mapping.ParseKey(key); err == nil {
			sum.Pairs = len(m.Pairs())
		} else {
			s.log.Warn("corrupt mapping key", slog.String("name", name), slog.Any("error", err))
		}
		if sum.UpdatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			s.log.Warn("corrupt updated_at", slog.String("name", name), slog.Any("error", err))
		}
		out = append(out, sum)
	}

	return out, rows.Err()
}

// Delete removes the session named name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.sql.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, name)
	}
	s.log.Info("session deleted", slog.String("name", name))

	return nil
}
