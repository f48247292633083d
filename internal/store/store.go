// Package store provides a durable cache for compiled exponentials.
//
// Synthesizing exp(-i*angle*term) is deterministic, so compiled
// circuits are content-addressed: the cache key hashes the term's
// canonical form together with the angle at fixed precision. Writes are
// idempotent; re-compiling the same term at the same angle hits the
// existing row.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/halfspin/pauliq/internal/pauli"
	"github.com/halfspin/pauliq/internal/quil"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// Store is a SQLite-backed circuit cache.
// Uses WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path. Use
// ":memory:" for an ephemeral cache. Applies required pragmas and the
// schema automatically; safe to call on an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY on concurrent writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return nil
}

// CachedCircuit is one cache row.
type CachedCircuit struct {
	ID           string
	TermID       string
	Term         string
	Angle        float64
	Instructions []string
	GateCount    int
}

// Put inserts a compiled circuit for (term, angle). The row ID is
// content-addressed; inserting the same circuit twice is a no-op.
// Returns the circuit ID.
func (s *Store) Put(ctx context.Context, term *pauli.Term, angle float64, circ *quil.Circuit) (string, error) {
	termID, err := pauli.TermID(term)
	if err != nil {
		return "", fmt.Errorf("put circuit: %w", err)
	}
	id := pauli.CircuitID(termID, angle)

	lines := make([]string, 0, circ.Len())
	for _, in := range circ.Instructions() {
		lines = append(lines, in.String())
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO circuits (id, term_id, term, angle, instructions, gate_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, termID, term.CompactString(), angle, strings.Join(lines, "\n"), circ.Len())
	if err != nil {
		return "", fmt.Errorf("put circuit: %w", err)
	}
	return id, nil
}

// Get looks up the compiled circuit for (term, angle). The second
// return value reports whether the cache held it.
func (s *Store) Get(ctx context.Context, term *pauli.Term, angle float64) (*CachedCircuit, bool, error) {
	termID, err := pauli.TermID(term)
	if err != nil {
		return nil, false, fmt.Errorf("get circuit: %w", err)
	}
	return s.GetByID(ctx, pauli.CircuitID(termID, angle))
}

// GetByID looks up a cache row by circuit ID.
func (s *Store) GetByID(ctx context.Context, id string) (*CachedCircuit, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, term_id, term, angle, instructions, gate_count
		FROM circuits WHERE id = ?
	`, id)

	var cc CachedCircuit
	var instructions string
	err := row.Scan(&cc.ID, &cc.TermID, &cc.Term, &cc.Angle, &instructions, &cc.GateCount)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get circuit: %w", err)
	}
	if instructions != "" {
		cc.Instructions = strings.Split(instructions, "\n")
	}
	return &cc, true, nil
}

// ListByTerm returns all cached compilations of a term, across angles,
// ordered by angle then ID for deterministic output.
func (s *Store) ListByTerm(ctx context.Context, term *pauli.Term) ([]CachedCircuit, error) {
	termID, err := pauli.TermID(term)
	if err != nil {
		return nil, fmt.Errorf("list circuits: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, term_id, term, angle, instructions, gate_count
		FROM circuits WHERE term_id = ? ORDER BY angle, id
	`, termID)
	if err != nil {
		return nil, fmt.Errorf("list circuits: %w", err)
	}
	defer rows.Close()

	var out []CachedCircuit
	for rows.Next() {
		var cc CachedCircuit
		var instructions string
		if err := rows.Scan(&cc.ID, &cc.TermID, &cc.Term, &cc.Angle, &instructions, &cc.GateCount); err != nil {
			return nil, fmt.Errorf("list circuits: %w", err)
		}
		if instructions != "" {
			cc.Instructions = strings.Split(instructions, "\n")
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
