// Package store keeps a SQLite index of generation runs so past buildings
// can be listed and re-generated from their recorded seed and spec.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/voxelforge/buildgen/pkg/building"
)

// Index is a run index backed by a single-connection SQLite database.
type Index struct {
	db *sql.DB
}

// Run is one recorded generation.
type Run struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Seed      int64     `json:"seed"`
	SpecJSON  string    `json:"spec"`
	Elements  int       `json:"elements"`
	Floors    int       `json:"floors"`
	Roofs     int       `json:"roofs"`
	Walls     int       `json:"walls"`
	Pillars   int       `json:"pillars"`
	Palette   string    `json:"palette"`
}

// Open creates or opens the index at path.
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	// WAL suits the append-style workload.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	seed       INTEGER NOT NULL,
	spec       TEXT NOT NULL,
	elements   INTEGER NOT NULL,
	floors     INTEGER NOT NULL,
	roofs      INTEGER NOT NULL,
	walls      INTEGER NOT NULL,
	pillars    INTEGER NOT NULL,
	palette    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
	_, err := db.Exec(schema)
	return err
}

// NewRun summarizes a generated building into a recordable Run.
func NewRun(b *building.Building) (Run, error) {
	specJSON, err := json.Marshal(b.Spec)
	if err != nil {
		return Run{}, err
	}
	palJSON, err := json.Marshal(b.Palette)
	if err != nil {
		return Run{}, err
	}

	run := Run{
		CreatedAt: time.Now().UTC(),
		Seed:      b.Seed,
		SpecJSON:  string(specJSON),
		Elements:  len(b.Elements),
		Palette:   string(palJSON),
	}
	for _, e := range b.Elements {
		switch e.Kind {
		case building.PieceFloorRoad, building.PieceFloorWood:
			run.Floors++
		case building.PieceRoofPoint, building.PieceRoofStraight, building.PieceRoofSlant, building.PieceRoofFlat:
			run.Roofs++
		case building.PieceWallPlain, building.PieceWallDoor, building.PieceWallWindow, building.PieceWallDecorated:
			run.Walls++
		case building.PiecePillar:
			run.Pillars++
		}
	}
	return run, nil
}

// Record inserts a run and returns its row id.
func (ix *Index) Record(run Run) (int64, error) {
	res, err := ix.db.Exec(`
INSERT INTO runs (created_at, seed, spec, elements, floors, roofs, walls, pillars, palette)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.Seed, run.SpecJSON, run.Elements,
		run.Floors, run.Roofs, run.Walls, run.Pillars,
		run.Palette,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (ix *Index) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := ix.db.Query(`
SELECT id, created_at, seed, spec, elements, floors, roofs, walls, pillars, palette
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &created, &r.Seed, &r.SpecJSON, &r.Elements,
			&r.Floors, &r.Roofs, &r.Walls, &r.Pillars, &r.Palette); err != nil {
			return nil, err
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("run %d: bad timestamp %q: %w", r.ID, created, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}
