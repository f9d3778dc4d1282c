// Package store archives design runs into a SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"grnascan/internal/output"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	created_at    DATETIME NOT NULL,
	version       TEXT NOT NULL,
	target_id     TEXT,
	target_length INTEGER NOT NULL,
	reference_id  TEXT,
	pam           TEXT NOT NULL,
	guide_size    INTEGER NOT NULL,
	scanned       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS guides (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id    TEXT NOT NULL REFERENCES runs(id),
	ord       INTEGER NOT NULL,
	sequence  TEXT NOT NULL,
	strand    TEXT NOT NULL,
	position  INTEGER NOT NULL,
	pam       TEXT NOT NULL,
	gc        REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS off_targets (
	guide_id  INTEGER NOT NULL REFERENCES guides(id),
	score     INTEGER NOT NULL,
	start_pos INTEGER NOT NULL,
	end_pos   INTEGER NOT NULL,
	on_target INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_guides_run ON guides(run_id);
`

// Run is the header row of one archived run.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Version      string
	TargetID     string
	TargetLength int
	ReferenceID  string
	PAM          string
	GuideSize    int
	Scanned      bool
}

// Store is a run archive backed by one SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// Open creates (if needed) and opens the archive at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveRun writes the run header and every result in one transaction. An
// empty r.ID is replaced by a new run id; the id used is returned.
func (s *Store) SaveRun(ctx context.Context, r Run, results []output.Result) (string, error) {
	if r.ID == "" {
		r.ID = NewRunID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, version, target_id, target_length, reference_id, pam, guide_size, scanned)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt, r.Version, r.TargetID, r.TargetLength, r.ReferenceID, r.PAM, r.GuideSize, r.Scanned,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	guideStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO guides (run_id, ord, sequence, strand, position, pam, gc) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer guideStmt.Close()
	hitStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO off_targets (guide_id, score, start_pos, end_pos, on_target) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer hitStmt.Close()

	for i, res := range results {
		g := res.Guide
		rs, err := guideStmt.ExecContext(ctx, r.ID, i, g.Sequence, string(g.Strand), g.Position, g.PAM, g.GC())
		if err != nil {
			return "", fmt.Errorf("insert guide %s: %w", g.Sequence, err)
		}
		gid, err := rs.LastInsertId()
		if err != nil {
			return "", err
		}
		for _, h := range res.OffTargets {
			if _, err := hitStmt.ExecContext(ctx, gid, h.Score, h.Start, h.End, res.OnTarget(h)); err != nil {
				return "", fmt.Errorf("insert off-target: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return r.ID, nil
}

// GetRun loads a run header.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	var r Run
	var targetID, refID sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, version, target_id, target_length, reference_id, pam, guide_size, scanned
		 FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.CreatedAt, &r.Version, &targetID, &r.TargetLength, &refID, &r.PAM, &r.GuideSize, &r.Scanned)
	if err != nil {
		return Run{}, err
	}
	r.TargetID, r.ReferenceID = targetID.String, refID.String
	return r, nil
}

// CountGuides returns how many guides and off-target hits a run archived.
func (s *Store) CountGuides(ctx context.Context, runID string) (guides, hits int, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT g.id), COUNT(o.guide_id)
		 FROM guides g LEFT JOIN off_targets o ON o.guide_id = g.id
		 WHERE g.run_id = ?`, runID,
	).Scan(&guides, &hits)
	return guides, hits, err
}
