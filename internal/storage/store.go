package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/db"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

// SnapshotKey is the fixed key the live document is stored under. The table
// is a key-value store so the format can grow without schema churn.
const SnapshotKey = "report"

// DefaultRevisionLimit is how many historical revisions are retained.
const DefaultRevisionLimit = 20

// Revision is one retained historical snapshot.
type Revision struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
	Size    int       `json:"size"`
}

// Store is the persistence gateway: it round-trips the full ReportDocument
// snapshot and keeps a bounded revision trail alongside.
type Store struct {
	db    *db.DB
	limit int
}

// NewStore creates a store retaining up to limit revisions per snapshot key.
// A non-positive limit falls back to the default.
func NewStore(database *db.DB, limit int) *Store {
	if limit <= 0 {
		limit = DefaultRevisionLimit
	}
	return &Store{db: database, limit: limit}
}

// Save serializes the snapshot and overwrites the stored value
// unconditionally, then appends a revision and prunes the trail. The three
// writes commit atomically: a snapshot is never stored without its revision.
func (s *Store) Save(ctx context.Context, doc *report.ReportDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO report_snapshots (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		SnapshotKey, string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO report_revisions (id, snapshot_key, payload, saved_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), SnapshotKey, string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("writing revision: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`DELETE FROM report_revisions WHERE snapshot_key = ? AND id NOT IN (
		     SELECT id FROM report_revisions WHERE snapshot_key = ?
		     ORDER BY saved_at DESC, id DESC LIMIT ?
		 )`,
		SnapshotKey, SnapshotKey, s.limit,
	)
	if err != nil {
		return fmt.Errorf("pruning revisions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. An absent row returns (nil, nil) and the
// caller keeps its defaults. A malformed payload is logged and likewise
// treated as no saved state; it is never propagated.
//
// Restore is partial and additive: decoding starts from a fully defaulted
// document, so fields absent from an older snapshot keep their built-in
// defaults instead of zeroing out.
func (s *Store) Load(ctx context.Context) (*report.ReportDocument, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM report_snapshots WHERE key = ?`, SnapshotKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	doc := report.DefaultDocument()
	if err := json.Unmarshal([]byte(payload), doc); err != nil {
		log.Printf("storage: malformed snapshot under %q, starting from defaults: %v", SnapshotKey, err)
		return nil, nil
	}
	doc.Normalize()
	return doc, nil
}

// ListRevisions returns the retained revisions, most recent first.
func (s *Store) ListRevisions(ctx context.Context) ([]Revision, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, saved_at, length(payload) FROM report_revisions
		 WHERE snapshot_key = ? ORDER BY saved_at DESC, id DESC`, SnapshotKey,
	)
	if err != nil {
		return nil, fmt.Errorf("listing revisions: %w", err)
	}
	defer rows.Close()

	var revisions []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.SavedAt, &r.Size); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		revisions = append(revisions, r)
	}
	return revisions, rows.Err()
}

// GetRevision decodes the revision with the given id. Missing ids return
// (nil, nil). Decoding uses the same defaults-overlay as Load.
func (s *Store) GetRevision(ctx context.Context, id string) (*report.ReportDocument, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM report_revisions WHERE id = ? AND snapshot_key = ?`, id, SnapshotKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading revision: %w", err)
	}

	doc := report.DefaultDocument()
	if err := json.Unmarshal([]byte(payload), doc); err != nil {
		return nil, fmt.Errorf("decoding revision %s: %w", id, err)
	}
	doc.Normalize()
	return doc, nil
}
