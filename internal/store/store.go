// Package store persists scraped leads in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bwalden3/leadkit/internal/leads"
)

// Store wraps the lead database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id           TEXT PRIMARY KEY,
	job_id       TEXT NOT NULL DEFAULT '',
	name         TEXT NOT NULL,
	role         TEXT NOT NULL DEFAULT '',
	company      TEXT NOT NULL DEFAULT '',
	platform     TEXT NOT NULL,
	contact_link TEXT NOT NULL DEFAULT '',
	region       TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_platform ON leads(platform);
CREATE INDEX IF NOT EXISTS idx_leads_job ON leads(job_id);
`

// Open opens (creating if needed) the lead database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertLeads writes a batch of leads in one transaction.
func (s *Store) InsertLeads(ctx context.Context, batch []leads.Lead) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO leads (id, job_id, name, role, company, platform, contact_link, region, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, l := range batch {
		created := l.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx,
			l.ID, l.JobID, l.Name, l.Role, l.Company, string(l.Platform),
			l.ContactLink, l.Region, l.Notes, created.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert lead %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Filter narrows List and Count results.
type Filter struct {
	Platform leads.Platform
	JobID    string
	Limit    int
	Offset   int
}

func (f Filter) where() (string, []any) {
	var conds []string
	var args []any
	if f.Platform != "" {
		conds = append(conds, "platform = ?")
		args = append(args, string(f.Platform))
	}
	if f.JobID != "" {
		conds = append(conds, "job_id = ?")
		args = append(args, f.JobID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns matching leads ordered newest first, paged by the
// filter's limit and offset.
func (s *Store) List(ctx context.Context, f Filter) ([]leads.Lead, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	where, args := f.where()
	query := `SELECT id, job_id, name, role, company, platform, contact_link, region, notes, created_at
		FROM leads` + where + ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, limit, f.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []leads.Lead
	for rows.Next() {
		var l leads.Lead
		var platform, created string
		if err := rows.Scan(&l.ID, &l.JobID, &l.Name, &l.Role, &l.Company, &platform,
			&l.ContactLink, &l.Region, &l.Notes, &created); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		l.Platform = leads.Platform(platform)
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			l.CreatedAt = ts
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) Count(ctx context.Context, f Filter) (int, error) {
	where, args := f.where()
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads"+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

// DeleteByJob removes every lead created by one job and reports how
// many were deleted.
func (s *Store) DeleteByJob(ctx context.Context, jobID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM leads WHERE job_id = ?", jobID)
	if err != nil {
		return 0, fmt.Errorf("delete leads for job %s: %w", jobID, err)
	}
	return res.RowsAffected()
}
