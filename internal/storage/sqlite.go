package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ RunStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s, err := NewWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an open handle and ensures the schema exists.
func NewWithDB(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var schemaQueries = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		content_type TEXT,
		brief TEXT,
		final_content TEXT,
		overall_quality REAL,
		terminated INTEGER,
		report JSON
	);`,
	`CREATE TABLE IF NOT EXISTS turns (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		role TEXT,
		content TEXT,
		score REAL,
		duration_ms INTEGER,
		PRIMARY KEY (run_id, seq)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);`,
}

func (s *SQLiteStore) initSchema() error {
	for _, q := range schemaQueries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var report any
	if len(run.Report) > 0 {
		report = string(run.Report)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, content_type, brief, final_content, overall_quality, terminated, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.CreatedAt.UTC().Format(timeLayout), run.ContentType, run.Brief, run.FinalContent,
		run.OverallQuality, run.Terminated, report)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO turns (run_id, seq, role, content, score, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare turn insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range run.Turns {
		if _, err := stmt.ExecContext(ctx, run.ID, t.Seq, t.Role, t.Content, t.Score, t.DurationMS); err != nil {
			return fmt.Errorf("failed to insert turn %d: %w", t.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	var (
		run       Run
		createdAt string
		report    sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, content_type, brief, final_content, overall_quality, terminated, report
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &createdAt, &run.ContentType, &run.Brief, &run.FinalContent,
		&run.OverallQuality, &run.Terminated, &report)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
	}
	if report.Valid {
		run.Report = []byte(report.String)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, role, content, score, duration_ms FROM turns WHERE run_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load turns: %w", err)
	}
	defer rows.Close()

	run.Turns = []Turn{}
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.Seq, &t.Role, &t.Content, &t.Score, &t.DurationMS); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		run.Turns = append(run.Turns, t)
	}
	return &run, rows.Err()
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.created_at, r.content_type, r.overall_quality, r.terminated,
			(SELECT COUNT(*) FROM turns t WHERE t.run_id = r.id)
		FROM runs r
		ORDER BY r.created_at DESC, r.id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			sum       RunSummary
			createdAt string
		)
		if err := rows.Scan(&sum.ID, &createdAt, &sum.ContentType, &sum.OverallQuality, &sum.Terminated, &sum.Turns); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if sum.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
