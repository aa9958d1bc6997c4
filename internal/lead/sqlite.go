package lead

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const createLeadsTable = `
CREATE TABLE IF NOT EXISTS leads (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  date_of_birth TEXT NOT NULL,
  employment_status TEXT NOT NULL DEFAULT '',
  annual_income TEXT NOT NULL DEFAULT '',
  credit_score_range TEXT NOT NULL DEFAULT '',
  offer_type TEXT NOT NULL DEFAULT '',
  contact_preference TEXT NOT NULL DEFAULT '',
  terms_accepted INTEGER NOT NULL DEFAULT 0
);
`

// createdAtLayout is fixed width so created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

const leadColumns = `id, created_at, first_name, last_name, date_of_birth,
  employment_status, annual_income, credit_score_range,
  offer_type, contact_preference, terms_accepted`

// SQLiteStore persists leads in a SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Debug("sqlite lead store ready",
		zap.String("op", "lead.OpenSQLite"),
		zap.String("path", path),
	)
	return s, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createLeadsTable); err != nil {
		return fmt.Errorf("failed to create leads table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);`); err != nil {
		return fmt.Errorf("failed to create leads index: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, l Lead) error {
	app := l.Application
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO leads (`+leadColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID,
		l.CreatedAt.UTC().Format(createdAtLayout),
		app.Personal.FirstName,
		app.Personal.LastName,
		app.Personal.DateOfBirth,
		app.Income.EmploymentStatus,
		app.Income.AnnualIncome,
		app.Income.CreditScoreRange,
		app.Preferences.OfferType,
		app.Preferences.ContactPreference,
		app.Preferences.TermsAccepted,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead %s: %w", l.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Lead, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, fmt.Errorf("failed to load lead %s: %w", id, err)
	}
	return l, nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Lead, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read lead row: %w", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (Lead, error) {
	var (
		l         Lead
		createdAt string
	)
	app := &l.Application
	err := row.Scan(
		&l.ID,
		&createdAt,
		&app.Personal.FirstName,
		&app.Personal.LastName,
		&app.Personal.DateOfBirth,
		&app.Income.EmploymentStatus,
		&app.Income.AnnualIncome,
		&app.Income.CreditScoreRange,
		&app.Preferences.OfferType,
		&app.Preferences.ContactPreference,
		&app.Preferences.TermsAccepted,
	)
	if err != nil {
		return Lead{}, err
	}
	l.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return Lead{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	return l, nil
}
