package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
)

// subjectColumns is the canonical SELECT column list for subjects.
const subjectColumns = `id, name, color, deadline, created_at, updated_at`

// SQLiteSubjectRepo implements SubjectRepo using a SQLite database.
type SQLiteSubjectRepo struct {
	db db.DBTX
}

// NewSQLiteSubjectRepo creates a new SQLiteSubjectRepo.
func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

func (r *SQLiteSubjectRepo) Create(ctx context.Context, s *domain.Subject) error {
	query := `INSERT INTO subjects (id, name, color, deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Color,
		s.Deadline.Format(domain.DateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSubject(row)
}

func (r *SQLiteSubjectRepo) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects ORDER BY deadline, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*domain.Subject
	for rows.Next() {
		s, err := r.scanSubjectRow(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}
	return subjects, nil
}

func (r *SQLiteSubjectRepo) Update(ctx context.Context, s *domain.Subject) error {
	query := `UPDATE subjects SET name = ?, color = ?, deadline = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Color,
		s.Deadline.Format(domain.DateLayout),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating subject: %w", err)
	}
	return nil
}

// Delete removes the subject; tasks and sessions cascade via foreign keys.
func (r *SQLiteSubjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) scanSubject(row *sql.Row) (*domain.Subject, error) {
	var s domain.Subject
	var deadlineStr, createdAtStr, updatedAtStr string

	err := row.Scan(&s.ID, &s.Name, &s.Color, &deadlineStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subject: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subject: %w", err)
	}
	return r.populateSubject(&s, deadlineStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteSubjectRepo) scanSubjectRow(rows *sql.Rows) (*domain.Subject, error) {
	var s domain.Subject
	var deadlineStr, createdAtStr, updatedAtStr string

	if err := rows.Scan(&s.ID, &s.Name, &s.Color, &deadlineStr, &createdAtStr, &updatedAtStr); err != nil {
		return nil, fmt.Errorf("scanning subject row: %w", err)
	}
	return r.populateSubject(&s, deadlineStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteSubjectRepo) populateSubject(s *domain.Subject, deadlineStr, createdAtStr, updatedAtStr string) (*domain.Subject, error) {
	var err error
	if s.Deadline, err = parseDate(deadlineStr); err != nil {
		return nil, fmt.Errorf("parsing deadline: %w", err)
	}
	if s.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}
