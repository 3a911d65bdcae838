package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
)

// sessionColumns is the canonical SELECT column list for planned_sessions.
const sessionColumns = `id, subject_id, task_id, date, hour, planned_min,
		planned_amount, completed, actual_min, actual_amount, rating,
		created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database. It takes
// a DBTX so the same implementation serves both direct access and the
// transactional session-set swap performed by the planner.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.PlannedSession) error {
	query := `INSERT INTO planned_sessions (id, subject_id, task_id, date, hour,
		planned_min, planned_amount, completed, actual_min, actual_amount, rating,
		created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.SubjectID,
		s.TaskID,
		s.Date.Format(domain.DateLayout),
		nullableIntToValue(s.Hour),
		s.PlannedMin,
		s.PlannedAmount,
		boolToInt(s.Completed),
		nullableIntToValue(s.ActualMin),
		nullableIntToValue(s.ActualAmount),
		nullableIntToValue(s.Rating),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting planned session: %w", err)
	}
	return nil
}

// CreateBatch inserts all sessions one by one; callers wanting atomicity run
// it inside a UnitOfWork transaction.
func (r *SQLiteSessionRepo) CreateBatch(ctx context.Context, sessions []*domain.PlannedSession) error {
	for _, s := range sessions {
		if err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.PlannedSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM planned_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanSession(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planned session: %w", ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.PlannedSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM planned_sessions ORDER BY date, hour, created_at`
	return r.list(ctx, query)
}

func (r *SQLiteSessionRepo) ListBySubject(ctx context.Context, subjectID string) ([]*domain.PlannedSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM planned_sessions
		WHERE subject_id = ? ORDER BY date, hour, created_at`
	return r.list(ctx, query, subjectID)
}

func (r *SQLiteSessionRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.PlannedSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM planned_sessions
		WHERE task_id = ? ORDER BY date, hour, created_at`
	return r.list(ctx, query, taskID)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.PlannedSession) error {
	query := `UPDATE planned_sessions SET date = ?, hour = ?, planned_min = ?,
		planned_amount = ?, completed = ?, actual_min = ?, actual_amount = ?,
		rating = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Date.Format(domain.DateLayout),
		nullableIntToValue(s.Hour),
		s.PlannedMin,
		s.PlannedAmount,
		boolToInt(s.Completed),
		nullableIntToValue(s.ActualMin),
		nullableIntToValue(s.ActualAmount),
		nullableIntToValue(s.Rating),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating planned session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM planned_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting planned session: %w", err)
	}
	return nil
}

// DeleteByTask removes every session of one task, used when a task's scope
// changes and its plan must be regenerated.
func (r *SQLiteSessionRepo) DeleteByTask(ctx context.Context, taskID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM planned_sessions WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("deleting sessions by task: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) list(ctx context.Context, query string, args ...any) ([]*domain.PlannedSession, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing planned sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.PlannedSession
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planned sessions: %w", err)
	}
	return sessions, nil
}

// scanSession scans one session via the given Scan function (row or rows).
func scanSession(scan func(dest ...any) error) (*domain.PlannedSession, error) {
	var s domain.PlannedSession
	var dateStr, createdAtStr, updatedAtStr string
	var hour, actualMin, actualAmount, rating sql.NullInt64
	var completed int

	err := scan(
		&s.ID, &s.SubjectID, &s.TaskID, &dateStr, &hour, &s.PlannedMin,
		&s.PlannedAmount, &completed, &actualMin, &actualAmount, &rating,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning planned session: %w", err)
	}

	s.Hour = nullableIntFromSQL(hour)
	s.ActualMin = nullableIntFromSQL(actualMin)
	s.ActualAmount = nullableIntFromSQL(actualAmount)
	s.Rating = nullableIntFromSQL(rating)
	s.Completed = intToBool(completed)

	if s.Date, err = parseDate(dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if s.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
