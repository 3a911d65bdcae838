package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
)

// taskColumns is the canonical SELECT column list for study_tasks.
const taskColumns = `id, subject_id, description, unit, amount, estimated_min,
		completed, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.StudyTask) error {
	query := `INSERT INTO study_tasks (id, subject_id, description, unit, amount,
		estimated_min, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.SubjectID,
		t.Description,
		string(t.Unit),
		t.Amount,
		t.EstimatedMin,
		boolToInt(t.Completed),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.StudyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM study_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study task: %w", ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTaskRepo) ListBySubject(ctx context.Context, subjectID string) ([]*domain.StudyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM study_tasks WHERE subject_id = ? ORDER BY created_at`
	return r.list(ctx, query, subjectID)
}

func (r *SQLiteTaskRepo) ListAll(ctx context.Context) ([]*domain.StudyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM study_tasks ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.StudyTask) error {
	query := `UPDATE study_tasks SET description = ?, unit = ?, amount = ?,
		estimated_min = ?, completed = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Description,
		string(t.Unit),
		t.Amount,
		t.EstimatedMin,
		boolToInt(t.Completed),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating study task: %w", err)
	}
	return nil
}

// Delete removes the task; its sessions cascade via foreign keys.
func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM study_tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting study task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) list(ctx context.Context, query string, args ...any) ([]*domain.StudyTask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing study tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.StudyTask
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study tasks: %w", err)
	}
	return tasks, nil
}

// scanTask scans one task via the given Scan function (row or rows).
func scanTask(scan func(dest ...any) error) (*domain.StudyTask, error) {
	var t domain.StudyTask
	var unitStr, createdAtStr, updatedAtStr string
	var completed int

	err := scan(
		&t.ID, &t.SubjectID, &t.Description, &unitStr, &t.Amount, &t.EstimatedMin,
		&completed, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning study task: %w", err)
	}

	t.Unit = domain.Unit(unitStr)
	t.Completed = intToBool(completed)
	if t.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}
