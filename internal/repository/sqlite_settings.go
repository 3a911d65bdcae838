package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single-row settings
// table. Get never fails on an empty table: it falls back to defaults so a
// fresh database plans sensibly before the user touches settings.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT daily_capacity_min, blocked_weekdays FROM settings WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var capacity int
	var blockedStr string
	if err := row.Scan(&capacity, &blockedStr); err != nil {
		if err == sql.ErrNoRows {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}

	blocked, err := domain.ParseBlockedWeekdays(blockedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing blocked weekdays: %w", err)
	}
	return &domain.Settings{DailyCapacityMin: capacity, BlockedWeekdays: blocked}, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO settings (id, daily_capacity_min, blocked_weekdays, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			daily_capacity_min = excluded.daily_capacity_min,
			blocked_weekdays   = excluded.blocked_weekdays,
			updated_at         = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, s.DailyCapacityMin, s.BlockedWeekdaysString(), nowUTC())
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
