package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/db"
	"github.com/alexanderramin/dayweave/internal/domain"
)

// SQLiteRotationRepo implements RotationRepo using a SQLite database.
// Writes are single-row upserts; last write wins is acceptable here since
// a few seconds of staleness only affects which variation is excluded.
type SQLiteRotationRepo struct {
	db db.DBTX
}

// NewSQLiteRotationRepo creates a new SQLiteRotationRepo.
func NewSQLiteRotationRepo(conn db.DBTX) *SQLiteRotationRepo {
	return &SQLiteRotationRepo{db: conn}
}

func (r *SQLiteRotationRepo) ExcludedGroups(ctx context.Context, userID string, window time.Duration, now time.Time) (map[string]bool, error) {
	cutoff := now.Add(-window).Format(timeLayout)
	query := `SELECT variation_group FROM rotation_entries
		WHERE user_id = ? AND last_used_at > ?`
	rows, err := r.db.QueryContext(ctx, query, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing excluded groups: %w", err)
	}
	defer rows.Close()

	excluded := make(map[string]bool)
	for rows.Next() {
		var group string
		if err := rows.Scan(&group); err != nil {
			return nil, fmt.Errorf("scanning rotation entry: %w", err)
		}
		excluded[group] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rotation entries: %w", err)
	}
	return excluded, nil
}

func (r *SQLiteRotationRepo) RecordUsage(ctx context.Context, userID, variationGroup string, now time.Time) error {
	query := `INSERT INTO rotation_entries (user_id, variation_group, last_used_at, use_count)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(user_id, variation_group)
		DO UPDATE SET last_used_at = excluded.last_used_at, use_count = use_count + 1`
	_, err := r.db.ExecContext(ctx, query, userID, variationGroup, now.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("recording variation usage: %w", err)
	}
	return nil
}

func (r *SQLiteRotationRepo) Get(ctx context.Context, userID, variationGroup string) (*domain.RotationEntry, error) {
	query := `SELECT user_id, variation_group, last_used_at, use_count
		FROM rotation_entries WHERE user_id = ? AND variation_group = ?`
	row := r.db.QueryRowContext(ctx, query, userID, variationGroup)

	var e domain.RotationEntry
	var lastUsed string
	err := row.Scan(&e.UserID, &e.VariationGroup, &lastUsed, &e.UseCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("rotation entry %s/%s: %w", userID, variationGroup, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning rotation entry: %w", err)
	}
	if ts := parseNullableTime(sql.NullString{String: lastUsed, Valid: true}); ts != nil {
		e.LastUsedAt = *ts
	}
	return &e, nil
}
