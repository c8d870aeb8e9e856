package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/db"
	"github.com/alexanderramin/dayweave/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

const feedbackColumns = `id, user_id, template_id, category, status, satisfaction,
	planned_date, completed_at, mode, archetype, day_of_week`

func (r *SQLiteFeedbackRepo) Append(ctx context.Context, rec *domain.FeedbackRecord) error {
	query := `INSERT INTO feedback_records (` + feedbackColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		nullableStrToValue(rec.TemplateID),
		string(rec.Category),
		string(rec.Status),
		nullableIntToValue(rec.Satisfaction),
		rec.PlannedDate.Format(timeLayout),
		rec.CompletedAt.Format(timeLayout),
		string(rec.Mode),
		string(rec.Archetype),
		rec.DayOfWeek,
	)
	if err != nil {
		return fmt.Errorf("appending feedback record: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.FeedbackRecord, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback_records
		WHERE user_id = ? AND completed_at >= ? ORDER BY completed_at`
	rows, err := r.db.QueryContext(ctx, query, userID, since.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("listing feedback since: %w", err)
	}
	defer rows.Close()
	return collectFeedback(rows)
}

func (r *SQLiteFeedbackRepo) ListByUser(ctx context.Context, userID string) ([]*domain.FeedbackRecord, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback_records
		WHERE user_id = ? ORDER BY completed_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()
	return collectFeedback(rows)
}

func collectFeedback(rows *sql.Rows) ([]*domain.FeedbackRecord, error) {
	var out []*domain.FeedbackRecord
	for rows.Next() {
		var rec domain.FeedbackRecord
		var templateID sql.NullString
		var satisfaction sql.NullInt64
		var category, status, mode, archetype, planned, completed string

		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&templateID,
			&category,
			&status,
			&satisfaction,
			&planned,
			&completed,
			&mode,
			&archetype,
			&rec.DayOfWeek,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning feedback record: %w", err)
		}

		if templateID.Valid {
			id := templateID.String
			rec.TemplateID = &id
		}
		if satisfaction.Valid {
			s := int(satisfaction.Int64)
			rec.Satisfaction = &s
		}
		rec.Category = domain.Category(category)
		rec.Status = domain.CompletionStatus(status)
		rec.Mode = domain.Mode(mode)
		rec.Archetype = domain.Archetype(archetype)
		if ts := parseNullableTime(sql.NullString{String: planned, Valid: true}); ts != nil {
			rec.PlannedDate = *ts
		}
		if ts := parseNullableTime(sql.NullString{String: completed, Valid: true}); ts != nil {
			rec.CompletedAt = *ts
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback records: %w", err)
	}
	return out, nil
}
