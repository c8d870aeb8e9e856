package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dayweave/internal/db"
	"github.com/alexanderramin/dayweave/internal/domain"
)

// SQLiteLearningStateRepo implements LearningStateRepo using a SQLite database.
type SQLiteLearningStateRepo struct {
	db db.DBTX
}

// NewSQLiteLearningStateRepo creates a new SQLiteLearningStateRepo.
func NewSQLiteLearningStateRepo(conn db.DBTX) *SQLiteLearningStateRepo {
	return &SQLiteLearningStateRepo{db: conn}
}

func (r *SQLiteLearningStateRepo) Get(ctx context.Context, userID string) (*domain.UserLearningState, error) {
	query := `SELECT user_id, tasks_seen, tasks_completed, first_activity_at, phase
		FROM user_learning_state WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var s domain.UserLearningState
	var firstActivity sql.NullString
	var phase string
	err := row.Scan(&s.UserID, &s.TasksSeen, &s.TasksCompleted, &firstActivity, &phase)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("learning state %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning learning state: %w", err)
	}
	s.FirstActivityAt = parseNullableTime(firstActivity)
	s.Phase = domain.LearningPhase(phase)
	return &s, nil
}

// Upsert writes the full state row. The stored phase never moves backward:
// on conflict the further of the stored and incoming phases is kept.
func (r *SQLiteLearningStateRepo) Upsert(ctx context.Context, s *domain.UserLearningState) error {
	existing, err := r.Get(ctx, s.UserID)
	if err == nil {
		s.Phase = domain.FurtherPhase(existing.Phase, s.Phase)
	}

	query := `INSERT OR REPLACE INTO user_learning_state
		(user_id, tasks_seen, tasks_completed, first_activity_at, phase)
		VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.UserID,
		s.TasksSeen,
		s.TasksCompleted,
		nullableTimeToString(s.FirstActivityAt),
		string(s.Phase),
	)
	if err != nil {
		return fmt.Errorf("upserting learning state: %w", err)
	}
	return nil
}
