package domain

import "time"

// UserLearningState is the materialized per-user learning progression.
// Counters advance on every feedback ingestion; the phase never regresses.
type UserLearningState struct {
	UserID          string
	TasksSeen       int
	TasksCompleted  int
	FirstActivityAt *time.Time
	Phase           LearningPhase
}

// DaysSinceFirstActivity returns whole days since the user's first recorded
// activity, or 0 when no activity exists yet.
func (s *UserLearningState) DaysSinceFirstActivity(now time.Time) int {
	if s.FirstActivityAt == nil {
		return 0
	}
	d := int(now.Sub(*s.FirstActivityAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
