package domain

import (
	"fmt"
	"time"
)

// FeedbackRecord is one completion observation for a planned task.
// Records are append-only; statistics are derived on read.
type FeedbackRecord struct {
	ID           string
	UserID       string
	TemplateID   *string // nil when the original oracle task was kept
	Category     Category
	Status       CompletionStatus
	Satisfaction *int // 1..5, nil when the user gave no rating
	PlannedDate  time.Time
	CompletedAt  time.Time
	Mode         Mode
	Archetype    Archetype
	DayOfWeek    string
}

// Validate checks field-level constraints before the record is appended.
func (r *FeedbackRecord) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("feedback record: user_id is required")
	}
	if !ValidCategories[r.Category] {
		return fmt.Errorf("feedback record: unknown category %q", r.Category)
	}
	if !ValidCompletionStatuses[r.Status] {
		return fmt.Errorf("feedback record: unknown completion status %q", r.Status)
	}
	if r.Satisfaction != nil && (*r.Satisfaction < 1 || *r.Satisfaction > 5) {
		return fmt.Errorf("feedback record: satisfaction rating %d out of range [1,5]", *r.Satisfaction)
	}
	return nil
}
