package domain

import "time"

// RotationEntry tracks the last use of a variation group by a user.
// Rotation only ever excludes candidates; the cooldown is relaxed when
// exclusion would leave nothing to select.
type RotationEntry struct {
	UserID         string
	VariationGroup string
	LastUsedAt     time.Time
	UseCount       int
}

// DefaultRotationWindow is the cooldown before a variation group may
// reappear in a user's plan.
const DefaultRotationWindow = 48 * time.Hour
