package app

import (
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
)

type AssembleRequest struct {
	UserID    string
	Archetype domain.Archetype
	Mode      domain.Mode
	Skeleton  Skeleton
	Now       *time.Time // nil uses wall clock; tests pin it
}

// PlanTask is a skeleton task after assembly, annotated with provenance.
// Start/end times and priority always come from the original draft.
type PlanTask struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Priority    int
	Category    domain.Category // empty when unmapped
	Source      domain.TaskSource

	// Set only when Source is library.
	TemplateID     string
	VariationGroup string
	Score          *float64
	Reasons        []SelectionReason
}

type PlanBlock struct {
	Name      string
	StartTime string
	EndTime   string
	Zone      domain.ZoneType
	Tasks     []PlanTask
}

type AssembledPlan struct {
	Date   string
	Blocks []PlanBlock
}

// AssemblyStats aggregates per-task outcomes for one assembly run.
type AssemblyStats struct {
	TotalTasks   int
	Replaced     int
	KeptOriginal int
	Failed       int
}

type AssembleResponse struct {
	GeneratedAt time.Time
	UserID      string
	Phase       domain.LearningPhase
	Plan        AssembledPlan
	Stats       AssemblyStats
}

type FeedbackRequest struct {
	UserID       string
	TemplateID   *string
	Category     domain.Category
	Status       domain.CompletionStatus
	Satisfaction *int
	PlannedDate  time.Time
	Mode         domain.Mode
	Archetype    domain.Archetype
	DayOfWeek    string
	Now          *time.Time
}

type CategoryStatus struct {
	Category        domain.Category
	SeenCount       int
	CompletedCount  int
	CompletionRate  float64
	AvgSatisfaction float64
	FrictionScore   float64
	FrictionLevel   domain.FrictionLevel
	PriorityWeight  float64
}

type StatusResponse struct {
	UserID         string
	Phase          domain.LearningPhase
	TasksSeen      int
	TasksCompleted int
	DaysActive     int
	Categories     []CategoryStatus
}
