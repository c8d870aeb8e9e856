package domain

type Category string

const (
	CategoryWork        Category = "work"
	CategoryMovement    Category = "movement"
	CategoryNutrition   Category = "nutrition"
	CategoryHydration   Category = "hydration"
	CategoryRecovery    Category = "recovery"
	CategoryMindfulness Category = "mindfulness"
	CategorySocial      Category = "social"
)

// ValidCategories is the canonical set of library categories.
var ValidCategories = map[Category]bool{
	CategoryWork: true, CategoryMovement: true, CategoryNutrition: true,
	CategoryHydration: true, CategoryRecovery: true,
	CategoryMindfulness: true, CategorySocial: true,
}

type Archetype string

const (
	ArchetypePeakPerformer Archetype = "peak_performer"
	ArchetypeSteadyBuilder Archetype = "steady_builder"
	ArchetypeExplorer      Archetype = "explorer"
	ArchetypeMinimalist    Archetype = "minimalist"
)

// ValidArchetypes is the canonical set of accepted archetype strings.
var ValidArchetypes = map[Archetype]bool{
	ArchetypePeakPerformer: true, ArchetypeSteadyBuilder: true,
	ArchetypeExplorer: true, ArchetypeMinimalist: true,
}

type Mode string

const (
	ModeStandard   Mode = "standard"
	ModeHighEnergy Mode = "high_energy"
	ModeLowEnergy  Mode = "low_energy"
	ModeTravel     Mode = "travel"
	ModeFasting    Mode = "fasting"
)

// ValidModes is the canonical set of accepted mode strings.
var ValidModes = map[Mode]bool{
	ModeStandard: true, ModeHighEnergy: true, ModeLowEnergy: true,
	ModeTravel: true, ModeFasting: true,
}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeAny       TimeOfDay = "any"
)

type ZoneType string

const (
	ZonePeak        ZoneType = "peak"
	ZoneMaintenance ZoneType = "maintenance"
	ZoneRecovery    ZoneType = "recovery"
)

type CompletionStatus string

const (
	StatusCompleted CompletionStatus = "completed"
	StatusPartial   CompletionStatus = "partial"
	StatusSkipped   CompletionStatus = "skipped"
)

// ValidCompletionStatuses is the canonical set of feedback statuses.
var ValidCompletionStatuses = map[CompletionStatus]bool{
	StatusCompleted: true, StatusPartial: true, StatusSkipped: true,
}

type LearningPhase string

const (
	PhaseDiscovery     LearningPhase = "discovery"
	PhaseEstablishment LearningPhase = "establishment"
	PhaseMastery       LearningPhase = "mastery"
)

// PhaseRank orders phases for monotonic progression checks.
func PhaseRank(p LearningPhase) int {
	switch p {
	case PhaseEstablishment:
		return 1
	case PhaseMastery:
		return 2
	default:
		return 0
	}
}

// FurtherPhase returns whichever of the two phases is more advanced.
func FurtherPhase(a, b LearningPhase) LearningPhase {
	if PhaseRank(b) > PhaseRank(a) {
		return b
	}
	return a
}

type FrictionLevel string

const (
	FrictionLow    FrictionLevel = "low"
	FrictionMedium FrictionLevel = "medium"
	FrictionHigh   FrictionLevel = "high"
)

type TaskSource string

const (
	SourceLibrary  TaskSource = "library"
	SourceOriginal TaskSource = "original"
)
