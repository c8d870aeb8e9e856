package app

type SelectionReasonCode string

const (
	ReasonArchetypeFit     SelectionReasonCode = "ARCHETYPE_FIT"
	ReasonModeFit          SelectionReasonCode = "MODE_FIT"
	ReasonRotationRelaxed  SelectionReasonCode = "ROTATION_RELAXED"
	ReasonUntriedBonus     SelectionReasonCode = "UNTRIED_BONUS"
	ReasonFavorite         SelectionReasonCode = "FAVORITE"
	ReasonTopRanked        SelectionReasonCode = "TOP_RANKED"
	ReasonNovelFill        SelectionReasonCode = "NOVEL_FILL"
	ReasonFrictionSimplify SelectionReasonCode = "FRICTION_SIMPLIFY"
)

type SelectionReason struct {
	Code        SelectionReasonCode
	Message     string
	WeightDelta *float64
}

type AssembleErrorCode string

const (
	ErrInvalidSkeleton  AssembleErrorCode = "INVALID_SKELETON"
	ErrUnknownArchetype AssembleErrorCode = "UNKNOWN_ARCHETYPE"
	ErrUnknownMode      AssembleErrorCode = "UNKNOWN_MODE"
)

// AssembleError is a validation failure rejected before any per-task work.
type AssembleError struct {
	Code    AssembleErrorCode
	Message string
}

func (e *AssembleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
