package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/feedback"
	"github.com/alexanderramin/dayweave/internal/learning"
	"github.com/alexanderramin/dayweave/internal/mapper"
	"github.com/alexanderramin/dayweave/internal/selector"
)

type assembleService struct {
	selector *selector.AdaptiveSelector
	analyzer *feedback.Analyzer
	phases   *learning.Manager
	observer UseCaseObserver
}

// NewAssembleService wires the hybrid plan assembler: the oracle skeleton
// keeps its structure, individual tasks are substituted from the library.
func NewAssembleService(
	sel *selector.AdaptiveSelector,
	analyzer *feedback.Analyzer,
	phases *learning.Manager,
	observers ...UseCaseObserver,
) AssembleService {
	return &assembleService{
		selector: sel,
		analyzer: analyzer,
		phases:   phases,
		observer: useCaseObserverOrNoop(observers),
	}
}

type taskOutcome int

const (
	outcomeReplaced taskOutcome = iota
	outcomeKept
	outcomeFailed
)

func (s *assembleService) Assemble(ctx context.Context, req app.AssembleRequest) (*app.AssembleResponse, error) {
	started := time.Now()
	now := started.UTC()
	if req.Now != nil {
		now = *req.Now
	}

	resp, err := s.assemble(ctx, req, now)

	fields := map[string]any{"user_id": req.UserID}
	if resp != nil {
		fields["total_tasks"] = resp.Stats.TotalTasks
		fields["replaced"] = resp.Stats.Replaced
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "assemble_plan",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return resp, err
}

func (s *assembleService) assemble(ctx context.Context, req app.AssembleRequest, now time.Time) (*app.AssembleResponse, error) {
	if err := validateAssembleRequest(req); err != nil {
		return nil, err
	}

	phase, err := s.phases.DeterminePhase(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	stats, err := s.analyzer.CategoryStats(ctx, req.UserID, feedback.DefaultWindowDays, now)
	if err != nil {
		return nil, fmt.Errorf("loading category stats: %w", err)
	}
	friction := make(map[domain.Category]domain.FrictionLevel, len(stats))
	for cat, st := range stats {
		friction[cat] = st.Level
	}

	resp := &app.AssembleResponse{
		GeneratedAt: now,
		UserID:      req.UserID,
		Phase:       phase,
		Plan:        app.AssembledPlan{Date: req.Skeleton.Date},
	}

	for _, block := range req.Skeleton.Blocks {
		out := app.PlanBlock{
			Name:      block.Name,
			StartTime: block.StartTime,
			EndTime:   block.EndTime,
			Zone:      block.Zone,
		}
		for _, draft := range block.Tasks {
			resp.Stats.TotalTasks++
			task, outcome := s.assembleTask(ctx, req, block, draft, friction, now)
			switch outcome {
			case outcomeReplaced:
				resp.Stats.Replaced++
			case outcomeKept:
				resp.Stats.KeptOriginal++
			case outcomeFailed:
				resp.Stats.Failed++
			}
			out.Tasks = append(out.Tasks, task)
		}
		resp.Plan.Blocks = append(resp.Plan.Blocks, out)
	}
	return resp, nil
}

// assembleTask resolves one draft task. Any failure, including a panic in
// the selection pipeline, degrades that single task to its original text and
// never aborts the rest of the plan.
func (s *assembleService) assembleTask(
	ctx context.Context,
	req app.AssembleRequest,
	block app.TimeBlock,
	draft app.DraftTask,
	friction map[domain.Category]domain.FrictionLevel,
	now time.Time,
) (task app.PlanTask, outcome taskOutcome) {
	task = app.PlanTask{
		Title:       draft.Title,
		Description: draft.Description,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Priority:    draft.Priority,
		Source:      domain.SourceOriginal,
	}

	defer func() {
		if r := recover(); r != nil {
			s.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:    "assemble_task_panic",
				Success: false,
				Err:     fmt.Errorf("task %q: %v", draft.Title, r),
				Fields:  map[string]any{"user_id": req.UserID},
			})
			outcome = outcomeFailed
		}
	}()

	category, ok := mapper.Map(draft.Title, draft.TypeHint, block.Zone)
	if !ok {
		return task, outcomeKept
	}
	task.Category = category

	picks, err := s.selector.Select(ctx, selector.SelectRequest{
		UserID:      req.UserID,
		Category:    category,
		Archetype:   req.Archetype,
		Mode:        req.Mode,
		TimeOfDay:   timeOfDayFor(draft.StartTime, block.StartTime),
		SlotMinutes: slotMinutes(draft, block),
		Count:       1,
		Friction:    friction[category],
		Now:         now,
	})
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:    "assemble_task_failed",
			Success: false,
			Err:     err,
			Fields:  map[string]any{"user_id": req.UserID, "category": string(category)},
		})
		return task, outcomeFailed
	}
	if len(picks) == 0 {
		// No library coverage for this category; the draft stands.
		return task, outcomeKept
	}

	pick := picks[0]
	score := pick.Score
	task.Title = pick.Template.Name
	task.Description = pick.Template.Description
	task.Source = domain.SourceLibrary
	task.TemplateID = pick.Template.ID
	task.VariationGroup = pick.Template.VariationGroup
	task.Score = &score
	task.Reasons = pick.Reasons
	return task, outcomeReplaced
}

func validateAssembleRequest(req app.AssembleRequest) error {
	if req.UserID == "" {
		return &app.AssembleError{Code: app.ErrInvalidSkeleton, Message: "user_id is required"}
	}
	if len(req.Skeleton.Blocks) == 0 {
		return &app.AssembleError{Code: app.ErrInvalidSkeleton, Message: "skeleton has no time blocks"}
	}
	for i, b := range req.Skeleton.Blocks {
		if b.StartTime == "" || b.EndTime == "" {
			return &app.AssembleError{
				Code:    app.ErrInvalidSkeleton,
				Message: fmt.Sprintf("block %d is missing start or end time", i),
			}
		}
	}
	if !domain.ValidArchetypes[req.Archetype] {
		return &app.AssembleError{
			Code:    app.ErrUnknownArchetype,
			Message: fmt.Sprintf("unknown archetype %q", req.Archetype),
		}
	}
	if !domain.ValidModes[req.Mode] {
		return &app.AssembleError{
			Code:    app.ErrUnknownMode,
			Message: fmt.Sprintf("unknown mode %q", req.Mode),
		}
	}
	return nil
}

// slotMinutes derives the draft's slot duration from its HH:MM start and end
// times, falling back to the enclosing block's bounds. Unparseable or inverted
// ranges yield 0, which leaves selection unconstrained.
func slotMinutes(draft app.DraftTask, block app.TimeBlock) int {
	start, end := draft.StartTime, draft.EndTime
	if start == "" || end == "" {
		start, end = block.StartTime, block.EndTime
	}
	from, err := time.Parse("15:04", start)
	if err != nil {
		return 0
	}
	to, err := time.Parse("15:04", end)
	if err != nil {
		return 0
	}
	minutes := int(to.Sub(from).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// timeOfDayFor buckets an HH:MM start time. The task's own start wins; the
// block start is the fallback. Unparseable times match any slot.
func timeOfDayFor(taskStart, blockStart string) domain.TimeOfDay {
	start := taskStart
	if start == "" {
		start = blockStart
	}
	t, err := time.Parse("15:04", start)
	if err != nil {
		return domain.TimeAny
	}
	switch {
	case t.Hour() < 12:
		return domain.TimeMorning
	case t.Hour() < 17:
		return domain.TimeAfternoon
	default:
		return domain.TimeEvening
	}
}
