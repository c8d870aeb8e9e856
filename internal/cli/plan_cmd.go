package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/cli/formatter"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/oracle"
)

func newPlanCmd(a *App) *cobra.Command {
	var userID, archetype, mode, skeletonPath, date, wake, sleep string
	var view bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Assemble a personalized day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			skeleton, err := loadSkeleton(ctx, a, skeletonPath, oracle.SkeletonRequest{
				UserID:    userID,
				Date:      date,
				Archetype: domain.Archetype(archetype),
				Mode:      domain.Mode(mode),
				WakeTime:  wake,
				SleepTime: sleep,
			})
			if err != nil {
				return err
			}
			if skeleton.Date == "" {
				skeleton.Date = date
			}

			resp, err := a.Assemble.Assemble(ctx, app.AssembleRequest{
				UserID:    userID,
				Archetype: domain.Archetype(archetype),
				Mode:      domain.Mode(mode),
				Skeleton:  *skeleton,
			})
			if err != nil {
				return err
			}

			if view && a.interactive() {
				return runPlanView(resp)
			}
			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to personalize for")
	cmd.Flags().Var(archetypeFlag(&archetype), "archetype", "User archetype")
	cmd.Flags().Var(modeFlag(&mode), "mode", "Day mode")
	cmd.Flags().StringVar(&skeletonPath, "skeleton", "", "Path to a skeleton JSON file (skips the planning oracle)")
	cmd.Flags().StringVar(&date, "date", "", "Plan date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&wake, "wake", "", "Wake time hint for the oracle (HH:MM)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Sleep time hint for the oracle (HH:MM)")
	cmd.Flags().BoolVar(&view, "view", false, "Browse the plan interactively")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// loadSkeleton reads the skeleton from a file when one is given, otherwise
// asks the planning oracle for a draft.
func loadSkeleton(ctx context.Context, a *App, path string, req oracle.SkeletonRequest) (*app.Skeleton, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading skeleton: %w", err)
		}
		var skeleton app.Skeleton
		if err := json.Unmarshal(data, &skeleton); err != nil {
			return nil, fmt.Errorf("parsing skeleton: %w", err)
		}
		return &skeleton, nil
	}

	if a.Oracle == nil {
		return nil, fmt.Errorf("no skeleton file given and the planning oracle is disabled (set DAYWEAVE_ORACLE_ENABLED=1 or pass --skeleton)")
	}

	stop := func() {}
	if a.interactive() {
		stop = formatter.StartSpinner("Drafting day skeleton...")
	}
	skeleton, err := a.Oracle.ProposeSkeleton(ctx, req)
	stop()
	if err != nil {
		return nil, fmt.Errorf("drafting skeleton: %w", err)
	}
	return skeleton, nil
}
