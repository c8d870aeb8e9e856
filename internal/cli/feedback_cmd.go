package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/cli/formatter"
	"github.com/alexanderramin/dayweave/internal/domain"
)

func newFeedbackCmd(a *App) *cobra.Command {
	var userID, templateID, category, status, date, archetype, mode string
	var satisfaction int

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record how a planned task went",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing fields fall through to a form on a terminal.
			if category == "" && a.interactive() {
				var satStr string
				if err := feedbackForm(&category, &status, &satStr).Run(); err != nil {
					return err
				}
				if satStr != "" {
					satisfaction, _ = strconv.Atoi(satStr)
				}
			}

			plannedDate := time.Now().UTC().Truncate(24 * time.Hour)
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("use YYYY-MM-DD for --date")
				}
				plannedDate = parsed
			}

			req := app.FeedbackRequest{
				UserID:      userID,
				Category:    domain.Category(category),
				Status:      domain.CompletionStatus(status),
				PlannedDate: plannedDate,
				Archetype:   domain.Archetype(archetype),
				Mode:        domain.Mode(mode),
			}
			if templateID != "" {
				req.TemplateID = &templateID
			}
			if satisfaction != 0 {
				req.Satisfaction = &satisfaction
			}

			if err := a.Feedback.Record(context.Background(), req); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✔ Feedback recorded"))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&templateID, "template", "", "Template ID of the completed task (omit for kept-original tasks)")
	cmd.Flags().StringVar(&category, "category", "", "Task category")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusCompleted), "Completion status: completed, partial, or skipped")
	cmd.Flags().IntVar(&satisfaction, "satisfaction", 0, "Satisfaction rating 1-5 (0 omits the rating)")
	cmd.Flags().StringVar(&date, "date", "", "Planned date (YYYY-MM-DD, default today)")
	cmd.Flags().Var(archetypeFlag(&archetype), "archetype", "User archetype")
	cmd.Flags().Var(modeFlag(&mode), "mode", "Day mode")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// feedbackForm collects category, status, and an optional satisfaction rating.
func feedbackForm(category, status, satisfaction *string) *huh.Form {
	categories := make([]string, 0, len(domain.ValidCategories))
	for cat := range domain.ValidCategories {
		categories = append(categories, string(cat))
	}
	sort.Strings(categories)

	categoryOptions := make([]huh.Option[string], 0, len(categories))
	for _, cat := range categories {
		categoryOptions = append(categoryOptions, huh.NewOption(formatter.Capitalize(cat), cat))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which category?").
				Options(categoryOptions...).
				Value(category),
			huh.NewSelect[string]().
				Title("How did it go?").
				Options(
					huh.NewOption("Completed", string(domain.StatusCompleted)),
					huh.NewOption("Partial", string(domain.StatusPartial)),
					huh.NewOption("Skipped", string(domain.StatusSkipped)),
				).
				Value(status),
			huh.NewInput().
				Title("Satisfaction 1-5 (blank to skip)").
				Placeholder("4").
				Value(satisfaction).
				Validate(validateOptionalRating),
		),
	).WithTheme(dayweaveHuhTheme()).WithShowHelp(false)
}

// validateOptionalRating accepts empty or an integer in [1,5].
func validateOptionalRating(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 5 {
		return fmt.Errorf("enter a rating between 1 and 5")
	}
	return nil
}
