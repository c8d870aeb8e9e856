package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayweave/internal/cli/formatter"
	"github.com/alexanderramin/dayweave/internal/domain"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the activity template catalog",
	}

	cmd.AddCommand(newCatalogImportCmd(a), newCatalogListCmd(a))
	return cmd
}

func newCatalogImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import templates from a catalog JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Catalog.Import(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render(fmt.Sprintf("✔ Imported %d templates", result.Imported)),
				formatter.Dim(fmt.Sprintf("(%d already present)", result.Skipped)),
			)
			return nil
		},
	}
}

func newCatalogListCmd(a *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var templates []*domain.Template
			var err error
			if category != "" {
				templates, err = a.Catalog.ListByCategory(ctx, domain.Category(category))
			} else {
				templates, err = a.Catalog.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(templates) == 0 {
				fmt.Println(formatter.Dim("No templates in the library."))
				return nil
			}

			var b strings.Builder
			for _, t := range templates {
				active := formatter.StyleGreen.Render("●")
				if !t.Active {
					active = formatter.Dim("○")
				}
				b.WriteString(fmt.Sprintf("%s %s  %s  %s %s\n",
					active,
					formatter.Bold(t.Name),
					formatter.Dim(string(t.Category)),
					formatter.StyleBlue.Render(formatter.FormatMinutes(t.DurationMin)),
					formatter.TruncID(t.ID),
				))
			}
			fmt.Print(formatter.RenderBox("Template Library", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only one category")
	return cmd
}
