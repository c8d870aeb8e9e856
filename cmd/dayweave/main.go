package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/dayweave/internal/cli"
	"github.com/alexanderramin/dayweave/internal/db"
	"github.com/alexanderramin/dayweave/internal/feedback"
	"github.com/alexanderramin/dayweave/internal/learning"
	"github.com/alexanderramin/dayweave/internal/oracle"
	"github.com/alexanderramin/dayweave/internal/repository"
	"github.com/alexanderramin/dayweave/internal/selector"
	"github.com/alexanderramin/dayweave/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.dayweave/dayweave.db
	dbPath := os.Getenv("DAYWEAVE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dayweave", "dayweave.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	rotationRepo := repository.NewSQLiteRotationRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)
	stateRepo := repository.NewSQLiteLearningStateRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	var selectorOpts []selector.AdaptiveOption
	if os.Getenv("DAYWEAVE_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		selectorOpts = append(selectorOpts, selector.WithLogger(logger))
	}

	// Wire the selection pipeline
	analyzer := feedback.NewAnalyzer(feedbackRepo)
	phases := learning.NewManager(stateRepo)
	candidates := selector.NewCandidateSelector(templateRepo)
	adaptive := selector.NewAdaptiveSelector(candidates, rotationRepo, analyzer, phases, selectorOpts...)

	app := &cli.App{
		Assemble: service.NewAssembleService(adaptive, analyzer, phases, observer),
		Feedback: service.NewFeedbackService(feedbackRepo, phases, observer),
		Status:   service.NewStatusService(stateRepo, analyzer, phases, observer),
		Catalog:  service.NewCatalogService(templateRepo, observer),
	}

	// Detect interactive terminal for forms and spinners.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the planning oracle (only when enabled)
	oracleCfg := oracle.LoadConfig()
	if oracleCfg.Enabled {
		var oracleObserver oracle.Observer = oracle.NoopObserver{}
		if oracleCfg.LogCalls {
			oracleObserver = oracle.NewLogObserver(os.Stderr)
		}
		app.Oracle = oracle.NewOllamaOracle(oracleCfg, oracleObserver)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
