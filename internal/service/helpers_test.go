package service

import (
	"testing"

	"github.com/alexanderramin/dayweave/internal/feedback"
	"github.com/alexanderramin/dayweave/internal/learning"
	"github.com/alexanderramin/dayweave/internal/repository"
	"github.com/alexanderramin/dayweave/internal/selector"
	"github.com/alexanderramin/dayweave/internal/testutil"
)

// testEnv wires every service over one in-memory database.
type testEnv struct {
	templates *repository.SQLiteTemplateRepo
	rotation  *repository.SQLiteRotationRepo
	records   *repository.SQLiteFeedbackRepo
	states    *repository.SQLiteLearningStateRepo

	analyzer *feedback.Analyzer
	phases   *learning.Manager

	assemble AssembleService
	feedback FeedbackService
	status   StatusService
	catalog  CatalogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conn := testutil.NewTestDB(t)

	env := &testEnv{
		templates: repository.NewSQLiteTemplateRepo(conn),
		rotation:  repository.NewSQLiteRotationRepo(conn),
		records:   repository.NewSQLiteFeedbackRepo(conn),
		states:    repository.NewSQLiteLearningStateRepo(conn),
	}
	env.analyzer = feedback.NewAnalyzer(env.records)
	env.phases = learning.NewManager(env.states)

	candidates := selector.NewCandidateSelector(env.templates, selector.WithJitterSeed(1))
	adaptive := selector.NewAdaptiveSelector(candidates, env.rotation, env.analyzer, env.phases)

	env.assemble = NewAssembleService(adaptive, env.analyzer, env.phases)
	env.feedback = NewFeedbackService(env.records, env.phases)
	env.status = NewStatusService(env.states, env.analyzer, env.phases)
	env.catalog = NewCatalogService(env.templates)
	return env
}
