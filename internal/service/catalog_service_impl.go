package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/catalog"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/repository"
)

type catalogService struct {
	templates repository.TemplateRepo
	observer  UseCaseObserver
}

// NewCatalogService wires catalog import and template listing.
func NewCatalogService(templates repository.TemplateRepo, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		templates: templates,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Import loads a catalog file and creates any templates not yet present.
// Already-known template IDs are skipped, so re-importing the same catalog
// is safe.
func (s *catalogService) Import(ctx context.Context, filePath string) (*CatalogImportResult, error) {
	started := time.Now()
	result, err := s.importFile(ctx, filePath, started.UTC())
	fields := map[string]any{"path": filePath}
	if result != nil {
		fields["imported"] = result.Imported
		fields["skipped"] = result.Skipped
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "import_catalog",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
	return result, err
}

func (s *catalogService) importFile(ctx context.Context, filePath string, now time.Time) (*CatalogImportResult, error) {
	schema, err := catalog.LoadFile(filePath)
	if err != nil {
		return nil, err
	}

	result := &CatalogImportResult{}
	for _, cfg := range schema.Templates {
		_, err := s.templates.GetByID(ctx, cfg.ID)
		if err == nil {
			result.Skipped++
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return result, fmt.Errorf("checking template %s: %w", cfg.ID, err)
		}

		t := catalog.ToDomain(cfg, now)
		if err := s.templates.Create(ctx, &t); err != nil {
			return result, fmt.Errorf("creating template %s: %w", cfg.ID, err)
		}
		result.Imported++
	}
	return result, nil
}

func (s *catalogService) List(ctx context.Context) ([]*domain.Template, error) {
	return s.templates.List(ctx, false)
}

func (s *catalogService) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Template, error) {
	if !domain.ValidCategories[category] {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return s.templates.ListByCategory(ctx, category, false)
}
