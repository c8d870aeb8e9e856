package service

import (
	"context"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
)

type AssembleService interface {
	Assemble(ctx context.Context, req app.AssembleRequest) (*app.AssembleResponse, error)
}

type FeedbackService interface {
	// Record ingests one completion record. Fire-and-forget: persistence
	// failures are logged, never surfaced.
	Record(ctx context.Context, req app.FeedbackRequest) error
}

type StatusService interface {
	GetStatus(ctx context.Context, userID string) (*app.StatusResponse, error)
}

// CatalogImportResult holds the outcome of a catalog import.
type CatalogImportResult struct {
	Imported int
	Skipped  int
}

type CatalogService interface {
	Import(ctx context.Context, filePath string) (*CatalogImportResult, error)
	List(ctx context.Context) ([]*domain.Template, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Template, error)
}
