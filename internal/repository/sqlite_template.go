package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/dayweave/internal/db"
	"github.com/alexanderramin/dayweave/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
// The catalog is read-mostly: rows are written by catalog import only.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: conn}
}

const templateColumns = `id, category, subcategory, name, description, duration_min,
	difficulty, archetype_fit, mode_fit, variation_group, time_of_day, tags, active, created_at`

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.Template) error {
	archFit, err := marshalJSONColumn(t.ArchetypeFit)
	if err != nil {
		return fmt.Errorf("template %s: %w", t.ID, err)
	}
	modeFit, err := marshalJSONColumn(t.ModeFit)
	if err != nil {
		return fmt.Errorf("template %s: %w", t.ID, err)
	}
	tags, err := marshalJSONColumn(t.Tags)
	if err != nil {
		return fmt.Errorf("template %s: %w", t.ID, err)
	}

	query := `INSERT INTO templates (` + templateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		string(t.Category),
		t.Subcategory,
		t.Name,
		t.Description,
		t.DurationMin,
		t.Difficulty,
		archFit,
		modeFit,
		t.VariationGroup,
		string(t.TimeOfDayPref),
		tags,
		boolToInt(t.Active),
		t.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTemplate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTemplateRepo) ListByCategory(ctx context.Context, category domain.Category, activeOnly bool) ([]*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates WHERE category = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("listing templates by category: %w", err)
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *SQLiteTemplateRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM templates`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY category, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()
	return collectTemplates(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*domain.Template, error) {
	var t domain.Template
	var category, tod, archFit, modeFit, tags, createdAt string
	var active int

	err := row.Scan(
		&t.ID,
		&category,
		&t.Subcategory,
		&t.Name,
		&t.Description,
		&t.DurationMin,
		&t.Difficulty,
		&archFit,
		&modeFit,
		&t.VariationGroup,
		&tod,
		&tags,
		&active,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning template: %w", err)
	}

	t.Category = domain.Category(category)
	t.TimeOfDayPref = domain.TimeOfDay(tod)
	t.Active = active != 0
	if err := unmarshalJSONColumn(archFit, &t.ArchetypeFit); err != nil {
		return nil, fmt.Errorf("template %s archetype_fit: %w", t.ID, err)
	}
	if err := unmarshalJSONColumn(modeFit, &t.ModeFit); err != nil {
		return nil, fmt.Errorf("template %s mode_fit: %w", t.ID, err)
	}
	if err := unmarshalJSONColumn(tags, &t.Tags); err != nil {
		return nil, fmt.Errorf("template %s tags: %w", t.ID, err)
	}
	if ts := parseNullableTime(sql.NullString{String: createdAt, Valid: true}); ts != nil {
		t.CreatedAt = *ts
	}
	return &t, nil
}

func collectTemplates(rows *sql.Rows) ([]*domain.Template, error) {
	var out []*domain.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return out, nil
}
