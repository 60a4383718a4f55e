package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rclanton/strata/internal/database"
	"github.com/rclanton/strata/internal/models"
)

// WellRepository defines data access for wells.
type WellRepository interface {
	// ListByOwner returns every well in one ownership scope. Returns an
	// empty slice when the owner has none (not an error).
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Well, error)

	// GetByID returns one well. Returns nil, nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Well, error)
}

type wellRepository struct {
	db *database.Database
}

// NewWellRepository creates a new WellRepository backed by Postgres.
func NewWellRepository(db *database.Database) WellRepository {
	return &wellRepository{db: db}
}

const wellColumns = `
	id,
	owner_id,
	api_number,
	name,
	operator,
	meridian,
	surface_section,
	surface_township,
	surface_range,
	bottom_section,
	bottom_township,
	bottom_range,
	lateral_sections,
	horizontal,
	created_at,
	updated_at
`

func scanWell(row pgx.Row) (models.Well, error) {
	var w models.Well
	err := row.Scan(
		&w.ID,
		&w.OwnerID,
		&w.APINumber,
		&w.Name,
		&w.Operator,
		&w.Meridian,
		&w.SurfaceSection,
		&w.SurfaceTownship,
		&w.SurfaceRange,
		&w.BottomSection,
		&w.BottomTownship,
		&w.BottomRange,
		&w.LateralSections,
		&w.Horizontal,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

// ListByOwner fetches the owner's wells ordered by API number so passes over
// unchanged data iterate deterministically.
func (r *wellRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Well, error) {
	query := `SELECT ` + wellColumns + `
		FROM wells
		WHERE owner_id = $1
		ORDER BY api_number, id`

	rows, err := r.db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wells for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	wells := []models.Well{}
	for rows.Next() {
		w, err := scanWell(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan well row: %w", err)
		}
		wells = append(wells, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating well rows: %w", err)
	}

	return wells, nil
}

func (r *wellRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Well, error) {
	query := `SELECT ` + wellColumns + `
		FROM wells
		WHERE id = $1`

	w, err := scanWell(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query well %s: %w", id, err)
	}

	return &w, nil
}
