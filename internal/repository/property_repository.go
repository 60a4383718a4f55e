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

// PropertyRepository defines data access for mineral properties.
type PropertyRepository interface {
	// ListByOwner returns every property in one ownership scope. Returns an
	// empty slice when the owner has none (not an error).
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error)

	// GetByID returns one property. Returns nil, nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new PropertyRepository backed by Postgres.
func NewPropertyRepository(db *database.Database) PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `
	id,
	owner_id,
	external_id,
	legal_description,
	county,
	section,
	township,
	range_value,
	meridian,
	created_at,
	updated_at
`

func scanProperty(row pgx.Row) (models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.ExternalID,
		&p.LegalDescription,
		&p.County,
		&p.Section,
		&p.Township,
		&p.Range,
		&p.Meridian,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// ListByOwner fetches the owner's properties ordered by external id so that
// reconciliation passes over the same data see the same iteration order.
func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + `
		FROM properties
		WHERE owner_id = $1
		ORDER BY external_id, id`

	rows, err := r.db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	query := `SELECT ` + propertyColumns + `
		FROM properties
		WHERE id = $1`

	p, err := scanProperty(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}

	return &p, nil
}
