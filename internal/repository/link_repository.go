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

// LinkRepository defines data access for property-well links.
type LinkRepository interface {
	// ListByOwner returns every link in one ownership scope, in any status.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.WellLink, error)

	// CreateBatch inserts new links, ignoring any that collide with the
	// unique (property_id, well_id) constraint. Returns the number actually
	// inserted; a concurrent reconciliation pass racing on the same scope
	// produces ignorable conflicts rather than duplicate rows.
	CreateBatch(ctx context.Context, links []models.WellLink) (int64, error)

	// UpdateStatus sets the status of one link. Returns nil, nil when the
	// link does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) (*models.WellLink, error)

	// Delete removes a link row entirely. This is the only way a rejected
	// pair re-enters automatic matching. Returns false when nothing matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type linkRepository struct {
	db *database.Database
}

// NewLinkRepository creates a new LinkRepository backed by Postgres.
func NewLinkRepository(db *database.Database) LinkRepository {
	return &linkRepository{db: db}
}

const linkColumns = `
	id,
	owner_id,
	property_id,
	well_id,
	match_reason,
	status,
	created_at,
	updated_at
`

func scanLink(row pgx.Row) (models.WellLink, error) {
	var l models.WellLink
	err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&l.PropertyID,
		&l.WellID,
		&l.MatchReason,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func (r *linkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.WellLink, error) {
	query := `SELECT ` + linkColumns + `
		FROM well_links
		WHERE owner_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	links := []models.WellLink{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}

	return links, nil
}

// CreateBatch pipelines the inserts through a pgx batch. Each statement
// carries ON CONFLICT DO NOTHING against the (property_id, well_id) unique
// index, so a lost race with a concurrent pass costs a conflict, not a
// duplicate.
func (r *linkRepository) CreateBatch(ctx context.Context, links []models.WellLink) (int64, error) {
	if len(links) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO well_links (id, owner_id, property_id, well_id, match_reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (property_id, well_id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, link := range links {
		batch.Queue(query, link.ID, link.OwnerID, link.PropertyID, link.WellID, link.MatchReason, link.Status)
	}

	results := r.db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range links {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert link batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

func (r *linkRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) (*models.WellLink, error) {
	query := `
		UPDATE well_links
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + linkColumns

	l, err := scanLink(r.db.Pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update link %s: %w", id, err)
	}

	return &l, nil
}

func (r *linkRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM well_links WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete link %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
