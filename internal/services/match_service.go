package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rclanton/strata/internal/logger"
	"github.com/rclanton/strata/internal/models"
	"github.com/rclanton/strata/internal/plss"
	"github.com/rclanton/strata/internal/reconcile"
	"github.com/rclanton/strata/internal/repository"
)

// Service-level errors
var (
	ErrWellNotFound = errors.New("well not found")
)

// ReconcileSummary is the outcome of one persisted reconciliation pass.
type ReconcileSummary struct {
	ProposedLinks []reconcile.ProposedLink `json:"proposed_links"`
	LinksCreated  int64                    `json:"links_created"`
	Diagnostics   reconcile.Diagnostics    `json:"diagnostics"`
}

// WellMatch is one property the matcher related to a well in a dry run.
type WellMatch struct {
	PropertyID  uuid.UUID        `json:"property_id"`
	MatchReason plss.MatchReason `json:"match_reason"`
}

// MatchService runs the matching engine against persisted data.
type MatchService interface {
	// Reconcile matches every property in the owner's scope against every
	// well, persists the proposed links, and returns the summary. The
	// existing-link snapshot is read before matching; link creation is
	// idempotent at the storage layer, so a race with a concurrent pass
	// cannot duplicate rows.
	Reconcile(ctx context.Context, ownerID uuid.UUID) (*ReconcileSummary, error)

	// MatchWell matches one well against all of its owner's properties
	// without persisting anything. Existing links are not consulted: this is
	// the review surface, not the reconciler. Returns ErrWellNotFound when
	// the well does not exist.
	MatchWell(ctx context.Context, wellID uuid.UUID) ([]WellMatch, error)
}

type matchService struct {
	properties repository.PropertyRepository
	wells      repository.WellRepository
	links      repository.LinkRepository
	log        *logger.Logger
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	properties repository.PropertyRepository,
	wells repository.WellRepository,
	links repository.LinkRepository,
	log *logger.Logger,
) MatchService {
	return &matchService{
		properties: properties,
		wells:      wells,
		links:      links,
		log:        log,
	}
}

func (s *matchService) Reconcile(ctx context.Context, ownerID uuid.UUID) (*ReconcileSummary, error) {
	properties, err := s.properties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	wells, err := s.wells.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wells: %w", err)
	}

	existing, err := s.links.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing links: %w", err)
	}

	s.log.Info("Starting reconciliation pass", map[string]interface{}{
		"owner_id":       ownerID,
		"properties":     len(properties),
		"wells":          len(wells),
		"existing_links": len(existing),
	})

	result := reconcile.Run(
		engineProperties(properties),
		engineWells(wells),
		engineLinks(existing),
	)

	newLinks := make([]models.WellLink, 0, len(result.ProposedLinks))
	for _, proposed := range result.ProposedLinks {
		propertyID, err := uuid.Parse(proposed.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("engine returned malformed property id %q: %w", proposed.PropertyID, err)
		}
		wellID, err := uuid.Parse(proposed.WellID)
		if err != nil {
			return nil, fmt.Errorf("engine returned malformed well id %q: %w", proposed.WellID, err)
		}
		newLinks = append(newLinks, models.WellLink{
			ID:          uuid.New(),
			OwnerID:     ownerID,
			PropertyID:  propertyID,
			WellID:      wellID,
			MatchReason: string(proposed.MatchReason),
			Status:      models.LinkStatusActive,
		})
	}

	created, err := s.links.CreateBatch(ctx, newLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to persist proposed links: %w", err)
	}

	s.log.Info("Reconciliation pass complete", map[string]interface{}{
		"owner_id":       ownerID,
		"proposed":       len(result.ProposedLinks),
		"created":        created,
		"unlinked_wells": len(result.Diagnostics.UnlinkedWellIDs),
		"no_location":    result.Diagnostics.DataQuality.PropertiesWithoutLocation,
	})

	return &ReconcileSummary{
		ProposedLinks: result.ProposedLinks,
		LinksCreated:  created,
		Diagnostics:   result.Diagnostics,
	}, nil
}

func (s *matchService) MatchWell(ctx context.Context, wellID uuid.UUID) ([]WellMatch, error) {
	well, err := s.wells.GetByID(ctx, wellID)
	if err != nil {
		return nil, fmt.Errorf("failed to load well: %w", err)
	}
	if well == nil {
		return nil, ErrWellNotFound
	}

	properties, err := s.properties.ListByOwner(ctx, well.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	geometry := well.Geometry()
	matches := []WellMatch{}
	for i := range properties {
		decision := plss.Match(properties[i].Location(), geometry)
		if decision.Matched {
			matches = append(matches, WellMatch{
				PropertyID:  properties[i].ID,
				MatchReason: decision.Reason,
			})
		}
	}

	s.log.Debug("Dry-run well match complete", map[string]interface{}{
		"well_id":    wellID,
		"properties": len(properties),
		"matches":    len(matches),
	})

	return matches, nil
}

// engineProperties and friends convert persisted rows into the engine's
// read-only snapshot types.
func engineProperties(properties []models.Property) []reconcile.Property {
	out := make([]reconcile.Property, 0, len(properties))
	for i := range properties {
		out = append(out, reconcile.Property{
			ID:       properties[i].ID.String(),
			Location: properties[i].Location(),
		})
	}
	return out
}

func engineWells(wells []models.Well) []reconcile.Well {
	out := make([]reconcile.Well, 0, len(wells))
	for i := range wells {
		out = append(out, reconcile.Well{
			ID:       wells[i].ID.String(),
			Geometry: wells[i].Geometry(),
		})
	}
	return out
}

func engineLinks(links []models.WellLink) []reconcile.ExistingLink {
	out := make([]reconcile.ExistingLink, 0, len(links))
	for _, link := range links {
		out = append(out, reconcile.ExistingLink{
			PropertyID:  link.PropertyID.String(),
			WellID:      link.WellID.String(),
			MatchReason: link.MatchReason,
			Status:      string(link.Status),
		})
	}
	return out
}
