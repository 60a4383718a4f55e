package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rclanton/strata/internal/logger"
	"github.com/rclanton/strata/internal/models"
	"github.com/rclanton/strata/internal/repository"
)

var (
	ErrLinkNotFound      = errors.New("link not found")
	ErrInvalidLinkStatus = errors.New("invalid link status")
)

// LinkService covers the human side of link lifecycle: confirming,
// rejecting, and detaching links the matcher created. Deleting a link row is
// the only way a rejected pair re-enters automatic matching.
type LinkService interface {
	// UpdateStatus transitions a link to the given status.
	// Returns ErrInvalidLinkStatus for unknown statuses and ErrLinkNotFound
	// when the link does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) (*models.WellLink, error)

	// Delete removes a link row. Returns ErrLinkNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

type linkService struct {
	links repository.LinkRepository
	log   *logger.Logger
}

// NewLinkService creates a new LinkService.
func NewLinkService(links repository.LinkRepository, log *logger.Logger) LinkService {
	return &linkService{links: links, log: log}
}

func (s *linkService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.LinkStatus) (*models.WellLink, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLinkStatus, status)
	}

	link, err := s.links.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update link status: %w", err)
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}

	s.log.Info("Link status updated", map[string]interface{}{
		"link_id": id,
		"status":  status,
	})

	return link, nil
}

func (s *linkService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.links.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if !deleted {
		return ErrLinkNotFound
	}

	s.log.Info("Link deleted; pair is matchable again", map[string]interface{}{
		"link_id": id,
	})

	return nil
}
