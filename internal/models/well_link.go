package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkStatus is the lifecycle state of a property-well link. The matching
// engine never distinguishes between statuses: a row in any status removes
// the pair from future automatic matching.
type LinkStatus string

const (
	// LinkStatusActive is a link the matcher created and nobody has reviewed.
	LinkStatusActive LinkStatus = "active"
	// LinkStatusLinked is a link a user confirmed.
	LinkStatusLinked LinkStatus = "linked"
	// LinkStatusRejected is a link a user rejected. Permanent unless the row
	// itself is deleted.
	LinkStatusRejected LinkStatus = "rejected"
	// LinkStatusUnlinked is a link a user detached without rejecting.
	LinkStatusUnlinked LinkStatus = "unlinked"
)

// Valid reports whether s is a known link status.
func (s LinkStatus) Valid() bool {
	switch s {
	case LinkStatusActive, LinkStatusLinked, LinkStatusRejected, LinkStatusUnlinked:
		return true
	}
	return false
}

// WellLink relates a property to a well that affects it, with the reason the
// matcher (or a user) made the connection. The (property_id, well_id) pair
// is unique at the storage layer so concurrent reconciliation passes cannot
// create duplicates.
type WellLink struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	PropertyID  uuid.UUID  `json:"property_id"`
	WellID      uuid.UUID  `json:"well_id"`
	MatchReason string     `json:"match_reason"`
	Status      LinkStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
