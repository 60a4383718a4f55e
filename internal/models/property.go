package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rclanton/strata/internal/plss"
)

// Property represents an owned mineral or royalty interest tied to one full
// PLSS section. STR columns are nullable: upstream legal descriptions are
// free text and do not always resolve. All nullable fields use pointers to
// distinguish zero values from NULL.
type Property struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	ExternalID       string    `json:"external_id"`
	LegalDescription *string   `json:"legal_description,omitempty"`
	County           *string   `json:"county,omitempty"`
	Section          *int      `json:"section,omitempty"`
	Township         *string   `json:"township,omitempty"`
	Range            *string   `json:"range,omitempty"`
	Meridian         *string   `json:"meridian,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Location resolves the property's STR columns into a canonical location.
// Returns nil when any component is missing or malformed; such properties
// are counted as data-quality conditions during matching, never dropped
// silently.
func (p *Property) Location() *plss.Location {
	return resolveLocation(p.Section, p.Township, p.Range, p.Meridian)
}
