package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rclanton/strata/internal/plss"
)

// Well represents an oil and gas well with its PLSS geometry. A vertical
// well typically has no bottom-hole columns or a bottom hole equal to its
// surface; a horizontal well has both populated and differing. The meridian
// is recorded once per well and applies to both endpoints.
type Well struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"owner_id"`
	APINumber       string          `json:"api_number"`
	Name            *string         `json:"name,omitempty"`
	Operator        *string         `json:"operator,omitempty"`
	Meridian        *string         `json:"meridian,omitempty"`
	SurfaceSection  *int            `json:"surface_section,omitempty"`
	SurfaceTownship *string         `json:"surface_township,omitempty"`
	SurfaceRange    *string         `json:"surface_range,omitempty"`
	BottomSection   *int            `json:"bottom_section,omitempty"`
	BottomTownship  *string         `json:"bottom_township,omitempty"`
	BottomRange     *string         `json:"bottom_range,omitempty"`
	LateralSections LateralSections `json:"lateral_sections,omitempty"`
	Horizontal      bool            `json:"horizontal"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Geometry assembles the well's matcher-facing geometry from its columns.
// Horizontal wells without sections-affected data get their lateral path
// derived from the endpoints; vertical wells are left underived so their
// bottom hole matches as a bottom hole rather than as path traversal.
func (w *Well) Geometry() plss.WellGeometry {
	geom := plss.WellGeometry{
		Surface:         resolveLocation(w.SurfaceSection, w.SurfaceTownship, w.SurfaceRange, w.Meridian),
		BottomHole:      resolveLocation(w.BottomSection, w.BottomTownship, w.BottomRange, w.Meridian),
		LateralSections: w.LateralSections,
	}
	if w.Horizontal {
		geom = geom.WithDerivedPath()
	}
	return geom
}
