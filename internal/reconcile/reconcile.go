// Package reconcile runs the location matcher over a full property and well
// set for one ownership scope and computes the minimal set of new links to
// create. It is pure: inputs are consistent snapshots supplied by the caller,
// outputs are proposed writes and diagnostics. Persistence belongs to the
// service layer.
package reconcile

import (
	"github.com/rclanton/strata/internal/plss"
)

// Property is the engine's read-only view of a mineral property. Location is
// nil when the property's STR could not be resolved; such properties never
// match but are counted in the diagnostics.
type Property struct {
	ID       string
	Location *plss.Location
}

// Well pairs an opaque well id with its full geometry.
type Well struct {
	ID       string
	Geometry plss.WellGeometry
}

// ExistingLink is a previously persisted property-well link. Its presence
// alone, in any status, removes the pair from automatic matching: a link a
// human rejected must never be silently recreated.
type ExistingLink struct {
	PropertyID  string
	WellID      string
	MatchReason string
	Status      string
}

// ProposedLink is a link the engine wants created.
type ProposedLink struct {
	PropertyID  string
	WellID      string
	MatchReason plss.MatchReason
}

// DataQuality counts input records that limit what matching can see.
type DataQuality struct {
	PropertiesWithoutLocation int `json:"properties_without_location"`
	WellsWithoutSurface       int `json:"wells_without_surface"`
	WellsWithBottomHole       int `json:"wells_with_bottom_hole"`
	WellsWithLateralSections  int `json:"wells_with_lateral_sections"`
}

// Diagnostics summarizes one reconciliation pass.
type Diagnostics struct {
	MatchesByReason  map[plss.MatchReason]int `json:"matches_by_reason"`
	ExistingByReason map[string]int           `json:"existing_by_reason"`
	ExistingByStatus map[string]int           `json:"existing_by_status"`
	DataQuality      DataQuality              `json:"data_quality"`
	UnlinkedWellIDs  []string                 `json:"unlinked_well_ids"`
}

// Result is the complete output of a pass: the links to create and the
// diagnostic summary. The engine never persists anything itself.
type Result struct {
	ProposedLinks []ProposedLink `json:"proposed_links"`
	Diagnostics   Diagnostics    `json:"diagnostics"`
}

type pairKey struct {
	propertyID string
	wellID     string
}

// Run matches every property against every well, skipping pairs already
// represented by an existing link row regardless of that link's status, and
// returns the new links to create plus diagnostics.
//
// Running twice with the second pass's existing links seeded from the first
// pass's proposals yields zero new links: the pass is idempotent. Decisions
// for distinct pairs are independent; no ordering between pairs is relied on
// beyond the deterministic iteration order of the input slices.
func Run(properties []Property, wells []Well, existingLinks []ExistingLink) Result {
	result := Result{
		ProposedLinks: []ProposedLink{},
		Diagnostics: Diagnostics{
			MatchesByReason:  make(map[plss.MatchReason]int),
			ExistingByReason: make(map[string]int),
			ExistingByStatus: make(map[string]int),
			UnlinkedWellIDs:  []string{},
		},
	}

	// Presence of any row suppresses the pair; duplicate rows are a storage
	// concern and are tolerated here, though every row is tallied.
	linked := make(map[pairKey]struct{}, len(existingLinks))
	wellHasLink := make(map[string]bool, len(wells))
	for _, link := range existingLinks {
		linked[pairKey{link.PropertyID, link.WellID}] = struct{}{}
		wellHasLink[link.WellID] = true
		result.Diagnostics.ExistingByReason[link.MatchReason]++
		result.Diagnostics.ExistingByStatus[link.Status]++
	}

	for _, property := range properties {
		if property.Location == nil {
			result.Diagnostics.DataQuality.PropertiesWithoutLocation++
			continue
		}

		for _, well := range wells {
			key := pairKey{property.ID, well.ID}
			if _, exists := linked[key]; exists {
				continue
			}

			decision := plss.Match(property.Location, well.Geometry)
			if !decision.Matched {
				continue
			}

			result.ProposedLinks = append(result.ProposedLinks, ProposedLink{
				PropertyID:  property.ID,
				WellID:      well.ID,
				MatchReason: decision.Reason,
			})
			result.Diagnostics.MatchesByReason[decision.Reason]++
			linked[key] = struct{}{}
			wellHasLink[well.ID] = true
		}
	}

	for _, well := range wells {
		if well.Geometry.Surface == nil {
			result.Diagnostics.DataQuality.WellsWithoutSurface++
		}
		if well.Geometry.BottomHole != nil {
			result.Diagnostics.DataQuality.WellsWithBottomHole++
		}
		if len(well.Geometry.LateralSections) > 0 {
			result.Diagnostics.DataQuality.WellsWithLateralSections++
		}
		if !wellHasLink[well.ID] {
			result.Diagnostics.UnlinkedWellIDs = append(result.Diagnostics.UnlinkedWellIDs, well.ID)
		}
	}

	return result
}
