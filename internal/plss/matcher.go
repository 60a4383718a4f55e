package plss

// MatchReason classifies why a property and a well were related. Reasons are
// ordered by signal strength; the matcher short-circuits on the first hit.
type MatchReason string

const (
	// ReasonSurfaceLocation: property section equals the well's surface location.
	ReasonSurfaceLocation MatchReason = "surface_location"
	// ReasonLateralPath: the horizontal wellbore crosses the property section.
	ReasonLateralPath MatchReason = "lateral_path"
	// ReasonBottomHole: property section equals the well's bottom-hole location.
	ReasonBottomHole MatchReason = "bottom_hole"
	// ReasonAdjacentSection: property section neighbors the well's bottom-hole
	// or surface section. Weakest signal; drainage from a horizontal
	// completion can reach across a section line.
	ReasonAdjacentSection MatchReason = "adjacent_section"
)

// Decision is the outcome of matching one property against one well.
type Decision struct {
	Matched bool
	Reason  MatchReason
}

// NoMatch is the decision for an unrelated pair.
var NoMatch = Decision{}

// WellGeometry is everything positional known about one well: its wellhead,
// the terminal subsurface point of its path, and the sections a horizontal
// lateral crosses. Either location may be absent. LateralSections may be
// supplied upstream (externally tagged sections-affected data); when empty it
// is derived from the endpoints.
type WellGeometry struct {
	Surface         *Location
	BottomHole      *Location
	LateralSections []Location
}

// Meridian returns the well's meridian, preferring the surface location.
// ok is false when the well has no resolvable location at all.
func (w WellGeometry) Meridian() (Meridian, bool) {
	if w.Surface != nil {
		return w.Surface.Meridian, true
	}
	if w.BottomHole != nil {
		return w.BottomHole.Meridian, true
	}
	return "", false
}

// WithDerivedPath returns a copy of the geometry whose LateralSections are
// filled in from the traced path between surface and bottom hole. Geometry
// that already carries lateral sections, or lacks either endpoint, is
// returned unchanged. Callers decide when derivation is appropriate (a
// horizontal well without sections-affected data); the matcher itself only
// reads LateralSections as given, so an underived vertical well's bottom
// hole still matches as a bottom hole rather than as path traversal.
func (w WellGeometry) WithDerivedPath() WellGeometry {
	if len(w.LateralSections) > 0 || w.Surface == nil || w.BottomHole == nil {
		return w
	}
	w.LateralSections = TraceLateralSections(*w.Surface, *w.BottomHole)
	return w
}

// Match decides whether a property at the given location is affected by the
// well, evaluating a fixed priority chain and returning the first hit:
//
//  1. property equals the well's surface location
//  2. property lies on the lateral path (same meridian required)
//  3. property equals the well's bottom-hole location
//  4. property is adjacent to the bottom hole
//  5. property is adjacent to the surface location
//
// Exact coincidence outranks lateral traversal, which outranks adjacency;
// bottom-hole adjacency outranks surface adjacency because end-of-lateral
// proximity matters more than surface-pad proximity. The order is fixed.
//
// A nil property location never matches; callers are expected to count such
// properties as a data-quality condition rather than drop them silently.
func Match(property *Location, well WellGeometry) Decision {
	if property == nil {
		return NoMatch
	}

	if well.Surface != nil && property.Equal(*well.Surface) {
		return Decision{Matched: true, Reason: ReasonSurfaceLocation}
	}

	// Lateral tuples may be recorded without a meridian, so the tract triple
	// and the well-level meridian are checked separately. A well with no
	// surface or bottom hole falls back to each tuple's own meridian.
	wellMeridian, haveMeridian := well.Meridian()
	for _, section := range well.LateralSections {
		meridian := wellMeridian
		if !haveMeridian {
			meridian = section.Meridian
		}
		if meridian == property.Meridian && property.SameTract(section) {
			return Decision{Matched: true, Reason: ReasonLateralPath}
		}
	}

	if well.BottomHole != nil && property.Equal(*well.BottomHole) {
		return Decision{Matched: true, Reason: ReasonBottomHole}
	}

	if well.BottomHole != nil && isAdjacent(*property, *well.BottomHole) {
		return Decision{Matched: true, Reason: ReasonAdjacentSection}
	}

	if well.Surface != nil && isAdjacent(*property, *well.Surface) {
		return Decision{Matched: true, Reason: ReasonAdjacentSection}
	}

	return NoMatch
}

// isAdjacent reports whether target is in the 1-ring neighborhood of loc.
func isAdjacent(loc, target Location) bool {
	for _, neighbor := range AdjacentLocations(loc) {
		if neighbor.Equal(target) {
			return true
		}
	}
	return false
}
