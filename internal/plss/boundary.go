package plss

import (
	"strconv"
	"strings"
)

// splitOrdinal breaks a canonical township or range string into its number
// and direction letter ("9N" -> 9, "N"). Inputs are assumed canonical; the
// Location constructors enforce that.
func splitOrdinal(s string) (num int, dir string) {
	dir = s[len(s)-1:]
	num, _ = strconv.Atoi(strings.TrimSuffix(s, dir))
	return num, dir
}

// stepToward moves a numbered township or range one unit toward the given
// direction letter. Numbering counts outward from the baseline or principal
// meridian in both directions with no zero, so stepping a "1" ordinal toward
// the opposite direction crosses the baseline: 1S north of itself is 1N, and
// 1W east of itself is 1E.
func stepToward(num int, dir, toward string) (int, string) {
	if dir == toward {
		return num + 1, dir
	}
	if num == 1 {
		return 1, toward
	}
	return num - 1, dir
}

// stepOrdinal applies stepToward to a canonical ordinal string.
func stepOrdinal(s, toward string) string {
	num, dir := splitOrdinal(s)
	num, dir = stepToward(num, dir, toward)
	return strconv.Itoa(num) + dir
}

// AdjacentLocations returns the full 1-ring neighborhood of a location:
// sections at grid distance 1 in the same township plus the mirrored sections
// across any township or range boundary the section sits on. Corner sections
// contribute cross-boundary candidates for each edge independently; the
// result is deduplicated by full location equality. Diagonal cross-corner
// townships are not reachable from STR data alone and are not included.
//
// All returned locations carry the input's meridian; adjacency never crosses
// a principal meridian.
func AdjacentLocations(loc Location) []Location {
	row, col, ok := PositionOf(loc.Section)
	if !ok {
		return nil
	}

	var out []Location
	seen := make(map[Location]struct{})
	add := func(l Location) {
		if _, dup := seen[l]; dup {
			return
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	for _, s := range InTownshipNeighbors(loc.Section) {
		add(Location{Section: s, Township: loc.Township, Range: loc.Range, Meridian: loc.Meridian})
	}

	// North edge: neighbors live in the southernmost row of the township to
	// the north, in the same column window.
	if row == 0 {
		township := stepOrdinal(loc.Township, "N")
		for _, c := range []int{col - 1, col, col + 1} {
			if s, ok := SectionAt(gridSize-1, c); ok {
				add(Location{Section: s, Township: township, Range: loc.Range, Meridian: loc.Meridian})
			}
		}
	}

	// South edge: northernmost row of the township to the south.
	if row == gridSize-1 {
		township := stepOrdinal(loc.Township, "S")
		for _, c := range []int{col - 1, col, col + 1} {
			if s, ok := SectionAt(0, c); ok {
				add(Location{Section: s, Township: township, Range: loc.Range, Meridian: loc.Meridian})
			}
		}
	}

	// West edge: easternmost column of the range to the west.
	if col == 0 {
		rng := stepOrdinal(loc.Range, "W")
		for _, r := range []int{row - 1, row, row + 1} {
			if s, ok := SectionAt(r, gridSize-1); ok {
				add(Location{Section: s, Township: loc.Township, Range: rng, Meridian: loc.Meridian})
			}
		}
	}

	// East edge: westernmost column of the range to the east.
	if col == gridSize-1 {
		rng := stepOrdinal(loc.Range, "E")
		for _, r := range []int{row - 1, row, row + 1} {
			if s, ok := SectionAt(r, 0); ok {
				add(Location{Section: s, Township: loc.Township, Range: rng, Meridian: loc.Meridian})
			}
		}
	}

	return out
}
