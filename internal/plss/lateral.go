package plss

// TraceLateralSections reconstructs the ordered sections a horizontal
// wellbore crosses between its surface and bottom-hole locations.
//
// When both locations share a township and range, the path is a discrete
// straight line over the 6x6 section grid (Bresenham walk from the surface
// cell to the bottom-hole cell), which approximates the wellbore's track
// through the survey grid. When the endpoints fall in different townships or
// ranges no shared grid exists, so the path degenerates to the two endpoints.
// Equal endpoints mean a vertical well and an empty path.
//
// The returned slice is ordered surface to bottom hole, includes both
// endpoints when they differ, and contains no duplicates.
func TraceLateralSections(surface, bottomHole Location) []Location {
	if surface.Equal(bottomHole) {
		return nil
	}

	if surface.Township != bottomHole.Township ||
		surface.Range != bottomHole.Range ||
		surface.Meridian != bottomHole.Meridian {
		return []Location{surface, bottomHole}
	}

	r0, c0, ok := PositionOf(surface.Section)
	if !ok {
		return nil
	}
	r1, c1, ok := PositionOf(bottomHole.Section)
	if !ok {
		return nil
	}

	var path []Location
	for _, cell := range traceLine(r0, c0, r1, c1) {
		section, _ := SectionAt(cell[0], cell[1])
		path = append(path, Location{
			Section:  section,
			Township: surface.Township,
			Range:    surface.Range,
			Meridian: surface.Meridian,
		})
	}
	return path
}

// traceLine walks the grid cells of a discrete line from (r0,c0) to (r1,c1)
// using integer Bresenham stepping: advance along the dominant axis every
// iteration, accumulating error on the minor axis.
func traceLine(r0, c0, r1, c1 int) [][2]int {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc := 1
	if c0 > c1 {
		sc = -1
	}
	sr := 1
	if r0 > r1 {
		sr = -1
	}
	errAcc := dc + dr

	cells := [][2]int{{r0, c0}}
	for r0 != r1 || c0 != c1 {
		e2 := 2 * errAcc
		if e2 >= dr {
			errAcc += dr
			c0 += sc
		}
		if e2 <= dc {
			errAcc += dc
			r0 += sr
		}
		cells = append(cells, [2]int{r0, c0})
	}
	return cells
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
