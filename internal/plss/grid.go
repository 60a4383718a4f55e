package plss

// gridSize is the number of section rows and columns in a standard township.
const gridSize = 6

// sectionGrid is the fixed boustrophedon section numbering inside one
// township. Row 0 is the northernmost row; numbering snakes east-to-west on
// even rows and west-to-east on odd rows, exactly as surveyed.
var sectionGrid = [gridSize][gridSize]int{
	{6, 5, 4, 3, 2, 1},
	{7, 8, 9, 10, 11, 12},
	{18, 17, 16, 15, 14, 13},
	{19, 20, 21, 22, 23, 24},
	{30, 29, 28, 27, 26, 25},
	{31, 32, 33, 34, 35, 36},
}

// sectionPositions is the reverse lookup from section number to grid cell,
// built once at init. Index 0 is unused.
var sectionPositions [37][2]int

func init() {
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			sectionPositions[sectionGrid[row][col]] = [2]int{row, col}
		}
	}
}

// PositionOf returns the (row, col) grid cell of a section within its
// township. ok is false for sections outside 1-36.
func PositionOf(section int) (row, col int, ok bool) {
	if section < 1 || section > 36 {
		return 0, 0, false
	}
	pos := sectionPositions[section]
	return pos[0], pos[1], true
}

// SectionAt returns the section number at the given grid cell. ok is false
// for cells outside the 6x6 grid.
func SectionAt(row, col int) (section int, ok bool) {
	if row < 0 || row >= gridSize || col < 0 || col >= gridSize {
		return 0, false
	}
	return sectionGrid[row][col], true
}

// neighborOffsets are the eight unit vectors of 8-connectivity.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InTownshipNeighbors returns every section at grid distance 1 from the given
// section within the same township. Sections on a township edge have fewer
// than eight; cross-boundary neighbors are the boundary crosser's job.
func InTownshipNeighbors(section int) []int {
	row, col, ok := PositionOf(section)
	if !ok {
		return nil
	}

	neighbors := make([]int, 0, 8)
	for _, off := range neighborOffsets {
		if s, ok := SectionAt(row+off[0], col+off[1]); ok {
			neighbors = append(neighbors, s)
		}
	}
	return neighbors
}
