package plss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionOf_Bijection(t *testing.T) {
	// Every section 1-36 maps to a unique in-bounds cell, and mapping the
	// cell back through the grid returns the same section.
	seen := make(map[[2]int]bool)

	for section := 1; section <= 36; section++ {
		row, col, ok := PositionOf(section)
		require.True(t, ok, "section %d should resolve", section)
		assert.GreaterOrEqual(t, row, 0)
		assert.Less(t, row, 6)
		assert.GreaterOrEqual(t, col, 0)
		assert.Less(t, col, 6)

		cell := [2]int{row, col}
		assert.False(t, seen[cell], "cell %v mapped twice", cell)
		seen[cell] = true

		back, ok := SectionAt(row, col)
		require.True(t, ok)
		assert.Equal(t, section, back)
	}
}

func TestPositionOf_SnakePattern(t *testing.T) {
	// Spot-check the boustrophedon numbering.
	cases := []struct {
		section  int
		row, col int
	}{
		{1, 0, 5},
		{6, 0, 0},
		{7, 1, 0},
		{12, 1, 5},
		{13, 2, 5},
		{18, 2, 0},
		{19, 3, 0},
		{31, 5, 0},
		{36, 5, 5},
	}

	for _, tc := range cases {
		row, col, ok := PositionOf(tc.section)
		require.True(t, ok)
		assert.Equal(t, tc.row, row, "section %d row", tc.section)
		assert.Equal(t, tc.col, col, "section %d col", tc.section)
	}
}

func TestPositionOf_OutOfRange(t *testing.T) {
	for _, section := range []int{0, -1, 37, 100} {
		_, _, ok := PositionOf(section)
		assert.False(t, ok, "section %d should not resolve", section)
	}
}

func TestSectionAt_OutOfBounds(t *testing.T) {
	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 6}} {
		_, ok := SectionAt(cell[0], cell[1])
		assert.False(t, ok, "cell %v should be out of bounds", cell)
	}
}

func TestInTownshipNeighbors(t *testing.T) {
	t.Run("interior section has eight neighbors", func(t *testing.T) {
		neighbors := InTownshipNeighbors(15)
		assert.ElementsMatch(t, []int{9, 10, 11, 16, 14, 21, 22, 23}, neighbors)
	})

	t.Run("corner section has three neighbors", func(t *testing.T) {
		neighbors := InTownshipNeighbors(1)
		assert.ElementsMatch(t, []int{2, 11, 12}, neighbors)
	})

	t.Run("edge section has five neighbors", func(t *testing.T) {
		neighbors := InTownshipNeighbors(3)
		assert.ElementsMatch(t, []int{2, 4, 9, 10, 11}, neighbors)
	})

	t.Run("invalid section has none", func(t *testing.T) {
		assert.Nil(t, InTownshipNeighbors(0))
		assert.Nil(t, InTownshipNeighbors(37))
	})
}

func TestInTownshipNeighbors_Symmetry(t *testing.T) {
	// If B neighbors A then A neighbors B, for every section.
	for a := 1; a <= 36; a++ {
		for _, b := range InTownshipNeighbors(a) {
			assert.Contains(t, InTownshipNeighbors(b), a,
				"section %d neighbors %d but not vice versa", a, b)
		}
	}
}
