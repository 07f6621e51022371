package aztec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolSizeFormulas(t *testing.T) {
	require.Equal(t, []int{15, 19, 23, 27}, []int{
		symbolSize(true, 1), symbolSize(true, 2), symbolSize(true, 3), symbolSize(true, 4),
	})
	for layers := 1; layers <= 32; layers++ {
		extra := layers - 4
		if extra < 0 {
			extra = 0
		}
		require.Equal(t, 27+4*layers+2*((extra+14)/15), symbolSize(false, layers))
	}
}

func TestCapacityTables(t *testing.T) {
	require.Equal(t, 104, symbolCapacity(true, 1))
	require.Equal(t, 240, symbolCapacity(true, 2))
	require.Equal(t, 408, symbolCapacity(true, 3))
	require.Equal(t, 608, symbolCapacity(true, 4))
	for layers := 1; layers <= 32; layers++ {
		require.Equal(t, (112+16*layers)*layers, symbolCapacity(false, layers))
	}
}

func TestWordSizes(t *testing.T) {
	require.Equal(t, []int{6, 6, 8, 8}, []int{
		wordSize(true, 1), wordSize(true, 2), wordSize(true, 3), wordSize(true, 4),
	})
	for layers := 1; layers <= 32; layers++ {
		want := 12
		switch {
		case layers <= 2:
			want = 6
		case layers <= 8:
			want = 8
		case layers <= 22:
			want = 10
		}
		require.Equal(t, want, wordSize(false, layers), "layers %d", layers)
	}
}

// The spiral must emit exactly the symbol capacity, with no duplicates and no
// coordinate on the reference grid or outside the matrix.
func TestDataSpiralCovers(t *testing.T) {
	check := func(compact bool, layers int) {
		size := symbolSize(compact, layers)
		c := size / 2
		spiral := dataSpiral(compact, size, layers)
		require.Len(t, spiral, symbolCapacity(compact, layers), "compact=%v layers=%d", compact, layers)

		seen := make(map[point]bool, len(spiral))
		for _, p := range spiral {
			require.False(t, seen[p], "duplicate %v (compact=%v layers=%d)", p, compact, layers)
			seen[p] = true
			require.True(t, p.x >= 0 && p.x < size && p.y >= 0 && p.y < size,
				"%v outside %dx%d", p, size, size)
			if !compact {
				require.False(t, onReferenceGrid(p.x-c, p.y-c),
					"%v lies on the reference grid (layers=%d)", p, layers)
			}
			require.True(t, max(abs(p.x-c), abs(p.y-c)) > coreHalf(compact),
				"%v inside the finder core", p)
		}
	}
	for layers := 1; layers <= 4; layers++ {
		check(true, layers)
	}
	for layers := 1; layers <= 32; layers++ {
		check(false, layers)
	}
}

func TestModeMessagePositions(t *testing.T) {
	for _, tc := range []struct {
		compact bool
		layers  int
		want    int
	}{{true, 1, 28}, {true, 4, 28}, {false, 1, 40}, {false, 32, 40}} {
		size := symbolSize(tc.compact, tc.layers)
		pos := modeMessagePositions(tc.compact, size)
		require.Len(t, pos, tc.want)
		seen := make(map[point]bool)
		for _, p := range pos {
			require.False(t, seen[p], "duplicate %v", p)
			seen[p] = true
			c := size / 2
			require.Equal(t, coreHalf(tc.compact), max(abs(p.x-c), abs(p.y-c)),
				"%v not on the mode ring", p)
		}
	}
}

func TestGridOffset(t *testing.T) {
	// Identity through +-15, then one step past every 16th line.
	for u := -15; u <= 15; u++ {
		require.Equal(t, u, gridOffset(u))
	}
	require.Equal(t, 17, gridOffset(16))
	require.Equal(t, -17, gridOffset(-16))
	require.Equal(t, 31, gridOffset(30))
	require.Equal(t, 33, gridOffset(31))
	for u := 1; u <= 80; u++ {
		require.NotZero(t, mod16(gridOffset(u)), "offset %d lands on the grid", u)
	}
}

func TestFinderMatchesItsOwnDrawing(t *testing.T) {
	for _, compact := range []bool{true, false} {
		size := symbolSize(compact, 1)
		m := NewSquareBitMatrix(size)
		drawFinder(m, compact)
		require.True(t, matchFinder(m, compact))
	}

	// A compact bull's eye must not pass as full-range once the mode ring is
	// occupied, and a blank matrix matches neither.
	m := NewSquareBitMatrix(15)
	drawFinder(m, true)
	drawOrientation(m, true)
	require.False(t, matchFinder(m, false))
	require.False(t, matchFinder(NewSquareBitMatrix(15), true))
}
