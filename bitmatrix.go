package aztec

// BitMatrix is a dense grid of modules. True is dark, false is light.
// Bounds checking is the caller's contract: the codec never indexes out of
// range when handed a correctly sized matrix.
type BitMatrix struct {
	width  int
	height int
	rows   [][]bool
}

// NewBitMatrix returns a cleared width x height matrix.
func NewBitMatrix(width, height int) *BitMatrix {
	rows := make([][]bool, height)
	for y := range rows {
		rows[y] = make([]bool, width)
	}
	return &BitMatrix{width: width, height: height, rows: rows}
}

// NewSquareBitMatrix returns a cleared size x size matrix.
func NewSquareBitMatrix(size int) *BitMatrix {
	return NewBitMatrix(size, size)
}

// Get reports whether the module at (x, y) is dark.
func (m *BitMatrix) Get(x, y int) bool { return m.rows[y][x] }

// Set makes the module at (x, y) dark.
func (m *BitMatrix) Set(x, y int) { m.rows[y][x] = true }

// SetTo assigns the module at (x, y).
func (m *BitMatrix) SetTo(x, y int, v bool) { m.rows[y][x] = v }

// Flip inverts the module at (x, y).
func (m *BitMatrix) Flip(x, y int) { m.rows[y][x] = !m.rows[y][x] }

// SetRegion assigns every module in the w x h rectangle anchored at (x, y).
func (m *BitMatrix) SetRegion(x, y, w, h int, v bool) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			m.rows[j][i] = v
		}
	}
}

// Dimensions returns (width, height).
func (m *BitMatrix) Dimensions() (int, int) { return m.width, m.height }

// Width returns the number of columns.
func (m *BitMatrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *BitMatrix) Height() int { return m.height }

// Count returns the number of dark modules.
func (m *BitMatrix) Count() int {
	n := 0
	for _, row := range m.rows {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// ToList returns the matrix as rows of booleans. The slices are copies.
func (m *BitMatrix) ToList() [][]bool {
	out := make([][]bool, m.height)
	for y, row := range m.rows {
		out[y] = make([]bool, m.width)
		copy(out[y], row)
	}
	return out
}

// BitMatrixFromList builds a matrix from rows of booleans. Rows must share one
// length; an empty list yields a 0x0 matrix.
func BitMatrixFromList(rows [][]bool) *BitMatrix {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	m := NewBitMatrix(w, h)
	for y, row := range rows {
		copy(m.rows[y], row)
	}
	return m
}
