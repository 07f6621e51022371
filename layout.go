package aztec

// Symbol geometry shared by the encoder and the decoder: size and capacity
// formulas, finder rings, orientation marks, mode-message positions, the
// reference grid and the data spiral. Keeping one generator for positions is
// what guarantees the two directions agree bit for bit.

type point struct{ x, y int }

// Finder core half-widths: the mode-message ring sits at this offset.
const (
	compactCoreHalf = 5
	fullCoreHalf    = 7
)

// compactWordSizes indexes codeword width by compact layer count.
var compactWordSizes = [5]int{0, 6, 6, 8, 8}

// wordSize returns the payload codeword width in bits.
func wordSize(compact bool, layers int) int {
	if compact {
		return compactWordSizes[layers]
	}
	switch {
	case layers <= 2:
		return 6
	case layers <= 8:
		return 8
	case layers <= 22:
		return 10
	default:
		return 12
	}
}

// symbolCapacity returns the total data bits of a symbol.
func symbolCapacity(compact bool, layers int) int {
	if compact {
		return (88 + 16*layers) * layers
	}
	return (112 + 16*layers) * layers
}

// symbolSize returns the module side length.
func symbolSize(compact bool, layers int) int {
	if compact {
		return 11 + 4*layers
	}
	extra := layers - 4
	if extra < 0 {
		extra = 0
	}
	return 27 + 4*layers + 2*((extra+14)/15)
}

func coreHalf(compact bool) int {
	if compact {
		return compactCoreHalf
	}
	return fullCoreHalf
}

// onReferenceGrid reports whether the offset (dx, dy) from the centre lies on
// a reference grid line. Full symbols only; the centre row and column count.
func onReferenceGrid(dx, dy int) bool {
	return mod16(dx) == 0 || mod16(dy) == 0
}

// referenceGridDark gives the alternating grid value at (dx, dy).
func referenceGridDark(dx, dy int) bool {
	return dx%2 == 0 && dy%2 == 0
}

func mod16(v int) int {
	if v < 0 {
		v = -v
	}
	return v % 16
}

// gridOffset maps a nominal offset from the centre to its physical column or
// row in a full symbol: data rings displace outward past every 16th line so
// no ring ever lands on the reference grid. Identity inside +-15.
func gridOffset(u int) int {
	switch {
	case u > 0:
		return u + (u-1)/15
	case u < 0:
		return -(-u + (-u-1)/15)
	default:
		return 0
	}
}

// dataSpiral returns every data module position, outermost layer first, in
// placement order: per layer the top, right, bottom and left two-deep blocks
// spiralling toward the centre. Full symbols skip the centre grid lines and
// displace around the outer ones.
func dataSpiral(compact bool, size, layers int) []point {
	half := coreHalf(compact)
	c := size / 2
	phys := func(u int) int { return u }
	if !compact {
		phys = gridOffset
	}
	skip := func(x, y int) bool { return !compact && (x == 0 || y == 0) }

	var out []point
	emit := func(x, y int) {
		if skip(x, y) {
			return
		}
		out = append(out, point{c + phys(x), c + phys(y)})
	}

	for k := layers; k >= 1; k-- {
		o := half + 2*k
		in := o - 1
		for j := 0; j <= 2*o-2; j++ { // top
			x := -o + j
			emit(x, -o)
			emit(x, -in)
		}
		for j := 0; j <= 2*o-2; j++ { // right
			y := -o + j
			emit(o, y)
			emit(in, y)
		}
		for j := 0; j <= 2*o-2; j++ { // bottom
			x := o - j
			emit(x, o)
			emit(x, in)
		}
		for j := 0; j <= 2*o-2; j++ { // left
			y := o - j
			emit(-o, y)
			emit(-in, y)
		}
	}
	return out
}

// modeMessagePositions returns the 28 (compact) or 40 (full) module positions
// of the mode message, clockwise from the top edge. Full symbols skip the
// middle cell of each side, reserved for the reference grid.
func modeMessagePositions(compact bool, size int) []point {
	c := size / 2
	h := coreHalf(compact)
	var out []point
	if compact {
		for x := c - 3; x <= c+3; x++ { // top
			out = append(out, point{x, c - h})
		}
		for y := c - 3; y <= c+3; y++ { // right
			out = append(out, point{c + h, y})
		}
		for x := c + 3; x >= c-3; x-- { // bottom
			out = append(out, point{x, c + h})
		}
		for y := c + 3; y >= c-3; y-- { // left
			out = append(out, point{c - h, y})
		}
		return out
	}
	for x := c - 5; x <= c+5; x++ { // top, split around the grid column
		if x != c {
			out = append(out, point{x, c - h})
		}
	}
	for y := c - 5; y <= c+5; y++ { // right
		if y != c {
			out = append(out, point{c + h, y})
		}
	}
	for x := c + 5; x >= c-5; x-- { // bottom
		if x != c {
			out = append(out, point{x, c + h})
		}
	}
	for y := c + 5; y >= c-5; y-- { // left
		if y != c {
			out = append(out, point{c - h, y})
		}
	}
	return out
}

// drawFinder paints the bull's eye: alternating square rings, dark at even
// offsets, ring 0 being the centre module.
func drawFinder(m *BitMatrix, compact bool) {
	size := m.Width()
	c := size / 2
	rings := 4
	if !compact {
		rings = 6
	}
	m.Set(c, c)
	for r := 2; r <= rings; r += 2 {
		for d := -r; d <= r; d++ {
			m.Set(c+d, c-r)
			m.Set(c+d, c+r)
			m.Set(c-r, c+d)
			m.Set(c+r, c+d)
		}
	}
}

// matchFinder verifies the bull's eye of the given family against the matrix.
func matchFinder(m *BitMatrix, compact bool) bool {
	size := m.Width()
	c := size / 2
	rings := 4
	if !compact {
		rings = 6
	}
	if c-rings < 0 || c+rings >= size {
		return false
	}
	for r := 0; r <= rings; r++ {
		want := r%2 == 0
		for d := -r; d <= r; d++ {
			if m.Get(c+d, c-r) != want || m.Get(c+d, c+r) != want ||
				m.Get(c-r, c+d) != want || m.Get(c+r, c+d) != want {
				return false
			}
		}
	}
	return true
}

// drawOrientation paints the corner marks on the mode-message ring. Three
// dark modules top-left, three top-right, one bottom-left; bottom-right stays
// light.
func drawOrientation(m *BitMatrix, compact bool) {
	c := m.Width() / 2
	h := coreHalf(compact)
	m.Set(c-h, c-h)
	m.Set(c-h+1, c-h)
	m.Set(c-h, c-h+1)
	m.Set(c+h, c-h)
	m.Set(c+h-1, c-h)
	m.Set(c+h, c-h+1)
	m.Set(c-h, c+h)
}

// drawReferenceGrid paints the alternating grid of a full symbol outside the
// finder rings.
func drawReferenceGrid(m *BitMatrix) {
	size := m.Width()
	c := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-c, y-c
			if max(abs(dx), abs(dy)) <= 6 {
				continue
			}
			if onReferenceGrid(dx, dy) && referenceGridDark(dx, dy) {
				m.Set(x, y)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
