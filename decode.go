package aztec

import "fmt"

// Decode reads an Aztec symbol in canonical orientation and returns the
// original payload. The matrix must be square with a valid symbol side.
func Decode(m *BitMatrix) ([]byte, error) {
	w, h := m.Dimensions()
	if w != h || w < 11 {
		return nil, ErrFinderNotFound
	}

	compact, err := detectType(m)
	if err != nil {
		return nil, err
	}

	layers, dataWords, err := readModeMessage(m, compact)
	if err != nil {
		return nil, err
	}
	if symbolSize(compact, layers) != w {
		return nil, ErrTruncated
	}

	return extractData(m, compact, layers, dataWords)
}

// detectType matches the bull's eye. Full-range takes precedence: its rings
// subsume the compact pattern.
func detectType(m *BitMatrix) (compact bool, err error) {
	if matchFinder(m, false) {
		return false, nil
	}
	if matchFinder(m, true) {
		return true, nil
	}
	return false, ErrFinderNotFound
}

// readModeMessage extracts and RS-decodes the mode message.
func readModeMessage(m *BitMatrix, compact bool) (layers, dataWords int, err error) {
	size := m.Width()
	var bits []bool
	for _, p := range modeMessagePositions(compact, size) {
		bits = append(bits, m.Get(p.x, p.y))
	}

	checks := 5
	if !compact {
		checks = 6
	}
	words, err := rsDecode(GF16, toCodewords(bits, 4), checks)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrModeMessage, err)
	}
	fields := fromCodewords(words[:len(words)-checks], 4)

	r := &bitReader{bits: fields}
	if compact {
		layers = r.read(2) + 1
		dataWords = r.read(6) + 1
	} else {
		layers = r.read(5) + 1
		dataWords = r.read(11) + 1
	}
	return layers, dataWords, nil
}

// extractData walks the spiral, corrects the payload codewords, unstuffs and
// runs the high-level decoder.
func extractData(m *BitMatrix, compact bool, layers, dataWords int) ([]byte, error) {
	w := wordSize(compact, layers)
	capacity := symbolCapacity(compact, layers)
	totalWords := capacity / w
	if dataWords > totalWords {
		return nil, ErrModeMessage
	}

	bits := make([]bool, 0, capacity)
	for _, p := range dataSpiral(compact, m.Width(), layers) {
		bits = append(bits, m.Get(p.x, p.y))
	}
	bits = bits[capacity%w:] // drop the alignment prefix

	words, err := rsDecode(FieldFor(w), toCodewords(bits, w), totalWords-dataWords)
	if err != nil {
		return nil, err
	}
	stuffed := fromCodewords(words[:dataWords], w)
	return highLevelDecode(unstuffBits(stuffed, w)), nil
}
