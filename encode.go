package aztec

import "math"

// Encode renders data into an Aztec symbol. The smallest symbol satisfying
// the error-correction ratio wins; ErrDataTooLarge is returned when none does.
func Encode(data []byte, opts Options) (*Code, error) {
	opts = opts.withDefaults()
	hlBits := highLevelEncode(data)

	sym, ok := selectSymbol(hlBits, len(data)*8, opts)
	if !ok {
		return nil, ErrDataTooLarge
	}
	return buildSymbol(sym), nil
}

// symbolChoice is one feasible (family, layers) assignment with its stuffed
// payload.
type symbolChoice struct {
	compact    bool
	layers     int
	wordSize   int
	size       int
	stuffed    []bool
	dataWords  int
	totalWords int
}

// selectSymbol stuffs the bit stream against every permitted symbol and keeps
// the smallest side that leaves enough check codewords. Sizing also honours a
// conservative 8-bits-per-byte floor, so text that compacts well still gets a
// symbol with generous correction headroom.
func selectSymbol(hlBits []bool, rawBits int, opts Options) (symbolChoice, bool) {
	var best symbolChoice
	found := false
	consider := func(compact bool, layers int) {
		w := wordSize(compact, layers)
		stuffed := padBits(stuffBits(hlBits, w), w)
		dataWords := len(stuffed) / w
		floorWords := (rawBits + w - 1) / w
		totalWords := symbolCapacity(compact, layers) / w
		checkWords := totalWords - dataWords
		need := int(math.Ceil(float64(totalWords) * opts.ErrorCorrection))
		if need < 3 {
			need = 3
		}
		if dataWords > totalWords || checkWords < need {
			return
		}
		if floorWords > totalWords-need {
			return
		}
		// data_codewords-1 must fit its mode-message field.
		if compact && dataWords > 64 || !compact && dataWords > 2048 {
			return
		}
		size := symbolSize(compact, layers)
		if !found || size < best.size {
			best = symbolChoice{compact, layers, w, size, stuffed, dataWords, totalWords}
			found = true
		}
	}

	if opts.Form != FormFull {
		for layers := opts.MinLayers; layers <= 4; layers++ {
			consider(true, layers)
		}
	}
	if opts.Form != FormCompact {
		for layers := opts.MinLayers; layers <= 32; layers++ {
			consider(false, layers)
		}
	}
	return best, found
}

// buildSymbol draws the matrix: check codewords, finder, orientation marks,
// reference grid, mode message and the data spiral.
func buildSymbol(sym symbolChoice) *Code {
	f := FieldFor(sym.wordSize)
	words := toCodewords(sym.stuffed, sym.wordSize)
	checks := rsEncode(f, words, sym.totalWords-sym.dataWords)

	capacity := symbolCapacity(sym.compact, sym.layers)
	payload := make([]bool, 0, capacity)
	// Prefix zeros align the payload to the last spiral position.
	for i := 0; i < capacity-sym.totalWords*sym.wordSize; i++ {
		payload = append(payload, false)
	}
	payload = append(payload, fromCodewords(words, sym.wordSize)...)
	payload = append(payload, fromCodewords(checks, sym.wordSize)...)

	m := NewSquareBitMatrix(sym.size)
	drawFinder(m, sym.compact)
	drawOrientation(m, sym.compact)
	if !sym.compact {
		drawReferenceGrid(m)
	}

	modeBits := buildModeMessage(sym.compact, sym.layers, sym.dataWords)
	for i, p := range modeMessagePositions(sym.compact, sym.size) {
		m.SetTo(p.x, p.y, modeBits[i])
	}

	for i, p := range dataSpiral(sym.compact, sym.size, sym.layers) {
		m.SetTo(p.x, p.y, payload[i])
	}

	return &Code{
		Matrix:        m,
		Compact:       sym.compact,
		Layers:        sym.layers,
		CodewordSize:  sym.wordSize,
		DataCodewords: sym.dataWords,
		Size:          sym.size,
	}
}

// buildModeMessage packs (layers, data codewords) and protects them with
// GF(16) Reed-Solomon: 28 bits for compact symbols, 40 for full.
func buildModeMessage(compact bool, layers, dataWords int) []bool {
	dw := dataWords - 1
	if dw < 0 {
		dw = 0
	}
	var fields []bool
	var checks int
	if compact {
		fields = appendBits(fields, layers-1, 2)
		fields = appendBits(fields, dw, 6)
		checks = 5
	} else {
		fields = appendBits(fields, layers-1, 5)
		fields = appendBits(fields, dw, 11)
		checks = 6
	}
	words := toCodewords(fields, 4)
	words = append(words, rsEncode(GF16, words, checks)...)
	return fromCodewords(words, 4)
}
