package aztec

// High-level encoder: byte stream to near-shortest bit stream. The scan is
// greedy with per-byte candidate enumeration (direct, shift, latch, punct
// pair), a four-byte look-ahead to break latch ties, and binary shift for
// bytes no text mode covers.

// Binary-shift run bounds. Runs up to 31 use the short 5-bit length; longer
// runs use the extended form (5-bit zero, then 11 bits carrying length-31).
const (
	binShiftMaxShort = 31
	binShiftMaxLong  = 31 + 2047
)

type hlCandidate struct {
	cost    int
	consume int      // bytes consumed
	ops     []codeOp // emitted codes in order
	newMode Mode     // mode after emission
	isLatch bool
}

// highLevelEncode encodes data as an Aztec high-level bit stream, starting in
// Upper mode.
func highLevelEncode(data []byte) []bool {
	var bits []bool
	mode := ModeUpper

	for i := 0; i < len(data); {
		cands := candidatesAt(data, i, mode)
		if len(cands) == 0 {
			bits, mode = encodeBinaryShift(bits, data, &i, mode)
			continue
		}
		best := pickCandidate(cands, data, i)
		for _, op := range best.ops {
			bits = appendBits(bits, op.code, op.width)
		}
		mode = best.newMode
		i += best.consume
	}
	return bits
}

// candidatesAt enumerates every way to encode the byte(s) at position i.
func candidatesAt(data []byte, i int, mode Mode) []hlCandidate {
	b := data[i]
	var cands []hlCandidate

	// Direct in the current mode.
	if code, ok := charCode(mode, b); ok {
		cands = append(cands, hlCandidate{
			cost:    bitWidth(mode),
			consume: 1,
			ops:     []codeOp{{code, bitWidth(mode)}},
			newMode: mode,
		})
	}

	// Two-byte punctuation pair, directly, via shift, or via latch.
	if i+1 < len(data) {
		if code, ok := pairCode(b, data[i+1]); ok {
			if mode == ModePunct {
				cands = append(cands, hlCandidate{
					cost:    5,
					consume: 2,
					ops:     []codeOp{{code, 5}},
					newMode: mode,
				})
			} else {
				if op, ok := shift(mode, ModePunct); ok {
					cands = append(cands, hlCandidate{
						cost:    op.width + 5,
						consume: 2,
						ops:     []codeOp{op, {code, 5}},
						newMode: mode,
					})
				}
				if path, ok := latchPath(mode, ModePunct); ok {
					ops := append(append([]codeOp{}, path...), codeOp{code, 5})
					cands = append(cands, hlCandidate{
						cost:    pathBits(path) + 5,
						consume: 2,
						ops:     ops,
						newMode: ModePunct,
						isLatch: true,
					})
				}
			}
		}
	}

	// Shift or latch into any mode that covers the byte.
	for _, target := range allModes {
		if target == mode {
			continue
		}
		code, ok := charCode(target, b)
		if !ok {
			continue
		}
		if op, ok := shift(mode, target); ok {
			cands = append(cands, hlCandidate{
				cost:    op.width + bitWidth(target),
				consume: 1,
				ops:     []codeOp{op, {code, bitWidth(target)}},
				newMode: mode,
			})
		}
		if path, ok := latchPath(mode, target); ok {
			ops := append(append([]codeOp{}, path...), codeOp{code, bitWidth(target)})
			cands = append(cands, hlCandidate{
				cost:    pathBits(path) + bitWidth(target),
				consume: 1,
				ops:     ops,
				newMode: target,
				isLatch: true,
			})
		}
	}
	return cands
}

func pathBits(path []codeOp) int {
	n := 0
	for _, op := range path {
		n += op.width
	}
	return n
}

// pickCandidate selects the cheapest candidate by bits per byte consumed, so
// a two-byte punctuation pair is weighed fairly against single-byte routes.
// Cost ties are broken by a four-byte look-ahead: the mode that directly
// encodes more of the upcoming bytes wins; latches lose remaining ties so the
// scan does not wander.
func pickCandidate(cands []hlCandidate, data []byte, i int) hlCandidate {
	best := cands[0]
	bestAhead := -1
	for _, c := range cands[1:] {
		cb, bc := c.cost*best.consume, best.cost*c.consume
		if cb > bc {
			continue
		}
		if cb < bc {
			best = c
			bestAhead = -1
			continue
		}
		if bestAhead < 0 {
			bestAhead = lookAhead(data, i+best.consume, best.newMode)
		}
		ahead := lookAhead(data, i+c.consume, c.newMode)
		if ahead > bestAhead || (ahead == bestAhead && best.isLatch && !c.isLatch) {
			best = c
			bestAhead = ahead
		}
	}
	return best
}

// lookAhead counts how many of the next four bytes mode m encodes directly.
func lookAhead(data []byte, from int, m Mode) int {
	n := 0
	for j := from; j < len(data) && j < from+4; j++ {
		if _, ok := charCode(m, data[j]); ok {
			n++
		}
	}
	return n
}

// encodeBinaryShift emits a binary-shift run starting at *i: every leading
// byte no text mode covers, bounded by the extended length form.
func encodeBinaryShift(bits []bool, data []byte, i *int, mode Mode) ([]bool, Mode) {
	run := 0
	for *i+run < len(data) && run < binShiftMaxLong {
		if len(modesForByte(data[*i+run])) != 0 {
			break
		}
		run++
	}

	// Punct and Digit have no binary shift; latch to Upper first.
	bs, ok := binaryShiftCode(mode)
	if !ok {
		path, _ := latchPath(mode, ModeUpper)
		for _, op := range path {
			bits = appendBits(bits, op.code, op.width)
		}
		mode = ModeUpper
		bs, _ = binaryShiftCode(mode)
	}

	bits = appendBits(bits, bs.code, bs.width)
	if run <= binShiftMaxShort {
		bits = appendBits(bits, run, 5)
	} else {
		bits = appendBits(bits, 0, 5)
		bits = appendBits(bits, run-31, 11)
	}
	for j := 0; j < run; j++ {
		bits = appendBits(bits, int(data[*i+j]), 8)
	}
	*i += run
	return bits, mode
}
