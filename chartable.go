package aztec

// Character tables for the five Aztec text modes. The layout mirrors the
// ISO 24778 code charts: one 32-entry table per 5-bit mode and a 16-entry
// table for Digit. Control entries use ctrl* markers so the same tables feed
// both the encoder (via reverse maps) and the decoder.

// Mode is a high-level encoding mode.
type Mode int

const (
	ModeUpper Mode = iota
	ModeLower
	ModeMixed
	ModePunct
	ModeDigit
)

var modeNames = [...]string{"upper", "lower", "mixed", "punct", "digit"}

func (m Mode) String() string { return modeNames[m] }

// allModes in candidate-scan order.
var allModes = [...]Mode{ModeUpper, ModeLower, ModeMixed, ModePunct, ModeDigit}

// Control markers. Anything of length > 1 in a code table is either a marker
// or a two-byte punctuation pair.
const (
	ctrlPS  = "<PS>"  // shift to punct
	ctrlUS  = "<US>"  // shift to upper
	ctrlUL  = "<UL>"  // latch to upper
	ctrlLL  = "<LL>"  // latch to lower
	ctrlML  = "<ML>"  // latch to mixed
	ctrlPL  = "<PL>"  // latch to punct
	ctrlDL  = "<DL>"  // latch to digit
	ctrlBS  = "<BS>"  // binary shift
	ctrlFLG = "<FLG>" // FLG(n), punct code 0
)

var upperTable = [32]string{
	ctrlPS, " ", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
	"M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	ctrlLL, ctrlML, ctrlDL, ctrlBS,
}

var lowerTable = [32]string{
	ctrlPS, " ", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l",
	"m", "n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	ctrlUS, ctrlML, ctrlDL, ctrlBS,
}

var mixedTable = [32]string{
	ctrlPS, " ", "\x01", "\x02", "\x03", "\x04", "\x05", "\x06", "\x07",
	"\x08", "\x09", "\x0a", "\x0b", "\x0c", "\x0d", "\x1b", "\x1c", "\x1d",
	"\x1e", "\x1f", "@", "\\", "^", "_", "`", "|", "~", "\x7f",
	ctrlLL, ctrlUL, ctrlPL, ctrlBS,
}

var punctTable = [32]string{
	ctrlFLG, "\r", "\r\n", ". ", ", ", ": ", "!", "\"", "#", "$", "%", "&",
	"'", "(", ")", "*", "+", ",", "-", ".", "/", ":", ";", "<", "=", ">",
	"?", "[", "]", "{", "}", ctrlUL,
}

var digitTable = [16]string{
	ctrlPS, " ", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ",", ".",
	ctrlUL, ctrlUS,
}

func codeTable(m Mode) []string {
	switch m {
	case ModeUpper:
		return upperTable[:]
	case ModeLower:
		return lowerTable[:]
	case ModeMixed:
		return mixedTable[:]
	case ModePunct:
		return punctTable[:]
	default:
		return digitTable[:]
	}
}

// bitWidth returns the code width of a mode: 4 bits for Digit, 5 otherwise.
func bitWidth(m Mode) int {
	if m == ModeDigit {
		return 4
	}
	return 5
}

// codeOp is a code plus the width it is emitted with.
type codeOp struct {
	code  int
	width int
}

// Reverse maps, built once from the code tables.
var (
	charCodes [5]map[byte]int
	pairCodes map[[2]byte]int
)

func init() {
	for _, m := range allModes {
		codes := make(map[byte]int)
		for code, s := range codeTable(m) {
			if len(s) == 1 {
				codes[s[0]] = code
			}
		}
		charCodes[m] = codes
	}
	pairCodes = make(map[[2]byte]int)
	for code, s := range punctTable {
		if len(s) == 2 && s[0] != '<' {
			pairCodes[[2]byte{s[0], s[1]}] = code
		}
	}
}

// charCode returns the direct code for b in mode m.
func charCode(m Mode, b byte) (int, bool) {
	code, ok := charCodes[m][b]
	return code, ok
}

// pairCode returns the two-byte punctuation pair code for b1 b2. Pairs exist
// only in Punct mode.
func pairCode(b1, b2 byte) (int, bool) {
	code, ok := pairCodes[[2]byte{b1, b2}]
	return code, ok
}

// modesForByte returns every mode that can encode b directly.
func modesForByte(b byte) []Mode {
	var out []Mode
	for _, m := range allModes {
		if _, ok := charCodes[m][b]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Single-step latches between modes.
var latchOps = map[Mode]map[Mode]codeOp{
	ModeUpper: {ModeLower: {28, 5}, ModeMixed: {29, 5}, ModeDigit: {30, 5}},
	ModeLower: {ModeMixed: {29, 5}, ModeDigit: {30, 5}},
	ModeMixed: {ModeLower: {28, 5}, ModeUpper: {29, 5}, ModePunct: {30, 5}},
	ModePunct: {ModeUpper: {31, 5}},
	ModeDigit: {ModeUpper: {14, 4}},
}

// Single-character shifts between modes.
var shiftOps = map[Mode]map[Mode]codeOp{
	ModeUpper: {ModePunct: {0, 5}},
	ModeLower: {ModePunct: {0, 5}, ModeUpper: {28, 5}},
	ModeMixed: {ModePunct: {0, 5}},
	ModeDigit: {ModePunct: {0, 4}, ModeUpper: {15, 4}},
}

// latch returns the single-step latch code from one mode to another.
func latch(from, to Mode) (codeOp, bool) {
	op, ok := latchOps[from][to]
	return op, ok
}

// shift returns the shift code from one mode to another.
func shift(from, to Mode) (codeOp, bool) {
	op, ok := shiftOps[from][to]
	return op, ok
}

// latchPath returns the latch sequence from one mode to another. Paths that
// need an intermediate mode are spelled out; there is no single latch from
// Lower to Upper, so that route runs through Digit.
var latchPaths = map[Mode]map[Mode][]codeOp{
	ModeUpper: {
		ModeLower: {{28, 5}},
		ModeMixed: {{29, 5}},
		ModePunct: {{29, 5}, {30, 5}},
		ModeDigit: {{30, 5}},
	},
	ModeLower: {
		ModeUpper: {{30, 5}, {14, 4}},
		ModeMixed: {{29, 5}},
		ModePunct: {{29, 5}, {30, 5}},
		ModeDigit: {{30, 5}},
	},
	ModeMixed: {
		ModeUpper: {{29, 5}},
		ModeLower: {{28, 5}},
		ModePunct: {{30, 5}},
		ModeDigit: {{29, 5}, {30, 5}},
	},
	ModePunct: {
		ModeUpper: {{31, 5}},
		ModeLower: {{31, 5}, {28, 5}},
		ModeMixed: {{31, 5}, {29, 5}},
		ModeDigit: {{31, 5}, {30, 5}},
	},
	ModeDigit: {
		ModeUpper: {{14, 4}},
		ModeLower: {{14, 4}, {28, 5}},
		ModeMixed: {{14, 4}, {29, 5}},
		ModePunct: {{14, 4}, {29, 5}, {30, 5}},
	},
}

func latchPath(from, to Mode) ([]codeOp, bool) {
	path, ok := latchPaths[from][to]
	return path, ok
}

// binaryShiftCode returns the binary-shift code for a mode. Punct and Digit
// have no binary shift; callers latch to Upper first.
func binaryShiftCode(m Mode) (codeOp, bool) {
	switch m {
	case ModeUpper, ModeLower, ModeMixed:
		return codeOp{31, 5}, true
	}
	return codeOp{}, false
}

// flgCode is punct code 0, announcing FLG(n).
func flgCode() codeOp { return codeOp{0, 5} }
