package aztec

// GF(2^p) arithmetic using log/antilog tables, generator alpha = 2.

// Field is a Galois field GF(2^p). Tables are built once at package init and
// never mutated, so a Field is safe to share across concurrent callers.
type Field struct {
	p         int
	size      int // 2^p
	max       int // 2^p - 1, the multiplicative group order
	primitive int
	exp       []int // exp[i] = alpha^i for i in [0, max-1]
	log       []int // log[x] for x in [1, max]; log[0] undefined
}

// Primitive polynomials per field width, in binary.
const (
	poly4  = 0b10011
	poly6  = 0b1000011
	poly8  = 0b100101101
	poly10 = 0b10000001001
	poly12 = 0b1000001101001
)

// Fields used by Aztec symbols. GF16 protects the mode message; the others
// carry payload codewords depending on the layer count.
var (
	GF16   = newField(4, poly4)
	GF64   = newField(6, poly6)
	GF256  = newField(8, poly8)
	GF1024 = newField(10, poly10)
	GF4096 = newField(12, poly12)
)

// FieldFor returns the field of width p. p must be one of 4, 6, 8, 10, 12.
func FieldFor(p int) *Field {
	switch p {
	case 4:
		return GF16
	case 6:
		return GF64
	case 8:
		return GF256
	case 10:
		return GF1024
	case 12:
		return GF4096
	}
	panic("aztec: no field of that width")
}

func newField(p, primitive int) *Field {
	f := &Field{
		p:         p,
		size:      1 << uint(p),
		max:       1<<uint(p) - 1,
		primitive: primitive,
		exp:       make([]int, 1<<uint(p)-1),
		log:       make([]int, 1<<uint(p)),
	}
	x := 1
	for i := 0; i < f.max; i++ {
		f.exp[i] = x
		f.log[x] = i
		x <<= 1
		if x&f.size != 0 {
			x ^= primitive
			x &= f.max
		}
	}
	return f
}

// BitWidth returns p.
func (f *Field) BitWidth() int { return f.p }

// Size returns 2^p.
func (f *Field) Size() int { return f.size }

// Add returns a + b. Subtraction is identical in characteristic 2.
func (f *Field) Add(a, b int) int { return a ^ b }

// Sub returns a - b.
func (f *Field) Sub(a, b int) int { return a ^ b }

// Mul returns a * b.
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(f.log[a]+f.log[b])%f.max]
}

// Div returns a / b, or ErrDivisionByZero when b is zero.
func (f *Field) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	return f.exp[(f.log[a]-f.log[b]+f.max)%f.max], nil
}

// Inv returns the multiplicative inverse of a, or ErrUndefinedInverse for zero.
func (f *Field) Inv(a int) (int, error) {
	if a == 0 {
		return 0, ErrUndefinedInverse
	}
	return f.exp[(f.max-f.log[a])%f.max], nil
}

// Pow returns a^n. a^0 is 1 for every a; 0^n is 0 for n > 0.
func (f *Field) Pow(a, n int) int {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	return f.exp[(f.log[a]*n)%f.max]
}

// Exp returns alpha^n with n reduced mod 2^p-1.
func (f *Field) Exp(n int) int {
	n %= f.max
	if n < 0 {
		n += f.max
	}
	return f.exp[n]
}

// Log returns log base alpha of a, or ErrUndefinedLog for zero.
func (f *Field) Log(a int) (int, error) {
	if a == 0 {
		return 0, ErrUndefinedLog
	}
	return f.log[a], nil
}
