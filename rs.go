package aztec

// Reed-Solomon over GF(2^p), generator roots alpha^1..alpha^K. The encoder is
// a polynomial remainder; the decoder runs syndromes, Berlekamp-Massey, Chien
// search and Forney magnitudes.

// rsGenerator builds g(x) = prod_{i=1..k} (x - alpha^i), coefficients in
// descending degree order with a leading 1.
func rsGenerator(f *Field, k int) []int {
	g := []int{1}
	for i := 1; i <= k; i++ {
		root := f.Exp(i)
		ng := make([]int, len(g)+1)
		copy(ng, g) // g * x
		for j, c := range g {
			ng[j+1] ^= f.Mul(c, root)
		}
		g = ng
	}
	return g
}

// rsEncode returns the k check codewords for data: the remainder of
// data * x^k divided by the generator.
func rsEncode(f *Field, data []int, k int) []int {
	g := rsGenerator(f, k)
	rem := make([]int, len(data)+k)
	copy(rem, data)
	for i := 0; i < len(data); i++ {
		factor := rem[i]
		if factor == 0 {
			continue
		}
		for j, c := range g {
			rem[i+j] ^= f.Mul(factor, c)
		}
	}
	return rem[len(data):]
}

// rsDecode corrects up to k/2 codeword errors in received (high-to-low degree
// order, data followed by k checks) and returns the corrected codeword.
func rsDecode(f *Field, received []int, k int) ([]int, error) {
	n := len(received)
	out := make([]int, n)
	copy(out, received)

	synd, clean := rsSyndromes(f, out, k)
	if clean {
		return out, nil
	}

	sigma, err := berlekampMassey(f, synd, k)
	if err != nil {
		return nil, err
	}

	positions, err := chienSearch(f, sigma, n)
	if err != nil {
		return nil, err
	}

	magnitudes := forney(f, synd, sigma, positions, k)
	for i, pos := range positions {
		out[n-1-pos] ^= magnitudes[i]
	}

	// A magnitude pattern that still leaves nonzero syndromes means the error
	// count exceeded the correction capacity.
	if _, clean := rsSyndromes(f, out, k); !clean {
		return nil, ErrTooManyErrors
	}
	return out, nil
}

// rsSyndromes evaluates the received polynomial at alpha^1..alpha^k by Horner.
func rsSyndromes(f *Field, received []int, k int) ([]int, bool) {
	synd := make([]int, k)
	clean := true
	for i := 0; i < k; i++ {
		x := f.Exp(i + 1)
		s := 0
		for _, c := range received {
			s = f.Mul(s, x) ^ c
		}
		synd[i] = s
		if s != 0 {
			clean = false
		}
	}
	return synd, clean
}

// berlekampMassey finds the error locator sigma(x) = 1 + s1*x + s2*x^2 + ...
// (ascending coefficients) from the syndromes.
func berlekampMassey(f *Field, synd []int, k int) ([]int, error) {
	sigma := []int{1}
	b := []int{1}
	l := 0
	for i := 0; i < k; i++ {
		delta := 0
		for j := 0; j < len(sigma) && j <= i; j++ {
			delta ^= f.Mul(sigma[j], synd[i-j])
		}
		if delta == 0 {
			b = append([]int{0}, b...)
			continue
		}
		t := polyAdd(sigma, polyScale(f, append([]int{0}, b...), delta))
		if 2*l <= i {
			inv, err := f.Inv(delta)
			if err != nil {
				return nil, err
			}
			b = polyScale(f, sigma, inv)
			l = i + 1 - l
		} else {
			b = append([]int{0}, b...)
		}
		sigma = t
	}
	if polyDegree(sigma) > k/2 {
		return nil, ErrTooManyErrors
	}
	return sigma, nil
}

// chienSearch finds error positions: i such that sigma(alpha^-i) = 0, for
// i in [0, n). Position i addresses received[n-1-i].
func chienSearch(f *Field, sigma []int, n int) ([]int, error) {
	deg := polyDegree(sigma)
	var positions []int
	for i := 0; i < n; i++ {
		x := f.Exp(f.max - i%f.max)
		if polyEval(f, sigma, x) == 0 {
			positions = append(positions, i)
		}
	}
	if len(positions) < deg {
		return nil, ErrTooManyErrors
	}
	return positions, nil
}

// forney computes the error magnitude at each position from the evaluator
// omega(x) = S(x)*sigma(x) mod x^k and the formal derivative of sigma.
func forney(f *Field, synd, sigma []int, positions []int, k int) []int {
	omega := polyMulMod(f, synd, sigma, k)

	// Formal derivative in characteristic 2: odd-degree terms survive.
	deriv := make([]int, len(sigma))
	for m := 1; m < len(sigma); m += 2 {
		deriv[m-1] = sigma[m]
	}

	out := make([]int, len(positions))
	for i, pos := range positions {
		xinv := f.Exp(f.max - pos%f.max)
		den := polyEval(f, deriv, xinv)
		if den == 0 {
			continue
		}
		mag, _ := f.Div(polyEval(f, omega, xinv), den)
		out[i] = mag
	}
	return out
}

// Ascending-order polynomial helpers.

func polyAdd(a, b []int) []int {
	if len(b) > len(a) {
		a, b = b, a
	}
	out := make([]int, len(a))
	copy(out, a)
	for i, c := range b {
		out[i] ^= c
	}
	return out
}

func polyScale(f *Field, a []int, s int) []int {
	out := make([]int, len(a))
	for i, c := range a {
		out[i] = f.Mul(c, s)
	}
	return out
}

func polyMulMod(f *Field, a, b []int, k int) []int {
	out := make([]int, k)
	for i, ca := range a {
		if ca == 0 || i >= k {
			continue
		}
		for j, cb := range b {
			if i+j >= k {
				break
			}
			out[i+j] ^= f.Mul(ca, cb)
		}
	}
	return out
}

func polyEval(f *Field, a []int, x int) int {
	v := 0
	for i := len(a) - 1; i >= 0; i-- {
		v = f.Mul(v, x) ^ a[i]
	}
	return v
}

func polyDegree(a []int) int {
	for i := len(a) - 1; i > 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return 0
}
