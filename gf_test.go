package aztec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allFields = []*Field{GF16, GF64, GF256, GF1024, GF4096}

func TestFieldRoundTrips(t *testing.T) {
	for _, f := range allFields {
		for a := 1; a < f.Size(); a++ {
			inv, err := f.Inv(a)
			require.NoError(t, err)
			require.Equal(t, 1, f.Mul(a, inv), "a*inv(a) in GF(%d)", f.Size())

			b := (a*7)%(f.Size()-1) + 1
			q, err := f.Div(f.Mul(a, b), b)
			require.NoError(t, err)
			require.Equal(t, a, q, "div(mul(%d,%d),%d) in GF(%d)", a, b, b, f.Size())
			require.Equal(t, a, f.Add(f.Add(a, b), b))
		}
	}
}

func TestFieldGeneratorProperty(t *testing.T) {
	for _, f := range allFields {
		seen := make(map[int]bool)
		x := 1
		for i := 0; i < f.Size()-1; i++ {
			if seen[x] {
				t.Fatalf("GF(%d): power %d repeats before the group closes", f.Size(), i)
			}
			seen[x] = true
			x = f.Mul(x, 2)
		}
		if x != 1 {
			t.Fatalf("GF(%d): 2^(size-1) = %d, want 1", f.Size(), x)
		}
	}
}

func TestFieldKnownValues(t *testing.T) {
	require.Equal(t, 1, GF256.Exp(0))
	require.Equal(t, 2, GF256.Exp(1))
	require.Equal(t, 1, GF256.Exp(255)) // wraps around the group order

	p := GF256.Mul(42, 23)
	require.True(t, p >= 0 && p <= 255)
	q, err := GF256.Div(p, 23)
	require.NoError(t, err)
	require.Equal(t, 42, q)
}

func TestFieldPow(t *testing.T) {
	require.Equal(t, 1, GF256.Pow(0, 0))
	require.Equal(t, 1, GF256.Pow(7, 0))
	require.Equal(t, 0, GF256.Pow(0, 3))
	require.Equal(t, GF256.Mul(3, GF256.Mul(3, 3)), GF256.Pow(3, 3))
}

func TestFieldUndefinedOps(t *testing.T) {
	_, err := GF16.Div(3, 0)
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, err = GF16.Inv(0)
	require.ErrorIs(t, err, ErrUndefinedInverse)
	_, err = GF16.Log(0)
	require.ErrorIs(t, err, ErrUndefinedLog)
}
