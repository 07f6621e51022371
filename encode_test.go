package aztec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEncode(t *testing.T, data string, opts Options) *Code {
	t.Helper()
	code, err := Encode([]byte(data), opts)
	if err != nil {
		t.Fatalf("encode %q: %v", data, err)
	}
	return code
}

func TestEncodeSingleChar(t *testing.T) {
	code := mustEncode(t, "A", Options{})
	require.True(t, code.Compact)
	require.Equal(t, 1, code.Layers)
	require.Equal(t, 15, code.Size)
	require.Equal(t, 6, code.CodewordSize)
	require.Equal(t, code.Size, code.Matrix.Width())

	got, err := Decode(code.Matrix)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), got)
}

func TestEncodeHelloWorld(t *testing.T) {
	code := mustEncode(t, "HELLO WORLD", Options{})
	require.True(t, code.Compact)
	require.Equal(t, 2, code.Layers)
	require.Equal(t, 19, code.Size)

	got, err := Decode(code.Matrix)
	require.NoError(t, err)
	require.Equal(t, []byte("HELLO WORLD"), got)
}

func TestEncodeLowerAndDigits(t *testing.T) {
	code := mustEncode(t, "hello", Options{})
	require.True(t, code.Compact)
	got, err := Decode(code.Matrix)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)

	code = mustEncode(t, "12345", Options{})
	require.True(t, code.Compact)
	got, err = Decode(code.Matrix)
	require.NoError(t, err)
	require.Equal(t, []byte("12345"), got)
}

func TestEncodeEmpty(t *testing.T) {
	code := mustEncode(t, "", Options{})
	require.Equal(t, 0, code.DataCodewords)
	require.Equal(t, 15, code.Size)

	got, err := Decode(code.Matrix)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEncodeForcedForms(t *testing.T) {
	compact := mustEncode(t, "FORM TEST", Options{Form: FormCompact})
	require.True(t, compact.Compact)

	full := mustEncode(t, "FORM TEST", Options{Form: FormFull})
	require.False(t, full.Compact)
	require.Equal(t, symbolSize(false, full.Layers), full.Size)

	for _, code := range []*Code{compact, full} {
		got, err := Decode(code.Matrix)
		require.NoError(t, err)
		require.Equal(t, []byte("FORM TEST"), got)
	}
}

func TestEncodeMinLayers(t *testing.T) {
	code := mustEncode(t, "A", Options{MinLayers: 3})
	require.True(t, code.Layers >= 3)
	got, err := Decode(code.Matrix)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), got)
}

func TestEncodeGrowsWithErrorCorrection(t *testing.T) {
	loose := mustEncode(t, "SAME PAYLOAD EVERY TIME", Options{ErrorCorrection: 0.1})
	tight := mustEncode(t, "SAME PAYLOAD EVERY TIME", Options{ErrorCorrection: 0.8})
	require.GreaterOrEqual(t, tight.Size, loose.Size)

	got, err := Decode(tight.Matrix)
	require.NoError(t, err)
	require.Equal(t, []byte("SAME PAYLOAD EVERY TIME"), got)
}

func TestEncodeTooLarge(t *testing.T) {
	data := bytes.Repeat([]byte{0x80}, 4000)
	_, err := Encode(data, Options{})
	require.ErrorIs(t, err, ErrDataTooLarge)

	_, err = Encode(bytes.Repeat([]byte("X"), 200), Options{Form: FormCompact})
	require.ErrorIs(t, err, ErrDataTooLarge)
}

func TestModeMessageWidths(t *testing.T) {
	require.Len(t, buildModeMessage(true, 2, 10), 28)
	require.Len(t, buildModeMessage(false, 7, 100), 40)
}
