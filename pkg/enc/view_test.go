package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_ViewRoundTrip(t *testing.T) {
	vals16 := []uint16{0, 1, 0x0102, 0xffff, 0xaa55}
	back16, err := Uint16View(Uint16Bytes(vals16))
	require.NoError(t, err)
	require.Equal(t, vals16, back16)

	vals32 := []uint32{0, 1, 0x01020304, 0xffffffff}
	back32, err := Uint32View(Uint32Bytes(vals32))
	require.NoError(t, err)
	require.Equal(t, vals32, back32)

	vals64 := []uint64{0, 1, 0x0102030405060708, 0xffffffffffffffff}
	back64, err := Uint64View(Uint64Bytes(vals64))
	require.NoError(t, err)
	require.Equal(t, vals64, back64)
}

func Test_ViewMisaligned(t *testing.T) {
	_, err := Uint16View(make([]byte, 3))
	require.Error(t, err)

	_, err = Uint32View(make([]byte, 6))
	require.Error(t, err)

	_, err = Uint64View(make([]byte, 12))
	require.Error(t, err)
}

func Test_ViewThroughDecode(t *testing.T) {
	encoder := MimeEncoder{}

	// Three decoded bytes round up to two 16-bit values, the spill is zero.
	decoded, err := encoder.DecodeBlocks("TWFu", 2)
	require.NoError(t, err)
	vals, err := Uint16View(decoded)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	require.Equal(t, decoded, Uint16Bytes(vals))
}
