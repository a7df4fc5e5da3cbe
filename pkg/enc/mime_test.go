package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_MimeEncoder(t *testing.T) {
	encoder := MimeEncoder{}
	for _, encoderTest := range encoder.TestPatterns() {
		encoded := encoder.Encode(encoderTest)
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_MimeEncoderEmpty(t *testing.T) {
	encoder := MimeEncoder{}
	require.Equal(t, "", encoder.Encode(nil))
	require.Equal(t, "", encoder.Encode([]byte{}))

	decoded, err := encoder.Decode("")
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func Test_MimeEncoderKnownVector(t *testing.T) {
	encoder := MimeEncoder{}
	require.Equal(t, "TWFu", encoder.Encode([]byte("Man")))

	decoded, err := encoder.Decode("TWFu")
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), decoded)
}

func Test_MimeEncoderPadding(t *testing.T) {
	encoder := MimeEncoder{}
	require.Equal(t, "/w==", encoder.Encode([]byte{0xff}))
	require.Equal(t, "//8=", encoder.Encode([]byte{0xff, 0xff}))
	require.Equal(t, "////", encoder.Encode([]byte{0xff, 0xff, 0xff}))
}

func Test_MimeEncoderFolding(t *testing.T) {
	encoder := MimeEncoder{}

	// 57 bytes make exactly one full line, no separator.
	encoded := encoder.Encode(make([]byte, 57))
	require.Len(t, encoded, 76)
	require.NotContains(t, encoded, "\r\n")

	// One more byte spills into a second line.
	encoded = encoder.Encode(make([]byte, 58))
	require.Equal(t, 76, strings.Index(encoded, "\r\n"))
	require.Len(t, encoded, 82)

	encoded = encoder.Encode(make([]byte, 200))
	for i, line := range strings.Split(encoded, "\r\n") {
		if i < 3 {
			require.Len(t, line, 76)
		} else {
			require.True(t, len(line) <= 76)
		}
	}
}

func Test_MimeEncoderIgnoresForeignCharacters(t *testing.T) {
	encoder := MimeEncoder{}

	decoded, err := encoder.Decode("TW Fu\r\n")
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), decoded)

	decoded, err = encoder.Decode("T=W=F=u")
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), decoded)
}

func Test_MimeEncoderDanglingCharacter(t *testing.T) {
	encoder := MimeEncoder{}

	// A lone fifth character carries only 6 bits, not enough for a byte.
	decoded, err := encoder.Decode("TWFuQ")
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), decoded)

	decoded, err = encoder.Decode("TWFuQQ")
	require.NoError(t, err)
	require.Equal(t, []byte("ManA"), decoded)
}

func Test_MimeEncoderDecodeBlocks(t *testing.T) {
	encoder := MimeEncoder{}

	decoded, err := encoder.DecodeBlocks("TWFu", 2)
	require.NoError(t, err)
	require.Equal(t, []byte{'M', 'a', 'n', 0}, decoded)

	decoded, err = encoder.DecodeBlocks("TWFu", 4)
	require.NoError(t, err)
	require.Equal(t, []byte{'M', 'a', 'n', 0}, decoded)

	decoded, err = encoder.DecodeBlocks("TWFu", 1)
	require.NoError(t, err)
	require.Equal(t, []byte("Man"), decoded)

	_, err = encoder.DecodeBlocks("TWFu", 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidBlockSize))
}

func Test_MimeEncoderDecodeBlocksSpill(t *testing.T) {
	encoder := MimeEncoder{}

	// A dangling character contributes no byte of its own (the floored
	// length drops it), but its six bits still land in the spill zone.
	decoded, err := encoder.DecodeBlocks("TWFuQ", 2)
	require.NoError(t, err)
	require.Equal(t, []byte{'M', 'a', 'n', 0x40}, decoded)

	// The spilled byte survives a view round trip unchanged.
	vals, err := Uint16View(decoded)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	require.Equal(t, decoded, Uint16Bytes(vals))
}
