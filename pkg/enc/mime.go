package enc

import (
	"bytes"
	"github.com/pkg/errors"
	"strings"
)

// LineLength is the number of characters emitted between line separators,
// the classic MIME limit for encoded bodies.
const LineLength = 76

// -------------------------------------------------------

// MimeEncoder encodes 3 bytes to 4 characters and folds the encoded text
// into LineLength-character lines, separated by CRLF. Decoding first drops
// everything outside the alphabet, so padding, separators and stray
// whitespace never reach the bit unpacker.
type MimeEncoder struct {
}

func (b *MimeEncoder) Name() string {
	return "mime"
}

func (b *MimeEncoder) Encode(src []byte) string {
	out := strings.Builder{}
	out.Grow(foldedLen(len(src)))

	emitted := 0
	emit := func(c byte) {
		// The separator itself does not count against the line width.
		if emitted > 0 && emitted%LineLength == 0 {
			out.WriteString("\r\n")
		}
		out.WriteByte(c)
		emitted++
	}

	for i := 0; i < len(src); i += 3 {
		rem := len(src) - i

		group := uint32(src[i]) << 16
		if rem >= 2 {
			group |= uint32(src[i+1]) << 8
		}
		if rem >= 3 {
			group |= uint32(src[i+2])
		}

		emit(cb64[group>>18&0x3f])
		emit(cb64[group>>12&0x3f])
		switch {
		case rem >= 3:
			emit(cb64[group>>6&0x3f])
			emit(cb64[group&0x3f])
		case rem == 2:
			emit(cb64[group>>6&0x3f])
			emit(padChar)
		default:
			emit(padChar)
			emit(padChar)
		}
	}

	return out.String()
}

// foldedLen is the encoded length of n bytes, line separators included.
func foldedLen(n int) int {
	if n == 0 {
		return 0
	}
	data := (n + 2) / 3 * 4
	return data + (data-1)/LineLength*2
}

// Decode drops every character outside the Base64 alphabet, padding and
// separators included, and unpacks what remains. It never fails: foreign
// characters are removed up front rather than rejected.
func (b *MimeEncoder) Decode(text string) ([]byte, error) {
	return b.decode(text, 1)
}

// DecodeBlocks behaves as Decode but rounds the output buffer up to a
// multiple of blockSize, zero-filling the spill. Use it when the decoded
// bytes are going to be reinterpreted through Uint16View and friends.
func (b *MimeEncoder) DecodeBlocks(text string, blockSize int) ([]byte, error) {
	if blockSize < 1 {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "cannot decode into blocks of %d", blockSize)
	}
	return b.decode(text, blockSize)
}

func (b *MimeEncoder) decode(text string, blockSize int) ([]byte, error) {
	clean := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isAlphabet(text[i]) {
			clean = append(clean, text[i])
		}
	}

	// Padding is gone at this point, so three quarters of what is left,
	// rounded down, is the exact payload size.
	n := len(clean)
	outLen := n * 3 / 4
	if blockSize > 1 {
		outLen = (outLen + blockSize - 1) / blockSize * blockSize
	}
	out := make([]byte, outLen)

	outIdx := 0
	group := uint32(0)
	for i := 0; i < n; i++ {
		group |= uint32(sixBits(clean[i])) << uint(6*(3-i&3))
		if i&3 == 3 || i == n-1 {
			for k := 0; k < 3 && outIdx < outLen; k++ {
				out[outIdx] = byte(group >> uint(16-8*k))
				outIdx++
			}
			group = 0
		}
	}

	return out, nil
}

func (b *MimeEncoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("Man"),
		[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
			"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
			"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
		// Long enough for the fold to kick in twice.
		bytes.Repeat([]byte("\001\002\003\374"), 30),
	}
}
