package enc

import (
	"bytes"
	"github.com/pkg/errors"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64"
)

// -------------------------------------------------------

// DataURLEncoder encodes 3 bytes to 4 characters without folding, suitable
// for inlining the result into a data: URL. Decoding accepts an optional
// "data:<media-type>;base64," prefix and reads the payload size off the
// trailing padding instead of scrubbing the text.
type DataURLEncoder struct {
	// MediaType, when set, is prepended on encode as
	// "data:<MediaType>;base64,". It is passed through verbatim.
	MediaType string
}

func (b *DataURLEncoder) Name() string {
	return "dataurl"
}

func (b *DataURLEncoder) Encode(src []byte) string {
	out := strings.Builder{}
	out.Grow(len(dataPrefix) + len(b.MediaType) + len(base64Marker) + 1 + (len(src)+2)/3*4)

	if b.MediaType != "" {
		out.WriteString(dataPrefix)
		out.WriteString(b.MediaType)
		out.WriteString(base64Marker)
		out.WriteByte(',')
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

		out.WriteByte(cb64[group>>18&0x3f])
		out.WriteByte(cb64[group>>12&0x3f])
		switch {
		case rem >= 3:
			out.WriteByte(cb64[group>>6&0x3f])
			out.WriteByte(cb64[group&0x3f])
		case rem == 2:
			out.WriteByte(cb64[group>>6&0x3f])
			out.WriteByte(padChar)
		default:
			out.WriteByte(padChar)
			out.WriteByte(padChar)
		}
	}

	return out.String()
}

// EncodeValue encodes anything that can be viewed as a byte buffer: raw
// bytes, a bytes.Buffer, or one of the fixed-width unsigned views. Every
// other type is rejected with ErrUnsupportedInput.
func (b *DataURLEncoder) EncodeValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case []byte:
		return b.Encode(v), nil
	case *bytes.Buffer:
		return b.Encode(v.Bytes()), nil
	case []uint16:
		return b.Encode(Uint16Bytes(v)), nil
	case []uint32:
		return b.Encode(Uint32Bytes(v)), nil
	case []uint64:
		return b.Encode(Uint64Bytes(v)), nil
	default:
		return "", errors.Wrapf(ErrUnsupportedInput, "cannot encode %T value %v", value, value)
	}
}

// Decode strips a leading data: marker if there is one, sizes the output
// off the trailing padding and unpacks four characters at a time. Foreign
// characters are not rejected, they contribute zero bits.
func (b *DataURLEncoder) Decode(text string) ([]byte, error) {
	n, _ := scanPrefix(text)
	text = text[n:]

	pad := 0
	if len(text) >= 2 {
		tail := text[len(text)-2:]
		if tail == "==" {
			pad = 2
		} else if tail[1] == '=' {
			pad = 1
		}
	}

	outLen := len(text)*3/4 - pad
	if outLen < 0 {
		outLen = 0
	}
	out := make([]byte, outLen)

	outIdx := 0
	for i := 0; i < len(text); i += 4 {
		c0 := sixBits(text[i])
		var c1, c2, c3 byte
		if i+1 < len(text) {
			c1 = sixBits(text[i+1])
		}
		if i+2 < len(text) {
			c2 = sixBits(text[i+2])
		}
		if i+3 < len(text) {
			c3 = sixBits(text[i+3])
		}

		if outIdx < outLen {
			out[outIdx] = c0<<2 | c1>>4
			outIdx++
		}
		if outIdx < outLen {
			out[outIdx] = c1<<4 | c2>>2
			outIdx++
		}
		if outIdx < outLen {
			out[outIdx] = c2<<6 | c3
			outIdx++
		}
	}

	return out, nil
}

// MediaTypeOf returns the media type named by a leading data: marker, or
// the empty string when the text carries none.
func MediaTypeOf(text string) string {
	_, mediaType := scanPrefix(text)
	return mediaType
}

// scanPrefix matches a leading "data:<media-type>;base64" marker plus an
// optional ',' or '.' right after it. It returns how many characters the
// marker occupies together with the media type, or 0 and an empty string
// when the text does not start with a marker. The media type must contain
// a '/' but is otherwise taken as-is, parameters and all.
func scanPrefix(text string) (int, string) {
	if !strings.HasPrefix(text, dataPrefix) {
		return 0, ""
	}

	rest := text[len(dataPrefix):]
	mark := strings.Index(rest, base64Marker)
	if mark < 1 {
		return 0, ""
	}

	mediaType := rest[:mark]
	if !strings.Contains(mediaType, "/") {
		return 0, ""
	}

	n := len(dataPrefix) + mark + len(base64Marker)
	if n < len(text) && (text[n] == ',' || text[n] == '.') {
		n++
	}
	return n, mediaType
}

func (b *DataURLEncoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("\377"),
		[]byte("\377\377"),
		[]byte("\377\377\377"),
		[]byte("Man"),
		[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
			"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041"),
	}
}
