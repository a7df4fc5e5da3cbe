package enc

import (
	"github.com/pkg/errors"
	"strings"
)

type Codec interface {
	// Name is the user-friendly name of this codec
	Name() string

	// Encode will take an array of bytes and encode it using this codec
	Encode(src []byte) string

	// Decode is the reverse process of encoding
	Decode(text string) ([]byte, error)

	// TestPatterns returns binary patterns exercised by the round-trip self test
	TestPatterns() [][]byte
}

var (
	// MimeEncoding folds its output into 76-character lines for mail-style
	// transport and skips over anything foreign while decoding.
	MimeEncoding = &MimeEncoder{}

	// DataURLEncoding speaks the "data:<media-type>;base64," dialect and
	// honours trailing padding while decoding.
	DataURLEncoding = &DataURLEncoder{}
)

// Codecs returns all registered codecs, in a stable order.
func Codecs() []Codec {
	return []Codec{
		MimeEncoding,
		DataURLEncoding,
	}
}

// Lookup resolves a codec by name, ignoring case. It returns an error when
// no codec goes by the given name.
func Lookup(name string) (Codec, error) {
	for _, c := range Codecs() {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, errors.Errorf("unknown encoding: %q", name)
}
