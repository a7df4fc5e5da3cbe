package enc

import "sync"

const (
	// cb64 is the standard Base64 alphabet: 3 input bytes map to 4 of these
	// symbols, most significant 6-bit group first.
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// padChar marks encoded positions that carry no data in the final group.
	padChar = '='
)

// cb64Invert maps a character code back to its 6-bit value. The table is
// total: the 64 alphabet symbols map to 0..63 and every other code point
// stays at the zero sentinel, so lookups never branch and never fail.
// Callers that care about validity must exclude foreign characters first.
var cb64Invert [256]byte
var cbInitialized sync.Once

func init() {
	setupCb64Invert()
}

func setupCb64Invert() {
	cbInitialized.Do(func() {
		for i, v := range []byte(cb64) {
			cb64Invert[v] = byte(i)
		}
	})
}

// sixBits returns the 6-bit value of an encoded symbol, or 0 for any
// character outside the alphabet.
func sixBits(c byte) byte {
	return cb64Invert[c]
}

// isAlphabet reports whether c is one of the 64 data-bearing symbols.
// Padding and separators are not data-bearing.
func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/':
		return true
	}
	return false
}
