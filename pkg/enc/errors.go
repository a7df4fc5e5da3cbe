package enc

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedInput is returned when a value which cannot be viewed as
	// a byte buffer is handed to EncodeValue.
	ErrUnsupportedInput = errors.New("cannot encode: unsupported input type")

	// ErrInvalidBlockSize is returned when a decode is asked to round its
	// output up to blocks of a nonsensical size.
	ErrInvalidBlockSize = errors.New("block size must be at least 1")
)
