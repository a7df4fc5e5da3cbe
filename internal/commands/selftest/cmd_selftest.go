package selftest

import (
	"bytes"
	"github.com/bytekit-io/bytekit/internal/logging"
	"github.com/bytekit-io/bytekit/pkg/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command round-trips every registered codec over its own test patterns.
type Command struct {
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Codec self test"
}

//noinspection GoUnusedParameter
func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	var errs error
	for _, codec := range enc.Codecs() {
		failed := 0
		for i, pattern := range codec.TestPatterns() {
			if err := roundTrip(codec, pattern); err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "%s pattern %d", codec.Name(), i))
				failed++
			}
		}
		if failed == 0 {
			log.Infof("%s: %d patterns verified", codec.Name(), len(codec.TestPatterns()))
		} else {
			log.Errorf("%s: %d of %d patterns failed", codec.Name(), failed, len(codec.TestPatterns()))
		}
	}

	return errs
}

func roundTrip(codec enc.Codec, pattern []byte) error {
	decoded, err := codec.Decode(codec.Encode(pattern))
	if err != nil {
		return errors.WithStack(err)
	}
	if !bytes.Equal(decoded, pattern) {
		return errors.Errorf("did not survive the round trip: %s", spew.Sdump(decoded))
	}

	// The typed bridge must agree with the plain encoder.
	if dataURL, ok := codec.(*enc.DataURLEncoder); ok {
		text, err := dataURL.EncodeValue(bytes.NewBuffer(pattern))
		if err != nil {
			return errors.WithStack(err)
		}
		if text != dataURL.Encode(pattern) {
			return errors.Errorf("typed encode disagrees: %s", spew.Sdump(text))
		}
	}

	return nil
}
