package encode

import (
	"github.com/bytekit-io/bytekit/internal/logging"
	"github.com/bytekit-io/bytekit/internal/util"
	"github.com/bytekit-io/bytekit/pkg/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads raw bytes and writes them back out as Base64 text.
type Command struct {
	Encoding  string `json:"encoding"  short:"e" long:"encoding"   env:"ENCODING"   description:"Codec used for the output." choice:"mime" choice:"dataurl" default:"mime"`
	MediaType string `json:"mediaType" short:"t" long:"media-type" env:"MEDIA_TYPE" description:"Embed the output in a data: URL carrying this media type. Implies the dataurl encoding."`
	Input     string `json:"input"     short:"i" long:"input"      env:"INPUT"      description:"Input file. If not set, defaults to stdin." default:"-"`
	Output    string `json:"output"    short:"o" long:"output"     env:"OUTPUT"     description:"Output file. If not set, defaults to stdout." default:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Encode bytes to text"
}

//noinspection GoUnusedParameter
func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := util.ReadInput(s.Input)
	if err != nil {
		return errors.WithStack(err)
	}

	var encoded string
	if s.MediaType != "" {
		encoder := &enc.DataURLEncoder{MediaType: s.MediaType}
		encoded = encoder.Encode(data)
	} else {
		codec, err := enc.Lookup(s.Encoding)
		if err != nil {
			return errors.WithStack(err)
		}
		encoded = codec.Encode(data)
	}

	log.Debugf("Encoded %d bytes into %d characters", len(data), len(encoded))

	return util.WriteOutput(s.Output, []byte(encoded+"\n"))
}
