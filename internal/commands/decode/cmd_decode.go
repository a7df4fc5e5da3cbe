package decode

import (
	"github.com/bytekit-io/bytekit/internal/logging"
	"github.com/bytekit-io/bytekit/internal/util"
	"github.com/bytekit-io/bytekit/internal/util/mime"
	"github.com/bytekit-io/bytekit/pkg/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Command reads Base64 text and writes back the raw bytes.
type Command struct {
	Encoding  string `json:"encoding"  short:"e" long:"encoding"   env:"ENCODING" description:"Codec used for the input." choice:"mime" choice:"dataurl" default:"dataurl"`
	Input     string `json:"input"     short:"i" long:"input"      env:"INPUT"    description:"Input file. If not set, defaults to stdin." default:"-"`
	Output    string `json:"output"    short:"o" long:"output"     env:"OUTPUT"   description:"Output file. If not set, defaults to stdout." default:"-"`
	PrintType bool   `json:"printType" short:"p" long:"print-type" description:"Report the media type named by the data: marker instead of decoding."`
	BlockSize int    `json:"blockSize" short:"b" long:"block-size" description:"Round the decoded size up to a multiple of this many bytes (mime encoding only)." default:"1"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Decode text to bytes"
}

//noinspection GoUnusedParameter
func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	raw, err := util.ReadInput(s.Input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Surrounding whitespace is an artifact of the transport, not payload.
	text := strings.TrimSpace(string(raw))

	if s.PrintType {
		return s.printType(text)
	}

	var decoded []byte
	if s.BlockSize != 1 {
		if s.Encoding != enc.MimeEncoding.Name() {
			return errors.Errorf("block sizes are only supported by the %s encoding", enc.MimeEncoding.Name())
		}
		decoded, err = enc.MimeEncoding.DecodeBlocks(text, s.BlockSize)
	} else {
		var codec enc.Codec
		if codec, err = enc.Lookup(s.Encoding); err == nil {
			decoded, err = codec.Decode(text)
		}
	}
	if err != nil {
		return errors.WithStack(err)
	}

	log.Debugf("Decoded %d characters into %d bytes", len(text), len(decoded))

	return util.WriteOutput(s.Output, decoded)
}

func (s *Command) printType(text string) error {
	mediaType := enc.MediaTypeOf(text)
	if mediaType == "" {
		return errors.Errorf("no data: marker found in the input")
	}

	base, params := mime.SplitParameters(mediaType)
	line := base
	if len(params) > 0 {
		line += " (" + strings.Join(params, ", ") + ")"
	}

	return util.WriteOutput(s.Output, []byte(line+"\n"))
}
