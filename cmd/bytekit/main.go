package main

import (
	"fmt"
	"github.com/bytekit-io/bytekit/internal/args"
	"github.com/bytekit-io/bytekit/internal/commands/decode"
	"github.com/bytekit-io/bytekit/internal/commands/encode"
	"github.com/bytekit-io/bytekit/internal/commands/selftest"
	"github.com/bytekit-io/bytekit/internal/commands/version"
	bkFlags "github.com/bytekit-io/bytekit/internal/flags"
	"github.com/bytekit-io/bytekit/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Bytekit is the main executable
type Bytekit struct {
	parser *flags.Parser
}

// NewBytekit will create a new instance of Bytekit and initialize the parser
func NewBytekit() *Bytekit {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	bk := &Bytekit{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bk.setupGeneral()
	bk.setupVersion()
	bk.setupEncode()
	bk.setupDecode()
	bk.setupSelftest()

	return bk
}

// setupGeneral will configure general options
func (bk *Bytekit) setupGeneral() {
	if _, err := bk.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (bk *Bytekit) setupVersion() {
	cmd := &version.Command{}
	_, err := bk.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (bk *Bytekit) setupEncode() {
	cmd := encode.NewCommand()
	_, err := bk.parser.AddCommand(
		"encode",
		"Encode bytes to text",
		"Read raw bytes and write them out as Base64 text",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (bk *Bytekit) setupDecode() {
	cmd := decode.NewCommand()
	_, err := bk.parser.AddCommand(
		"decode",
		"Decode text to bytes",
		"Read Base64 text and write back the raw bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupSelftest adds the `selftest` command
func (bk *Bytekit) setupSelftest() {
	cmd := selftest.NewCommand()
	_, err := bk.parser.AddCommand(
		"selftest",
		"Run the codec self test",
		"Round-trip every codec over its own test patterns and report failures",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts bytekit and reads the configuration file
func main() {

	bytekit := NewBytekit()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bkFlags.NewYamlParser(bytekit.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := bytekit.parser.Parse()
	util.MustErrorNilOrExit(err)

}
