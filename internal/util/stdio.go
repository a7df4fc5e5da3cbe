package util

import (
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
)

// StdinMark is the conventional file name standing for the standard streams.
const StdinMark = "-"

// ReadInput reads the whole named file. An empty name or StdinMark reads
// standard input instead.
func ReadInput(name string) ([]byte, error) {
	if name == "" || name == StdinMark {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.WithStack(err)
	}

	data, err := ioutil.ReadFile(name)
	return data, errors.Wrapf(err, "could not read %s", name)
}

// WriteOutput writes data to the named file, replacing what was there. An
// empty name or StdinMark writes to standard output instead.
func WriteOutput(name string, data []byte) error {
	if name == "" || name == StdinMark {
		_, err := os.Stdout.Write(data)
		return errors.WithStack(err)
	}

	return errors.Wrapf(ioutil.WriteFile(name, data, 0644), "could not write %s", name)
}
