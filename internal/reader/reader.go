// Package reader collects the input of a codec call from the
// command line.
package reader

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Stdin is the source name reported for data read from the
// fallback reader.
const Stdin = "stdin"

// Read returns the bytes named by input or file, or everything
// read from r if both are empty.
//
// The returned data is never nil, so an empty source is passed
// on as empty input rather than missing input. source describes
// where the data came from.
func Read(input, file string, r io.Reader) (data []byte, source string, err error) {
	switch {
	case input != "" && file != "":
		return nil, "", errors.New("only one of --input and --file can be given")
	case input != "":
		return []byte(input), "input", nil
	case file != "":
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, "", errors.Wrapf(err, "read %s", file)
		}
		return nonNil(data), file, nil
	case r == nil:
		return nil, "", errors.New("--input or --file should be given")
	default:
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, "", errors.Wrap(err, "read stdin")
		}
		return nonNil(data), Stdin, nil
	}
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
