package loaders

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
)

// InstructionLoader loads the raw instruction buffer for a verification call
type InstructionLoader interface {
	Load() ([]byte, error)
}

// FSLoader reads instruction data from the filesystem
type FSLoader struct {
	Path string
	// Hex decodes the file content as hex text instead of raw bytes.
	Hex bool
}

// Load reads the instruction buffer from the configured file
func (l FSLoader) Load() ([]byte, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if l.Hex {
		return decodeHex(data)
	}
	return data, nil
}

// ReaderLoader reads instruction data from an io.Reader, typically stdin
type ReaderLoader struct {
	R   io.Reader
	Hex bool
}

// Load reads the reader to EOF
func (l ReaderLoader) Load() ([]byte, error) {
	data, err := io.ReadAll(l.R)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if l.Hex {
		return decodeHex(data)
	}
	return data, nil
}

func decodeHex(data []byte) ([]byte, error) {
	s := bytes.TrimSpace(data)
	s = bytes.TrimPrefix(s, []byte("0x"))
	out := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(out, s)
	if err != nil {
		return nil, errors.WithMessage(err, "can not decode hex instruction data")
	}
	return out[:n], nil
}
