// Command zkverify verifies a single Groth16/BN254 proof buffer and exits
// with 0 on success, 1 on malformed input and 2 on a well-formed but invalid
// proof. The buffer is read from a file or stdin, raw or hex-encoded.
package main

import (
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	zkverify "github.com/zkverify/go-zkverify"
	"github.com/zkverify/go-zkverify/internal/logger"
	"github.com/zkverify/go-zkverify/loaders"
)

const (
	exitOK        = 0
	exitMalformed = 1
	exitInvalid   = 2
)

func main() {
	input := flag.String("input", "-", "file holding the instruction buffer, or - for stdin")
	hexEncoded := flag.Bool("hex", false, "treat the input as hex text instead of raw bytes")
	quiet := flag.Bool("quiet", false, "disable logging, rely on the exit code only")
	flag.Parse()

	if *quiet {
		logger.Disable()
	}
	log := logger.Logger().With().Str("request_id", uuid.NewString()).Logger()

	os.Exit(run(log, *input, *hexEncoded))
}

func run(log zerolog.Logger, input string, hexEncoded bool) int {
	var loader loaders.InstructionLoader
	if input == "-" {
		loader = loaders.ReaderLoader{R: os.Stdin, Hex: hexEncoded}
	} else {
		loader = loaders.FSLoader{Path: input, Hex: hexEncoded}
	}

	data, err := loader.Load()
	if err != nil {
		log.Error().Err(err).Msg("can not load instruction data")
		return exitMalformed
	}

	switch err := zkverify.Verify(data); {
	case err == nil:
		return exitOK
	case errors.Is(err, zkverify.ErrVerificationFailed):
		log.Warn().Err(err).Msg("proof rejected")
		return exitInvalid
	default:
		log.Error().Err(err).Msg("instruction data rejected")
		return exitMalformed
	}
}
