package types

import "github.com/pkg/errors"

// The verifier reports exactly two failure kinds. Every internal error
// collapses to one of them before it crosses the package boundary, so callers
// can match with errors.Is and map the result to a binary accept/reject.
var (
	// ErrMalformedInput covers every structural failure: a buffer too short
	// or misaligned, an IC/input count mismatch, or a curve primitive
	// rejecting its operand encoding.
	ErrMalformedInput = errors.New("malformed instruction data")

	// ErrVerificationFailed means the proof parsed and all curve operations
	// succeeded, but the pairing equation did not hold. It is a legitimate
	// "no" answer, not a corruption signal.
	ErrVerificationFailed = errors.New("proof verification failed")
)
