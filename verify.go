// Package zkverify verifies Groth16 zero-knowledge proofs over the BN254
// (alt_bn128) curve submitted as a single flat instruction buffer holding the
// proof, the public input scalars and the verification key. Each call is an
// independent, stateless pipeline: parse the layout, fold the public inputs
// into a prepared G1 point, then evaluate the pairing equation.
package zkverify

import (
	"github.com/zkverify/go-zkverify/bn254"
	"github.com/zkverify/go-zkverify/groth16"
	"github.com/zkverify/go-zkverify/internal/logger"
	"github.com/zkverify/go-zkverify/types"
	"github.com/zkverify/go-zkverify/wire"
)

// The two failure kinds Verify can return. Match with errors.Is.
var (
	ErrMalformedInput     = types.ErrMalformedInput
	ErrVerificationFailed = types.ErrVerificationFailed
)

// Verify parses instructionData and checks the Groth16 proof it carries
// against the verification key and public inputs in the same buffer, using
// the go-ethereum-backed curve arithmetic. It returns nil on a valid proof,
// ErrVerificationFailed on a well-formed but invalid proof, and
// ErrMalformedInput on any structural failure.
func Verify(instructionData []byte) error {
	return VerifyWithOps(bn254.NewOps(), instructionData)
}

// VerifyWithOps is Verify with an injected curve-arithmetic capability, so
// the pipeline can run against alternative or instrumented backends.
func VerifyWithOps(ops bn254.Ops, instructionData []byte) error {
	ins, err := wire.Parse(instructionData)
	if err != nil {
		return err
	}

	prepared, err := groth16.PrepareInputs(ops, ins.PublicInputs, &ins.VerificationKey)
	if err != nil {
		return err
	}

	if err := groth16.VerifyProof(ops, &ins.Proof, prepared, &ins.VerificationKey); err != nil {
		return err
	}

	log := logger.Logger()
	log.Info().
		Int("public_inputs", len(ins.PublicInputs)).
		Msg("proof verified successfully")
	return nil
}
