package groth16

import (
	"github.com/pkg/errors"

	"github.com/zkverify/go-zkverify/bn254"
	"github.com/zkverify/go-zkverify/types"
)

// VerifyProof evaluates the Groth16 pairing equation
//
//	e(A, B) · e(prepared, γ)⁻¹ · e(C, δ)⁻¹ · e(α, β)⁻¹ == 1
//
// over the proof, the prepared public inputs and the verification key. The
// sign convention is owned by the pairing primitive; this function only fixes
// the operand order. A pairing result other than 1 in the last byte is the
// verification-failed kind, distinct from any malformed-input failure.
func VerifyProof(ops bn254.Ops, proof *types.Proof, prepared types.G1, vk *types.VerificationKey) error {
	input := make([]byte, 0, 4*bn254.PairSize)
	input = append(input, proof.A[:]...)
	input = append(input, proof.B[:]...)
	input = append(input, prepared[:]...)
	input = append(input, vk.GammaG2[:]...)
	input = append(input, proof.C[:]...)
	input = append(input, vk.DeltaG2[:]...)
	input = append(input, vk.AlphaG1[:]...)
	input = append(input, vk.BetaG2[:]...)

	res, err := ops.PairingCheck(input)
	if err != nil {
		return errors.Wrapf(types.ErrMalformedInput, "pairing check: %v", err)
	}
	if len(res) != bn254.ResultSize || res[bn254.ResultSize-1] != 1 {
		return errors.WithStack(types.ErrVerificationFailed)
	}
	return nil
}
