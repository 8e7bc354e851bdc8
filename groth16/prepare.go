// Package groth16 implements the two cryptographic stages of the
// verification pipeline: folding the public inputs into a single prepared
// G1 point, and evaluating the Groth16 pairing equation over it.
package groth16

import (
	"github.com/pkg/errors"

	"github.com/zkverify/go-zkverify/bn254"
	"github.com/zkverify/go-zkverify/types"
)

// PrepareInputs folds the public inputs and the verification key's IC points
// into the aggregate point ic[0] + Σ inputs[i]·ic[i+1]. With no public inputs
// the result is ic[0] and no curve call is made.
func PrepareInputs(ops bn254.Ops, inputs types.PublicInputs, vk *types.VerificationKey) (types.G1, error) {
	var prepared types.G1
	if len(inputs)+1 != len(vk.IC) {
		return prepared, errors.Wrapf(types.ErrMalformedInput,
			"verification key carries %d IC points for %d public inputs", len(vk.IC), len(inputs))
	}

	prepared = vk.IC[0]
	for i := range inputs {
		mulIn := make([]byte, 0, bn254.MulInputSize)
		mulIn = append(mulIn, vk.IC[i+1][:]...)
		mulIn = append(mulIn, inputs[i][:]...)
		mul, err := ops.ScalarMul(mulIn)
		if err != nil {
			return types.G1{}, errors.Wrapf(types.ErrMalformedInput,
				"scalar multiplication of IC point %d: %v", i+1, err)
		}

		// The fresh product goes first, the running accumulator second. The
		// operand order is part of the byte-level calling convention and must
		// not be swapped even though point addition commutes.
		addIn := make([]byte, 0, bn254.AddInputSize)
		addIn = append(addIn, mul...)
		addIn = append(addIn, prepared[:]...)
		sum, err := ops.Add(addIn)
		if err != nil {
			return types.G1{}, errors.Wrapf(types.ErrMalformedInput,
				"accumulating public input %d: %v", i, err)
		}
		if len(sum) != types.G1Size {
			return types.G1{}, errors.Wrapf(types.ErrMalformedInput,
				"curve addition returned %d bytes, want %d", len(sum), types.G1Size)
		}
		copy(prepared[:], sum)
	}

	return prepared, nil
}
