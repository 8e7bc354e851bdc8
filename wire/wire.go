// Package wire slices the flat instruction buffer into a proof, the public
// input scalars and the verification key. The layout carries no length
// prefixes; every region is located from the total buffer length and the
// fixed component widths:
//
//	offset 0          proof.a  (64, G1)
//	offset 64         proof.b  (128, G2)
//	offset 192        proof.c  (64, G1)
//	offset 256        public inputs (32·k scalars)
//	vkStart           vk.alpha_g1 (64)
//	vkStart+64        vk.beta_g2  (128)
//	vkStart+192       vk.gamma_g2 (128)
//	vkStart+320       vk.delta_g2 (128)
//	vkStart+448       vk.ic (64·(k+1) G1 points)
//
// A conforming buffer therefore has length 768 + 96·k, which determines the
// public input count k and with it vkStart = 256 + 32·k.
package wire

import (
	"github.com/pkg/errors"

	"github.com/zkverify/go-zkverify/types"
)

// Fixed region sizes of the instruction layout.
const (
	ProofSize   = 2*types.G1Size + types.G2Size // 256
	VKFixedSize = types.G1Size + 3*types.G2Size // 448

	// minSize is the shortest conforming buffer: proof, VK fixed fields and
	// the constant IC point, with no public inputs.
	minSize = ProofSize + VKFixedSize + types.G1Size

	// inputStride is the cost of one public input: a 32-byte scalar plus the
	// matching IC point.
	inputStride = types.ScalarSize + types.G1Size
)

// Instruction is the fully sliced verification request.
type Instruction struct {
	Proof           types.Proof
	PublicInputs    types.PublicInputs
	VerificationKey types.VerificationKey
}

// Parse slices data into an Instruction. It is a pure function of the input
// bytes; every failure is the malformed-input kind.
func Parse(data []byte) (*Instruction, error) {
	if len(data) < ProofSize {
		return nil, errors.Wrapf(types.ErrMalformedInput,
			"buffer of %d bytes is too short for a proof", len(data))
	}

	var ins Instruction
	copy(ins.Proof.A[:], data[0:64])
	copy(ins.Proof.B[:], data[64:192])
	copy(ins.Proof.C[:], data[192:256])

	if len(data) < minSize || (len(data)-minSize)%inputStride != 0 {
		return nil, errors.Wrapf(types.ErrMalformedInput,
			"buffer of %d bytes does not hold a whole number of public inputs and a verification key", len(data))
	}
	k := (len(data) - minSize) / inputStride

	ins.PublicInputs = make(types.PublicInputs, k)
	for i := 0; i < k; i++ {
		copy(ins.PublicInputs[i][:], data[ProofSize+i*types.ScalarSize:])
	}

	vkStart := ProofSize + k*types.ScalarSize
	copy(ins.VerificationKey.AlphaG1[:], data[vkStart:vkStart+64])
	copy(ins.VerificationKey.BetaG2[:], data[vkStart+64:vkStart+192])
	copy(ins.VerificationKey.GammaG2[:], data[vkStart+192:vkStart+320])
	copy(ins.VerificationKey.DeltaG2[:], data[vkStart+320:vkStart+448])

	icStart := vkStart + VKFixedSize
	ins.VerificationKey.IC = make([]types.G1, k+1)
	for i := range ins.VerificationKey.IC {
		copy(ins.VerificationKey.IC[i][:], data[icStart+i*types.G1Size:])
	}

	return &ins, nil
}

// Encode assembles the instruction back into the flat buffer layout. It is
// the exact inverse of Parse for conforming instructions.
func (ins *Instruction) Encode() []byte {
	n := ProofSize + len(ins.PublicInputs)*types.ScalarSize +
		VKFixedSize + len(ins.VerificationKey.IC)*types.G1Size

	out := make([]byte, 0, n)
	out = append(out, ins.Proof.A[:]...)
	out = append(out, ins.Proof.B[:]...)
	out = append(out, ins.Proof.C[:]...)
	for i := range ins.PublicInputs {
		out = append(out, ins.PublicInputs[i][:]...)
	}
	out = append(out, ins.VerificationKey.AlphaG1[:]...)
	out = append(out, ins.VerificationKey.BetaG2[:]...)
	out = append(out, ins.VerificationKey.GammaG2[:]...)
	out = append(out, ins.VerificationKey.DeltaG2[:]...)
	for i := range ins.VerificationKey.IC {
		out = append(out, ins.VerificationKey.IC[i][:]...)
	}
	return out
}
