// Package bn254 exposes the elliptic-curve arithmetic the verifier depends on
// as a narrow byte-level capability. The encodings match the alt_bn128
// precompile conventions: G1 points are 64 bytes, G2 points 128 bytes,
// scalars 32 bytes, all big-endian, and the pairing check returns a 32-byte
// word whose last byte is 1 when the pairing product is the identity.
package bn254

// Input and output widths of the capability calls.
const (
	MulInputSize = 64 + 32  // G1 point followed by a scalar
	AddInputSize = 64 + 64  // two G1 points
	PairSize     = 64 + 128 // one G1/G2 pair of a pairing operand
	PointSize    = 64
	ResultSize   = 32
)

// Ops is the curve-arithmetic capability consumed by the verification
// pipeline. Implementations are pure: identical inputs produce identical
// outputs and no state is carried between calls.
//
//go:generate mockgen -destination=mock/OpsMock.go . Ops
type Ops interface {
	// ScalarMul multiplies a G1 point by a scalar. Input is the 64-byte
	// point followed by the 32-byte scalar; output is the 64-byte product.
	ScalarMul(input []byte) ([]byte, error)

	// Add adds two G1 points. Input is the two 64-byte points concatenated;
	// output is the 64-byte sum.
	Add(input []byte) ([]byte, error)

	// PairingCheck evaluates the product of pairings over the given
	// 192-byte (G1, G2) operand pairs and reports whether it equals the
	// identity in the 32-byte result word.
	PairingCheck(input []byte) ([]byte, error)
}
