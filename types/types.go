// The types package defines the data model shared by the parsing and
// verification components. All values are plain byte encodings: G1 points are
// 64 bytes (x, y as 32-byte big-endian field elements), G2 points are 128
// bytes (two field-extension coordinates of two 32-byte limbs each) and
// scalars are 32-byte big-endian integers.
package types

// Byte widths of the wire-level primitives.
const (
	G1Size     = 64
	G2Size     = 128
	ScalarSize = 32
)

// G1 is an uncompressed BN254 G1 point.
type G1 [G1Size]byte

// G2 is an uncompressed BN254 G2 point.
type G2 [G2Size]byte

// Scalar is a big-endian scalar field element.
type Scalar [ScalarSize]byte

// Proof holds the three curve points of a Groth16 proof.
type Proof struct {
	A G1
	B G2
	C G1
}

// PublicInputs is the ordered sequence of public input scalars. Input i
// corresponds to the verification key's IC point i+1.
type PublicInputs []Scalar

// VerificationKey holds the fixed curve points of a Groth16 verification key
// plus the IC points. IC[0] is the constant term, IC[i+1] is the coefficient
// point for public input i, so len(IC) must equal the input count plus one.
type VerificationKey struct {
	AlphaG1 G1
	BetaG2  G2
	GammaG2 G2
	DeltaG2 G2
	IC      []G1
}
