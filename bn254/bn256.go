package bn254

import (
	"math/big"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
	"github.com/pkg/errors"
)

// R is the order of the BN254 scalar field. Scalars at or above it are
// rejected rather than reduced, matching the host runtime's field
// deserialization.
var R, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// ethOps implements Ops on go-ethereum's cloudflare bn256 package, the same
// arithmetic that backs the EVM alt_bn128 precompiles. Point deserialization
// validates the curve and subgroup membership, so a malformed operand fails
// here rather than producing garbage downstream.
type ethOps struct{}

// NewOps returns the go-ethereum-backed curve capability.
func NewOps() Ops {
	return ethOps{}
}

func (ethOps) ScalarMul(input []byte) ([]byte, error) {
	if len(input) != MulInputSize {
		return nil, errors.Errorf("bn254: scalar multiplication input must be %d bytes, got %d", MulInputSize, len(input))
	}
	p, err := g1FromBytes(input[:64])
	if err != nil {
		return nil, err
	}
	s := new(big.Int).SetBytes(input[64:96])
	if s.Cmp(R) >= 0 {
		return nil, errors.New("bn254: scalar exceeds the field order")
	}
	return new(bn256.G1).ScalarMult(p, s).Marshal(), nil
}

func (ethOps) Add(input []byte) ([]byte, error) {
	if len(input) != AddInputSize {
		return nil, errors.Errorf("bn254: addition input must be %d bytes, got %d", AddInputSize, len(input))
	}
	a, err := g1FromBytes(input[:64])
	if err != nil {
		return nil, err
	}
	b, err := g1FromBytes(input[64:128])
	if err != nil {
		return nil, err
	}
	return new(bn256.G1).Add(a, b).Marshal(), nil
}

func (ethOps) PairingCheck(input []byte) ([]byte, error) {
	if len(input)%PairSize != 0 {
		return nil, errors.Errorf("bn254: pairing input must be a multiple of %d bytes, got %d", PairSize, len(input))
	}
	k := len(input) / PairSize
	g1s := make([]*bn256.G1, k)
	g2s := make([]*bn256.G2, k)
	for i := 0; i < k; i++ {
		chunk := input[i*PairSize:]
		p, err := g1FromBytes(chunk[:64])
		if err != nil {
			return nil, err
		}
		q, err := g2FromBytes(chunk[64:192])
		if err != nil {
			return nil, err
		}
		g1s[i], g2s[i] = p, q
	}

	// The empty product is the identity.
	out := make([]byte, ResultSize)
	if bn256.PairingCheck(g1s, g2s) {
		out[ResultSize-1] = 1
	}
	return out, nil
}

func g1FromBytes(b []byte) (*bn256.G1, error) {
	p := new(bn256.G1)
	if _, err := p.Unmarshal(b); err != nil {
		return nil, errors.WithMessage(err, "bn254: invalid G1 point")
	}
	return p, nil
}

func g2FromBytes(b []byte) (*bn256.G2, error) {
	q := new(bn256.G2)
	if _, err := q.Unmarshal(b); err != nil {
		return nil, errors.WithMessage(err, "bn254: invalid G2 point")
	}
	return q, nil
}
