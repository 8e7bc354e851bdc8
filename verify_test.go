package zkverify

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkverify/go-zkverify/types"
	"github.com/zkverify/go-zkverify/wire"
)

func g1FromFr(e *fr.Element) types.G1 {
	g1Jac, _, _, _ := curve.Generators()
	var j curve.G1Jac
	j.ScalarMultiplication(&g1Jac, e.BigInt(new(big.Int)))
	var a curve.G1Affine
	a.FromJacobian(&j)
	raw := a.RawBytes()
	var out types.G1
	copy(out[:], raw[:])
	return out
}

func g2FromFr(e *fr.Element) types.G2 {
	_, g2Jac, _, _ := curve.Generators()
	var j curve.G2Jac
	j.ScalarMultiplication(&g2Jac, e.BigInt(new(big.Int)))
	var a curve.G2Affine
	a.FromJacobian(&j)
	raw := a.RawBytes()
	var out types.G2
	copy(out[:], raw[:])
	return out
}

// validInstruction builds an instruction that verifies by construction. With
// every point a known scalar multiple of the generators, the pairing product
// is e(G1,G2) raised to a·b + p·γ + c·δ + α·β, where p is the prepared-input
// scalar; c is chosen so the exponent vanishes.
func validInstruction(pub []uint64) *wire.Instruction {
	var a, b, alpha, beta, gamma, delta fr.Element
	a.SetUint64(6)
	b.SetUint64(13)
	alpha.SetUint64(21)
	beta.SetUint64(8)
	gamma.SetUint64(17)
	delta.SetUint64(29)

	ic := make([]fr.Element, len(pub)+1)
	for i := range ic {
		ic[i].SetUint64(uint64(3*i + 5))
	}
	var p, s, tmp fr.Element
	p.Set(&ic[0])
	for i, v := range pub {
		s.SetUint64(v)
		tmp.Mul(&s, &ic[i+1])
		p.Add(&p, &tmp)
	}

	// c = −(a·b + p·γ + α·β)/δ
	var sum, c fr.Element
	sum.Mul(&a, &b)
	tmp.Mul(&p, &gamma)
	sum.Add(&sum, &tmp)
	tmp.Mul(&alpha, &beta)
	sum.Add(&sum, &tmp)
	sum.Neg(&sum)
	c.Inverse(&delta)
	c.Mul(&c, &sum)

	ins := &wire.Instruction{}
	ins.Proof.A = g1FromFr(&a)
	ins.Proof.B = g2FromFr(&b)
	ins.Proof.C = g1FromFr(&c)
	ins.VerificationKey.AlphaG1 = g1FromFr(&alpha)
	ins.VerificationKey.BetaG2 = g2FromFr(&beta)
	ins.VerificationKey.GammaG2 = g2FromFr(&gamma)
	ins.VerificationKey.DeltaG2 = g2FromFr(&delta)
	ins.VerificationKey.IC = make([]types.G1, len(ic))
	for i := range ic {
		ins.VerificationKey.IC[i] = g1FromFr(&ic[i])
	}
	ins.PublicInputs = make(types.PublicInputs, len(pub))
	for i, v := range pub {
		s.SetUint64(v)
		sb := s.Bytes()
		copy(ins.PublicInputs[i][:], sb[:])
	}
	return ins
}

func TestVerifyValidProof(t *testing.T) {
	require.NoError(t, Verify(validInstruction([]uint64{23, 19}).Encode()))
}

func TestVerifyNoPublicInputs(t *testing.T) {
	require.NoError(t, Verify(validInstruction(nil).Encode()))
}

func TestVerifyTamperedProofPoint(t *testing.T) {
	ins := validInstruction([]uint64{23, 19})
	// Replace A with a different, still valid curve point.
	var other fr.Element
	other.SetUint64(99)
	ins.Proof.A = g1FromFr(&other)

	err := Verify(ins.Encode())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVerificationFailed))
	assert.False(t, errors.Is(err, ErrMalformedInput))
}

func TestVerifyTamperedPublicInput(t *testing.T) {
	ins := validInstruction([]uint64{23, 19})
	ins.PublicInputs[0][types.ScalarSize-1]++

	err := Verify(ins.Encode())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVerificationFailed))
}

func TestVerifyCorruptedBuffer(t *testing.T) {
	data := validInstruction([]uint64{23, 19}).Encode()
	// Flip single bytes across the proof.a region. Depending on the byte the
	// point either leaves the curve (malformed) or the equation breaks
	// (verification failed); neither may panic or be accepted.
	for _, i := range []int{0, 31, 32, 63} {
		corrupted := make([]byte, len(data))
		copy(corrupted, data)
		corrupted[i] ^= 0xff

		err := Verify(corrupted)
		require.Error(t, err, "byte %d", i)
		assert.True(t,
			errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrVerificationFailed),
			"byte %d: unexpected error %v", i, err)
	}
}

func TestVerifyDeterministic(t *testing.T) {
	valid := validInstruction([]uint64{23, 19}).Encode()
	for i := 0; i < 3; i++ {
		assert.NoError(t, Verify(valid))
	}

	invalid := make([]byte, len(valid))
	copy(invalid, valid)
	invalid[300] ^= 0x01 // inside the public input region
	first := Verify(invalid)
	require.Error(t, first)
	for i := 0; i < 3; i++ {
		err := Verify(invalid)
		require.Error(t, err)
		assert.Equal(t, errors.Is(first, ErrVerificationFailed), errors.Is(err, ErrVerificationFailed))
	}
}

func TestVerifyShortBuffer(t *testing.T) {
	for _, n := range []int{0, 100, 255} {
		err := Verify(make([]byte, n))
		require.Error(t, err, "length %d", n)
		assert.True(t, errors.Is(err, ErrMalformedInput), "length %d", n)
	}
}
