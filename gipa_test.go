package gipa_test

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/gipa"
	"github.com/consensys/gipa/concrete/afgho"
	"github.com/consensys/gipa/concrete/field"
	"github.com/consensys/gipa/concrete/group"
	"github.com/consensys/gipa/concrete/identity"
	"github.com/consensys/gipa/concrete/innerproduct"
	"github.com/consensys/gipa/concrete/pedersen"
)

func sampleFr(rng io.Reader) (field.Fr, error) {
	e, err := pedersen.RandomScalar(rng)
	return field.NewFr(e), err
}

func randomFrs(t *testing.T, n int) []field.Fr {
	t.Helper()
	out := make([]field.Fr, n)
	for i := range out {
		v, err := sampleFr(rand.Reader)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func randomG1s(t *testing.T, n int) []group.G1 {
	t.Helper()
	pts, err := pedersen.RandomG1Generators(rand.Reader, n)
	require.NoError(t, err)
	out := make([]group.G1, n)
	for i, p := range pts {
		out[i] = group.NewG1(p)
	}
	return out
}

func randomG2s(t *testing.T, n int) []group.G2 {
	t.Helper()
	pts, err := pedersen.RandomG2Generators(rand.Reader, n)
	require.NoError(t, err)
	out := make([]group.G2, n)
	for i, p := range pts {
		out[i] = group.NewG2(p)
	}
	return out
}

// one returns the field element 1, used to perturb a base message by a
// known, always-nonzero delta.
func one() field.Fr {
	var e fr.Element
	e.SetOne()
	return field.NewFr(e)
}

// scalarScalarContext instantiates S1: both left and right commitments are
// Pedersen-G2, the inner-product operator is the plain field inner
// product, and the target commitment is the identity over F.
func scalarScalarContext() *gipa.Context[
	field.Fr,
	group.G2, field.Fr, group.G2,
	group.G2, field.Fr, group.G2,
	field.Fr, field.Fr, field.Fr,
] {
	return &gipa.Context[
		field.Fr,
		group.G2, field.Fr, group.G2,
		group.G2, field.Fr, group.G2,
		field.Fr, field.Fr, field.Fr,
	]{
		Left:   pedersen.G2{},
		Right:  pedersen.G2{},
		Target: identity.New[field.Fr, field.Fr](sampleFr),
		IP:     innerproduct.Scalar{},
		Field:  field.Ops{},
		Digest: gipa.SHA256,
	}
}

// multiExpContext instantiates S2: left messages are G1, right messages
// are scalars, the inner product is the multiexponentiation sum_i a_i*b_i
// in G1, left commitment is AFGHO-G1 and right commitment is Pedersen-G1.
func multiExpContext() *gipa.Context[
	field.Fr,
	group.G2, group.G1, group.GT,
	group.G1, field.Fr, group.G1,
	field.Fr, group.G1, group.G1,
] {
	return &gipa.Context[
		field.Fr,
		group.G2, group.G1, group.GT,
		group.G1, field.Fr, group.G1,
		field.Fr, group.G1, group.G1,
	]{
		Left:   afgho.G1{},
		Right:  pedersen.G1{},
		Target: identity.New[field.Fr, group.G1](sampleFr),
		IP:     innerproduct.MultiExpG1{},
		Field:  field.Ops{},
		Digest: gipa.SHA256,
	}
}

// pairingContext instantiates S3: left messages are G1, right messages
// are G2, the inner product is the pairing product into GT, and both
// commitments are AFGHO.
func pairingContext() *gipa.Context[
	field.Fr,
	group.G2, group.G1, group.GT,
	group.G1, group.G2, group.GT,
	field.Fr, group.GT, group.GT,
] {
	return &gipa.Context[
		field.Fr,
		group.G2, group.G1, group.GT,
		group.G1, group.G2, group.GT,
		field.Fr, group.GT, group.GT,
	]{
		Left:   afgho.G1{},
		Right:  afgho.G2{},
		Target: identity.New[field.Fr, group.GT](sampleFr),
		IP:     innerproduct.Pairing{},
		Field:  field.Ops{},
		Digest: gipa.SHA256,
	}
}

func TestScenario1ScalarScalar(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 8
	a := randomFrs(t, n)
	b := randomFrs(t, n)

	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)

	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []field.Fr{tVal})
	require.NoError(t, err)

	proof, err := ctx.Prove(a, b, tVal, ckL, ckR, ckT, comL, comR, comT)
	require.NoError(t, err)
	require.Len(t, proof.Rounds, 3)

	ok, err := ctx.Verify(ckL, ckR, ckT, comL, comR, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScenario2MultiExponentiation(t *testing.T) {
	ctx := multiExpContext()
	const n = 4
	a := randomG1s(t, n)
	b := randomFrs(t, n)

	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)

	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []group.G1{tVal})
	require.NoError(t, err)

	proof, err := ctx.Prove(a, b, tVal, ckL, ckR, ckT, comL, comR, comT)
	require.NoError(t, err)

	ok, err := ctx.Verify(ckL, ckR, ckT, comL, comR, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScenario3Pairing(t *testing.T) {
	ctx := pairingContext()
	const n = 4
	a := randomG1s(t, n)
	b := randomG2s(t, n)

	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)

	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []group.GT{tVal})
	require.NoError(t, err)

	proof, err := ctx.Prove(a, b, tVal, ckL, ckR, ckT, comL, comR, comT)
	require.NoError(t, err)

	ok, err := ctx.Verify(ckL, ckR, ckT, comL, comR, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScenario4TamperedBaseRejected(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 8
	a := randomFrs(t, n)
	b := randomFrs(t, n)

	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)

	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []field.Fr{tVal})
	require.NoError(t, err)

	proof, err := ctx.Prove(a, b, tVal, ckL, ckR, ckT, comL, comR, comT)
	require.NoError(t, err)

	tampered := proof.Clone()
	tampered.BaseA = tampered.BaseA.Add(one())

	ok, err := ctx.Verify(ckL, ckR, ckT, comL, comR, comT, tampered)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestScenario5NonPowerOfTwoLengthRejected(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 6
	a := randomFrs(t, n)
	b := randomFrs(t, n)

	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	var zeroL group.G2
	var zeroR group.G2
	var zeroT field.Fr

	proof, err := ctx.Prove(a, b, field.Fr{}, ckL, ckR, ckT, zeroL, zeroR, zeroT)
	require.Nil(t, proof)

	var lenErr *gipa.MessageLengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, 6, lenErr.LenA)
	require.Equal(t, 6, lenErr.LenB)
}

func TestScenario6WrongInnerProductRejected(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 8
	a := randomFrs(t, n)
	b := randomFrs(t, n)

	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)
	wrongT := tVal.Add(one())

	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []field.Fr{wrongT})
	require.NoError(t, err)

	proof, err := ctx.Prove(a, b, wrongT, ckL, ckR, ckT, comL, comR, comT)
	require.Nil(t, proof)
	require.ErrorIs(t, err, gipa.ErrInnerProductInvalid)
}

// TestProveIsDeterministic checks the universal determinism property: two
// ProveWithAux calls over the same keys and messages produce byte-identical
// challenge transcripts and base messages.
func TestProveIsDeterministic(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 8
	a := randomFrs(t, n)
	b := randomFrs(t, n)
	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	proof1, aux1, err := ctx.ProveWithAux(a, b, ckL, ckR, ckT)
	require.NoError(t, err)
	proof2, aux2, err := ctx.ProveWithAux(a, b, ckL, ckR, ckT)
	require.NoError(t, err)

	require.Equal(t, len(aux1.Transcript), len(aux2.Transcript))
	for i := range aux1.Transcript {
		require.True(t, aux1.Transcript[i].Equal(aux2.Transcript[i]))
	}
	require.True(t, proof1.BaseA.Equal(proof2.BaseA))
	require.True(t, proof1.BaseB.Equal(proof2.BaseB))
	require.Equal(t, len(proof1.Rounds), len(proof2.Rounds))
}

// TestVerifyRecursiveChallengeTranscriptAgreesWithAux checks that the
// verifier's own challenge re-derivation (via
// VerifyRecursiveChallengeTranscript) matches the prover's transcript
// returned in Aux, for the same proof.
func TestVerifyRecursiveChallengeTranscriptAgreesWithAux(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 8
	a := randomFrs(t, n)
	b := randomFrs(t, n)
	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)
	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []field.Fr{tVal})
	require.NoError(t, err)

	proof, aux, err := ctx.ProveWithAux(a, b, ckL, ckR, ckT)
	require.NoError(t, err)

	_, transcript, err := ctx.VerifyRecursiveChallengeTranscript(comL, comR, comT, proof)
	require.NoError(t, err)

	require.Equal(t, len(aux.Transcript), len(transcript))
	for i := range aux.Transcript {
		require.True(t, aux.Transcript[i].Equal(transcript[i]))
	}
}

// TestVerifyBatch checks that VerifyBatch reports true for a batch of
// independently valid proofs and does not mix up results across proofs.
func TestVerifyBatch(t *testing.T) {
	ctx := scalarScalarContext()
	const batch = 3
	const n = 4

	var ckLs [][]group.G2
	var ckRs [][]group.G2
	var ckTs []field.Fr
	var comLs []group.G2
	var comRs []group.G2
	var comTs []field.Fr
	var proofs []*gipa.Proof[group.G2, group.G2, field.Fr, field.Fr, field.Fr]

	for i := 0; i < batch; i++ {
		a := randomFrs(t, n)
		b := randomFrs(t, n)
		ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
		require.NoError(t, err)
		tVal, err := ctx.IP.Inner(a, b)
		require.NoError(t, err)
		comL, err := ctx.Left.Commit(ckL, a)
		require.NoError(t, err)
		comR, err := ctx.Right.Commit(ckR, b)
		require.NoError(t, err)
		comT, err := ctx.Target.Commit([]field.Fr{ckT}, []field.Fr{tVal})
		require.NoError(t, err)
		proof, err := ctx.Prove(a, b, tVal, ckL, ckR, ckT, comL, comR, comT)
		require.NoError(t, err)

		ckLs = append(ckLs, ckL)
		ckRs = append(ckRs, ckR)
		ckTs = append(ckTs, ckT)
		comLs = append(comLs, comL)
		comRs = append(comRs, comR)
		comTs = append(comTs, comT)
		proofs = append(proofs, proof)
	}

	results, err := ctx.VerifyBatch(ckLs, ckRs, ckTs, comLs, comRs, comTs, proofs)
	require.NoError(t, err)
	require.Len(t, results, batch)
	for _, ok := range results {
		require.True(t, ok)
	}
}

// TestProveRejectsInvalidOpenings checks that Prove's precondition checks
// catch an opening that does not match the supplied keys/messages, even
// though the inner product itself is correct.
func TestProveRejectsInvalidOpenings(t *testing.T) {
	ctx := scalarScalarContext()
	const n = 8
	a := randomFrs(t, n)
	b := randomFrs(t, n)
	ckL, ckR, ckT, err := ctx.Setup(rand.Reader, n)
	require.NoError(t, err)

	tVal, err := ctx.IP.Inner(a, b)
	require.NoError(t, err)

	comL, err := ctx.Left.Commit(ckL, a)
	require.NoError(t, err)
	comR, err := ctx.Right.Commit(ckR, b)
	require.NoError(t, err)
	comT, err := ctx.Target.Commit([]field.Fr{ckT}, []field.Fr{tVal})
	require.NoError(t, err)

	// Corrupt comL so it no longer opens to a under ckL.
	corruptedComL := comL.Add(comL)

	proof, err := ctx.Prove(a, b, tVal, ckL, ckR, ckT, corruptedComL, comR, comT)
	require.Nil(t, proof)
	require.ErrorIs(t, err, gipa.ErrInnerProductInvalid)
}
