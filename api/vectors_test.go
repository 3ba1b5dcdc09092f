package api

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/gipa"
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

// TestGoldenTranscriptVectors runs the scalar-scalar GIPA scenario for
// every fixture in testdata/golden_transcript.yaml, each from its own
// deterministic seed, and checks both that the resulting proof verifies
// and that the verifier's challenge re-derivation
// (VerifyRecursiveChallengeTranscript) matches the prover's Aux transcript
// element by element. The fixtures store no expected challenge values, so
// a change to the Fiat-Shamir byte encoding shared by prover and verifier
// is not detected here.
func TestGoldenTranscriptVectors(t *testing.T) {
	vectors, err := LoadVectors("../testdata/golden_transcript.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, vectors)

	for _, v := range vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			ctx := scalarScalarContext()

			a := make([]field.Fr, v.N)
			b := make([]field.Fr, v.N)
			rng := NewSeededReader(v.Seed)
			for i := range a {
				s, err := sampleFr(rng)
				require.NoError(t, err)
				a[i] = s
			}
			for i := range b {
				s, err := sampleFr(rng)
				require.NoError(t, err)
				b[i] = s
			}

			ckL, ckR, ckT, err := ctx.Setup(rng, v.N)
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

			ok, err := ctx.Verify(ckL, ckR, ckT, comL, comR, comT, proof)
			require.NoError(t, err)
			require.True(t, ok)

			_, replayedTranscript, err := ctx.VerifyRecursiveChallengeTranscript(comL, comR, comT, proof)
			require.NoError(t, err)
			require.Equal(t, len(aux.Transcript), len(replayedTranscript))
			for i := range aux.Transcript {
				require.True(t, aux.Transcript[i].Equal(replayedTranscript[i]))
			}
		})
	}
}
