// Package afgho implements the AFGHO pairing-based commitment: committing
// to a vector of G1 (or G2) group elements by pairing each against an
// independent G2 (or G1) key and multiplying the results in GT.
//
// It exists to instantiate gipa.Context in tests and examples; it is a
// concrete collaborator reached only through gipa.Commitment and is not
// part of the GIPA core.
//
// Grounded on the teacher's pairing verification code in
// internal/kzg/kzg_verify.go (bls12381.PairingCheckFixedQ /
// bls12381.PairingCheck), generalized from a single pairing check into the
// multi-pairing product the commitment itself is defined as.
package afgho

import (
	"fmt"
	"io"

	"github.com/consensys/gipa/concrete/group"
	"github.com/consensys/gipa/concrete/pedersen"
)

// G1 commits to a vector of G1 messages using independent G2 keys:
// commit(keys, msgs) = prod_i e(msgs[i], keys[i]).
type G1 struct{}

func (G1) Setup(rng io.Reader, n int) ([]group.G2, error) {
	points, err := pedersen.RandomG2Generators(rng, n)
	if err != nil {
		return nil, err
	}
	out := make([]group.G2, n)
	for i, p := range points {
		out[i] = group.NewG2(p)
	}
	return out, nil
}

func (G1) Commit(keys []group.G2, msgs []group.G1) (group.GT, error) {
	if len(keys) != len(msgs) {
		return group.GT{}, fmt.Errorf("afgho: key/message length mismatch: %d != %d", len(keys), len(msgs))
	}
	out, err := group.MultiPair(msgs, keys)
	if err != nil {
		return group.GT{}, fmt.Errorf("afgho: multi-pairing: %w", err)
	}
	return out, nil
}

func (g G1) Verify(keys []group.G2, msgs []group.G1, out group.GT) (bool, error) {
	recomputed, err := g.Commit(keys, msgs)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(out), nil
}

// G2 commits to a vector of G2 messages using independent G1 keys:
// commit(keys, msgs) = prod_i e(keys[i], msgs[i]).
type G2 struct{}

func (G2) Setup(rng io.Reader, n int) ([]group.G1, error) {
	points, err := pedersen.RandomG1Generators(rng, n)
	if err != nil {
		return nil, err
	}
	out := make([]group.G1, n)
	for i, p := range points {
		out[i] = group.NewG1(p)
	}
	return out, nil
}

func (G2) Commit(keys []group.G1, msgs []group.G2) (group.GT, error) {
	if len(keys) != len(msgs) {
		return group.GT{}, fmt.Errorf("afgho: key/message length mismatch: %d != %d", len(keys), len(msgs))
	}
	out, err := group.MultiPair(keys, msgs)
	if err != nil {
		return group.GT{}, fmt.Errorf("afgho: multi-pairing: %w", err)
	}
	return out, nil
}

func (g G2) Verify(keys []group.G1, msgs []group.G2, out group.GT) (bool, error) {
	recomputed, err := g.Commit(keys, msgs)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(out), nil
}
