// Package pedersen implements a Pedersen vector commitment over
// BLS12-381 G1 or G2: commit(keys, msgs) = sum_i keys[i]^msgs[i]
// (multiplicatively: keys[i]*msgs[i] in additive group notation).
//
// It exists to instantiate gipa.Context in tests and examples; it is a
// concrete collaborator reached only through gipa.Commitment and is not
// part of the GIPA core.
//
// Adapted from the teacher's fold helper in
// internal/kzg/kzg_verify.go, which combines a vector of commitments and a
// vector of scalars into a single multi-scalar-multiplication — exactly
// the shape a Pedersen vector commitment needs.
package pedersen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/gipa/concrete/field"
	"github.com/consensys/gipa/concrete/group"
)

// G1 is the Pedersen vector commitment with keys and outputs in G1.
type G1 struct{}

func (G1) Setup(rng io.Reader, n int) ([]group.G1, error) {
	points, err := RandomG1Generators(rng, n)
	if err != nil {
		return nil, err
	}
	out := make([]group.G1, n)
	for i, p := range points {
		out[i] = group.NewG1(p)
	}
	return out, nil
}

func (G1) Commit(keys []group.G1, msgs []field.Fr) (group.G1, error) {
	if len(keys) != len(msgs) {
		return group.G1{}, fmt.Errorf("pedersen: key/message length mismatch: %d != %d", len(keys), len(msgs))
	}
	points := make([]bls12381.G1Affine, len(keys))
	scalars := make([]fr.Element, len(msgs))
	for i := range keys {
		points[i] = keys[i].Point()
		scalars[i] = msgs[i].Element()
	}
	var out bls12381.G1Affine
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return group.G1{}, fmt.Errorf("pedersen: multiexp: %w", err)
	}
	return group.NewG1(out), nil
}

func (g G1) Verify(keys []group.G1, msgs []field.Fr, out group.G1) (bool, error) {
	recomputed, err := g.Commit(keys, msgs)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(out), nil
}

// G2 is the Pedersen vector commitment with keys and outputs in G2.
type G2 struct{}

func (G2) Setup(rng io.Reader, n int) ([]group.G2, error) {
	points, err := RandomG2Generators(rng, n)
	if err != nil {
		return nil, err
	}
	out := make([]group.G2, n)
	for i, p := range points {
		out[i] = group.NewG2(p)
	}
	return out, nil
}

func (G2) Commit(keys []group.G2, msgs []field.Fr) (group.G2, error) {
	if len(keys) != len(msgs) {
		return group.G2{}, fmt.Errorf("pedersen: key/message length mismatch: %d != %d", len(keys), len(msgs))
	}
	points := make([]bls12381.G2Affine, len(keys))
	scalars := make([]fr.Element, len(msgs))
	for i := range keys {
		points[i] = keys[i].Point()
		scalars[i] = msgs[i].Element()
	}
	var out bls12381.G2Affine
	if _, err := out.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return group.G2{}, fmt.Errorf("pedersen: multiexp: %w", err)
	}
	return group.NewG2(out), nil
}

func (g G2) Verify(keys []group.G2, msgs []field.Fr, out group.G2) (bool, error) {
	recomputed, err := g.Commit(keys, msgs)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(out), nil
}

// RandomG1Generators samples n independent, uniformly random G1 points by
// drawing random scalars from rng and scaling the canonical generator.
// This is an insecure, test-only setup: spec.md's non-goals explicitly
// exclude protection against a malicious setup.
func RandomG1Generators(rng io.Reader, n int) ([]bls12381.G1Affine, error) {
	_, _, g1Gen, _ := bls12381.Generators()
	out := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		s, err := RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		var bi big.Int
		s.BigInt(&bi)
		var p bls12381.G1Affine
		p.ScalarMultiplication(&g1Gen, &bi)
		out[i] = p
	}
	return out, nil
}

func RandomG2Generators(rng io.Reader, n int) ([]bls12381.G2Affine, error) {
	_, _, _, g2Gen := bls12381.Generators()
	out := make([]bls12381.G2Affine, n)
	for i := 0; i < n; i++ {
		s, err := RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		var bi big.Int
		s.BigInt(&bi)
		var p bls12381.G2Affine
		p.ScalarMultiplication(&g2Gen, &bi)
		out[i] = p
	}
	return out, nil
}

func RandomScalar(rng io.Reader) (fr.Element, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return fr.Element{}, fmt.Errorf("pedersen: sampling scalar: %w", err)
	}
	var s fr.Element
	s.SetBytes(buf[:])
	return s, nil
}
