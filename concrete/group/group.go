// Package group adapts gnark-crypto's BLS12-381 G1, G2 and GT (pairing
// target) groups to the gipa.Module interface, so that they can serve as
// the Key, Message or Output type of a concrete commitment scheme.
package group

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/consensys/gipa/concrete/field"
)

// G1 wraps a BLS12-381 G1 affine point.
type G1 struct {
	p bls12381.G1Affine
}

func NewG1(p bls12381.G1Affine) G1 { return G1{p: p} }
func (a G1) Point() bls12381.G1Affine { return a.p }

func (a G1) Add(b G1) G1 {
	var out bls12381.G1Jac
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	out.Set(&aj).AddAssign(&bj)
	var res bls12381.G1Affine
	res.FromJacobian(&out)
	return G1{res}
}

func (a G1) Neg() G1 {
	var out bls12381.G1Affine
	out.Neg(&a.p)
	return G1{out}
}

func (a G1) ScalarMul(s field.Fr) G1 {
	var scalar big.Int
	elem := s.Element()
	elem.BigInt(&scalar)
	var out bls12381.G1Affine
	out.ScalarMultiplication(&a.p, &scalar)
	return G1{out}
}

func (a G1) Equal(b G1) bool { return a.p.Equal(&b.p) }

func (a G1) Bytes() []byte {
	b := a.p.Bytes()
	return b[:]
}

// G2 wraps a BLS12-381 G2 affine point.
type G2 struct {
	p bls12381.G2Affine
}

func NewG2(p bls12381.G2Affine) G2 { return G2{p: p} }
func (a G2) Point() bls12381.G2Affine { return a.p }

func (a G2) Add(b G2) G2 {
	var out bls12381.G2Jac
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	out.Set(&aj).AddAssign(&bj)
	var res bls12381.G2Affine
	res.FromJacobian(&out)
	return G2{res}
}

func (a G2) Neg() G2 {
	var out bls12381.G2Affine
	out.Neg(&a.p)
	return G2{out}
}

func (a G2) ScalarMul(s field.Fr) G2 {
	var scalar big.Int
	elem := s.Element()
	elem.BigInt(&scalar)
	var out bls12381.G2Affine
	out.ScalarMultiplication(&a.p, &scalar)
	return G2{out}
}

func (a G2) Equal(b G2) bool { return a.p.Equal(&b.p) }

func (a G2) Bytes() []byte {
	b := a.p.Bytes()
	return b[:]
}

// GT wraps a BLS12-381 pairing target-group element. GT's native
// operation is multiplication, so Add is implemented as multiplication
// and Neg as inversion; GIPA's fold/commit identities only ever use the
// abstract abelian-group structure, never the multiplicative notation.
type GT struct {
	v bls12381.GT
}

func NewGT(v bls12381.GT) GT { return GT{v: v} }
func (a GT) Value() bls12381.GT { return a.v }

func (a GT) Add(b GT) GT {
	var out bls12381.GT
	out.Mul(&a.v, &b.v)
	return GT{out}
}

func (a GT) Neg() GT {
	var out bls12381.GT
	out.Inverse(&a.v)
	return GT{out}
}

func (a GT) ScalarMul(s field.Fr) GT {
	var scalar big.Int
	elem := s.Element()
	elem.BigInt(&scalar)
	var out bls12381.GT
	out.Exp(a.v, &scalar)
	return GT{out}
}

func (a GT) Equal(b GT) bool { return a.v.Equal(&b.v) }

func (a GT) Bytes() []byte {
	b := a.v.Bytes()
	return b[:]
}

// Pair computes the single-pair product e(g1, g2).
func Pair(g1 G1, g2 G2) (GT, error) {
	out, err := bls12381.Pair([]bls12381.G1Affine{g1.p}, []bls12381.G2Affine{g2.p})
	if err != nil {
		return GT{}, err
	}
	return GT{out}, nil
}

// MultiPair computes the multi-pairing product prod_i e(g1s[i], g2s[i]).
func MultiPair(g1s []G1, g2s []G2) (GT, error) {
	a := make([]bls12381.G1Affine, len(g1s))
	b := make([]bls12381.G2Affine, len(g2s))
	for i := range g1s {
		a[i] = g1s[i].p
		b[i] = g2s[i].p
	}
	out, err := bls12381.Pair(a, b)
	if err != nil {
		return GT{}, err
	}
	return GT{out}, nil
}
