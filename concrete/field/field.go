// Package field adapts gnark-crypto's BLS12-381 scalar field to the
// gipa.Scalar / gipa.ScalarField interfaces. It is a concrete collaborator
// used by tests and by the sibling concrete/ packages; the core (the
// gipa package) never imports it.
package field

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Fr is a BLS12-381 scalar field element. Unlike fr.Element's own
// pointer-receiver, mutating methods, Fr's methods are value-returning so
// that it satisfies gipa.Module[Fr, Fr] and gipa.Scalar[Fr] without
// aliasing surprises across folding rounds.
type Fr struct {
	v fr.Element
}

// NewFr wraps a raw fr.Element.
func NewFr(v fr.Element) Fr { return Fr{v: v} }

// Element returns the underlying gnark-crypto element.
func (a Fr) Element() fr.Element { return a.v }

func (a Fr) Add(b Fr) Fr {
	var out fr.Element
	out.Add(&a.v, &b.v)
	return Fr{out}
}

func (a Fr) Sub(b Fr) Fr {
	var out fr.Element
	out.Sub(&a.v, &b.v)
	return Fr{out}
}

func (a Fr) Neg() Fr {
	var out fr.Element
	out.Neg(&a.v)
	return Fr{out}
}

func (a Fr) Mul(b Fr) Fr {
	var out fr.Element
	out.Mul(&a.v, &b.v)
	return Fr{out}
}

// ScalarMul implements gipa.Module[Fr, Fr]: F is a module over itself.
func (a Fr) ScalarMul(s Fr) Fr { return a.Mul(s) }

func (a Fr) Inverse() (Fr, bool) {
	if a.v.IsZero() {
		return Fr{}, false
	}
	var out fr.Element
	out.Inverse(&a.v)
	return Fr{out}, true
}

func (a Fr) IsZero() bool { return a.v.IsZero() }

func (a Fr) Equal(b Fr) bool { return a.v.Equal(&b.v) }

// Bytes returns the 32-byte canonical big-endian encoding.
func (a Fr) Bytes() []byte {
	b := a.v.Bytes()
	return b[:]
}

// Ops implements gipa.ScalarField[Fr].
type Ops struct{}

func (Ops) Zero() Fr { return Fr{} }

// FromCanonicalBytes interprets digest as a field element via SetBytes,
// which reduces modulo the field's modulus. This mirrors the teacher's
// own digest-to-scalar step (Domain's root-of-unity derivation reduces a
// decimal string the same way fr.Element.SetString does); a result is
// rejected only if the reduction collapses it to the additive identity,
// since a zero challenge is never invertible.
func (Ops) FromCanonicalBytes(digest []byte) (Fr, bool) {
	var out fr.Element
	out.SetBytes(digest)
	if out.IsZero() {
		return Fr{}, false
	}
	return Fr{out}, true
}
