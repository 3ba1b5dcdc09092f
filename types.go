// Package gipa implements the core of a Generalized Inner Product Argument:
// a logarithmic-round, non-interactive argument that a claimed inner
// product t = <A, B> is consistent with commitments to A, B and t, without
// revealing A or B beyond what the commitments already leak.
//
// The package is polymorphic over three doubly-homomorphic commitment
// schemes (left, right, target) and an inner-product operator, all sharing
// one scalar field. Concrete commitment schemes and inner-product
// operators live in the sibling concrete/ packages and are reached only
// through the Commitment and InnerProduct interfaces below; this package
// never imports them.
package gipa

import "io"

// Scalar is the shared field F that every commitment scheme and the
// Fiat-Shamir transcript are parameterized over. S is the concrete field
// element type (e.g. a wrapped bls12-381 fr.Element).
type Scalar[S any] interface {
	// Inverse returns the multiplicative inverse of the receiver and
	// reports whether it exists (false for the additive identity).
	Inverse() (S, bool)
	IsZero() bool
	// Bytes returns the canonical, fixed-width encoding of the element.
	Bytes() []byte
}

// ScalarField supplies the field operations GIPA needs that aren't
// expressible purely as methods on a value of type S: the additive
// identity, and constructing a field element from a hash digest
// (spec's "from_random_bytes", which may fail for a digest outside the
// field's canonical range).
type ScalarField[S Scalar[S]] interface {
	Zero() S
	FromCanonicalBytes(digest []byte) (S, bool)
}

// Module is an abelian group element admitting left-scalar-multiplication
// by the shared field. E is the element's own concrete type; S is the
// scalar field type. LeftMsg, RightMsg, IpMsg, LeftKey, RightKey, IpKey,
// LeftCom, RightCom and IpCom are all instantiations of Module.
type Module[S any, E any] interface {
	Add(E) E
	Neg() E
	// ScalarMul returns s*e.
	ScalarMul(s S) E
	// Bytes returns the canonical, fixed-width encoding of the element,
	// used to feed the Fiat-Shamir transcript.
	Bytes() []byte
	Equal(E) bool
}

// Commitment is a doubly-homomorphic commitment scheme: linear in both the
// message and the key. K is the key type, M the message type, O the
// commitment output type.
type Commitment[S any, K Module[S, K], M Module[S, M], O Module[S, O]] interface {
	// Setup generates n independent keys.
	Setup(rng io.Reader, n int) ([]K, error)
	// Commit requires len(keys) == len(msgs).
	Commit(keys []K, msgs []M) (O, error)
	// Verify recomputes the commitment and compares it against out.
	Verify(keys []K, msgs []M, out O) (bool, error)
}

// InnerProduct is the bilinear operator ip(A, B) -> T that GIPA proves a
// claim about. A is the sequence of left messages, B of right messages.
type InnerProduct[A, B, T any] interface {
	Inner(a []A, b []B) (T, error)
}

// Digest is a cryptographic hash function with a fixed output size long
// enough that ScalarField.FromCanonicalBytes succeeds with high
// probability.
type Digest func(data []byte) []byte

// RoundCommitments is the cross-commitment triple (left, right, target)
// the prover sends once per round.
type RoundCommitments[LO, RO, TO any] struct {
	Left   LO
	Right  RO
	Target TO
}

// RoundPair is one round's worth of proof material. With h half the
// current length, CrossL commits to a[h:] under ckL[:h] and to b[:h] under
// ckR[h:]; CrossR commits to a[:h] under ckL[h:] and to b[h:] under
// ckR[:h].
type RoundPair[LO, RO, TO any] struct {
	CrossL RoundCommitments[LO, RO, TO]
	CrossR RoundCommitments[LO, RO, TO]
}

// Proof is the prover's output: an ordered list of round cross-commitments
// (after the final reversal the last, innermost round comes first and the
// outermost round last) plus the length-one base messages. A Proof is immutable once constructed and freely
// clonable.
type Proof[LO, RO, TO, LM, RM any] struct {
	Rounds []RoundPair[LO, RO, TO]
	BaseA  LM
	BaseB  RM
}

// Clone returns a deep-enough copy of the proof: the Rounds slice is
// copied so that mutating the clone's slice (e.g. via append) never
// aliases the original.
func (p *Proof[LO, RO, TO, LM, RM]) Clone() *Proof[LO, RO, TO, LM, RM] {
	rounds := make([]RoundPair[LO, RO, TO], len(p.Rounds))
	copy(rounds, p.Rounds)
	return &Proof[LO, RO, TO, LM, RM]{
		Rounds: rounds,
		BaseA:  p.BaseA,
		BaseB:  p.BaseB,
	}
}

// Aux is the byproduct of ProveWithAux: the challenge transcript (in the
// same order as Proof.Rounds, last round's challenge first) and the folded
// base keys, exposed for upstream protocols (e.g.
// aggregation layers) that reuse the transcript without repeating the key
// folding GIPA's own Verify performs.
type Aux[S, LK, RK any] struct {
	Transcript []S
	BaseCkL    LK
	BaseCkR    RK
}
