package gipa

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// Context bundles the three commitment schemes, the inner-product
// operator, the scalar field's auxiliary operations, and the digest that
// together instantiate one concrete GIPA protocol. It has no mutable
// state and is safe to reuse and to share across goroutines proving or
// verifying independent proofs.
type Context[
	S Scalar[S],
	LK Module[S, LK], LM Module[S, LM], LO Module[S, LO],
	RK Module[S, RK], RM Module[S, RM], RO Module[S, RO],
	TK Module[S, TK], TM Module[S, TM], TO Module[S, TO],
] struct {
	Left   Commitment[S, LK, LM, LO]
	Right  Commitment[S, RK, RM, RO]
	Target Commitment[S, TK, TM, TO]
	IP     InnerProduct[LM, RM, TM]
	Field  ScalarField[S]
	Digest Digest
}

// Setup generates n independent left and right keys and a single target
// key.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) Setup(rng io.Reader, n int) (ckL []LK, ckR []RK, ckT TK, err error) {
	ckL, err = c.Left.Setup(rng, n)
	if err != nil {
		return nil, nil, ckT, fmt.Errorf("gipa: left setup: %w", err)
	}
	ckR, err = c.Right.Setup(rng, n)
	if err != nil {
		return nil, nil, ckT, fmt.Errorf("gipa: right setup: %w", err)
	}
	ckTs, err := c.Target.Setup(rng, 1)
	if err != nil {
		return nil, nil, ckT, fmt.Errorf("gipa: target setup: %w", err)
	}
	return ckL, ckR, ckTs[0], nil
}

// Prove checks that the vectors are equal-length powers of two, that
// ip(A, B) equals t, and that the three supplied commitments open
// correctly, then runs the folding reduction. It is the only entry point
// that performs these checks; ProveWithAux does not.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) Prove(
	a []LM, b []RM, t TM,
	ckL []LK, ckR []RK, ckT TK,
	comL LO, comR RO, comT TO,
) (*Proof[LO, RO, TO, LM, RM], error) {
	if !isPowerOfTwo(len(a)) || len(a) != len(b) || len(a) != len(ckL) || len(a) != len(ckR) {
		return nil, &MessageLengthError{LenA: len(a), LenB: len(b)}
	}

	computedT, err := c.IP.Inner(a, b)
	if err != nil {
		return nil, fmt.Errorf("gipa: computing inner product: %w", err)
	}
	if !computedT.Equal(t) {
		return nil, ErrInnerProductInvalid
	}

	okL, err := c.Left.Verify(ckL, a, comL)
	if err != nil {
		return nil, fmt.Errorf("gipa: verifying left opening: %w", err)
	}
	okR, err := c.Right.Verify(ckR, b, comR)
	if err != nil {
		return nil, fmt.Errorf("gipa: verifying right opening: %w", err)
	}
	okT, err := c.Target.Verify([]TK{ckT}, []TM{t}, comT)
	if err != nil {
		return nil, fmt.Errorf("gipa: verifying target opening: %w", err)
	}
	if !(okL && okR && okT) {
		return nil, ErrInnerProductInvalid
	}

	proof, _, err := c.ProveWithAux(a, b, ckL, ckR, ckT)
	return proof, err
}

// ProveWithAux runs the folding reduction without checking the
// consistency or opening preconditions Prove checks. Callers that have
// already established those invariants (or upstream protocols folding
// GIPA into a larger argument) can use it directly.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) ProveWithAux(
	a []LM, b []RM, ckL []LK, ckR []RK, ckT TK,
) (*Proof[LO, RO, TO, LM, RM], *Aux[S, LK, RK], error) {
	if !isPowerOfTwo(len(a)) {
		panic("gipa: message length is not a power of two")
	}

	// Ping-pong buffers: each round reads from a/b/ckL/ckR and writes the
	// halved vectors back into freshly allocated slices of the same
	// names, so no buffer is ever mutated while still being read.
	a = append([]LM(nil), a...)
	b = append([]RM(nil), b...)
	ckL = append([]LK(nil), ckL...)
	ckR = append([]RK(nil), ckR...)

	var rounds []RoundPair[LO, RO, TO]
	var transcript []S

	var baseA LM
	var baseB RM
	var baseCkL LK
	var baseCkR RK

	for {
		if len(a) == 1 {
			baseA, baseB = a[0], b[0]
			baseCkL, baseCkR = ckL[0], ckR[0]
			break
		}

		h := len(a) / 2

		aHi, aLo := a[h:], a[:h]
		bLo, bHi := b[:h], b[h:]
		ckLLo, ckLHi := ckL[:h], ckL[h:]
		ckRHi, ckRLo := ckR[h:], ckR[:h]

		crossL, crossR, err := c.crossCommit(ckT, ckLLo, ckRHi, aHi, bLo, ckLHi, ckRLo, aLo, bHi)
		if err != nil {
			return nil, nil, err
		}

		prev := c.Field.Zero()
		if n := len(transcript); n > 0 {
			prev = transcript[n-1]
		}
		ch, chInv, err := nextChallenge[S](c.Field, c.Digest, prev, crossL, crossR)
		if err != nil {
			return nil, nil, err
		}

		a = foldModules(aHi, aLo, ch)
		b = foldModules(bHi, bLo, chInv)
		ckL = foldModules(ckLHi, ckLLo, chInv)
		ckR = foldModules(ckRHi, ckRLo, ch)

		rounds = append(rounds, RoundPair[LO, RO, TO]{CrossL: crossL, CrossR: crossR})
		transcript = append(transcript, ch)
	}

	reverseSlice(rounds)
	reverseSlice(transcript)

	return &Proof[LO, RO, TO, LM, RM]{
			Rounds: rounds,
			BaseA:  baseA,
			BaseB:  baseB,
		}, &Aux[S, LK, RK]{
			Transcript: transcript,
			BaseCkL:    baseCkL,
			BaseCkR:    baseCkR,
		}, nil
}

// crossCommit computes the two cross-commitment triples for one round.
// The two triples depend on disjoint halves of the input vectors, so they
// are computed concurrently; the result ordering (and therefore the
// transcript) is unaffected by which goroutine finishes first.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) crossCommit(
	ckT TK,
	ckL1 []LK, ckR1 []RK, a1 []LM, b1 []RM,
	ckL2 []LK, ckR2 []RK, a2 []LM, b2 []RM,
) (cross1, cross2 RoundCommitments[LO, RO, TO], err error) {
	var g errgroup.Group

	g.Go(func() error {
		var err error
		cross1, err = c.commitCross(ckT, ckL1, a1, ckR1, b1)
		return err
	})
	g.Go(func() error {
		var err error
		cross2, err = c.commitCross(ckT, ckL2, a2, ckR2, b2)
		return err
	})

	if err := g.Wait(); err != nil {
		return RoundCommitments[LO, RO, TO]{}, RoundCommitments[LO, RO, TO]{}, err
	}
	return cross1, cross2, nil
}

func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) commitCross(
	ckT TK, ckL []LK, a []LM, ckR []RK, b []RM,
) (RoundCommitments[LO, RO, TO], error) {
	comL, err := c.Left.Commit(ckL, a)
	if err != nil {
		return RoundCommitments[LO, RO, TO]{}, fmt.Errorf("gipa: left cross-commit: %w", err)
	}
	comR, err := c.Right.Commit(ckR, b)
	if err != nil {
		return RoundCommitments[LO, RO, TO]{}, fmt.Errorf("gipa: right cross-commit: %w", err)
	}
	t, err := c.IP.Inner(a, b)
	if err != nil {
		return RoundCommitments[LO, RO, TO]{}, fmt.Errorf("gipa: round inner product: %w", err)
	}
	comT, err := c.Target.Commit([]TK{ckT}, []TM{t})
	if err != nil {
		return RoundCommitments[LO, RO, TO]{}, fmt.Errorf("gipa: target cross-commit: %w", err)
	}
	return RoundCommitments[LO, RO, TO]{Left: comL, Right: comR, Target: comT}, nil
}

// foldModules computes hi.ScalarMul(s) + lo elementwise, halving the
// vector length. hi and lo must be the same length.
func foldModules[S any, E Module[S, E]](hi, lo []E, s S) []E {
	out := make([]E, len(hi))
	for i := range hi {
		out[i] = hi[i].ScalarMul(s).Add(lo[i])
	}
	return out
}

func reverseSlice[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
