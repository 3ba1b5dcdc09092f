package gipa

import (
	"errors"
	"fmt"
)

// ErrInnerProductInvalid is returned by Prove when the supplied claimed
// inner product does not equal ip(A, B), or when one of the three initial
// openings fails to verify.
var ErrInnerProductInvalid = errors.New("gipa: claimed inner product does not match the supplied opening")

// ErrEncoding is returned (wrapped) when no usable challenge can be
// derived from a round's transcript: every one of maxChallengeRejections
// counter values gave a digest that ScalarField.FromCanonicalBytes
// rejected or whose result has no inverse. The Bytes encodings of Scalar
// and Module return no error, so this is the only path that returns it.
var ErrEncoding = errors.New("gipa: failed to encode transcript element")

// ErrProofRoundMismatch is returned by Verify when the number of rounds in
// the proof does not equal log2(len(ckL)). Folding a mismatched proof
// against the keys would index out of bounds; Verify checks this up front
// instead.
var ErrProofRoundMismatch = errors.New("gipa: proof round count does not match key length")

// MessageLengthError reports that the left and right message (or key)
// vectors were not of equal, power-of-two length.
type MessageLengthError struct {
	LenA, LenB int
}

func (e *MessageLengthError) Error() string {
	return fmt.Sprintf("gipa: invalid message length: |A|=%d |B|=%d (must be equal and a power of two)", e.LenA, e.LenB)
}
