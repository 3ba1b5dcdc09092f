// Package identity implements the trivial commitment
// commit([k], [m]) = k·m, used as the target commitment IPC in every test
// scenario (matching the original Rust IdentityCommitment<Message,
// Scalar>). It is doubly homomorphic in both the single key and the
// single message purely because scalar multiplication already is.
//
// It exists to instantiate gipa.Context in tests and examples; it is a
// concrete collaborator reached only through gipa.Commitment and is not
// part of the GIPA core.
package identity

import (
	"fmt"
	"io"

	"github.com/consensys/gipa"
)

// Commitment is generic over the scalar field S (also its own key type)
// and the message/output module E.
type Commitment[S gipa.Module[S, S], E gipa.Module[S, E]] struct {
	// Sample draws a uniformly random field element for Setup.
	Sample func(rng io.Reader) (S, error)
}

// New builds an identity commitment for message type E over field S.
func New[S gipa.Module[S, S], E gipa.Module[S, E]](sample func(io.Reader) (S, error)) Commitment[S, E] {
	return Commitment[S, E]{Sample: sample}
}

func (c Commitment[S, E]) Setup(rng io.Reader, n int) ([]S, error) {
	if n != 1 {
		return nil, fmt.Errorf("identity: setup requires exactly one key, got %d", n)
	}
	k, err := c.Sample(rng)
	if err != nil {
		return nil, err
	}
	return []S{k}, nil
}

func (Commitment[S, E]) Commit(keys []S, msgs []E) (E, error) {
	if len(keys) != 1 || len(msgs) != 1 {
		var zero E
		return zero, fmt.Errorf("identity: requires exactly one key and one message, got %d keys, %d messages", len(keys), len(msgs))
	}
	return msgs[0].ScalarMul(keys[0]), nil
}

func (c Commitment[S, E]) Verify(keys []S, msgs []E, out E) (bool, error) {
	recomputed, err := c.Commit(keys, msgs)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(out), nil
}
