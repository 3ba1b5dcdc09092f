// Package innerproduct implements the three inner-product operators GIPA
// is instantiated with across the test scenarios: a plain field inner
// product, a multiexponentiation (scalar-by-group) inner product, and a
// pairing-product inner product.
//
// It exists to instantiate gipa.Context in tests and examples; it is a
// concrete collaborator reached only through gipa.InnerProduct and is not
// part of the GIPA core.
package innerproduct

import (
	"fmt"

	"github.com/consensys/gipa/concrete/field"
	"github.com/consensys/gipa/concrete/group"
)

// Scalar computes the field inner product sum_i a[i]*b[i], used when both
// sides of the argument are plain scalars.
type Scalar struct{}

func (Scalar) Inner(a, b []field.Fr) (field.Fr, error) {
	if len(a) != len(b) {
		return field.Fr{}, fmt.Errorf("innerproduct: length mismatch: %d != %d", len(a), len(b))
	}
	var sum field.Fr
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}
	return sum, nil
}

// MultiExpG1 computes sum_i a[i]^b[i] (additively: a[i]*b[i]): a
// multiexponentiation of G1 points by scalar exponents, yielding a G1
// element. Grounded on the same MultiExp shape as concrete/pedersen, but
// expressed as the plain linear-combination GIPA's inner product expects
// rather than as a commitment.
type MultiExpG1 struct{}

func (MultiExpG1) Inner(a []group.G1, b []field.Fr) (group.G1, error) {
	if len(a) != len(b) {
		return group.G1{}, fmt.Errorf("innerproduct: length mismatch: %d != %d", len(a), len(b))
	}
	var sum group.G1
	for i := range a {
		sum = sum.Add(a[i].ScalarMul(b[i]))
	}
	return sum, nil
}

// MultiExpG2 is MultiExpG1's G2 counterpart.
type MultiExpG2 struct{}

func (MultiExpG2) Inner(a []group.G2, b []field.Fr) (group.G2, error) {
	if len(a) != len(b) {
		return group.G2{}, fmt.Errorf("innerproduct: length mismatch: %d != %d", len(a), len(b))
	}
	var sum group.G2
	for i := range a {
		sum = sum.Add(a[i].ScalarMul(b[i]))
	}
	return sum, nil
}

// Pairing computes the pairing product prod_i e(a[i], b[i]) in GT.
// Grounded on the teacher's multi-pairing verification in
// internal/kzg/kzg_verify.go, generalized from a pairing *check* into the
// pairing *product* GIPA treats as the inner product's value.
type Pairing struct{}

func (Pairing) Inner(a []group.G1, b []group.G2) (group.GT, error) {
	if len(a) != len(b) {
		return group.GT{}, fmt.Errorf("innerproduct: length mismatch: %d != %d", len(a), len(b))
	}
	return group.MultiPair(a, b)
}
