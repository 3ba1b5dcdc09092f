package gipa

import "math/bits"

// isPowerOfTwo reports whether n is a power of two (n >= 1).
//
// Adapted from the teacher's domain cardinality reasoning (NewDomain used
// ecc.NextPowerOfTwo plus bits.TrailingZeros64 to find the subgroup's
// 2-adicity); GIPA has no FFT domain, but the same bit-trick identifies a
// valid round count directly.
func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount64(uint64(n)) == 1
}

// log2 returns log base 2 of n, which must be a power of two.
func log2(n int) int {
	return bits.TrailingZeros64(uint64(n))
}
