package gipa

import "crypto/sha256"

// SHA256 is a ready-made Digest. A 32-byte digest keeps the rejection
// probability of ScalarField.FromCanonicalBytes negligible for any scalar
// field whose modulus is close to 2^256, such as the BLS12-381 scalar
// field the concrete/ packages use.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
