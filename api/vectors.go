// Package api wires the gipa core and the concrete/ collaborators
// together into small runnable end-to-end scenarios, loaded from golden
// YAML fixtures the way the teacher loads its trusted-setup fixtures in
// api/trusted_setup_test.go (JSON there, YAML here, same
// load-then-validate idiom, same gopkg.in/yaml.v2 dependency).
package api

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Vector names one scalar-scalar GIPA run: a vector length and a seed for
// a deterministic byte stream standing in for a trusted setup's
// randomness. Vectors are deterministic by construction so that the same
// fixture always exercises the same keys, messages and challenge
// transcript across runs and machines.
type Vector struct {
	Name string `yaml:"name"`
	N    int    `yaml:"n"`
	Seed uint64 `yaml:"seed"`
}

// VectorFile is the top-level shape of a golden transcript fixture file.
type VectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// LoadVectors reads and parses a golden transcript fixture file.
func LoadVectors(path string) ([]Vector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("api: reading vector file %q: %w", path, err)
	}
	var file VectorFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("api: parsing vector file %q: %w", path, err)
	}
	return file.Vectors, nil
}

// SeededReader is a deterministic io.Reader: reading from the same seed
// always yields the same byte stream, regardless of machine or run. It
// stands in for a trusted setup's randomness source so that golden
// vectors reproduce the same keys, messages and challenge transcript on
// every run.
type SeededReader struct {
	seed    uint64
	counter uint64
	buf     []byte
}

func NewSeededReader(seed uint64) *SeededReader {
	return &SeededReader{seed: seed}
}

func (r *SeededReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			var block [16]byte
			binary.BigEndian.PutUint64(block[:8], r.seed)
			binary.BigEndian.PutUint64(block[8:], r.counter)
			r.counter++
			sum := sha256.Sum256(block[:])
			r.buf = sum[:]
		}
		copied := copy(p[n:], r.buf)
		r.buf = r.buf[copied:]
		n += copied
	}
	return n, nil
}

var _ io.Reader = (*SeededReader)(nil)
