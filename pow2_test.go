package gipa

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{
		0: false, 1: true, 2: true, 3: false,
		4: true, 5: false, 8: true, 1024: true, 1023: false,
	}
	for n, want := range cases {
		if got := isPowerOfTwo(n); got != want {
			t.Errorf("isPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestLog2(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 4: 2, 8: 3, 1024: 10}
	for n, want := range cases {
		if got := log2(n); got != want {
			t.Errorf("log2(%d) = %d, want %d", n, got, want)
		}
	}
}
