package switchcase

import (
	"math"
	"testing"
)

func TestFakeFibonacci(t *testing.T) {
	cases := []struct {
		in, out int32
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}, {5, 5}, {6, 8},
		{7, 0}, {-1, 0}, {100, 0}, {math.MinInt32, 0}, {math.MaxInt32, 0},
	}
	for _, c := range cases {
		if ret := FakeFibonacci(c.in); ret != c.out {
			t.Fatalf("FakeFibonacci(%d) = %d, expected %d\n", c.in, ret, c.out)
		}
	}
}

func TestSwitchWithHoles(t *testing.T) {
	cases := []struct {
		in, out int32
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 0}, {6, 5},
		{7, 8}, {8, 9}, {9, 0}, {10, 10}, {11, 11}, {12, 0}, {-3, 0},
	}
	for _, c := range cases {
		if ret := SwitchWithHoles(c.in); ret != c.out {
			t.Fatalf("SwitchWithHoles(%d) = %d, expected %d\n", c.in, ret, c.out)
		}
	}
}
