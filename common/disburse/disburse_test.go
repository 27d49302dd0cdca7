package disburse

import (
	"math/big"
	"testing"
)

func makeWei(arg string) *big.Int {
	res, _ := big.NewInt(1).SetString(arg, 10)
	return res
}

func TestFromWei(t *testing.T) {
	tests := []struct {
		src      *big.Int
		expected float32
	}{
		{
			src:      makeWei("35000000000000000000"),
			expected: 35.0,
		}, {
			src:      makeWei("3250000000000000000"),
			expected: 3.25,
		}, {
			src:      makeWei("0"),
			expected: 0.0,
		},
	}
	for _, test := range tests {
		if res := FromWei(test.src); res != test.expected {
			t.Errorf("FromWei(%v): want %v, got %v", test.src, test.expected, res)
		}
	}
}

func TestToWei(t *testing.T) {
	tests := []struct {
		src      float32
		expected *big.Int
	}{
		{
			src:      5000.0,
			expected: big.NewInt(0).Mul(big.NewInt(5000), big.NewInt(1e18)),
		}, {
			src:      3.125,
			expected: big.NewInt(0).Mul(big.NewInt(3125), big.NewInt(1e15)),
		}, {
			src:      0.0,
			expected: big.NewInt(0),
		},
	}
	for _, test := range tests {
		if res := ToWei(test.src); res.Cmp(test.expected) != 0 {
			t.Errorf("ToWei(%v): want %v, got %v", test.src, test.expected, res)
		}
	}
}
