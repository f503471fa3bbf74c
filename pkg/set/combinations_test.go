package set

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestForEachCombination(t *testing.T) {
	for testNo, test := range []struct {
		n, k     int
		expected [][]int
	}{
		{0, 0, [][]int{{}}},
		{3, 0, [][]int{{}}},
		{1, 1, [][]int{{0}}},
		{3, 2, [][]int{{0, 1}, {0, 2}, {1, 2}}},
		{4, 2, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
		{4, 3, [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}},
		{3, 3, [][]int{{0, 1, 2}}},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			var received [][]int
			err := forEachCombination(test.n, test.k, func(indices []int) {
				received = append(received, slices.Clone(indices))
			})
			if err != nil {
				t.Fatal("unexpected error: ", err)
			}
			assert.Equal(t, test.expected, received)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		for _, test := range []struct{ n, k int }{{0, 1}, {3, 4}, {3, -1}} {
			called := false
			err := forEachCombination(test.n, test.k, func([]int) { called = true })
			var rangeErr *ErrOutOfRange
			if !errors.As(err, &rangeErr) {
				t.Errorf("n=%d k=%d: unexpected error: %#v", test.n, test.k, err)
			}
			assert.False(t, called)
		}
	})
}

func TestBinomial(t *testing.T) {
	for testNo, test := range []struct {
		n, k, limit, expected int
	}{
		{0, 0, 100, 1},
		{5, 0, 100, 1},
		{5, 5, 100, 1},
		{5, 2, 100, 10},
		{10, 5, 1000, 252},
		{10, 5, 100, 100},
		{60, 30, maxReservedCombinations, maxReservedCombinations},
		{3, 4, 100, 0},
		{3, -1, 100, 0},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			assert.Equal(t, test.expected, binomial(test.n, test.k, test.limit))
		})
	}
}
