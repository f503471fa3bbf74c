package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperand(t *testing.T) {
	named := map[string][]int{"primes": {2, 3, 5}, "none": {}}
	for testNo, test := range []struct {
		operand  string
		expected []int
	}{
		{"", []int{}},
		{"{}", []int{}},
		{"{ }", []int{}},
		{"1", []int{1}},
		{"3,1,2", []int{3, 1, 2}},
		{" 3 , -1 ,2 ", []int{3, -1, 2}},
		{"{ 1, 2, 1 }", []int{1, 2, 1}},
		{"@primes", []int{2, 3, 5}},
		{"@none", []int{}},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			values, err := parseOperand(test.operand, named)
			require.NoError(t, err)
			assert.Equal(t, test.expected, values)
		})
	}

	for testNo, operand := range []string{"1,,2", "a", "{1,2", "1}", "@missing", "1.5"} {
		operand := operand // Capture
		t.Run(fmt.Sprint("invalid ", testNo), func(t *testing.T) {
			_, err := parseOperand(operand, named)
			assert.Error(t, err, "operand %q", operand)
		})
	}
}

func TestDecodeSets(t *testing.T) {
	sets, err := decodeSets([]byte("sets:\n  a: [1, 2, 3]\n  b: []\n  c:\n    - 9\n"))
	require.NoError(t, err)
	assert.Len(t, sets, 3)
	assert.Equal(t, []int{1, 2, 3}, sets["a"])
	assert.Empty(t, sets["b"])
	assert.Equal(t, []int{9}, sets["c"])

	sets, err = decodeSets(nil)
	require.NoError(t, err)
	assert.Empty(t, sets)

	_, err = decodeSets([]byte("sets:\n  a: [x]\n"))
	assert.Error(t, err)

	_, err = decodeSets([]byte("sets:\n  \"a,b\": [1]\n"))
	assert.ErrorContains(t, err, "invalid set name")
}

func TestLoadSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sets:\n  evens: [0, 2, 4]\n"), 0o600))

	sets, err := loadSets(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, sets["evens"])

	_, err = loadSets(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open input")
}
