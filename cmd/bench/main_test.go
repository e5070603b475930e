package main

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomKeys_Deterministic(t *testing.T) {
	a := randomKeys(100, 42)
	b := randomKeys(100, 42)
	assert.Equal(t, a, b)
	assert.Len(t, a, 100)
}

func TestRunBench(t *testing.T) {
	keys := randomKeys(500, 7)
	original := slices.Clone(keys)

	var out bytes.Buffer
	require.NoError(t, runBench(&out, keys, sorters()))

	for _, s := range sorters() {
		assert.Contains(t, out.String(), "Config: "+s.name)
	}
	// containers copy their input, the caller's slice stays untouched
	assert.Equal(t, original, keys)
}

func TestRunBench_DetectsUnsorted(t *testing.T) {
	broken := sorter{
		name: "noop",
		prepare: func(keys []int) (func(), func() bool) {
			return func() {}, func() bool { return false }
		},
	}
	var out bytes.Buffer
	err := runBench(&out, []int{2, 1}, []sorter{broken})
	assert.ErrorContains(t, err, "noop left the input unsorted")
}
