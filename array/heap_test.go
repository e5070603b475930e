package array

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_HeapDrainOrder(t *testing.T) {
	a := New()
	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		a.HeapAdd(v)
		require.True(t, a.IsHeap())
	}

	top, ok := a.HeapTop()
	require.True(t, ok)
	assert.Equal(t, 9, top)

	var drained []int
	for i := 0; i < 8; i++ {
		top, ok := a.HeapTop()
		require.True(t, ok)
		drained = append(drained, top)
		require.True(t, a.HeapRemoveTop())
		require.True(t, a.IsHeap())
	}
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, drained)
	assert.True(t, a.Empty())
}

func TestArray_HeapEmpty(t *testing.T) {
	a := New()
	assert.True(t, a.IsHeap())

	v, ok := a.HeapTop()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.False(t, a.HeapRemoveTop())

	a.HeapAdd(7)
	require.True(t, a.HeapRemoveTop())
	assert.True(t, a.Empty())
}

func TestArray_HeapAddGrowsPastCapacity(t *testing.T) {
	a := New(WithCapacity(1))
	for i := 0; i < 10; i++ {
		a.HeapAdd(i)
	}
	assert.Equal(t, 10, a.Size())
	assert.Equal(t, 10, a.Cap())
	top, _ := a.HeapTop()
	assert.Equal(t, 9, top)
}

func TestArray_IsHeap(t *testing.T) {
	assert.True(t, NewFrom([]int{9, 5, 8, 1, 2, 7}).IsHeap())
	assert.False(t, NewFrom([]int{9, 5, 8, 6}).IsHeap())
	assert.False(t, NewFrom([]int{1, 2}).IsHeap())
}

func TestArray_HeapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Values below -50 stand for a removal, anything else is added.
	properties.Property("heap invariant and top hold after every operation", prop.ForAll(
		func(ops []int) bool {
			a := New()
			var model []int
			for _, op := range ops {
				if op < -50 {
					removed := a.HeapRemoveTop()
					if removed != (len(model) > 0) {
						return false
					}
					if len(model) > 0 {
						i := slices.Index(model, slices.Max(model))
						model = slices.Delete(model, i, i+1)
					}
				} else {
					a.HeapAdd(op)
					model = append(model, op)
				}
				if !a.IsHeap() || a.Size() != len(model) {
					return false
				}
				top, ok := a.HeapTop()
				if ok != (len(model) > 0) {
					return false
				}
				if ok && top != slices.Max(model) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.TestingRun(t)
}
