package tree

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// collect is a WalkFunc appending every key to the *[]int passed as userData.
func collect(value int, userData any) {
	out := userData.(*[]int)
	*out = append(*out, value)
}

func newTreeFrom(t *testing.T, keys ...int) *Tree {
	t.Helper()
	tr := New()
	for _, k := range keys {
		require.True(t, tr.Insert(k), "insert %d", k)
	}
	return tr
}

func walk(tr *Tree, method func(*Tree, WalkFunc, any)) []int {
	var out []int
	method(tr, collect, &out)
	return out
}

func TestTree_Empty(t *testing.T) {
	tr := New()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())
	assert.Equal(t, 0, tr.Height())
	assert.False(t, tr.Contains(1))
	assert.False(t, tr.Remove(1))
	assert.Nil(t, walk(tr, (*Tree).WalkInOrder))

	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	var zero Tree
	assert.True(t, zero.Insert(3))
	assert.True(t, zero.Contains(3))
	assert.False(t, zero.Insert(3))
}

func TestTree_InsertContains(t *testing.T) {
	tr := newTreeFrom(t, 5, 3, 8, 1, 4)

	assert.False(t, tr.Empty())
	assert.Equal(t, 5, tr.Size())
	for _, k := range []int{5, 3, 8, 1, 4} {
		assert.True(t, tr.Contains(k), "contains %d", k)
	}
	for _, k := range []int{0, 2, 6, 9} {
		assert.False(t, tr.Contains(k), "contains %d", k)
	}

	// duplicates are rejected without changing the tree
	assert.False(t, tr.Insert(3))
	assert.Equal(t, 5, tr.Size())

	minKey, _ := tr.Min()
	maxKey, _ := tr.Max()
	assert.Equal(t, 1, minKey)
	assert.Equal(t, 8, maxKey)
}

func TestTree_Height(t *testing.T) {
	assert.Equal(t, 0, newTreeFrom(t, 1).Height())
	assert.Equal(t, 1, newTreeFrom(t, 2, 1, 3).Height())
	assert.Equal(t, 2, newTreeFrom(t, 5, 3, 8, 1, 4).Height())
	// sorted input degenerates into a chain
	assert.Equal(t, 4, newTreeFrom(t, 1, 2, 3, 4, 5).Height())
}

func TestTree_Walks(t *testing.T) {
	tr := newTreeFrom(t, 5, 3, 8, 1, 4)

	assert.Equal(t, []int{5, 3, 1, 4, 8}, walk(tr, (*Tree).WalkPreOrder))
	assert.Equal(t, []int{1, 3, 4, 5, 8}, walk(tr, (*Tree).WalkInOrder))
	assert.Equal(t, []int{1, 4, 3, 8, 5}, walk(tr, (*Tree).WalkPostOrder))
	assert.Equal(t, []int{1, 3, 4, 5, 8}, slices.Collect(tr.All()))
}

func TestTree_WalkUserData(t *testing.T) {
	tr := newTreeFrom(t, 2, 1, 3)
	sum := 0
	tr.WalkInOrder(func(value int, userData any) {
		*userData.(*int) += value
	}, &sum)
	assert.Equal(t, 6, sum)
}

func TestTree_RemoveTwoChildren(t *testing.T) {
	tr := newTreeFrom(t, 5, 3, 8, 1, 4)

	require.True(t, tr.Remove(5))
	assert.Equal(t, []int{1, 3, 4, 8}, walk(tr, (*Tree).WalkInOrder))
	// the successor now sits at the root
	assert.Equal(t, []int{8, 3, 1, 4}, walk(tr, (*Tree).WalkPreOrder))
	assert.False(t, tr.Contains(5))
	assert.False(t, tr.Remove(5))
}

func TestTree_RemoveShapes(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		tr := newTreeFrom(t, 5, 3, 8)
		require.True(t, tr.Remove(8))
		assert.Equal(t, []int{5, 3}, walk(tr, (*Tree).WalkPreOrder))
	})

	t.Run("only right child", func(t *testing.T) {
		tr := newTreeFrom(t, 5, 3, 4)
		require.True(t, tr.Remove(3))
		assert.Equal(t, []int{5, 4}, walk(tr, (*Tree).WalkPreOrder))
	})

	t.Run("only left child", func(t *testing.T) {
		tr := newTreeFrom(t, 5, 3, 2)
		require.True(t, tr.Remove(3))
		assert.Equal(t, []int{5, 2}, walk(tr, (*Tree).WalkPreOrder))
	})

	t.Run("successor with right child", func(t *testing.T) {
		tr := newTreeFrom(t, 5, 2, 9, 7, 8)
		require.True(t, tr.Remove(5))
		assert.Equal(t, []int{7, 2, 9, 8}, walk(tr, (*Tree).WalkPreOrder))
	})

	t.Run("root", func(t *testing.T) {
		tr := newTreeFrom(t, 1)
		require.True(t, tr.Remove(1))
		assert.True(t, tr.Empty())
	})
}

func TestTree_Destroy(t *testing.T) {
	tr := newTreeFrom(t, 4, 2, 6, 1, 3, 5, 7)
	tr.Destroy()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Size())

	// Test if the tree is usable after destroying
	assert.True(t, tr.Insert(4))
	assert.Equal(t, 1, tr.Size())
}

func TestTree_LogsRejections(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tr := New(WithLogger(zap.New(core)))
	tr.Insert(1)
	tr.Insert(1)
	tr.Remove(2)

	assert.Equal(t, 1, logs.FilterMessage("duplicate key").Len())
	assert.Equal(t, 1, logs.FilterMessage("absent key").Len())
}

func TestTree_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("contains exactly the surviving keys, in order", prop.ForAll(
		func(inserts, removes []int) bool {
			tr := New()
			present := map[int]bool{}
			for _, k := range inserts {
				if tr.Insert(k) == present[k] {
					return false
				}
				present[k] = true
			}
			for _, k := range removes {
				if tr.Remove(k) != present[k] {
					return false
				}
				delete(present, k)
			}

			for k := -60; k <= 60; k++ {
				if tr.Contains(k) != present[k] {
					return false
				}
			}
			keys := walk(tr, (*Tree).WalkInOrder)
			for i := 1; i < len(keys); i++ {
				if keys[i-1] >= keys[i] {
					return false
				}
			}
			return len(keys) == len(present) && tr.Size() == len(present)
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}
