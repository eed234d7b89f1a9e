package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

type checkData struct {
	color Color
	key   int
}

func foreach(t *Node, fn func(idx int, color Color, key int) bool) {
	idx := 0
	var walk func(h *Node) bool
	walk = func(h *Node) bool {
		if h.IsEmpty() {
			return true
		}
		if !walk(h.left) {
			return false
		}
		if !fn(idx, h.color, h.key) {
			return false
		}
		idx++
		return walk(h.right)
	}
	walk(t)
}

func requireShape(t *testing.T, tr *Node, expected []checkData) {
	t.Helper()
	count := 0
	foreach(tr, func(idx int, color Color, key int) bool {
		require.Less(t, idx, len(expected))
		require.Equal(t, expected[idx].color, color, "idx %d key %d", idx, key)
		require.Equal(t, expected[idx].key, key, "idx %d", idx)
		count++
		return true
	})
	require.Equal(t, len(expected), count)
	require.Equal(t, len(expected), tr.Size())
	require.NoError(t, Validate(tr))
}

func TestLLRBLeftAndRightRotate(t *testing.T) {
	tr := DummyNode()

	tr = Insert(tr, 52)
	requireShape(t, tr, []checkData{
		{Black, 52},
	})

	tr = Insert(tr, 47)
	requireShape(t, tr, []checkData{
		{Red, 47}, {Black, 52},
	})

	tr = Insert(tr, 3)
	requireShape(t, tr, []checkData{
		{Black, 3}, {Black, 47}, {Black, 52},
	})

	tr = Insert(tr, 35)
	requireShape(t, tr, []checkData{
		{Red, 3}, {Black, 35}, {Black, 47}, {Black, 52},
	})

	tr = Insert(tr, 24)
	requireShape(t, tr, []checkData{
		{Black, 3},
		{Red, 24},
		{Black, 35},
		{Black, 47},
		{Black, 52},
	})

	// duplicate insert leaves the tree unchanged

	tr = Insert(tr, 24)
	require.Equal(t, 5, tr.Size())
	require.NoError(t, Validate(tr))

	// remove

	tr = Remove(tr, 24)
	requireShape(t, tr, []checkData{
		{Red, 3}, {Black, 35}, {Black, 47}, {Black, 52},
	})

	tr = Remove(tr, 47)
	requireShape(t, tr, []checkData{
		{Black, 3}, {Black, 35}, {Black, 52},
	})

	tr = Remove(tr, 52)
	requireShape(t, tr, []checkData{
		{Red, 3}, {Black, 35},
	})

	tr = Remove(tr, 3)
	requireShape(t, tr, []checkData{
		{Black, 35},
	})

	// removing an absent key is a no-op

	tr = Remove(tr, 100)
	requireShape(t, tr, []checkData{
		{Black, 35},
	})

	tr = Remove(tr, 35)
	require.True(t, tr.IsDummy())
	require.Equal(t, 0, tr.Size())
}

func TestLLRBRemoveMin(t *testing.T) {
	tr := DummyNode()
	for _, key := range []int{52, 47, 3, 35, 24} {
		tr = Insert(tr, key)
	}
	requireShape(t, tr, []checkData{
		{Black, 3},
		{Red, 24},
		{Black, 35},
		{Black, 47},
		{Black, 52},
	})

	tr, err := RemoveMin(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Red, 24}, {Black, 35}, {Black, 47}, {Black, 52},
	})

	tr, err = RemoveMin(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Black, 35}, {Black, 47}, {Black, 52},
	})

	tr, err = RemoveMin(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Red, 47}, {Black, 52},
	})

	tr, err = RemoveMin(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Black, 52},
	})

	tr, err = RemoveMin(tr)
	require.NoError(t, err)
	require.True(t, tr.IsDummy())

	_, err = RemoveMin(tr)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestLLRBRemoveMax(t *testing.T) {
	tr := DummyNode()
	for _, key := range []int{52, 47, 3, 35, 24} {
		tr = Insert(tr, key)
	}

	tr, err := RemoveMax(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Black, 3}, {Black, 24}, {Red, 35}, {Black, 47},
	})

	tr, err = RemoveMax(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Black, 3}, {Black, 24}, {Black, 35},
	})

	tr, err = RemoveMax(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Red, 3}, {Black, 24},
	})

	tr, err = RemoveMax(tr)
	require.NoError(t, err)
	requireShape(t, tr, []checkData{
		{Black, 3},
	})

	tr, err = RemoveMax(tr)
	require.NoError(t, err)
	require.True(t, tr.IsDummy())

	_, err = RemoveMax(tr)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestLLRBMinMax(t *testing.T) {
	tr := DummyNode()

	_, err := Min(tr)
	require.ErrorIs(t, err, ErrEmptyTree)
	_, err = Max(tr)
	require.ErrorIs(t, err, ErrEmptyTree)

	for _, key := range []int{52, 47, 3, 35, 24} {
		tr = Insert(tr, key)
	}

	mn, err := Min(tr)
	require.NoError(t, err)
	require.Equal(t, 3, mn.Key())

	mx, err := Max(tr)
	require.NoError(t, err)
	require.Equal(t, 52, mx.Key())
}

func TestLLRBSearchAndContains(t *testing.T) {
	tr := DummyNode()
	require.False(t, Contains(tr, 1))

	for _, key := range []int{52, 47, 3, 35, 24} {
		tr = Insert(tr, key)
	}

	for _, key := range []int{3, 24, 35, 47, 52} {
		require.True(t, Contains(tr, key))
		n, _ := Search(tr, key)
		require.Equal(t, key, n.Key())
	}
	require.False(t, Contains(tr, 12))

	n, p := Search(tr, 3)
	require.Equal(t, 3, n.Key())
	require.Equal(t, 24, p.Key())

	n, p = Search(tr, tr.Key())
	require.Equal(t, tr.Key(), n.Key())
	require.True(t, p.IsDummy())

	n, p = Search(tr, 100)
	require.True(t, n.IsDummy())
	require.True(t, p.IsDummy())
}

func TestLLRBRandomInsertAndRemove(t *testing.T) {
	total := 512
	removeTotal := total / 4

	tr := DummyNode()
	for _, key := range randv2.Perm(total) {
		tr = Insert(tr, key+1)
		require.NoError(t, Validate(tr))
	}
	require.Equal(t, total, tr.Size())
	foreach(tr, func(idx int, color Color, key int) bool {
		require.Equal(t, idx+1, key)
		return true
	})

	removed := make(map[int]bool, removeTotal)
	for _, key := range randv2.Perm(total)[:removeTotal] {
		tr = Remove(tr, key+1)
		removed[key+1] = true
		require.NoError(t, Validate(tr))
		require.False(t, Contains(tr, key+1))
	}
	require.Equal(t, total-removeTotal, tr.Size())

	expected := make([]int, 0, total-removeTotal)
	for key := 1; key <= total; key++ {
		if !removed[key] {
			expected = append(expected, key)
		}
	}
	foreach(tr, func(idx int, color Color, key int) bool {
		require.Equal(t, expected[idx], key)
		return true
	})
}

func BenchmarkLLRBInsert_Random(b *testing.B) {
	b.StopTimer()
	keys := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		keys = append(keys, randv2.Int())
	}
	tr := DummyNode()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr = Insert(tr, keys[i])
	}
}

func BenchmarkLLRBInsert_Serial(b *testing.B) {
	tr := DummyNode()
	for i := 0; i < b.N; i++ {
		tr = Insert(tr, i)
	}
}
