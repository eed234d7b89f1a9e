package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	require.Empty(t, Show(DummyNode()))

	tr := DummyNode()
	for _, key := range []int{2, 1, 3} {
		tr = Insert(tr, key)
	}
	lines := strings.Split(strings.TrimRight(Show(tr), "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "   (1, c=black, t=regular"))
	require.True(t, strings.HasPrefix(lines[1], "(2, c=black, t=regular"))
	require.True(t, strings.HasPrefix(lines[2], "   (3, c=black, t=regular"))
}

func TestShowStopsAtBoundaries(t *testing.T) {
	root, err := Build(3)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(Show(root), "\n"), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "(2, c=black, t=regular")
}

func TestShowTango(t *testing.T) {
	require.Empty(t, ShowTango(DummyNode()))

	root, err := Build(7)
	require.NoError(t, err)

	out := ShowTango(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)

	// key order across boundaries, reference depths attached
	for i, want := range []string{
		"(1, d=2)", "(2, d=1)", "(3, d=2)", "(4, d=0)", "(5, d=2)", "(6, d=1)", "(7, d=2)",
	} {
		require.Contains(t, lines[i], want)
	}

	// boundaries render plain at three spaces per level
	require.Equal(t, "   (2, d=1)", lines[1])
	require.Equal(t, "      (5, d=2)", lines[4])
}
