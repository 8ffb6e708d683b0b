package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/core"
	"github.com/katalvlaran/gdwg/dfs"
)

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles[string, int](nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_NoCycle(t *testing.T) {
	g := graphOf(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "D"},
		[2]string{"C", "G"}, [2]string{"D", "E"}, [2]string{"E", "F"},
	)
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCycles_TwoNodes(t *testing.T) {
	g := graphOf(t, [2]string{"B", "A"}, [2]string{"A", "B"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

func TestDetectCycles_RotatedToSmallest(t *testing.T) {
	g := graphOf(t, [2]string{"C", "A"}, [2]string{"A", "B"}, [2]string{"B", "C"})
	_, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_SelfLoop(t *testing.T) {
	g := graphOf(t, [2]string{"A", "A"}, [2]string{"A", "B"})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "A"}}, cycles)
}

func TestDetectCycles_SortedOutput(t *testing.T) {
	g := graphOf(t,
		[2]string{"X", "Y"}, [2]string{"Y", "X"},
		[2]string{"B", "C"}, [2]string{"C", "B"},
	)
	_, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"B", "C", "B"}, {"X", "Y", "X"}}, cycles)
}

func TestDetectCycles_IntNodes(t *testing.T) {
	g := core.FromSlice[int, int]([]int{1, 2, 3})
	for _, e := range [][2]int{{3, 1}, {1, 2}, {2, 3}} {
		_, err := g.InsertEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	_, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3, 1}}, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, dfs.MinimalRotation([]int{2, 3, 1}))
	assert.Equal(t, []string{"a", "a", "b"}, dfs.MinimalRotation([]string{"a", "b", "a"}))
	assert.Equal(t, []int{}, dfs.MinimalRotation([]int{}))

	in := []int{3, 1, 2}
	_ = dfs.MinimalRotation(in)
	assert.Equal(t, []int{3, 1, 2}, in, "input untouched")
}
