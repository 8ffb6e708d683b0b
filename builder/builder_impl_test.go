package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/builder"
	"github.com/katalvlaran/gdwg/core"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *builder.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func hasEdge(t *testing.T, g *builder.Graph, u, v string, w int64) {
	t.Helper()
	assert.True(t, g.Find(u, v, w).Valid(), "missing edge %s→%s (%d)", u, v, w)
}

func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		wantBidiE    int
	}{
		{"Path(4)", builder.Path(4), 4, 3, 6},
		{"Cycle(5)", builder.Cycle(5), 5, 5, 10},
		{"Star(5)", builder.Star(5), 5, 4, 8},
		{"Wheel(5)", builder.Wheel(5), 5, 8, 16},
		{"Complete(4)", builder.Complete(4), 4, 6, 12},
		{"Complete(1)", builder.Complete(1), 1, 0, 0},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, 12},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, 14},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), 5, 20, 20},
		{"RandomSparse(5,0)", builder.RandomSparse(5, 0), 5, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			bidi := build(t, []builder.BuilderOption{builder.WithBidirectional()}, tc.ctor)
			assert.Equal(t, tc.wantV, bidi.NodeCount())
			assert.Equal(t, tc.wantBidiE, bidi.EdgeCount())
		})
	}
}

func TestCycle_Topology(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}} {
		hasEdge(t, g, e[0], e[1], builder.DefaultEdgeWeight)
	}
	ok, err := g.IsConnected("1", "0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStarAndWheel_Hub(t *testing.T) {
	g := build(t, nil, builder.Star(4))
	out, err := g.Connections(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, out)

	w := build(t, []builder.BuilderOption{builder.WithBidirectional()}, builder.Wheel(4))
	in, err := w.Connections("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", builder.CenterVertexID}, in)
}

func TestCompleteBipartite_Prefixes(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithPartitionPrefix("U", "")}, builder.CompleteBipartite(1, 2))
	assert.Equal(t, []string{"R0", "R1", "U0"}, g.Nodes())
	hasEdge(t, g, "U0", "R1", 1)
}

func TestGrid_Neighbours(t *testing.T) {
	g := build(t, nil, builder.Grid(2, 2))
	out, err := g.Connections(builder.GridID(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,1", "1,0"}, out)

	out, err = g.Connections(builder.GridID(1, 1))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuildGraph_ComposeSharesTriples(t *testing.T) {
	g := build(t, nil, builder.Cycle(3), builder.Path(3))
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount(), "path edges coincide with cycle edges")

	// distinct weights make parallel edges
	p, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(p, []builder.BuilderOption{builder.WithConstantWeight(5)}, builder.Path(2)))
	w, err := p.Weights("0", "1")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5}, w)
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Contains(t, err.Error(), "BuildGraph: ")
		})
	}
}

func TestApply_NilGraph(t *testing.T) {
	err := builder.Apply(nil, nil, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	a := build(t, opts, builder.RandomSparse(12, 0.3))
	b := build(t, opts, builder.RandomSparse(12, 0.3))
	assert.True(t, a.Equal(b))
	assert.Greater(t, a.EdgeCount(), 0)
	assert.Less(t, a.EdgeCount(), 12*11)

	for e := range a.All() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestBuildGraph_ForwardsGraphOptions(t *testing.T) {
	g, err := builder.BuildGraph([]core.Option{core.WithLogger(discard())}, nil, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestPaddedIDs_KeepIndexOrder(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithPaddedIDs(2)}, builder.Path(12))
	nodes := g.Nodes()
	require.Len(t, nodes, 12)
	assert.Equal(t, "00", nodes[0])
	assert.Equal(t, "11", nodes[11])

	var prev string
	for e := range g.All() {
		assert.Greater(t, e.To, e.From)
		assert.GreaterOrEqual(t, e.From, prev)
		prev = e.From
	}
}
