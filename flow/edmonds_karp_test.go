package flow_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gdwg/builder"
	"github.com/katalvlaran/gdwg/core"
	"github.com/katalvlaran/gdwg/flow"
)

type arc struct {
	u, v string
	c    int
}

func network(t *testing.T, arcs ...arc) *core.Graph[string, int] {
	t.Helper()
	g := core.New[string, int]()
	for _, a := range arcs {
		g.InsertNode(a.u)
		g.InsertNode(a.v)
		_, err := g.InsertEdge(a.u, a.v, a.c)
		require.NoError(t, err)
	}

	return g
}

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.ctx = context.Background()
}

// TestSimplePath: A→B (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	g := network(s.T(), arc{"A", "B", 5})

	mf, res, err := flow.EdmondsKarp(s.ctx, g, "A", "B")
	s.Require().NoError(err)
	s.Equal(5.0, mf)

	ok, err := res.IsConnected("A", "B")
	s.Require().NoError(err)
	s.False(ok, "forward exhausted")

	w, err := res.Weights("B", "A")
	s.Require().NoError(err)
	s.Equal([]float64{5}, w, "reverse edge carries flow")
}

// TestMultiPath: two routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := network(s.T(), arc{"A", "B", 3}, arc{"A", "C", 4}, arc{"C", "B", 2})

	mf, _, err := flow.EdmondsKarp(s.ctx, g, "A", "B")
	s.Require().NoError(err)
	s.Equal(5.0, mf)
}

func (s *EdmondsKarpSuite) TestClassicNetwork() {
	g := network(s.T(),
		arc{"s", "v1", 16}, arc{"s", "v2", 13}, arc{"v1", "v3", 12}, arc{"v2", "v1", 4},
		arc{"v2", "v4", 14}, arc{"v3", "v2", 9}, arc{"v3", "t", 20}, arc{"v4", "v3", 7},
		arc{"v4", "t", 4},
	)
	mf, _, err := flow.EdmondsKarp(s.ctx, g, "s", "t")
	s.Require().NoError(err)
	s.Equal(23.0, mf)
}

func (s *EdmondsKarpSuite) TestParallelCapacitiesAdd() {
	g := network(s.T(), arc{"s", "t", 3}, arc{"s", "t", 4}, arc{"t", "t", 9})
	mf, _, err := flow.EdmondsKarp(s.ctx, g, "s", "t")
	s.Require().NoError(err)
	s.Equal(7.0, mf)
}

func (s *EdmondsKarpSuite) TestSourceIsSink() {
	g := network(s.T(), arc{"a", "b", 1})
	mf, res, err := flow.EdmondsKarp(s.ctx, g, "a", "a")
	s.Require().NoError(err)
	s.Zero(mf)
	s.Equal(1, res.EdgeCount())
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := network(s.T(), arc{"X", "Y", -1})

	_, _, err := flow.EdmondsKarp(s.ctx, g, "X", "Y")
	var ee flow.EdgeError
	s.Require().True(errors.As(err, &ee), "error must be EdgeError")
	s.Equal("X", ee.From)
	s.Equal("Y", ee.To)
	s.Equal(-1.0, ee.Cap)
}

// TestSourceSinkNotFound covers missing source or sink.
func (s *EdmondsKarpSuite) TestSourceSinkNotFound() {
	g := core.FromSlice[string, int]([]string{"A"})

	_, _, err := flow.EdmondsKarp(s.ctx, g, "X", "A")
	s.ErrorIs(err, flow.ErrSourceNotFound)

	_, _, err = flow.EdmondsKarp(s.ctx, g, "A", "Z")
	s.ErrorIs(err, flow.ErrSinkNotFound)

	_, _, err = flow.EdmondsKarp[string, int](s.ctx, nil, "A", "Z")
	s.ErrorIs(err, flow.ErrGraphNil)
}

func (s *EdmondsKarpSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, _, err := flow.EdmondsKarp(ctx, network(s.T(), arc{"a", "b", 1}), "a", "b")
	s.ErrorIs(err, context.Canceled)
}

func (s *EdmondsKarpSuite) TestLogsAugmentingPaths() {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, _, err := flow.EdmondsKarp(s.ctx, network(s.T(), arc{"a", "b", 2}), "a", "b", flow.WithLogger(log))
	s.Require().NoError(err)
	s.Contains(buf.String(), "flow: augmenting path")
	s.Contains(buf.String(), "flow=2")
}

func (s *EdmondsKarpSuite) TestOptionPanics() {
	s.Panics(func() { flow.WithEpsilon(0) })
	s.Panics(func() { flow.WithLogger(nil) })
}

// TestBuilderBipartite: unit capacities over K_{3,3} plus a super source and
// sink give a perfect matching of size 3.
func (s *EdmondsKarpSuite) TestBuilderBipartite() {
	g, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(3, 3))
	s.Require().NoError(err)
	g.InsertNode("src")
	g.InsertNode("dst")
	for i := range 3 {
		_, err = g.InsertEdge("src", builder.PrefixIDFn("L")(i), 1)
		s.Require().NoError(err)
		_, err = g.InsertEdge(builder.PrefixIDFn("R")(i), "dst", 1)
		s.Require().NoError(err)
	}

	mf, _, err := flow.EdmondsKarp(s.ctx, g, "src", "dst")
	s.Require().NoError(err)
	s.Equal(3.0, mf)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
