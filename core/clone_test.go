package core_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gdwg/core"
)

// CopySuite covers Clone, Take, Equal and the derived views.
type CopySuite struct {
	suite.Suite
	logs *bytes.Buffer
	g    *core.Graph[int, int]
}

func (s *CopySuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.g = core.FromSlice[int, int]([]int{1, 2, 3, 4, 5, 6, 64}, core.WithLogger(logger))
	for _, e := range serializationEdges {
		_, err := s.g.InsertEdge(e.src, e.dst, e.w)
		s.Require().NoError(err)
	}
}

func (s *CopySuite) TestCloneIsEqualAndIndependent() {
	c := s.g.Clone()
	s.True(c.Equal(s.g))
	s.True(s.g.Equal(c))
	s.Equal(s.g.String(), c.String())

	_, err := c.InsertEdge(64, 1, 0)
	s.Require().NoError(err)
	c.EraseNode(3)

	s.False(c.Equal(s.g))
	s.Equal(10, s.g.EdgeCount())
	s.True(s.g.IsNode(3))
	s.Equal(serializationWant, s.g.String())
}

func (s *CopySuite) TestEqualIgnoresInsertionOrder() {
	other := core.New[int, int]()
	for i := len(serializationEdges) - 1; i >= 0; i-- {
		e := serializationEdges[i]
		other.InsertNode(e.dst)
		other.InsertNode(e.src)
		_, err := other.InsertEdge(e.src, e.dst, e.w)
		s.Require().NoError(err)
	}
	other.InsertNode(64)
	s.True(s.g.Equal(other))

	other.InsertNode(65)
	s.False(s.g.Equal(other))
	s.False(s.g.Equal(nil))
}

func (s *CopySuite) TestEqualDetectsWeightDifference() {
	c := s.g.Clone()
	_, err := c.EraseEdge(5, 2, 7)
	s.Require().NoError(err)
	_, err = c.InsertEdge(5, 2, 8)
	s.Require().NoError(err)
	s.False(s.g.Equal(c))
}

func (s *CopySuite) TestTakeLeavesSourceEmpty() {
	want := s.g.String()
	moved := s.g.Take()

	s.Equal(want, moved.String())
	s.True(s.g.Empty())
	s.Equal(0, s.g.EdgeCount())
	s.True(s.g.Begin().AtEnd())

	// the source stays usable and independent
	s.g.InsertNode(1)
	_, err := s.g.InsertEdge(1, 1, 1)
	s.Require().NoError(err)
	s.Equal(10, moved.EdgeCount())
	s.Contains(s.logs.String(), "core: graph moved")
}

func (s *CopySuite) TestDestructiveOpsLog() {
	s.g.EraseNode(6)
	_, err := s.g.ReplaceNode(64, 7)
	s.Require().NoError(err)
	s.Require().NoError(s.g.MergeReplaceNode(5, 1))
	s.g.Clear()

	out := s.logs.String()
	s.Contains(out, "core: node erased")
	s.Contains(out, "edges_removed=3")
	s.Contains(out, "core: node replaced")
	s.Contains(out, "core: node merged")
	s.Contains(out, "core: graph cleared")
}

func (s *CopySuite) TestInducedSubgraph() {
	sub := core.InducedSubgraph(s.g, func(v int) bool { return v%2 == 0 })
	s.Equal([]int{2, 4, 6, 64}, sub.Nodes())
	s.Equal([]core.Edge[int, int]{
		{From: 2, To: 4, Weight: 2},
		{From: 6, To: 2, Weight: 5},
	}, sub.Edges())
	s.Equal(10, s.g.EdgeCount(), "input untouched")
}

func (s *CopySuite) TestReverse() {
	r := core.Reverse(s.g)
	s.Equal(s.g.Nodes(), r.Nodes())
	s.Equal(s.g.EdgeCount(), r.EdgeCount())
	for _, e := range serializationEdges {
		ok, err := r.IsConnected(e.dst, e.src)
		s.Require().NoError(err)
		s.True(ok, "%d→%d", e.dst, e.src)
	}
	s.True(core.Reverse(r).Equal(s.g))
}

func TestCopySuite(t *testing.T) {
	suite.Run(t, new(CopySuite))
}
