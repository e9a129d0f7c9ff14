package evaluator

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othello/game"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/stats"
	"github.com/domino14/othello/testhelpers"
)

// collider hashes every position to the same key.
type collider struct {
	*testhelpers.Node
}

func (c collider) Hash() uint64 { return 42 }

func (c collider) Equal(other game.Position) bool {
	o, ok := other.(collider)
	return ok && c.Node.Equal(o.Node)
}

func TestMemoization(t *testing.T) {
	is := is.New(t)
	st := &stats.SearchStats{}
	e := New(RawScore{}, st)
	pos := othello.NewGame()

	is.Equal(e.Evaluate(pos), game.Evaluation(2))
	is.Equal(st.StaticEvaluations, 1)
	for i := 0; i < 5; i++ {
		is.Equal(e.Evaluate(pos), game.Evaluation(2))
	}
	is.Equal(st.StaticEvaluations, 1)

	// A structurally equal position reached independently is a hit too.
	is.Equal(e.Evaluate(othello.NewGame()), game.Evaluation(2))
	is.Equal(st.StaticEvaluations, 1)
	is.Equal(e.MemoSize(), 1)
}

func TestNilPosition(t *testing.T) {
	is := is.New(t)
	st := &stats.SearchStats{}
	e := New(Mobility{}, st)
	is.Equal(e.Evaluate(nil), game.Evaluation(0))
	is.Equal(*st, stats.SearchStats{})
	is.Equal(e.MemoSize(), 0)
}

func TestHashCollisionsDisambiguated(t *testing.T) {
	is := is.New(t)
	st := &stats.SearchStats{}
	e := New(RawScore{}, st)
	a := collider{testhelpers.Leaf("a", game.Black, 7)}
	b := collider{testhelpers.Leaf("b", game.Black, -3)}

	is.Equal(e.Evaluate(a), game.Evaluation(7))
	is.Equal(e.Evaluate(b), game.Evaluation(-3))
	is.Equal(e.Evaluate(a), game.Evaluation(7))
	is.Equal(st.StaticEvaluations, 2)
	is.Equal(e.MemoSize(), 2)
}

func TestHeuristics(t *testing.T) {
	is := is.New(t)
	pos := othello.NewGame()
	is.Equal(RawScore{}.Score(pos), game.Evaluation(2))
	is.Equal(Mobility{}.Score(pos), game.Evaluation(4))

	h, err := HeuristicFromName("mobility")
	is.NoErr(err)
	is.Equal(h.Name(), MobilityName)
	h, err = HeuristicFromName("")
	is.NoErr(err)
	is.Equal(h.Name(), RawScoreName)
	_, err = HeuristicFromName("parity")
	is.True(err != nil)
}
