package deepening

import (
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/search"
	"github.com/domino14/othello/search/alphabeta"
	"github.com/domino14/othello/search/negascout"
	"github.com/domino14/othello/stats"
	"github.com/domino14/othello/testhelpers"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// scripted returns canned results, one per pass, repeating the last.
type scripted struct {
	results []search.Result
	depths  []int
}

func (s *scripted) Solve(root game.Position, c search.Cutoff) search.Result {
	s.depths = append(s.depths, c.DepthLimit)
	return s.results[min(len(s.depths), len(s.results))-1]
}

// recorder wraps a real searcher and remembers each depth limit.
type recorder struct {
	inner  search.Searcher
	depths []int
}

func (r *recorder) Solve(root game.Position, c search.Cutoff) search.Result {
	r.depths = append(r.depths, c.DepthLimit)
	return r.inner.Solve(root, c)
}

// Random tree scores can exceed the board saturation threshold.
const noSaturation = 1 << 20

func newEval() *evaluator.Evaluator {
	return evaluator.New(evaluator.RawScore{}, &stats.SearchStats{})
}

func TestStopsAtDepthLimit(t *testing.T) {
	is := is.New(t)
	st := &stats.SearchStats{}
	eval := evaluator.New(evaluator.RawScore{}, st)
	rec := &recorder{inner: alphabeta.New(eval, st)}
	d := NewDriver(rec, eval, 3, noSaturation)

	best, ok := d.Search(testhelpers.RandomTree(3, 3, 8), 0)
	is.True(ok)
	is.True(best != nil)
	is.Equal(rec.depths, []int{1, 2, 3})
}

func TestUnboundedStopsWhenTreeResolved(t *testing.T) {
	is := is.New(t)
	st := &stats.SearchStats{}
	eval := evaluator.New(evaluator.RawScore{}, st)
	rec := &recorder{inner: negascout.New(eval, st)}
	d := NewDriver(rec, eval, search.Unbounded, noSaturation)

	// Height 2: the third pass reaches no depth cutoff.
	best, ok := d.Search(testhelpers.RandomTree(5, 2, 2), 0)
	is.True(ok)
	is.True(best != nil)
	is.Equal(rec.depths, []int{1, 2, 3})
}

func TestLowestChildEvaluationKept(t *testing.T) {
	is := is.New(t)
	a := testhelpers.Leaf("a", game.White, 5)
	b := testhelpers.Leaf("b", game.White, 9)
	c := testhelpers.Leaf("c", game.White, 2)
	s := &scripted{results: []search.Result{
		{Best: a, DepthCutoffs: 1},
		{Best: b, DepthCutoffs: 1},
		{Best: c, DepthCutoffs: 1},
		{Best: b, DepthCutoffs: 1},
	}}
	d := NewDriver(s, newEval(), 4, search.DefaultSaturation)
	best, ok := d.Search(testhelpers.Branch("r", game.Black, a, b, c), 0)
	is.True(ok)
	is.Equal(best, c)
	is.Equal(len(s.depths), 4)
}

func TestIncompletePassOnlyAsFallback(t *testing.T) {
	is := is.New(t)
	a := testhelpers.Leaf("a", game.White, 5)
	b := testhelpers.Leaf("b", game.White, 1)
	root := testhelpers.Branch("r", game.Black, a, b)

	s := &scripted{results: []search.Result{
		{Best: a, DepthCutoffs: 1},
		{Best: b, DepthCutoffs: 1, Expired: true},
	}}
	best, ok := NewDriver(s, newEval(), search.Unbounded, search.DefaultSaturation).Search(root, 0)
	is.True(ok)
	is.Equal(best, a)
	is.Equal(len(s.depths), 2)

	s = &scripted{results: []search.Result{
		{Best: b, DepthCutoffs: 1, Expired: true},
	}}
	best, ok = NewDriver(s, newEval(), search.Unbounded, search.DefaultSaturation).Search(root, 0)
	is.True(ok)
	is.Equal(best, b)
	is.Equal(len(s.depths), 1)
}

func TestNoMove(t *testing.T) {
	is := is.New(t)
	st := &stats.SearchStats{}
	eval := evaluator.New(evaluator.RawScore{}, st)
	d := NewDriver(alphabeta.New(eval, st), eval, search.Unbounded, search.DefaultSaturation)
	best, ok := d.Search(testhelpers.Leaf("r", game.Black, 0), time.Second)
	is.True(!ok)
	is.Equal(best, nil)
}

func TestDeadlineRespected(t *testing.T) {
	is := is.New(t)
	for _, algo := range []string{"alphabeta", "negascout"} {
		st := &stats.SearchStats{}
		eval := evaluator.New(evaluator.Mobility{}, st)
		var inner search.Searcher = alphabeta.New(eval, st)
		if algo == "negascout" {
			inner = negascout.New(eval, st)
		}
		d := NewDriver(inner, eval, search.Unbounded, search.DefaultSaturation)
		budget := 50 * time.Millisecond
		start := time.Now()
		best, ok := d.Search(othello.NewGame(), budget)
		elapsed := time.Since(start)
		is.True(ok)
		is.True(best != nil)
		is.True(elapsed < budget+500*time.Millisecond)
	}
}
