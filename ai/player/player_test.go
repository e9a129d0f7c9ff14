package player

import (
	"math"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/othello/config"
	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/othello"
	"github.com/domino14/othello/search"
	"github.com/domino14/othello/testhelpers"
)

var _ AIPlayer = (*Engine)(nil)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func fixedConfig(depth int, algo Algorithm) Config {
	cfg := DefaultConfig()
	cfg.Policy = Fixed
	cfg.DepthLimit = depth
	cfg.Inner = algo
	return cfg
}

func TestDeterministic(t *testing.T) {
	is := is.New(t)
	pos := othello.NewGame()
	for _, cfg := range []Config{
		fixedConfig(3, AlphaBeta),
		fixedConfig(3, Negascout),
		{DepthLimit: 3, Policy: Deepening, Inner: AlphaBeta},
	} {
		e := New(cfg)
		m1, ok := e.SelectMove(pos, 0)
		is.True(ok)
		m2, ok := e.SelectMove(pos, 0)
		is.True(ok)
		is.Equal(m1, m2)
		m3, _ := New(cfg).SelectMove(pos, 0)
		is.Equal(m1, m3)
	}
}

func TestPruningKeepsMove(t *testing.T) {
	is := is.New(t)
	pos := othello.NewGame()
	sq, err := othello.ParseSquare("c4")
	is.NoErr(err)
	afterC4, err := pos.Play(sq)
	is.NoErr(err)
	for _, p := range []*othello.Board{pos, afterC4} {
		for _, h := range []evaluator.Heuristic{evaluator.RawScore{}, evaluator.Mobility{}} {
			for depth := 1; depth <= 4; depth++ {
				ab, mm := fixedConfig(depth, AlphaBeta), fixedConfig(depth, AlphaBeta)
				ab.Heuristic, mm.Heuristic = h, h
				mm.DisablePruning = true
				m1, _ := New(ab).SelectMove(p, 0)
				m2, _ := New(mm).SelectMove(p, 0)
				is.Equal(m1, m2)
			}
		}
	}
}

func TestNoMove(t *testing.T) {
	is := is.New(t)
	white := uint64(1) << 62
	black := ^uint64(0) &^ (uint64(1)<<63 | white)
	pos := othello.FromBitboards(black, white, game.White)

	for _, cfg := range []Config{fixedConfig(4, AlphaBeta), DefaultConfig()} {
		e := New(cfg)
		m, ok := e.SelectMove(pos, 0)
		is.True(!ok)
		is.Equal(m, nil)
		is.Equal(e.MoveTimes().Iterations(), 1)
	}
}

func TestAccessors(t *testing.T) {
	is := is.New(t)
	root := testhelpers.Branch("r", game.Black,
		testhelpers.Branch("a", game.White,
			testhelpers.Leaf("a1", game.Black, 3),
			testhelpers.Leaf("a2", game.Black, 5)),
		testhelpers.Branch("b", game.White,
			testhelpers.Leaf("b1", game.Black, -2),
			nil,
			testhelpers.Leaf("b2", game.Black, 9)),
	)
	e := New(fixedConfig(search.Unbounded, AlphaBeta))
	is.True(math.IsNaN(e.AverageBranchingFactor()))
	is.True(math.IsNaN(e.EffectiveBranchingFactor()))

	m, ok := e.SelectMove(root, 0)
	is.True(ok)
	is.Equal(m.String(), "b")
	is.Equal(e.TotalParents(), 2)
	is.Equal(e.TotalSuccessors(), 5)
	is.Equal(e.NodesGenerated(), 4)
	is.Equal(e.StaticEvaluations(), 4)
	assert.InDelta(t, 2.5, e.AverageBranchingFactor(), 1e-9)
	assert.InDelta(t, 2.0, e.EffectiveBranchingFactor(), 1e-9)
	is.Equal(e.MemoSize(), 4)

	e.ResetStats()
	is.Equal(e.TotalParents(), 0)
	is.True(math.IsNaN(e.EffectiveBranchingFactor()))
}

func TestLastMoveStats(t *testing.T) {
	is := is.New(t)
	pos := othello.NewGame()
	for _, reset := range []bool{false, true} {
		cfg := fixedConfig(3, AlphaBeta)
		cfg.ResetStatsPerMove = reset
		e := New(cfg)
		m, ok := e.SelectMove(pos, 0)
		is.True(ok)
		first := e.LastMoveStats()
		is.Equal(first, e.Stats())
		is.True(first.TotalParents > 0)

		next, err := pos.Play(m)
		is.NoErr(err)
		_, ok = e.SelectMove(next, 0)
		is.True(ok)
		second := e.LastMoveStats()
		is.True(second.TotalParents > 0)
		if reset {
			is.Equal(second, e.Stats())
		} else {
			total := first
			total.Add(second)
			is.Equal(total, e.Stats())
		}
	}
}

func TestResetPerMoveVersusAccumulate(t *testing.T) {
	is := is.New(t)
	pos := othello.NewGame()

	acc := New(fixedConfig(3, AlphaBeta))
	acc.SelectMove(pos, 0)
	first := acc.Stats()
	acc.SelectMove(pos, 0)
	is.Equal(acc.TotalParents(), 2*first.TotalParents)
	// Second search is served from the memo table.
	is.Equal(acc.StaticEvaluations(), first.StaticEvaluations)

	cfg := fixedConfig(3, AlphaBeta)
	cfg.ResetStatsPerMove = true
	per := New(cfg)
	per.SelectMove(pos, 0)
	per.SelectMove(pos, 0)
	is.Equal(per.TotalParents(), first.TotalParents)
	is.Equal(per.StaticEvaluations(), 0)
}

func TestInstancesIsolated(t *testing.T) {
	is := is.New(t)
	pos := othello.NewGame()
	a := New(fixedConfig(3, AlphaBeta))
	b := New(fixedConfig(3, AlphaBeta))
	a.SelectMove(pos, 0)
	is.True(a.TotalParents() > 0)
	is.Equal(b.TotalParents(), 0)
	is.Equal(b.MemoSize(), 0)
	b.SelectMove(pos, 0)
	is.Equal(a.Stats(), b.Stats())
}

func TestConfigFromSettings(t *testing.T) {
	is := is.New(t)
	settings := config.DefaultConfig()
	cfg, err := ConfigFromSettings(settings)
	is.NoErr(err)
	is.Equal(cfg.DepthLimit, 4)
	is.Equal(cfg.Policy, Deepening)
	is.Equal(cfg.Inner, AlphaBeta)
	is.Equal(cfg.Heuristic.Name(), "score")
	is.Equal(New(cfg).Name(), "deepening-alphabeta-score-d4")

	settings.Set(config.ConfigSearchAlgorithm, "negascout")
	settings.Set(config.ConfigSearchDepthLimit, -1)
	settings.Set(config.ConfigEvalHeuristic, "mobility")
	cfg, err = ConfigFromSettings(settings)
	is.NoErr(err)
	is.Equal(New(cfg).Name(), "deepening-negascout-mobility-dinf")

	settings.Set(config.ConfigSearchPolicy, "random")
	_, err = ConfigFromSettings(settings)
	is.True(err != nil)
	settings.Set(config.ConfigSearchPolicy, "fixed")
	settings.Set(config.ConfigEvalHeuristic, "parity")
	_, err = ConfigFromSettings(settings)
	is.True(err != nil)
}
