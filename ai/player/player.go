// Package player is an automatic player of Othello. An Engine picks moves
// with one of the searchers and keeps its own statistics and memo table,
// so every concurrent game needs its own Engine.
package player

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/config"
	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/search"
	"github.com/domino14/othello/search/alphabeta"
	"github.com/domino14/othello/search/deepening"
	"github.com/domino14/othello/search/negascout"
	"github.com/domino14/othello/stats"
)

type Policy string

const (
	// Fixed searches once to the depth limit.
	Fixed Policy = "fixed"
	// Deepening searches at increasing depths until the budget runs out.
	Deepening Policy = "deepening"
)

type Algorithm string

const (
	AlphaBeta Algorithm = "alphabeta"
	Negascout Algorithm = "negascout"
)

// AIPlayer describes an artificial player.
type AIPlayer interface {
	// SelectMove returns the move to play in pos, or false if there is
	// none. budget <= 0 means no time limit.
	SelectMove(pos game.Position, budget time.Duration) (game.Move, bool)
	Stats() stats.SearchStats
}

type Config struct {
	// DepthLimit in plies, or search.Unbounded.
	DepthLimit int
	// Budget is the default thinking time handed to SelectMove by callers
	// that do not pick their own.
	Budget            time.Duration
	Policy            Policy
	Inner             Algorithm
	Heuristic         evaluator.Heuristic
	Saturation        int
	ResetStatsPerMove bool
	DisablePruning    bool
}

func DefaultConfig() Config {
	return Config{
		DepthLimit: 4,
		Budget:     time.Second,
		Policy:     Deepening,
		Inner:      AlphaBeta,
		Heuristic:  evaluator.RawScore{},
		Saturation: search.DefaultSaturation,
	}
}

// ConfigFromSettings builds an engine configuration from loaded settings.
func ConfigFromSettings(cfg *config.Config) (Config, error) {
	h, err := evaluator.HeuristicFromName(cfg.GetString(config.ConfigEvalHeuristic))
	if err != nil {
		return Config{}, err
	}
	c := Config{
		DepthLimit:        cfg.GetInt(config.ConfigSearchDepthLimit),
		Budget:            cfg.GetDuration(config.ConfigSearchTimeBudget),
		Policy:            Policy(cfg.GetString(config.ConfigSearchPolicy)),
		Inner:             Algorithm(cfg.GetString(config.ConfigSearchAlgorithm)),
		Heuristic:         h,
		Saturation:        cfg.GetInt(config.ConfigBoardSaturation),
		ResetStatsPerMove: cfg.GetBool(config.ConfigResetStatsPerMove),
		DisablePruning:    cfg.GetBool(config.ConfigSearchDisablePruning),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Policy {
	case Fixed, Deepening:
	default:
		return fmt.Errorf("unknown search policy %q", c.Policy)
	}
	switch c.Inner {
	case AlphaBeta, Negascout:
	default:
		return fmt.Errorf("unknown search algorithm %q", c.Inner)
	}
	if c.DepthLimit < search.Unbounded {
		return fmt.Errorf("bad depth limit %d", c.DepthLimit)
	}
	return nil
}

// Engine implements AIPlayer. It is not safe for concurrent use.
type Engine struct {
	cfg       Config
	stats     stats.SearchStats
	eval      *evaluator.Evaluator
	inner     search.Searcher
	driver    *deepening.Driver
	moveTimes stats.Statistic
	lastMove  stats.SearchStats
}

// New returns an engine with zeroed statistics and an empty memo table.
// Unknown policies and algorithms fall back to deepening alpha-beta.
func New(cfg Config) *Engine {
	if cfg.Heuristic == nil {
		cfg.Heuristic = evaluator.RawScore{}
	}
	if cfg.Saturation <= 0 {
		cfg.Saturation = search.DefaultSaturation
	}
	if cfg.Policy != Fixed {
		cfg.Policy = Deepening
	}
	if cfg.Inner != Negascout {
		cfg.Inner = AlphaBeta
	}
	e := &Engine{cfg: cfg}
	e.eval = evaluator.New(cfg.Heuristic, &e.stats)
	if cfg.Inner == Negascout {
		e.inner = negascout.New(e.eval, &e.stats)
	} else {
		ab := alphabeta.New(e.eval, &e.stats)
		ab.SetPruningDisabled(cfg.DisablePruning)
		e.inner = ab
	}
	e.driver = deepening.NewDriver(e.inner, e.eval, cfg.DepthLimit, cfg.Saturation)
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Name describes the engine, e.g. "deepening-alphabeta-score-d4".
func (e *Engine) Name() string {
	depth := "dinf"
	if e.cfg.DepthLimit != search.Unbounded {
		depth = fmt.Sprintf("d%d", e.cfg.DepthLimit)
	}
	algo := string(e.cfg.Inner)
	if e.cfg.Inner == AlphaBeta && e.cfg.DisablePruning {
		algo = "minimax"
	}
	return fmt.Sprintf("%s-%s-%s-%s", e.cfg.Policy, algo, e.eval.Heuristic().Name(), depth)
}

func (e *Engine) SelectMove(pos game.Position, budget time.Duration) (game.Move, bool) {
	start := time.Now()
	if e.cfg.ResetStatsPerMove {
		e.stats.Reset()
	}
	before := e.stats

	var best game.Position
	if e.cfg.Policy == Fixed {
		res := e.inner.Solve(pos, search.Cutoff{
			DepthLimit: e.cfg.DepthLimit,
			Start:      start,
			Budget:     budget,
		})
		best = res.Best
	} else {
		best, _ = e.driver.Search(pos, budget)
	}
	elapsed := time.Since(start)
	e.moveTimes.Push(elapsed.Seconds())
	e.lastMove = e.stats.Sub(before)

	if best == nil {
		log.Debug().Str("engine", e.Name()).Msg("no-move-available")
		return nil, false
	}
	m := best.PreviousMove()
	work := e.lastMove
	log.Debug().Str("engine", e.Name()).Str("move", m.String()).
		Int("static-evaluations", work.StaticEvaluations).
		Int("nodes-generated", work.ExploredSuccessors).
		Int("total-successors", work.TotalSuccessors).
		Int("total-parents", work.TotalParents).
		Float64("elapsed", elapsed.Seconds()).
		Msg("move-selected")
	return m, true
}

// Stats returns a copy of the counters accumulated since creation or the
// last reset.
func (e *Engine) Stats() stats.SearchStats {
	return e.stats
}

// LastMoveStats holds the work done by the most recent SelectMove call.
func (e *Engine) LastMoveStats() stats.SearchStats {
	return e.lastMove
}

func (e *Engine) ResetStats() {
	e.stats.Reset()
}

func (e *Engine) StaticEvaluations() int { return e.stats.StaticEvaluations }

// NodesGenerated is the number of successors actually searched.
func (e *Engine) NodesGenerated() int { return e.stats.ExploredSuccessors }

func (e *Engine) TotalSuccessors() int { return e.stats.TotalSuccessors }

func (e *Engine) TotalParents() int { return e.stats.TotalParents }

// AverageBranchingFactor is NaN before any expansion.
func (e *Engine) AverageBranchingFactor() float64 {
	return e.stats.AverageBranchingFactor()
}

// EffectiveBranchingFactor is NaN before any expansion.
func (e *Engine) EffectiveBranchingFactor() float64 {
	return e.stats.EffectiveBranchingFactor()
}

// MoveTimes holds the wall-clock seconds spent in each SelectMove call.
func (e *Engine) MoveTimes() *stats.Statistic {
	return &e.moveTimes
}

// MemoSize is the number of positions in the evaluator's memo table.
func (e *Engine) MemoSize() int {
	return e.eval.MemoSize()
}
