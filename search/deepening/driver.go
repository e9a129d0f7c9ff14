// Package deepening runs an inner searcher at increasing depth limits until
// a deadline, a depth limit or the end of the tree is reached.
package deepening

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/search"
)

type Driver struct {
	inner      search.Searcher
	eval       *evaluator.Evaluator
	depthLimit int
	saturation int
}

// NewDriver returns a driver that deepens until depthLimit, which may be
// search.Unbounded.
func NewDriver(inner search.Searcher, eval *evaluator.Evaluator, depthLimit, saturation int) *Driver {
	return &Driver{
		inner:      inner,
		eval:       eval,
		depthLimit: depthLimit,
		saturation: saturation,
	}
}

// Search returns the best root successor found within budget, measured from
// the start of the call. A budget <= 0 means no deadline. Passes that the
// deadline cut short are only used when no pass completed.
func (d *Driver) Search(root game.Position, budget time.Duration) (game.Position, bool) {
	start := time.Now()
	c := search.Cutoff{
		Start:           start,
		Budget:          budget,
		Saturation:      d.saturation,
		CheckSaturation: true,
	}
	var best game.Position
	bestVal := game.MaxEvaluation

	for depth := 1; ; depth++ {
		res := d.inner.Solve(root, c.WithDepth(depth))
		if res.Best == nil {
			break
		}
		log.Debug().Int("depth", depth).Str("best", res.Best.PreviousMove().String()).
			Int("value", int(res.Value)).Int("depth-cutoffs", res.DepthCutoffs).
			Bool("expired", res.Expired).Msg("deepening-iteratively")

		if res.Expired {
			if best == nil {
				best = res.Best
			}
			break
		}
		v := d.eval.Evaluate(res.Best)
		if best == nil || v < bestVal {
			best, bestVal = res.Best, v
		}
		if c.Expired() || res.DepthCutoffs == 0 {
			break
		}
		if d.depthLimit != search.Unbounded && depth >= d.depthLimit {
			break
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}
