// Package search holds what the searchers share: the cutoff test applied at
// every node and the result of one root-level pass.
package search

import (
	"time"

	"github.com/domino14/othello/game"
)

const (
	// Unbounded as a depth limit means only the deadline (or the end of the
	// game) stops the search.
	Unbounded = -1
	// DefaultSaturation is the number of cells on an Othello board.
	DefaultSaturation = 64

	// unboundedRemaining stands in for the remaining depth of an unbounded
	// search.
	unboundedRemaining = 1 << 30
)

// Reason says why a node is terminal.
type Reason int8

const (
	NotTerminal Reason = iota
	GameOver
	DepthLimit
	Saturated
	Expired
)

func (r Reason) String() string {
	switch r {
	case NotTerminal:
		return "not-terminal"
	case GameOver:
		return "game-over"
	case DepthLimit:
		return "depth-limit"
	case Saturated:
		return "saturated"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// Cutoff is the terminal test configuration of one search pass.
// Depth counts plies from the root; root successors are at depth 1.
type Cutoff struct {
	DepthLimit int
	Start      time.Time
	// Budget is measured from Start. Zero means no deadline.
	Budget time.Duration
	// Saturation is the combined score at which a position is treated as
	// settled. It only applies when CheckSaturation is set.
	Saturation      int
	CheckSaturation bool
}

// Check returns the first reason pos is terminal at depth, or NotTerminal.
func (c Cutoff) Check(pos game.Position, depth int) Reason {
	if pos.Status() != game.Playing {
		return GameOver
	}
	if c.DepthLimit != Unbounded && depth >= c.DepthLimit {
		return DepthLimit
	}
	if c.CheckSaturation {
		cur := pos.CurrentPlayer()
		if pos.Score(cur)+pos.Score(pos.Opponent(cur)) >= c.Saturation {
			return Saturated
		}
	}
	if c.Expired() {
		return Expired
	}
	return NotTerminal
}

func (c Cutoff) IsTerminal(pos game.Position, depth int) bool {
	return c.Check(pos, depth) != NotTerminal
}

// Expired is true once the budget has been used up.
func (c Cutoff) Expired() bool {
	return c.Budget > 0 && time.Since(c.Start) >= c.Budget
}

// WithDepth returns a copy of c with a different depth limit.
func (c Cutoff) WithDepth(d int) Cutoff {
	c.DepthLimit = d
	return c
}

// Remaining is the number of plies left below depth.
func (c Cutoff) Remaining(depth int) int {
	if c.DepthLimit == Unbounded {
		return unboundedRemaining
	}
	return c.DepthLimit - depth
}

// Result is the outcome of one root-level pass.
type Result struct {
	// Best is the chosen root successor, nil if there was none.
	Best game.Position
	// Value is the score Best was ranked by. Each searcher defines its
	// framing; in both, lower is better for the root mover.
	Value game.Evaluation
	// DepthCutoffs counts nodes cut off by the depth limit. Zero means the
	// pass resolved every line to the end of the game (or saturation).
	DepthCutoffs int
	// Expired is set when the deadline cut at least one line short.
	Expired bool
}

// Searcher runs one root-level pass under a cutoff.
type Searcher interface {
	Solve(root game.Position, c Cutoff) Result
}
