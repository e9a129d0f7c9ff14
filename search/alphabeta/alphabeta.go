// Package alphabeta implements depth-limited minimax with alpha-beta
// pruning over game.Position trees.
package alphabeta

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/search"
	"github.com/domino14/othello/stats"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
**/

// Searcher is a minimax searcher. Leaves are scored by the evaluator for
// the player to move at the leaf, with no sign change between plies. It is
// not safe for concurrent use.
type Searcher struct {
	eval  *evaluator.Evaluator
	stats *stats.SearchStats

	disablePruning bool

	// per-Solve state
	cutoff       search.Cutoff
	depthCutoffs int
	expired      bool
}

func New(eval *evaluator.Evaluator, st *stats.SearchStats) *Searcher {
	return &Searcher{eval: eval, stats: st}
}

// SetPruningDisabled turns the searcher into plain minimax.
func (s *Searcher) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

func (s *Searcher) terminal(pos game.Position, depth int) bool {
	switch s.cutoff.Check(pos, depth) {
	case search.NotTerminal:
		return false
	case search.DepthLimit:
		s.depthCutoffs++
	case search.Expired:
		s.expired = true
	}
	return true
}

func (s *Searcher) maxValue(pos game.Position, alpha, beta game.Evaluation, depth int) game.Evaluation {
	if s.terminal(pos, depth) {
		return s.eval.Evaluate(pos)
	}
	children := pos.Successors()
	if len(children) == 0 {
		return s.eval.Evaluate(pos)
	}
	s.stats.Expanded(len(children))
	depth++

	v := game.MinEvaluation
	explored := 0
	for _, child := range children {
		if child == nil {
			continue
		}
		s.stats.Explored()
		explored++
		v = max(v, s.minValue(child, alpha, beta, depth))
		if v >= beta && !s.disablePruning {
			return v
		}
		alpha = max(alpha, v)
	}
	if explored == 0 {
		return s.eval.Evaluate(pos)
	}
	return v
}

func (s *Searcher) minValue(pos game.Position, alpha, beta game.Evaluation, depth int) game.Evaluation {
	if s.terminal(pos, depth) {
		return s.eval.Evaluate(pos)
	}
	children := pos.Successors()
	if len(children) == 0 {
		return s.eval.Evaluate(pos)
	}
	s.stats.Expanded(len(children))
	depth++

	v := game.MaxEvaluation
	explored := 0
	for _, child := range children {
		if child == nil {
			continue
		}
		s.stats.Explored()
		explored++
		v = min(v, s.maxValue(child, alpha, beta, depth))
		if v <= alpha && !s.disablePruning {
			return v
		}
		beta = min(beta, v)
	}
	if explored == 0 {
		return s.eval.Evaluate(pos)
	}
	return v
}

// Solve runs minValue on every successor of root with a full window at
// depth 1 and returns the successor with the lowest value. Ties go to the
// first. The root expansion itself is not recorded in the statistics.
func (s *Searcher) Solve(root game.Position, c search.Cutoff) search.Result {
	s.cutoff = c
	s.depthCutoffs = 0
	s.expired = false

	res := search.Result{Value: game.MaxEvaluation}
	for _, child := range root.Successors() {
		if child == nil {
			continue
		}
		v := s.minValue(child, game.MinEvaluation, game.MaxEvaluation, 1)
		log.Trace().Str("move", child.PreviousMove().String()).
			Int("value", int(v)).Msg("root-child")
		if res.Best == nil || v < res.Value {
			res.Best = child
			res.Value = v
		}
	}
	res.DepthCutoffs = s.depthCutoffs
	res.Expired = s.expired
	return res
}
