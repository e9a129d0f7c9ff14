// Package negascout implements negamax with null-window probing
// (Reinefeld's NegaScout). It satisfies search.Searcher like package
// alphabeta, but backs values up in the negamax framing: a child's value is
// negated at every ply. Package alphabeta passes leaf values up unsigned,
// so for heuristics that are not zero-sum (disc counts, mobility) the two
// can pick different moves.
package negascout

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/othello/evaluator"
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/search"
	"github.com/domino14/othello/stats"
)

/*
function negascout(node, depth, α, β) is
    if node is terminal or depth = 0 then
        return heuristic value of node
    score := −∞; n := β
    foreach child of node do
        cur := −negascout(child, depth − 1, −n, −α)
        if cur > score then
            if n = β or depth <= 2 then
                score := cur
            else
                score := −negascout(child, depth − 1, −β, −cur)
        α := max(α, score)
        if α ≥ β then
            return α
        n := α + 1
    return score
*/

// Searcher is not safe for concurrent use.
type Searcher struct {
	eval  *evaluator.Evaluator
	stats *stats.SearchStats

	cutoff       search.Cutoff
	depthCutoffs int
	expired      bool
}

func New(eval *evaluator.Evaluator, st *stats.SearchStats) *Searcher {
	return &Searcher{eval: eval, stats: st}
}

func (s *Searcher) terminal(pos game.Position, depth int) bool {
	switch s.cutoff.Check(pos, depth) {
	case search.NotTerminal:
		return s.cutoff.Remaining(depth) <= 0
	case search.DepthLimit:
		s.depthCutoffs++
	case search.Expired:
		s.expired = true
	}
	return true
}

// Negascout returns the value of pos for its player to move. depth is the
// ply of pos below the root of the current Solve call.
func (s *Searcher) Negascout(pos game.Position, depth int, alpha, beta game.Evaluation) game.Evaluation {
	if s.terminal(pos, depth) {
		return s.eval.Evaluate(pos)
	}
	children := pos.Successors()
	if len(children) == 0 {
		return s.eval.Evaluate(pos)
	}
	s.stats.Expanded(len(children))
	remaining := s.cutoff.Remaining(depth)
	depth++

	score := game.MinEvaluation
	n := beta
	explored := 0
	for _, child := range children {
		if child == nil {
			continue
		}
		s.stats.Explored()
		explored++
		cur := -s.Negascout(child, depth, -n, -alpha)
		if cur > score {
			if n == beta || remaining <= 2 {
				score = cur
			} else {
				score = -s.Negascout(child, depth, -beta, -cur)
			}
		}
		alpha = max(alpha, score)
		if alpha >= beta {
			return alpha
		}
		n = alpha + 1
	}
	if explored == 0 {
		return s.eval.Evaluate(pos)
	}
	return score
}

// Solve picks the root successor with the lowest negascout value, which is
// scored for the opponent, searching each with a full window.
func (s *Searcher) Solve(root game.Position, c search.Cutoff) search.Result {
	s.cutoff = c
	s.depthCutoffs = 0
	s.expired = false

	res := search.Result{Value: game.MaxEvaluation}
	for _, child := range root.Successors() {
		if child == nil {
			continue
		}
		reply := s.Negascout(child, 1, game.MinEvaluation, game.MaxEvaluation)
		log.Trace().Str("move", child.PreviousMove().String()).
			Int("reply", int(reply)).Msg("root-child")
		if res.Best == nil || reply < res.Value {
			res.Best = child
			res.Value = reply
		}
	}
	res.DepthCutoffs = s.depthCutoffs
	res.Expired = s.expired
	return res
}
