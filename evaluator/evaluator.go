// Package evaluator scores leaf positions with a pluggable heuristic and
// memoizes the result for the lifetime of the evaluator.
package evaluator

import (
	"github.com/domino14/othello/game"
	"github.com/domino14/othello/stats"
)

type memoEntry struct {
	pos game.Position
	val game.Evaluation
}

// Evaluator is not safe for concurrent use. Each engine owns one.
type Evaluator struct {
	heuristic Heuristic
	stats     *stats.SearchStats
	// Buckets are keyed by Hash and disambiguated by Equal.
	memo map[uint64][]memoEntry
	size int
}

func New(h Heuristic, st *stats.SearchStats) *Evaluator {
	if h == nil {
		h = RawScore{}
	}
	if st == nil {
		st = &stats.SearchStats{}
	}
	return &Evaluator{
		heuristic: h,
		stats:     st,
		memo:      make(map[uint64][]memoEntry),
	}
}

func (e *Evaluator) Heuristic() Heuristic {
	return e.heuristic
}

// Evaluate returns the static value of pos for its player to move. Only
// fresh computations are counted as static evaluations.
func (e *Evaluator) Evaluate(pos game.Position) game.Evaluation {
	if pos == nil {
		return 0
	}
	key := pos.Hash()
	for _, ent := range e.memo[key] {
		if ent.pos.Equal(pos) {
			return ent.val
		}
	}
	v := e.heuristic.Score(pos)
	e.stats.Evaluated()
	e.memo[key] = append(e.memo[key], memoEntry{pos: pos, val: v})
	e.size++
	return v
}

// MemoSize is the number of distinct positions evaluated so far.
func (e *Evaluator) MemoSize() int {
	return e.size
}
