package stats

import (
	"fmt"
	"math"
)

// SearchStats counts the work done by a search. One instance belongs to one
// engine; it is not safe for concurrent use.
type SearchStats struct {
	// StaticEvaluations counts evaluator cache misses.
	StaticEvaluations int
	// TotalSuccessors is the successor count summed over every expansion,
	// including absent entries.
	TotalSuccessors int
	// TotalParents counts expansions.
	TotalParents int
	// ExploredSuccessors counts successors actually searched after pruning.
	ExploredSuccessors int
}

// Expanded records an expansion that generated n successors.
func (s *SearchStats) Expanded(n int) {
	s.TotalSuccessors += n
	s.TotalParents++
}

func (s *SearchStats) Explored() {
	s.ExploredSuccessors++
}

func (s *SearchStats) Evaluated() {
	s.StaticEvaluations++
}

func (s *SearchStats) Reset() {
	*s = SearchStats{}
}

// Add accumulates o into s.
func (s *SearchStats) Add(o SearchStats) {
	s.StaticEvaluations += o.StaticEvaluations
	s.TotalSuccessors += o.TotalSuccessors
	s.TotalParents += o.TotalParents
	s.ExploredSuccessors += o.ExploredSuccessors
}

// Sub returns the counters accumulated since the snapshot o was taken.
func (s SearchStats) Sub(o SearchStats) SearchStats {
	return SearchStats{
		StaticEvaluations:  s.StaticEvaluations - o.StaticEvaluations,
		TotalSuccessors:    s.TotalSuccessors - o.TotalSuccessors,
		TotalParents:       s.TotalParents - o.TotalParents,
		ExploredSuccessors: s.ExploredSuccessors - o.ExploredSuccessors,
	}
}

// AverageBranchingFactor is TotalSuccessors / TotalParents. It is NaN when
// nothing has been expanded.
func (s SearchStats) AverageBranchingFactor() float64 {
	if s.TotalParents == 0 {
		return math.NaN()
	}
	return float64(s.TotalSuccessors) / float64(s.TotalParents)
}

// EffectiveBranchingFactor is ExploredSuccessors / TotalParents. It is NaN
// when nothing has been expanded.
func (s SearchStats) EffectiveBranchingFactor() float64 {
	if s.TotalParents == 0 {
		return math.NaN()
	}
	return float64(s.ExploredSuccessors) / float64(s.TotalParents)
}

func (s SearchStats) String() string {
	return fmt.Sprintf("evals=%d generated=%d parents=%d explored=%d abf=%.3f ebf=%.3f",
		s.StaticEvaluations, s.TotalSuccessors, s.TotalParents, s.ExploredSuccessors,
		s.AverageBranchingFactor(), s.EffectiveBranchingFactor())
}
