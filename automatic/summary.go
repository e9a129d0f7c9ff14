package automatic

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/othello/game"
	"github.com/domino14/othello/stats"
)

type PlayerSummary struct {
	Name              string  `yaml:"name"`
	Wins              float64 `yaml:"wins"`
	MeanDiscs         float64 `yaml:"mean-discs"`
	DiscsMargin95     float64 `yaml:"discs-margin-95"`
	MeanEBF           float64 `yaml:"mean-effective-branching"`
	StdevEBF          float64 `yaml:"stdev-effective-branching"`
	MeanABF           float64 `yaml:"mean-average-branching"`
	MeanMoveSeconds   float64 `yaml:"mean-move-seconds"`
	StaticEvaluations int     `yaml:"static-evaluations"`
	NodesGenerated    int     `yaml:"nodes-generated"`
	// PooledEBF divides all explored successors by all expansions, over
	// every game.
	PooledEBF float64 `yaml:"pooled-effective-branching"`

	ebf []float64
}

type Summary struct {
	Games   int              `yaml:"games"`
	Draws   int              `yaml:"draws"`
	Players [2]PlayerSummary `yaml:"players"`
}

// Summarize aggregates results per player seat (p1/p2), whatever colour
// they had in each game.
func Summarize(results []GameResult) *Summary {
	s := &Summary{Games: len(results)}
	var discs [2]stats.Statistic
	var totals [2]stats.SearchStats
	var abf [2][]float64
	var secs [2][]float64

	for _, r := range results {
		if r.Status == game.Draw {
			s.Draws++
		}
		for colour := 0; colour < 2; colour++ {
			seat := SeatOf(r.Names[colour])
			if seat < 0 {
				continue
			}
			ps := &s.Players[seat]
			ps.Name = r.Names[colour]
			switch {
			case r.Status == game.Draw:
				ps.Wins += 0.5
			case r.Status == game.BlackWins && colour == 0,
				r.Status == game.WhiteWins && colour == 1:
				ps.Wins++
			}
			discs[seat].Push(float64(r.Discs[colour]))
			st := r.Stats[colour]
			totals[seat].Add(st)
			ps.ebf = append(ps.ebf, st.EffectiveBranchingFactor())
			abf[seat] = append(abf[seat], st.AverageBranchingFactor())
			secs[seat] = append(secs[seat], r.MoveSeconds[colour])
		}
	}
	notNaN := func(v float64, _ int) bool { return !math.IsNaN(v) }
	for seat := range s.Players {
		ps := &s.Players[seat]
		ps.StaticEvaluations = totals[seat].StaticEvaluations
		ps.NodesGenerated = totals[seat].ExploredSuccessors
		if ebf := totals[seat].EffectiveBranchingFactor(); !math.IsNaN(ebf) {
			ps.PooledEBF = ebf
		}
		ps.MeanDiscs = discs[seat].Mean()
		ps.DiscsMargin95 = discs[seat].MarginOfError(95)
		ps.ebf = lo.Filter(ps.ebf, notNaN)
		switch len(ps.ebf) {
		case 0:
		case 1:
			ps.MeanEBF = ps.ebf[0]
		default:
			ps.MeanEBF, ps.StdevEBF = stat.MeanStdDev(ps.ebf, nil)
		}
		if a := lo.Filter(abf[seat], notNaN); len(a) > 0 {
			ps.MeanABF = stat.Mean(a, nil)
		}
		if len(secs[seat]) > 0 {
			ps.MeanMoveSeconds = stat.Mean(secs[seat], nil)
		}
	}
	return s
}

func (s *Summary) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WriteHistograms draws the per-game effective branching factor of each
// player.
func (s *Summary) WriteHistograms(w io.Writer) error {
	for _, ps := range s.Players {
		if len(ps.ebf) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s effective branching factor\n", ps.Name)
		if err := histogram.Fprint(w, histogram.Hist(10, ps.ebf), histogram.Linear(30)); err != nil {
			return err
		}
	}
	return nil
}
