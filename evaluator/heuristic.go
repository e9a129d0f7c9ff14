package evaluator

import (
	"fmt"

	"github.com/domino14/othello/game"
)

const (
	RawScoreName = "score"
	MobilityName = "mobility"
)

// Heuristic is a static scorer of positions. Scores are from the
// perspective of the position's player to move.
type Heuristic interface {
	Name() string
	Score(pos game.Position) game.Evaluation
}

// RawScore uses the game score (disc count in Othello) of the player to move.
type RawScore struct{}

func (RawScore) Name() string { return RawScoreName }

func (RawScore) Score(pos game.Position) game.Evaluation {
	return game.Evaluation(pos.Score(pos.CurrentPlayer()))
}

// Mobility counts the legal moves available to the player to move.
type Mobility struct{}

func (Mobility) Name() string { return MobilityName }

func (Mobility) Score(pos game.Position) game.Evaluation {
	return game.Evaluation(len(pos.ValidMoves()))
}

func HeuristicFromName(name string) (Heuristic, error) {
	switch name {
	case RawScoreName, "":
		return RawScore{}, nil
	case MobilityName:
		return Mobility{}, nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}
