// Package game defines the contract between the search engine and the
// game-state collaborator that owns the board, the rules and legal-move
// generation. The engine only ever reads positions through this interface.
package game

import "math"

// Evaluation is a static or backed-up score, always from the perspective of
// the player to move at the position it was computed for.
type Evaluation int

const (
	// MaxEvaluation and MinEvaluation are symmetric so that negating a
	// bound never overflows.
	MaxEvaluation = Evaluation(math.MaxInt32)
	MinEvaluation = -MaxEvaluation
)

// Status is the rule-level state of a position.
type Status int8

const (
	Playing Status = iota
	// NoLegalMoves: the player to move must pass.
	NoLegalMoves
	BlackWins
	WhiteWins
	Draw
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case NoLegalMoves:
		return "no-legal-moves"
	case BlackWins:
		return "black-wins"
	case WhiteWins:
		return "white-wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Decided is true for any status in which the game is over.
func (s Status) Decided() bool {
	return s == BlackWins || s == WhiteWins || s == Draw
}

// Move is an opaque token attached to a position: the move that produced
// it from its parent.
type Move interface {
	String() string
}

// Position is an immutable snapshot of a game.
//
// Successors returns every legal position one ply ahead. An empty result
// means the player to move has no legal continuation. Implementations may
// leave nil entries in the slice; searchers skip them.
//
// Hash and Equal must be structural: two positions with the same board,
// player to move and status hash and compare equal regardless of how they
// were reached. PreviousMove is not part of a position's identity.
type Position interface {
	Successors() []Position
	PreviousMove() Move
	Status() Status
	CurrentPlayer() Player
	Opponent(p Player) Player
	Score(p Player) int
	ValidMoves() []Move

	Hash() uint64
	Equal(other Position) bool
}
