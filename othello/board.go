// Package othello is a bitboard implementation of 8x8 Othello that satisfies
// game.Position. Bit i of a bitboard is square i = row*8+col, with col 0 the
// a-file and row 0 rank 1.
package othello

import (
	"errors"
	"math/bits"

	"github.com/samber/lo"

	"github.com/domino14/othello/game"
	"github.com/domino14/othello/zobrist"
)

const (
	BoardDim   = 8
	NumSquares = BoardDim * BoardDim

	notAFile = uint64(0xfefefefefefefefe)
	notHFile = uint64(0x7f7f7f7f7f7f7f7f)
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

var hasher = func() *zobrist.Zobrist {
	z := &zobrist.Zobrist{}
	z.Initialize(NumSquares)
	return z
}()

// Board is an immutable Othello position.
type Board struct {
	black, white uint64
	toMove       game.Player
	lastMove     Square
	hash         uint64
}

// NewGame returns the standard starting position with Black to move.
func NewGame() *Board {
	return FromBitboards(
		uint64(1)<<28|uint64(1)<<35,
		uint64(1)<<27|uint64(1)<<36,
		game.Black)
}

// FromBitboards builds a position from raw occupancy. Overlapping bits are
// given to black.
func FromBitboards(black, white uint64, toMove game.Player) *Board {
	white &^= black
	return &Board{
		black:    black,
		white:    white,
		toMove:   toMove,
		lastMove: NoSquare,
		hash:     hasher.Hash(black, white, toMove == game.White),
	}
}

func (b *Board) discs(p game.Player) (own, opp uint64) {
	if p == game.White {
		return b.white, b.black
	}
	return b.black, b.white
}

func (b *Board) Black() uint64 { return b.black }
func (b *Board) White() uint64 { return b.white }

func (b *Board) CurrentPlayer() game.Player { return b.toMove }

func (b *Board) Opponent(p game.Player) game.Player { return p.Other() }

// Score is the disc count of p.
func (b *Board) Score(p game.Player) int {
	own, _ := b.discs(p)
	return bits.OnesCount64(own)
}

func (b *Board) PreviousMove() game.Move {
	if b.lastMove == NoSquare {
		return nil
	}
	return b.lastMove
}

func (b *Board) Hash() uint64 { return b.hash }

func (b *Board) Equal(other game.Position) bool {
	o, ok := other.(*Board)
	if !ok || o == nil {
		return false
	}
	return b.black == o.black && b.white == o.white && b.toMove == o.toMove
}

func (b *Board) legalMoves(p game.Player) uint64 {
	own, opp := b.discs(p)
	return legalMoves(own, opp)
}

func (b *Board) Status() game.Status {
	if b.legalMoves(b.toMove) != 0 {
		return game.Playing
	}
	if b.legalMoves(b.toMove.Other()) != 0 {
		return game.NoLegalMoves
	}
	nb, nw := bits.OnesCount64(b.black), bits.OnesCount64(b.white)
	switch {
	case nb > nw:
		return game.BlackWins
	case nw > nb:
		return game.WhiteWins
	}
	return game.Draw
}

// LegalSquares lists the squares the player to move may play, ascending.
func (b *Board) LegalSquares() []Square {
	moves := b.legalMoves(b.toMove)
	sqs := make([]Square, 0, bits.OnesCount64(moves))
	for m := moves; m != 0; m &= m - 1 {
		sqs = append(sqs, Square(bits.TrailingZeros64(m)))
	}
	return sqs
}

func (b *Board) ValidMoves() []game.Move {
	return lo.Map(b.LegalSquares(), func(sq Square, _ int) game.Move { return sq })
}

// Successors returns one position per legal move in square order. It is
// empty when the player to move must pass or the game is over.
func (b *Board) Successors() []game.Position {
	sqs := b.LegalSquares()
	succ := make([]game.Position, len(sqs))
	for i, sq := range sqs {
		succ[i] = b.place(sq)
	}
	return succ
}

func (b *Board) place(sq Square) *Board {
	own, opp := b.discs(b.toMove)
	flipped := flips(own, opp, int(sq))
	own |= flipped | uint64(1)<<sq
	opp &^= flipped
	colour := 0
	nb := &Board{toMove: b.toMove.Other(), lastMove: sq}
	if b.toMove == game.White {
		colour = 1
		nb.white, nb.black = own, opp
	} else {
		nb.black, nb.white = own, opp
	}
	nb.hash = hasher.AddMove(b.hash, colour, int(sq), flipped)
	return nb
}

// Play returns the position after the player to move plays m.
func (b *Board) Play(m game.Move) (*Board, error) {
	if b.Status().Decided() {
		return nil, ErrGameOver
	}
	sq, ok := m.(Square)
	if !ok || sq < 0 || sq >= NumSquares || b.legalMoves(b.toMove)&(uint64(1)<<sq) == 0 {
		return nil, ErrIllegalMove
	}
	return b.place(sq), nil
}

// Pass hands the turn to the opponent. It is only legal when the player to
// move has no legal move and the game is not over.
func (b *Board) Pass() (*Board, error) {
	switch b.Status() {
	case game.Playing:
		return nil, ErrIllegalMove
	case game.NoLegalMoves:
	default:
		return nil, ErrGameOver
	}
	return &Board{
		black:    b.black,
		white:    b.white,
		toMove:   b.toMove.Other(),
		lastMove: PassSquare,
		hash:     hasher.AddMove(b.hash, 0, -1, 0),
	}, nil
}

func shiftE(x uint64) uint64  { return x << 1 & notAFile }
func shiftW(x uint64) uint64  { return x >> 1 & notHFile }
func shiftN(x uint64) uint64  { return x >> 8 }
func shiftS(x uint64) uint64  { return x << 8 }
func shiftNE(x uint64) uint64 { return x >> 7 & notAFile }
func shiftNW(x uint64) uint64 { return x >> 9 & notHFile }
func shiftSE(x uint64) uint64 { return x << 9 & notAFile }
func shiftSW(x uint64) uint64 { return x << 7 & notHFile }

var shifts = [8]func(uint64) uint64{
	shiftE, shiftW, shiftN, shiftS, shiftNE, shiftNW, shiftSE, shiftSW,
}

func legalMoves(own, opp uint64) uint64 {
	empty := ^(own | opp)
	moves := uint64(0)
	for _, shift := range shifts {
		x := shift(own) & opp
		for i := 0; i < 5; i++ {
			x |= shift(x) & opp
		}
		moves |= shift(x) & empty
	}
	return moves
}

func flips(own, opp uint64, sq int) uint64 {
	flipped := uint64(0)
	start := uint64(1) << sq
	for _, shift := range shifts {
		line := uint64(0)
		x := shift(start)
		for x != 0 && x&opp != 0 {
			line |= x
			x = shift(x)
		}
		if x&own != 0 {
			flipped |= line
		}
	}
	return flipped
}
