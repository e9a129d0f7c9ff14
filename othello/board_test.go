package othello

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/othello/game"
)

func mustParse(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func TestInitialPosition(t *testing.T) {
	is := is.New(t)
	b := NewGame()
	is.Equal(b.CurrentPlayer(), game.Black)
	is.Equal(b.Status(), game.Playing)
	is.Equal(b.Score(game.Black), 2)
	is.Equal(b.Score(game.White), 2)
	is.Equal(b.PreviousMove(), nil)

	is.Equal(b.LegalSquares(), []Square{19, 26, 37, 44})
	moves := b.ValidMoves()
	is.Equal(len(moves), 4)
	is.Equal(moves[0].String(), "d3")
	is.Equal(moves[3].String(), "e6")
	is.Equal(len(b.Successors()), 4)
}

func TestPlayFlips(t *testing.T) {
	is := is.New(t)
	b, err := NewGame().Play(mustParse(t, "d3"))
	is.NoErr(err)
	is.Equal(b.Score(game.Black), 4)
	is.Equal(b.Score(game.White), 1)
	is.Equal(b.CurrentPlayer(), game.White)
	is.Equal(b.PreviousMove().String(), "d3")
	is.True(b.Black()&(1<<27) != 0) // d4 flipped

	_, err = b.Play(mustParse(t, "a1"))
	is.True(errors.Is(err, ErrIllegalMove))
}

func TestSuccessorsMatchPlay(t *testing.T) {
	is := is.New(t)
	b := NewGame()
	for i, s := range b.Successors() {
		played, err := b.Play(b.ValidMoves()[i])
		is.NoErr(err)
		is.True(s.Equal(played))
		is.Equal(s.Hash(), played.Hash())
		is.Equal(s.Hash(), FromBitboards(played.Black(), played.White(), game.White).Hash())
	}
}

func TestTranspositionsHashEqual(t *testing.T) {
	is := is.New(t)
	play := func(seq ...string) *Board {
		b := NewGame()
		for _, s := range seq {
			var err error
			b, err = b.Play(mustParse(t, s))
			is.NoErr(err)
		}
		return b
	}
	// Two move orders reaching the same board.
	a := play("d3", "c3", "c4")
	c := play("c4", "c3", "d3")
	is.True(a.Equal(c))
	is.Equal(a.Hash(), c.Hash())
	is.True(a.PreviousMove().String() != c.PreviousMove().String())

	is.True(!a.Equal(nil))
	is.True(!a.Equal(NewGame()))
}

// Everything black except g8 (white) and an empty h8.
func passPosition(toMove game.Player) *Board {
	white := uint64(1) << 62
	black := ^uint64(0) &^ (uint64(1)<<63 | white)
	return FromBitboards(black, white, toMove)
}

func TestPassAndGameOver(t *testing.T) {
	is := is.New(t)
	b := passPosition(game.White)
	is.Equal(b.Status(), game.NoLegalMoves)
	is.Equal(len(b.Successors()), 0)
	is.Equal(len(b.ValidMoves()), 0)

	p, err := b.Pass()
	is.NoErr(err)
	is.Equal(p.CurrentPlayer(), game.Black)
	is.Equal(p.PreviousMove().String(), "pass")
	is.Equal(p.Hash(), passPosition(game.Black).Hash())
	is.Equal(p.LegalSquares(), []Square{63})

	_, err = p.Pass()
	is.True(errors.Is(err, ErrIllegalMove))

	end, err := p.Play(Square(63))
	is.NoErr(err)
	is.Equal(end.Score(game.Black), 64)
	is.Equal(end.Status(), game.BlackWins)
	_, err = end.Pass()
	is.True(errors.Is(err, ErrGameOver))
	_, err = end.Play(Square(0))
	is.True(errors.Is(err, ErrGameOver))
}

func TestParseSquare(t *testing.T) {
	is := is.New(t)
	sq, err := ParseSquare("a1")
	is.NoErr(err)
	is.Equal(sq, Square(0))
	sq, err = ParseSquare(" H8 ")
	is.NoErr(err)
	is.Equal(sq, Square(63))
	is.Equal(sq.String(), "h8")
	_, err = ParseSquare("i9")
	is.True(errors.Is(err, ErrIllegalMove))
}

func TestDisplay(t *testing.T) {
	is := is.New(t)
	txt := NewGame().ToDisplayText()
	is.True(strings.HasPrefix(txt, "   a b c d e f g h\n"))
	is.True(strings.Contains(txt, "4  . . * O X . . ."))
	is.True(strings.Contains(txt, "black to move"))
}
