package othello

import (
	"fmt"
	"strings"

	"github.com/domino14/othello/game"
)

// ToDisplayText renders the board with legal moves for the player to move
// marked by '*'.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	moves := b.legalMoves(b.toMove)
	sb.WriteString("   a b c d e f g h\n")
	for row := 0; row < BoardDim; row++ {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < BoardDim; col++ {
			bit := uint64(1) << (row*BoardDim + col)
			c := "."
			switch {
			case b.black&bit != 0:
				c = "X"
			case b.white&bit != 0:
				c = "O"
			case moves&bit != 0:
				c = "*"
			}
			sb.WriteString(" " + c)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "X black %d  O white %d\n", b.Score(game.Black), b.Score(game.White))
	if st := b.Status(); st.Decided() {
		fmt.Fprintf(&sb, "game over: %s\n", st)
	} else {
		fmt.Fprintf(&sb, "%s to move", b.toMove)
		if st == game.NoLegalMoves {
			sb.WriteString(" (must pass)")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
