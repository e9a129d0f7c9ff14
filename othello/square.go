package othello

import (
	"fmt"
	"strings"
)

// Square is a board coordinate and the move token of this package.
type Square int8

const (
	NoSquare   Square = -2
	PassSquare Square = -1
)

func (s Square) String() string {
	switch {
	case s == PassSquare:
		return "pass"
	case s < 0 || s >= NumSquares:
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+int(s)%BoardDim, int(s)/BoardDim+1)
}

// ParseSquare parses algebraic coordinates such as "d3".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return PassSquare, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: bad coordinate %q", ErrIllegalMove, s)
	}
	return Square(int(s[1]-'1')*BoardDim + int(s[0]-'a')), nil
}
