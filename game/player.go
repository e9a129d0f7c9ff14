package game

// Player identifies a side. Othello has two: Black moves first.
type Player int8

const (
	NoPlayer Player = iota - 1
	Black
	White
)

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}

// Other returns the opposing side for a two-player game.
func (p Player) Other() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return NoPlayer
}
