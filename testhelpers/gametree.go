// Package testhelpers builds synthetic game trees for exercising the
// searchers without a real board.
package testhelpers

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/domino14/othello/game"
)

// Node is a position in a hand-built or random game tree. Value is the
// score of the player to move; OppValue that of the other side. A nil entry
// in Children is passed through to Successors unchanged.
type Node struct {
	Label    string
	Mover    game.Player
	Value    int
	OppValue int
	State    game.Status
	Children []*Node
}

type nodeMove string

func (m nodeMove) String() string { return string(m) }

func (n *Node) Successors() []game.Position {
	succ := make([]game.Position, len(n.Children))
	for i, c := range n.Children {
		if c != nil {
			succ[i] = c
		}
	}
	return succ
}

func (n *Node) PreviousMove() game.Move { return nodeMove(n.Label) }

func (n *Node) Status() game.Status { return n.State }

func (n *Node) CurrentPlayer() game.Player { return n.Mover }

func (n *Node) Opponent(p game.Player) game.Player { return p.Other() }

func (n *Node) Score(p game.Player) int {
	if p == n.Mover {
		return n.Value
	}
	return n.OppValue
}

func (n *Node) ValidMoves() []game.Move {
	moves := []game.Move{}
	for _, c := range n.Children {
		if c != nil {
			moves = append(moves, c.PreviousMove())
		}
	}
	return moves
}

func (n *Node) Hash() uint64 {
	return xxhash.Sum64String(n.Label + "/" + n.Mover.String())
}

func (n *Node) Equal(other game.Position) bool {
	o, ok := other.(*Node)
	return ok && o != nil && o.Label == n.Label && o.Mover == n.Mover
}

// Leaf is a childless node.
func Leaf(label string, mover game.Player, value int) *Node {
	return &Node{Label: label, Mover: mover, Value: value}
}

// Branch is a node whose children get the opposite mover.
func Branch(label string, mover game.Player, children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			c.Mover = mover.Other()
		}
	}
	return &Node{Label: label, Mover: mover, Children: children}
}

// Seed expands a small integer into a 32-byte frand seed.
func Seed(s uint64) []byte {
	seed := make([]byte, 32)
	binary.LittleEndian.PutUint64(seed, s)
	return seed
}

// RandomTree builds a uniform tree of the given branching factor and
// height. Every node gets a value in [-50, 50], drawn deterministically from
// seed, and labels are unique paths from the root.
func RandomTree(seed uint64, branching, height int) *Node {
	rng := frand.NewCustom(Seed(seed), 1024, 12)
	var build func(label string, mover game.Player, h int) *Node
	build = func(label string, mover game.Player, h int) *Node {
		n := &Node{
			Label:    label,
			Mover:    mover,
			Value:    rng.Intn(101) - 50,
			OppValue: rng.Intn(101) - 50,
		}
		if h == 0 {
			return n
		}
		n.Children = make([]*Node, branching)
		for i := range n.Children {
			n.Children[i] = build(label+"."+string(rune('a'+i)), mover.Other(), h-1)
		}
		return n
	}
	return build("r", game.Black, height)
}

// RaggedTree is like RandomTree but children counts vary between 0 and
// maxBranching and some children are nil.
func RaggedTree(seed uint64, maxBranching, height int) *Node {
	rng := frand.NewCustom(Seed(seed), 1024, 12)
	var build func(label string, mover game.Player, h int) *Node
	build = func(label string, mover game.Player, h int) *Node {
		n := &Node{
			Label:    label,
			Mover:    mover,
			Value:    rng.Intn(101) - 50,
			OppValue: rng.Intn(101) - 50,
		}
		if h == 0 {
			return n
		}
		n.Children = make([]*Node, rng.Intn(maxBranching+1))
		for i := range n.Children {
			if rng.Intn(8) == 0 {
				continue
			}
			n.Children[i] = build(label+"."+string(rune('a'+i)), mover.Other(), h-1)
		}
		return n
	}
	return build("r", game.Black, height)
}
