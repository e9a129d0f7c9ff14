package zobrist

import (
	"math/bits"

	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

// Zobrist generates a hash for a two-colour board position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	whiteToMove uint64

	// posTable[sq][colour]
	posTable   [][2]uint64
	numSquares int
}

func (z *Zobrist) Initialize(numSquares int) {
	z.numSquares = numSquares
	z.posTable = make([][2]uint64, numSquares)
	for i := 0; i < numSquares; i++ {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.whiteToMove = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) NumSquares() int {
	return z.numSquares
}

// Hash computes the key of a position from scratch. black and white are
// occupancy bitboards; bit i is square i.
func (z *Zobrist) Hash(black, white uint64, whiteToMove bool) uint64 {
	key := uint64(0)
	for b := black; b != 0; b &= b - 1 {
		key ^= z.posTable[bits.TrailingZeros64(b)][0]
	}
	for w := white; w != 0; w &= w - 1 {
		key ^= z.posTable[bits.TrailingZeros64(w)][1]
	}
	if whiteToMove {
		key ^= z.whiteToMove
	}
	return key
}

// AddMove updates key for a disc of colour (0 black, 1 white) placed on sq
// which flipped the discs in flipped. Passing a zero-value move (placed < 0)
// only toggles the side to move.
func (z *Zobrist) AddMove(key uint64, colour int, placed int, flipped uint64) uint64 {
	if placed >= 0 {
		key ^= z.posTable[placed][colour]
		for f := flipped; f != 0; f &= f - 1 {
			sq := bits.TrailingZeros64(f)
			key ^= z.posTable[sq][1-colour]
			key ^= z.posTable[sq][colour]
		}
	}
	key ^= z.whiteToMove
	return key
}
