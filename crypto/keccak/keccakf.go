package keccak

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	ErrInvalidLaneWidth     = errors.New("keccak: lane width must be a positive power of two")
	ErrTooManyRounds        = errors.New("keccak: round count exceeds round constant table")
	ErrUnsupportedLaneWidth = errors.New("keccak: only 64-bit lanes are supported")
)

// roundConstants are consumed in order, one per round, by iota.
var roundConstants = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotationOffsets is indexed [y][x].
var rotationOffsets = [5][5]int{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

const lanes = 25

// Permutation is the Keccak-f permutation over 25 lanes. It holds no state
// besides its parameters, so one value may be shared between goroutines.
type Permutation struct {
	laneWidth int
	rounds    int
}

var keccakF1600 = MustNewPermutation(64)

// NewPermutation derives the round count 12+2*log2(laneWidth) for the given
// lane width in bits.
func NewPermutation(laneWidth int) (*Permutation, error) {
	if laneWidth <= 0 || laneWidth&(laneWidth-1) != 0 {
		return nil, errors.Wrapf(ErrInvalidLaneWidth, "lane width %d", laneWidth)
	}
	rounds := 12 + 2*bits.TrailingZeros(uint(laneWidth))
	if rounds > len(roundConstants) {
		return nil, errors.Wrapf(ErrTooManyRounds, "%d rounds", rounds)
	}
	if laneWidth != 64 {
		return nil, errors.Wrapf(ErrUnsupportedLaneWidth, "lane width %d", laneWidth)
	}
	return &Permutation{laneWidth: laneWidth, rounds: rounds}, nil
}

func MustNewPermutation(laneWidth int) *Permutation {
	p, err := NewPermutation(laneWidth)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Permutation) LaneWidth() int { return p.laneWidth }

func (p *Permutation) Rounds() int { return p.rounds }

// Width is the full state width in bits.
func (p *Permutation) Width() int { return lanes * p.laneWidth }

// Permute applies all rounds to a in place.
func (p *Permutation) Permute(a *[25]uint64) {
	for round := 0; round < p.rounds; round++ {
		theta(a)
		b := rhoPi(a)
		chi(a, &b)
		iotaStep(a, round)
	}
}

// KeccakF1600 applies the 24 round permutation to a in place.
func KeccakF1600(a *[25]uint64) {
	keccakF1600.Permute(a)
}

func theta(a *[25]uint64) {
	var c, d [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
	}
	for y := 0; y < 25; y += 5 {
		for x := 0; x < 5; x++ {
			a[y+x] ^= d[x]
		}
	}
}

// rhoPi rotates every lane and moves lane (x,y) to (y, 2x+3y).
func rhoPi(a *[25]uint64) (b [25]uint64) {
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b[y+5*((2*x+3*y)%5)] = bits.RotateLeft64(a[x+5*y], rotationOffsets[y][x])
		}
	}
	return b
}

func chi(a *[25]uint64, b *[25]uint64) {
	for y := 0; y < 25; y += 5 {
		for x := 0; x < 5; x++ {
			a[y+x] = b[y+x] ^ (^b[y+(x+1)%5] & b[y+(x+2)%5])
		}
	}
}

func iotaStep(a *[25]uint64, round int) {
	a[0] ^= roundConstants[round]
}
