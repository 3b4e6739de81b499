package keccak

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

var ErrInvalidParameters = errors.New("keccak: invalid sponge parameters")

// maxBlockSize is the byte width of the whole 1600-bit state.
const maxBlockSize = lanes * 8

// sponge drives a Permutation over one 25 lane state. All of its fields are
// values, so assigning a sponge copies the complete absorbing state.
type sponge struct {
	a [25]uint64

	// block holds the pending input, block[:pending], which is always shorter
	// than blockSize between calls.
	block   [maxBlockSize]byte
	pending int

	rate      int // bits
	capacity  int // bits
	blockSize int // bytes absorbed per permutation
	width     int // bytes of the full state
	outputLen int // bytes of digest

	squeezeLanes int

	f *Permutation
}

func newSponge(rate, capacity, outputBits int) (*sponge, error) {
	if rate <= 0 || rate%8 != 0 || capacity < 0 || outputBits <= 0 || outputBits%8 != 0 {
		return nil, errors.Wrapf(ErrInvalidParameters, "rate %d capacity %d output %d", rate, capacity, outputBits)
	}
	width := rate + capacity
	f, err := NewPermutation(width / lanes)
	if err != nil {
		return nil, err
	}
	if width != f.Width() {
		return nil, errors.Wrapf(ErrInvalidParameters, "rate+capacity %d is not a state width", width)
	}
	squeezeLanes := capacity/2/8 + 1
	if squeezeLanes > lanes {
		squeezeLanes = lanes
	}
	return &sponge{
		rate:         rate,
		capacity:     capacity,
		blockSize:    rate / 8,
		width:        width / 8,
		outputLen:    outputBits / 8,
		squeezeLanes: squeezeLanes,
		f:            f,
	}, nil
}

// update buffers p and absorbs every full block. Whole blocks are absorbed
// straight from p when nothing is pending.
func (d *sponge) update(p []byte) {
	for len(p) > 0 {
		if d.pending == 0 && len(p) >= d.blockSize {
			d.absorb(p[:d.blockSize])
			p = p[d.blockSize:]
			continue
		}
		n := copy(d.block[d.pending:d.blockSize], p)
		d.pending += n
		p = p[n:]

		if d.pending == d.blockSize {
			d.absorb(d.block[:d.blockSize])
			d.pending = 0
		}
	}
}

// absorb XORs one rate sized block into the state as little-endian lanes,
// zero extended to the full state width, then permutes.
func (d *sponge) absorb(block []byte) {
	if len(block) != d.blockSize {
		panic(fmt.Sprintf("keccak: absorbing %d byte block, block size is %d", len(block), d.blockSize))
	}
	var padded [maxBlockSize]byte
	copy(padded[:d.width], block)
	for i := 0; i < lanes; i++ {
		d.a[i] ^= binary.LittleEndian.Uint64(padded[8*i:])
	}
	d.f.Permute(&d.a)
}

// pad returns the pending input followed by the pad10*1 bytes. A single free
// byte carries both the start and the end bit as 0x81.
func (d *sponge) pad() []byte {
	free := d.blockSize - d.pending
	if free < 1 {
		panic(fmt.Sprintf("keccak: %d bytes pending with block size %d", d.pending, d.blockSize))
	}
	padded := make([]byte, d.blockSize)
	copy(padded, d.block[:d.pending])
	if free == 1 {
		padded[d.pending] = 0x81
	} else {
		padded[d.pending] = 0x01
		padded[d.blockSize-1] = 0x80
	}
	return padded
}

func (d *sponge) absorbAll() {
	d.absorb(d.pad())
	d.pending = 0
}

// squeeze reads squeezeLanes lanes per extraction round, permuting between
// rounds, until outputLen bytes are available.
func (d *sponge) squeeze() []byte {
	out := make([]byte, 0, d.outputLen+d.squeezeLanes*8)
	var lane [8]byte
	for len(out) < d.outputLen {
		if len(out) > 0 {
			d.f.Permute(&d.a)
		}
		for i := 0; i < d.squeezeLanes; i++ {
			binary.LittleEndian.PutUint64(lane[:], d.a[i])
			out = append(out, lane[:]...)
		}
	}
	return out[:d.outputLen]
}

func (d *sponge) clear() {
	d.a = [25]uint64{}
	d.block = [maxBlockSize]byte{}
	d.pending = 0
}

func (d *sponge) clone() *sponge {
	ret := *d
	return &ret
}

// digest finalizes a copy of the sponge, leaving d able to absorb more input.
func (d *sponge) digest() []byte {
	dup := d.clone()
	dup.absorbAll()
	return dup.squeeze()
}
