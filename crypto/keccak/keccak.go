// Package keccak implements the Keccak hash family (the original Keccak
// submission padding, not FIPS-202 SHA-3) for 224, 256, 384 and 512 bit
// digests on top of the Keccak-f[1600] permutation.
//
// A Keccak value absorbs input incrementally through Update. Hash finalizes a
// copy of the sponge, so it may be called at any point and input may keep
// flowing afterwards.
package keccak

import (
	"github.com/Aurorachain/go-keccak/common"
	"github.com/pkg/errors"
)

var ErrUnsupportedSize = errors.New("keccak: unsupported digest size")

type parameters struct {
	rate     int
	capacity int
}

var sizes = map[int]parameters{
	224: {rate: 1152, capacity: 448},
	256: {rate: 1088, capacity: 512},
	384: {rate: 832, capacity: 768},
	512: {rate: 576, capacity: 1024},
}

// SupportedSizes lists the digest sizes in bits accepted by New.
func SupportedSizes() []int {
	return []int{224, 256, 384, 512}
}

// Params returns the rate and capacity in bits used for a digest size.
func Params(bits int) (rate, capacity int, err error) {
	p, ok := sizes[bits]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnsupportedSize, "%d bits", bits)
	}
	return p.rate, p.capacity, nil
}

// Keccak computes one digest size. It is not safe for concurrent use.
type Keccak struct {
	bits   int
	sponge sponge
}

func New(bits int) (*Keccak, error) {
	rate, capacity, err := Params(bits)
	if err != nil {
		return nil, err
	}
	s, err := newSponge(rate, capacity, bits)
	if err != nil {
		return nil, errors.Wrapf(err, "keccak-%d", bits)
	}
	return &Keccak{bits: bits, sponge: *s}, nil
}

func MustNew(bits int) *Keccak {
	k, err := New(bits)
	if err != nil {
		panic(err)
	}
	return k
}

func (k *Keccak) Update(p []byte) {
	k.sponge.update(p)
}

func (k *Keccak) UpdateString(s string) {
	k.sponge.update([]byte(s))
}

// Write makes Keccak an io.Writer. It never fails.
func (k *Keccak) Write(p []byte) (int, error) {
	k.sponge.update(p)
	return len(p), nil
}

// Hash returns the digest of everything absorbed since construction or the
// last Clear. The receiver is left untouched.
func (k *Keccak) Hash() []byte {
	return k.sponge.digest()
}

// HexHash returns Hash as lowercase hex without prefix.
func (k *Keccak) HexHash() string {
	return common.Bytes2Hex(k.Hash())
}

// Clear drops all absorbed input.
func (k *Keccak) Clear() {
	k.sponge.clear()
}

func (k *Keccak) Bits() int { return k.bits }

// Size is the digest length in bytes.
func (k *Keccak) Size() int { return k.sponge.outputLen }

// BlockSize is the number of bytes absorbed per permutation.
func (k *Keccak) BlockSize() int { return k.sponge.blockSize }
