package keccak

import (
	"hash"

	"github.com/Aurorachain/go-keccak/common"
)

// digest adapts Keccak to hash.Hash. Sum does not change the running state.
type digest struct {
	*Keccak
}

func (d digest) Sum(in []byte) []byte {
	return append(in, d.Hash()...)
}

func (d digest) Reset() { d.Clear() }

func newDigest(bits int) hash.Hash { return digest{MustNew(bits)} }

func NewKeccak224() hash.Hash { return newDigest(224) }

func NewKeccak256() hash.Hash { return newDigest(256) }

func NewKeccak384() hash.Hash { return newDigest(384) }

func NewKeccak512() hash.Hash { return newDigest(512) }

func Sum224(data []byte) (sum [28]byte) {
	h := NewKeccak224()
	h.Write(data)
	h.Sum(sum[:0])
	return
}

func Sum256(data []byte) (sum [32]byte) {
	h := NewKeccak256()
	h.Write(data)
	h.Sum(sum[:0])
	return
}

func Sum384(data []byte) (sum [48]byte) {
	h := NewKeccak384()
	h.Write(data)
	h.Sum(sum[:0])
	return
}

func Sum512(data []byte) (sum [64]byte) {
	h := NewKeccak512()
	h.Write(data)
	h.Sum(sum[:0])
	return
}

// Keccak256 hashes the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	k := MustNew(256)
	for _, b := range data {
		k.Update(b)
	}
	return k.Hash()
}

// HexSum hashes the concatenation of data with the given digest size and
// returns lowercase hex.
func HexSum(bits int, data ...[]byte) (string, error) {
	k, err := New(bits)
	if err != nil {
		return "", err
	}
	for _, b := range data {
		k.Update(b)
	}
	return common.Bytes2Hex(k.Hash()), nil
}
