package keccak

import (
	"bytes"
	"encoding/hex"
	"hash"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}

func decode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestSumHelpers(t *testing.T) {
	msg := []byte("abc")
	checkhash(t, "Keccak-224-array", func(in []byte) []byte { h := Sum224(in); return h[:] }, msg, decode(vectors[1].digest))
	checkhash(t, "Keccak-256-array", func(in []byte) []byte { h := Sum256(in); return h[:] }, msg, decode(vectors[5].digest))
	checkhash(t, "Keccak-384-array", func(in []byte) []byte { h := Sum384(in); return h[:] }, msg, decode(vectors[9].digest))
	checkhash(t, "Keccak-512-array", func(in []byte) []byte { h := Sum512(in); return h[:] }, msg, decode(vectors[13].digest))
	checkhash(t, "Keccak-256-variadic", func(in []byte) []byte { return Keccak256(in[:1], in[1:]) }, msg, decode(vectors[5].digest))
}

func TestHashInterface(t *testing.T) {
	constructors := map[int]func() hash.Hash{
		224: NewKeccak224,
		256: NewKeccak256,
		384: NewKeccak384,
		512: NewKeccak512,
	}
	for bits, newHash := range constructors {
		h := newHash()
		assert.Equal(t, bits/8, h.Size())
		assert.Equal(t, 200-2*bits/8, h.BlockSize())

		_, err := io.Copy(h, strings.NewReader(sentence))
		require.NoError(t, err)

		want, err := HexSum(bits, []byte(sentence))
		require.NoError(t, err)

		prefix := []byte{0xde, 0xad}
		sum := h.Sum(prefix)
		assert.Equal(t, prefix, sum[:2])
		assert.Equal(t, want, hex.EncodeToString(sum[2:]))
		// Sum must not consume the state
		assert.Equal(t, want, hex.EncodeToString(h.Sum(nil)))

		h.Reset()
		h.Write([]byte("abc"))
		abc, _ := HexSum(bits, []byte("abc"))
		assert.Equal(t, abc, hex.EncodeToString(h.Sum(nil)))
	}
}

func TestHexSumUnsupported(t *testing.T) {
	_, err := HexSum(300, []byte("abc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "300 bits")
}
