package keccak

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
)

func mustSponge(t *testing.T, bits int) *sponge {
	t.Helper()
	rate, capacity, err := Params(bits)
	if err != nil {
		t.Fatal(err)
	}
	s, err := newSponge(rate, capacity, bits)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSpongeDerivedSizes(t *testing.T) {
	tests := []struct {
		bits, blockSize, outputLen, squeezeLanes int
	}{
		{224, 144, 28, 25},
		{256, 136, 32, 25},
		{384, 104, 48, 25},
		{512, 72, 64, 25},
	}
	for _, test := range tests {
		s := mustSponge(t, test.bits)
		if s.blockSize != test.blockSize || s.outputLen != test.outputLen || s.squeezeLanes != test.squeezeLanes {
			t.Errorf("keccak-%d: block %d output %d lanes %d", test.bits, s.blockSize, s.outputLen, s.squeezeLanes)
		}
		if s.width != 200 || s.f.Rounds() != 24 {
			t.Errorf("keccak-%d: width %d rounds %d", test.bits, s.width, s.f.Rounds())
		}
	}
}

func TestNewSpongeRejectsBadParameters(t *testing.T) {
	tests := []struct {
		rate, capacity, output int
		err                    error
	}{
		{0, 1600, 256, ErrInvalidParameters},
		{1087, 513, 256, ErrInvalidParameters},
		{1088, -8, 256, ErrInvalidParameters},
		{1088, 512, 0, ErrInvalidParameters},
		{1088, 512, 255, ErrInvalidParameters},
		{1088, 513, 256, ErrInvalidParameters},
		{544, 256, 256, ErrUnsupportedLaneWidth},
		{1600, 1600, 256, ErrTooManyRounds},
	}
	for _, test := range tests {
		_, err := newSponge(test.rate, test.capacity, test.output)
		if errors.Cause(err) != test.err {
			t.Errorf("(%d,%d,%d): got %v, want %v", test.rate, test.capacity, test.output, err, test.err)
		}
	}
}

func TestPaddingSingleFreeByte(t *testing.T) {
	s := mustSponge(t, 256)
	s.update(bytes.Repeat([]byte{'a'}, s.blockSize-1))

	padded := s.pad()
	if len(padded) != s.blockSize {
		t.Fatalf("padded length %d, want %d", len(padded), s.blockSize)
	}
	if padded[s.blockSize-1] != 0x81 {
		t.Fatalf("last byte %#x, want 0x81", padded[s.blockSize-1])
	}
	if padded[s.blockSize-2] != 'a' {
		t.Fatalf("message byte overwritten: %#x", padded[s.blockSize-2])
	}
}

func TestPaddingMultiByte(t *testing.T) {
	s := mustSponge(t, 512)
	s.update([]byte("abc"))

	padded := s.pad()
	if len(padded) != s.blockSize {
		t.Fatalf("padded length %d, want %d", len(padded), s.blockSize)
	}
	if !bytes.Equal(padded[:3], []byte("abc")) || padded[3] != 0x01 || padded[len(padded)-1] != 0x80 {
		t.Fatalf("bad framing: %x", padded)
	}
	for i := 4; i < len(padded)-1; i++ {
		if padded[i] != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, padded[i])
		}
	}
}

func TestPaddingFullBlockAddsBlock(t *testing.T) {
	s := mustSponge(t, 384)
	s.update(bytes.Repeat([]byte{'a'}, s.blockSize))
	if s.pending != 0 {
		t.Fatalf("%d bytes pending after exactly one block", s.pending)
	}
	absorbed := s.a

	padded := s.pad()
	if padded[0] != 0x01 || padded[len(padded)-1] != 0x80 {
		t.Fatalf("expected a full padding block, got %x", padded)
	}
	s.absorbAll()
	if s.a == absorbed {
		t.Fatal("padding block was not absorbed")
	}
}

func TestUpdateKeepsPendingBelowBlockSize(t *testing.T) {
	s := mustSponge(t, 224)
	total := 0
	for _, n := range []int{1, 143, 144, 145, 500, 0, 7} {
		s.update(bytes.Repeat([]byte{0x5a}, n))
		total += n
		if s.pending >= s.blockSize {
			t.Fatalf("pending %d not below block size %d", s.pending, s.blockSize)
		}
		if s.pending != total%s.blockSize {
			t.Fatalf("pending %d, want %d", s.pending, total%s.blockSize)
		}
	}
}

func TestAbsorbRejectsPartialBlock(t *testing.T) {
	s := mustSponge(t, 256)
	defer func() {
		if recover() == nil {
			t.Fatal("absorb of a short block did not panic")
		}
	}()
	s.absorb(make([]byte, s.blockSize-1))
}

func TestSqueezeMultipleRounds(t *testing.T) {
	s, err := newSponge(1088, 512, 2048)
	if err != nil {
		t.Fatal(err)
	}
	s.absorbAll()
	first := s.a
	out := s.squeeze()
	if len(out) != 256 {
		t.Fatalf("got %d bytes, want 256", len(out))
	}
	if want := Sum256(nil); !bytes.Equal(out[:32], want[:]) {
		t.Fatalf("first extraction %x, want %x", out[:32], want)
	}
	second := first
	KeccakF1600(&second)
	for i := 0; i < 7; i++ {
		if lane := binary.LittleEndian.Uint64(out[200+8*i:]); lane != second[i] {
			t.Fatalf("second extraction lane %d = %#x, want %#x", i, lane, second[i])
		}
	}
}

func TestClearResetsSponge(t *testing.T) {
	s := mustSponge(t, 256)
	fresh := *s
	s.update([]byte("some input that will be discarded"))
	s.clear()
	if s.a != fresh.a || s.pending != 0 || s.block != fresh.block {
		t.Fatal("clear did not restore the constructed state")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustSponge(t, 256)
	s.update([]byte("prefix"))
	dup := s.clone()
	dup.update([]byte("-suffix"))
	dup.absorbAll()
	if s.pending != len("prefix") {
		t.Fatalf("original pending changed to %d", s.pending)
	}
	if !bytes.Equal(s.block[:s.pending], []byte("prefix")) {
		t.Fatalf("original buffer changed: %q", s.block[:s.pending])
	}
}
