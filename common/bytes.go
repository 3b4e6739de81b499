package common

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

var ErrOddLength = errors.New("hex string of odd length")

// ToHex returns the 0x prefixed hex encoding of b.
func ToHex(b []byte) string {
	hex := Bytes2Hex(b)

	if len(hex) == 0 {
		hex = "0"
	}
	return "0x" + hex
}

// FromHex decodes s, tolerating an 0x prefix and an odd digit count.
// Invalid input yields nil.
func FromHex(s string) []byte {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return Hex2Bytes(s)
}

func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)

	return
}

func hasHexPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsHex reports whether str is a non-empty, even length run of hex digits
// without prefix.
func IsHex(str string) bool {
	if len(str) == 0 || len(str)%2 != 0 {
		return false
	}
	for _, c := range []byte(str) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

// Bytes2Hex renders d as lowercase hex, two digits per byte.
func Bytes2Hex(d []byte) string {
	return hex.EncodeToString(d)
}

func Hex2Bytes(str string) []byte {
	h, _ := hex.DecodeString(str)

	return h
}

// DecodeHex is the strict variant of FromHex: the prefix is optional but the
// digits must be complete and valid.
func DecodeHex(s string) ([]byte, error) {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		return nil, errors.Wrapf(ErrOddLength, "%d digits", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex")
	}
	return b, nil
}

// EqualHex compares two hex strings ignoring case.
func EqualHex(a, b string) bool {
	return strings.EqualFold(strings.TrimPrefix(a, "0x"), strings.TrimPrefix(b, "0x"))
}
