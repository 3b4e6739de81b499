package keccakapi

import (
	"github.com/pkg/errors"
)

var (
	ErrBadSize         = errors.New("digest size is not a number")
	ErrUnknownEncoding = errors.New("unknown data encoding")
	ErrBodyTooLarge    = errors.New("request body too large")
)

func errBadSize(bits string) error {
	return errors.Wrapf(ErrBadSize, "%q", bits)
}

func errUnknownEncoding(enc string) error {
	return errors.Wrapf(ErrUnknownEncoding, "%q", enc)
}

func errBodyTooLarge(limit int64) error {
	return errors.Wrapf(ErrBodyTooLarge, "limit %d bytes", limit)
}
