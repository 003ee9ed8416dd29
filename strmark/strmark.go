// Package strmark carries strings as whitespace text.
package strmark

import (
	"bytes"

	"github.com/yyyoichi/whitespace"
	"github.com/yyyoichi/whitespace/mark"
)

// Encode encodes the input string into whitespace text.
func Encode(src string) string {
	return whitespace.Encode([]byte(src))
}

// Decode decodes whitespace text back into the original string.
func Decode(text string) (string, error) {
	b, err := whitespace.Decode(text)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var _ Mark = (*StrMark)(nil)

type StrMark struct {
}

func New() Mark {
	return &StrMark{}
}

func (sm *StrMark) Encode(src string) (string, error) {
	return Encode(src), nil
}

func (sm *StrMark) Decode(text string) (string, error) {
	return Decode(text)
}

var _ Mark = (*ECCMark)(nil)

// ECCMark carries strings of up to a fixed number of bytes with error
// correction. Shorter strings are zero padded and trailing zero bytes are
// trimmed on decode, so strings must not end in NUL.
type ECCMark struct {
	m *mark.Mark
}

// NewECC returns an ECCMark for strings of up to size bytes.
func NewECC(size int, opts ...mark.Option) *ECCMark {
	return &ECCMark{m: mark.New(size, opts...)}
}

func (em *ECCMark) Encode(src string) (string, error) {
	return em.m.Encode([]byte(src))
}

func (em *ECCMark) Decode(text string) (string, error) {
	b, err := em.m.Decode(text)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(b, "\x00")), nil
}

// Len returns the number of characters of an encoded string.
func (em *ECCMark) Len() int {
	return em.m.Len()
}
