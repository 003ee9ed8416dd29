// Package mark carries fixed-size payloads as whitespace text, optionally
// protected by an error correction code.
package mark

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/whitespace"
	"github.com/yyyoichi/whitespace/internal/bitconv"
)

var (
	ErrPayloadTooLarge   = errors.New("payload exceeds mark size")
	ErrInvalidMarkLength = errors.New("invalid mark length")
)

// Mark encodes payloads of a fixed number of bytes into whitespace text.
type Mark struct {
	size  int
	coder coder
}

// New returns a Mark for payloads of up to size bytes.
// By default, it uses the Golay code with shuffle error correction algorithm.
func New(size int, opts ...Option) *Mark {
	if len(opts) == 0 {
		opts = append(opts, WithGolay(DefaultShuffleSeed))
	}
	m := &Mark{size: max(size, 0)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Size returns the payload size in bytes.
func (m *Mark) Size() int {
	return m.size
}

// Len returns the number of characters of an encoded mark.
func (m *Mark) Len() int {
	return m.coder.encodedLen(m.size * 8)
}

// Encode converts data into whitespace text of Len characters.
// Payloads shorter than Size are padded with zero bytes.
func (m *Mark) Encode(data []byte) (string, error) {
	if len(data) > m.size {
		return "", fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(data), m.size)
	}
	payload := make([]byte, m.size)
	copy(payload, data)
	return whitespace.EncodeBools(m.coder.encode(bitconv.BytesToBools(payload))), nil
}

// Decode converts whitespace text produced by Encode back into Size bytes.
// Characters outside the alphabet are reported with the whitespace error
// types; text of the wrong length wraps ErrInvalidMarkLength.
func (m *Mark) Decode(text string) ([]byte, error) {
	bits, err := whitespace.DecodeBools(text)
	if err != nil {
		return nil, err
	}
	if len(bits) != m.Len() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidMarkLength, len(bits), m.Len())
	}
	return bitconv.BoolsToBytes(m.coder.decode(bits, m.size*8)), nil
}
