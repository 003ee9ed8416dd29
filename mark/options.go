package mark

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option selects the bit-level code a Mark applies before its bits are
	// written as whitespace.
	Option func(*Mark)

	// coder maps payload bits to the bits written as characters and back.
	coder interface {
		encode(bits []bool) []bool
		decode(bits []bool, size int) []bool
		encodedLen(size int) int
	}
)

// WithoutECC writes the payload bits as-is, one character per bit.
// Any damaged character changes the decoded payload.
func WithoutECC() Option {
	return func(m *Mark) {
		m.coder = plain{}
	}
}

// WithGolay protects the payload with the Golay(24,12) code.
// seed is the seed value for shuffling the encoded bits: the shuffle spreads
// a run of damaged characters over many code words, each of which corrects
// up to 3 flipped bits.
func WithGolay(seed int64) Option {
	return func(m *Mark) {
		m.coder = shuffledgolay(seed)
	}
}
