package mark

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ coder = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(bits []bool) []bool {
	if len(bits) == 0 {
		return []bool{}
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(pack(bits), len(bits))

	r := bitstream.NewBitReader(encoded, 0, 0)
	index := sg.permutation(enc.Bits())
	out := make([]bool, len(index))
	for i, at := range index {
		out[i], _ = r.ReadBitAt(at)
	}
	return out
}

func (sg shuffledgolay) decode(bits []bool, size int) []bool {
	if size == 0 {
		return []bool{}
	}
	unshuffled := make([]bool, len(bits))
	for i, at := range sg.permutation(len(bits)) {
		unshuffled[at] = bits[i]
	}

	var decoded []uint64
	dec := golay.NewDecoder(pack(unshuffled), len(unshuffled))
	_ = dec.Decode(&decoded)
	return unpack(decoded, size)
}

func (sg shuffledgolay) encodedLen(size int) int {
	if size == 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

// permutation is deterministic for a given seed and length.
func (sg shuffledgolay) permutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

var _ coder = (*plain)(nil)

type plain struct{}

func (plain) encode(bits []bool) []bool {
	return bits
}

func (plain) decode(bits []bool, size int) []bool {
	return bits[:size]
}

func (plain) encodedLen(size int) int {
	return size
}

func pack(bits []bool) []uint64 {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	return w.Data()
}

func unpack(data []uint64, size int) []bool {
	r := bitstream.NewBitReader(data, 0, 0)
	out := make([]bool, size)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}
