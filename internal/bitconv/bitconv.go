// Package bitconv converts between bytes and bits, most significant bit first.
package bitconv

// BytesToBools expands every byte into 8 bits.
func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for pos := 7; pos >= 0; pos-- {
			bits = append(bits, bb&(1<<uint(pos)) != 0)
		}
	}
	return bits
}

// BoolsToBytes folds every group of 8 bits into one byte.
// The first bit of a group lands on bit position 7.
// A trailing group shorter than 8 bits is dropped; callers check the length.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j, bit := range bits[i*8 : i*8+8] {
			if bit {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}
