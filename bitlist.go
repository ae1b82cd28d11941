package ssz

import "math/bits"

// Bitlist wire form: data bits packed LSB-first into bytes, then a single
// sentinel '1' bit immediately after the last data bit. The byte length is
// always len(bits)/8 + 1, so the sentinel lives in the last byte and the
// empty bitlist encodes to the single byte 0x01.

// BitlistLen returns the number of data bits in the packed bitlist bl,
// or -1 when no sentinel bit can be located.
func BitlistLen(bl []byte) int {
	if len(bl) == 0 {
		return -1
	}
	last := bl[len(bl)-1]
	if last == 0 {
		return -1
	}
	return (len(bl)-1)*8 + bits.Len8(last) - 1
}

// BitlistBit returns data bit i of the packed bitlist bl. Callers must
// keep i below BitlistLen(bl).
func BitlistBit(bl []byte, i int) bool {
	return bl[i/8]&(1<<(i%8)) != 0
}

func packBits(b []bool) []byte {
	out := make([]byte, len(b)/8+1)
	for i, bit := range b {
		if bit {
			out[i/8] |= 1 << (i % 8)
		}
	}
	out[len(b)/8] |= 1 << (len(b) % 8)
	return out
}

func unpackBits(bl []byte) ([]bool, bool) {
	n := BitlistLen(bl)
	if n < 0 {
		return nil, false
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = BitlistBit(bl, i)
	}
	return out, true
}
