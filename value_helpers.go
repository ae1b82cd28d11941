package ssz

import (
	"strconv"
	"strings"
)

// AsBool returns the payload of a bool value.
func (v Value) AsBool() (bool, bool) {
	if v.Type != TagBool {
		return false, false
	}
	return v.Bool, true
}

// AsUint64 returns the integer payload when it fits in a uint64. This
// covers uint8..uint64 directly and wider values whose high limbs are zero.
func (v Value) AsUint64() (uint64, bool) {
	switch v.Type {
	case TagUint8, TagUint16, TagUint32, TagUint64:
		return v.Uint, true
	case TagUint128:
		if v.Words[1] == 0 {
			return v.Words[0], true
		}
		return 0, false
	case TagUint256:
		if v.Words[1] == 0 && v.Words[2] == 0 && v.Words[3] == 0 {
			return v.Words[0], true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsWords returns the integer payload widened to little-endian limbs,
// for any tag of the uint family.
func (v Value) AsWords() ([4]uint64, bool) {
	switch v.Type {
	case TagUint8, TagUint16, TagUint32, TagUint64:
		return [4]uint64{v.Uint, 0, 0, 0}, true
	case TagUint128, TagUint256:
		return v.Words, true
	default:
		return [4]uint64{}, false
	}
}

// AsBytes32 returns a copy of the payload of a bytes32 value.
func (v Value) AsBytes32() ([32]byte, bool) {
	var out [32]byte
	if v.Type != TagBytes32 || len(v.Bytes) != 32 {
		return out, false
	}
	copy(out[:], v.Bytes)
	return out, true
}

// AsBits returns a copy of the payload of a bitlist value.
func (v Value) AsBits() ([]bool, bool) {
	if v.Type != TagBitlist {
		return nil, false
	}
	out := make([]bool, len(v.Bits))
	copy(out, v.Bits)
	return out, true
}

// String renders v in the same scalar forms the JSON layer uses.
func (v Value) String() string {
	switch v.Type {
	case TagBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case TagUint8, TagUint16, TagUint32, TagUint64:
		return strconv.FormatUint(v.Uint, 10)
	case TagUint128:
		var sb strings.Builder
		writeHexBytes(&sb, wordsToBE(v.Words, 16))
		return sb.String()
	case TagUint256:
		var sb strings.Builder
		writeHexBytes(&sb, wordsToBE(v.Words, 32))
		return sb.String()
	case TagBytes32:
		var sb strings.Builder
		writeHexBytes(&sb, v.Bytes)
		return sb.String()
	case TagBitlist:
		var sb strings.Builder
		for _, bit := range v.Bits {
			if bit {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		return sb.String()
	default:
		return v.Type.String()
	}
}

// wordsToBE lays out little-endian limbs as a big-endian byte sequence of
// the given width (16 or 32).
func wordsToBE(words [4]uint64, width int) []byte {
	out := make([]byte, width)
	for i := 0; i < width; i++ {
		limb := words[i/8]
		out[width-1-i] = byte(limb >> (8 * (i % 8)))
	}
	return out
}

// wordsFromBE is the inverse of wordsToBE for a width-byte sequence.
func wordsFromBE(be []byte) [4]uint64 {
	var words [4]uint64
	width := len(be)
	for i := 0; i < width; i++ {
		words[i/8] |= uint64(be[width-1-i]) << (8 * (i % 8))
	}
	return words
}

func writeHexBytes(sb *strings.Builder, b []byte) {
	sb.WriteString("0x")
	for _, c := range b {
		sb.WriteByte(hexDigit(c >> 4))
		sb.WriteByte(hexDigit(c & 0xF))
	}
}

func hexDigit(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'a' + (n - 10)
}
