package ssz

// Value represents a decoded leaf value record.
//
// Exactly one payload field is meaningful, selected by Type. Values are
// immutable once constructed: codec operations only read them and the
// constructors copy slice payloads.
type Value struct {
	Type  Tag
	Bool  bool
	Uint  uint64    // uint8..uint64 payloads
	Words [4]uint64 // uint128/uint256 payloads, little-endian limbs
	Bytes []byte    // bytes32 payload, always length 32
	Bits  []bool    // bitlist payload
}

// TypeOf returns the tag of v. It is total over constructible values and
// always consistent with the variant actually held.
func TypeOf(v Value) Tag {
	return v.Type
}

// BoolValue constructs a bool leaf.
func BoolValue(b bool) Value {
	return Value{Type: TagBool, Bool: b}
}

// Uint8Value constructs a uint8 leaf.
func Uint8Value(u uint8) Value {
	return Value{Type: TagUint8, Uint: uint64(u)}
}

// Uint16Value constructs a uint16 leaf.
func Uint16Value(u uint16) Value {
	return Value{Type: TagUint16, Uint: uint64(u)}
}

// Uint32Value constructs a uint32 leaf.
func Uint32Value(u uint32) Value {
	return Value{Type: TagUint32, Uint: uint64(u)}
}

// Uint64Value constructs a uint64 leaf.
func Uint64Value(u uint64) Value {
	return Value{Type: TagUint64, Uint: u}
}

// Uint128Value constructs a uint128 leaf from little-endian limbs.
func Uint128Value(lo, hi uint64) Value {
	return Value{Type: TagUint128, Words: [4]uint64{lo, hi, 0, 0}}
}

// Uint256Value constructs a uint256 leaf from little-endian limbs.
func Uint256Value(limbs [4]uint64) Value {
	return Value{Type: TagUint256, Words: limbs}
}

// Bytes32Value constructs a bytes32 leaf. The input is copied.
func Bytes32Value(b [32]byte) Value {
	payload := make([]byte, 32)
	copy(payload, b[:])
	return Value{Type: TagBytes32, Bytes: payload}
}

// BitlistValue constructs a bitlist leaf. The input is copied; nil and
// empty both construct the empty bitlist.
func BitlistValue(bits []bool) Value {
	cpy := make([]bool, len(bits))
	copy(cpy, bits)
	return Value{Type: TagBitlist, Bits: cpy}
}

// Equal reports structural equality. Values of different tags are never
// equal; an empty and a nil bitlist payload are.
func Equal(a, b Value) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TagBool:
		return a.Bool == b.Bool
	case TagUint8, TagUint16, TagUint32, TagUint64:
		return a.Uint == b.Uint
	case TagUint128:
		return a.Words[0] == b.Words[0] && a.Words[1] == b.Words[1]
	case TagUint256:
		return a.Words == b.Words
	case TagBytes32:
		if len(a.Bytes) != len(b.Bytes) {
			return false
		}
		for i := range a.Bytes {
			if a.Bytes[i] != b.Bytes[i] {
				return false
			}
		}
		return true
	case TagBitlist:
		if len(a.Bits) != len(b.Bits) {
			return false
		}
		for i := range a.Bits {
			if a.Bits[i] != b.Bits[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
