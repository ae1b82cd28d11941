package ssz

// Tag identifies which kind of leaf value a Value holds.
type Tag uint8

const (
	TagBool Tag = iota
	TagUint8
	TagUint16
	TagUint32
	TagUint64
	TagUint128
	TagUint256
	TagBitlist
	TagBytes32
	TagContainer
)

// String returns the canonical lower-case name of the tag.
func (t Tag) String() string {
	switch t {
	case TagBool:
		return "bool"
	case TagUint8:
		return "uint8"
	case TagUint16:
		return "uint16"
	case TagUint32:
		return "uint32"
	case TagUint64:
		return "uint64"
	case TagUint128:
		return "uint128"
	case TagUint256:
		return "uint256"
	case TagBitlist:
		return "bitlist"
	case TagBytes32:
		return "bytes32"
	case TagContainer:
		return "container"
	default:
		return "invalid"
	}
}

// TagFromString returns the tag named by s.
func TagFromString(s string) (Tag, bool) {
	for t := TagBool; t <= TagContainer; t++ {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	return t <= TagContainer
}

// FixedSize returns the wire width in bytes for tags whose encoding
// has a fixed width known from the tag alone.
func (t Tag) FixedSize() (int, bool) {
	switch t {
	case TagBool, TagUint8:
		return 1, true
	case TagUint16:
		return 2, true
	case TagUint32:
		return 4, true
	case TagUint64:
		return 8, true
	case TagUint128:
		return 16, true
	case TagUint256:
		return 32, true
	default:
		return 0, false
	}
}

// Serializable reports whether t belongs to the minimal leaf subset
// {bool, uint8, bitlist, bytes32} that every collaborator must handle.
// The codec itself also accepts the wider uint family.
func (t Tag) Serializable() bool {
	switch t {
	case TagBool, TagUint8, TagBitlist, TagBytes32:
		return true
	default:
		return false
	}
}
