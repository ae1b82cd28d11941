package ssz

import "fmt"

// DefaultValue returns the canonical zero instance for t: false, zero
// integers, thirty-two zero bytes, the empty bitlist.
func DefaultValue(t Tag) (Value, error) {
	switch t {
	case TagBool:
		return BoolValue(false), nil
	case TagUint8:
		return Uint8Value(0), nil
	case TagUint16:
		return Uint16Value(0), nil
	case TagUint32:
		return Uint32Value(0), nil
	case TagUint64:
		return Uint64Value(0), nil
	case TagUint128:
		return Uint128Value(0, 0), nil
	case TagUint256:
		return Uint256Value([4]uint64{}), nil
	case TagBytes32:
		return Bytes32Value([32]byte{}), nil
	case TagBitlist:
		return BitlistValue(nil), nil
	default:
		return Value{}, fmt.Errorf("%w: no default for %s", ErrUnsupportedType, t)
	}
}
