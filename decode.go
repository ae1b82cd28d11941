package ssz

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrLengthMismatch  = errors.New("ssz: input length mismatch")
	ErrInvalidBitlist  = errors.New("ssz: invalid bitlist encoding")
	ErrUnsupportedType = errors.New("ssz: unsupported leaf type")
)

// Deserialize decodes the wire form b as a value of tag t. Failures are
// local and recoverable; no partial value is ever returned.
func Deserialize(b []byte, t Tag) (Value, error) {
	switch t {
	case TagBool:
		if len(b) != 1 {
			return Value{}, fmt.Errorf("%w: bool needs 1 byte, have %d", ErrLengthMismatch, len(b))
		}
		return BoolValue(b[0]&1 == 1), nil
	case TagUint8:
		if len(b) != 1 {
			return Value{}, fmt.Errorf("%w: uint8 needs 1 byte, have %d", ErrLengthMismatch, len(b))
		}
		return Uint8Value(b[0]), nil
	case TagUint16:
		if len(b) != 2 {
			return Value{}, fmt.Errorf("%w: uint16 needs 2 bytes, have %d", ErrLengthMismatch, len(b))
		}
		return Uint16Value(binary.LittleEndian.Uint16(b)), nil
	case TagUint32:
		if len(b) != 4 {
			return Value{}, fmt.Errorf("%w: uint32 needs 4 bytes, have %d", ErrLengthMismatch, len(b))
		}
		return Uint32Value(binary.LittleEndian.Uint32(b)), nil
	case TagUint64:
		if len(b) != 8 {
			return Value{}, fmt.Errorf("%w: uint64 needs 8 bytes, have %d", ErrLengthMismatch, len(b))
		}
		return Uint64Value(binary.LittleEndian.Uint64(b)), nil
	case TagUint128:
		if len(b) != 16 {
			return Value{}, fmt.Errorf("%w: uint128 needs 16 bytes, have %d", ErrLengthMismatch, len(b))
		}
		return Uint128Value(binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])), nil
	case TagUint256:
		if len(b) != 32 {
			return Value{}, fmt.Errorf("%w: uint256 needs 32 bytes, have %d", ErrLengthMismatch, len(b))
		}
		var limbs [4]uint64
		for i := range limbs {
			limbs[i] = binary.LittleEndian.Uint64(b[8*i : 8*i+8])
		}
		return Uint256Value(limbs), nil
	case TagBytes32:
		if len(b) != 32 {
			return Value{}, fmt.Errorf("%w: bytes32 needs 32 bytes, have %d", ErrLengthMismatch, len(b))
		}
		var payload [32]byte
		copy(payload[:], b)
		return Bytes32Value(payload), nil
	case TagBitlist:
		if len(b) == 0 {
			return Value{}, fmt.Errorf("%w: empty input", ErrInvalidBitlist)
		}
		bits, ok := unpackBits(b)
		if !ok {
			return Value{}, fmt.Errorf("%w: last byte carries no sentinel bit", ErrInvalidBitlist)
		}
		return Value{Type: TagBitlist, Bits: bits}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}
