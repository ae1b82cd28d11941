package ssz

import (
	"encoding/binary"
	"fmt"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// SizeOf returns the fixed wire width of v in bytes. It fails for tags
// whose width is not determined by the tag alone.
func SizeOf(v Value) (int, error) {
	n, ok := v.Type.FixedSize()
	if !ok {
		return 0, fmt.Errorf("%w: %s has no fixed size", ErrUnsupportedType, v.Type)
	}
	return n, nil
}

// Serialize encodes v into its wire form.
func Serialize(v Value) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := serializeToBuffer(buf, v); err != nil {
		return nil, err
	}
	out := append([]byte{}, buf.Bytes()...)
	return out, nil
}

func serializeToBuffer(buf *bytebufferpool.ByteBuffer, v Value) error {
	switch v.Type {
	case TagBool:
		if v.Bool {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
		return nil
	case TagUint8:
		buf.WriteByte(byte(v.Uint))
		return nil
	case TagUint16:
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], uint16(v.Uint))
		buf.Write(tmp[:])
		return nil
	case TagUint32:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(v.Uint))
		buf.Write(tmp[:])
		return nil
	case TagUint64:
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], v.Uint)
		buf.Write(tmp[:])
		return nil
	case TagUint128:
		var tmp [16]byte
		binary.LittleEndian.PutUint64(tmp[0:8], v.Words[0])
		binary.LittleEndian.PutUint64(tmp[8:16], v.Words[1])
		buf.Write(tmp[:])
		return nil
	case TagUint256:
		var tmp [32]byte
		for i, limb := range v.Words {
			binary.LittleEndian.PutUint64(tmp[8*i:8*i+8], limb)
		}
		buf.Write(tmp[:])
		return nil
	case TagBytes32:
		if len(v.Bytes) != 32 {
			return fmt.Errorf("bytes32 payload must hold 32 bytes, have %d", len(v.Bytes))
		}
		buf.Write(v.Bytes)
		return nil
	case TagBitlist:
		buf.Write(packBits(v.Bits))
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type)
	}
}
