package ssz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
)

// Tagged JSON form for leaf values, used by tooling and test fixtures:
//
//	{"type":"bool","value":true}
//	{"type":"uint8","value":200}
//	{"type":"uint64","value":"18446744073709551615"}
//	{"type":"uint256","value":"0x2a"}
//	{"type":"bytes32","value":"0x<64 hex chars>"}
//	{"type":"bitlist","value":"101"}
//
// uint8/16/32 ride as JSON numbers; uint64 as a decimal string to stay
// clear of JSON number precision; uint128/256 as 0x-hex; bitlists as a
// bit string with the first logical bit first.

// ValueToJSON renders v in the tagged JSON leaf form.
func ValueToJSON(v Value) (string, error) {
	var sb strings.Builder
	if err := writeJSONValue(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeJSONValue(sb *strings.Builder, v Value) error {
	sb.WriteString(`{"type":"`)
	sb.WriteString(v.Type.String())
	sb.WriteString(`","value":`)
	switch v.Type {
	case TagBool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case TagUint8, TagUint16, TagUint32:
		sb.WriteString(strconv.FormatUint(v.Uint, 10))
	case TagUint64:
		sb.WriteByte('"')
		sb.WriteString(strconv.FormatUint(v.Uint, 10))
		sb.WriteByte('"')
	case TagUint128:
		sb.WriteByte('"')
		writeHexBytes(sb, wordsToBE(v.Words, 16))
		sb.WriteByte('"')
	case TagUint256:
		sb.WriteByte('"')
		writeHexBytes(sb, wordsToBE(v.Words, 32))
		sb.WriteByte('"')
	case TagBytes32:
		if len(v.Bytes) != 32 {
			return fmt.Errorf("bytes32 payload must hold 32 bytes, have %d", len(v.Bytes))
		}
		sb.WriteByte('"')
		writeHexBytes(sb, v.Bytes)
		sb.WriteByte('"')
	case TagBitlist:
		sb.WriteByte('"')
		for _, bit := range v.Bits {
			if bit {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('"')
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type)
	}
	sb.WriteByte('}')
	return nil
}

// ValueFromJSON parses the tagged JSON leaf form using simdjson-go.
func ValueFromJSON(data []byte) (Value, error) {
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return Value{}, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return Value{}, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return Value{}, err
	}
	if typ != simdjson.TypeObject {
		return Value{}, fmt.Errorf("leaf value must be a json object")
	}
	obj, err := root.Object(nil)
	if err != nil {
		return Value{}, err
	}

	var (
		tagName  string
		haveTag  bool
		valIter  simdjson.Iter
		valType  simdjson.Type
		haveVal  bool
		parseErr error
	)
	err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
		if parseErr != nil {
			return
		}
		switch string(key) {
		case "type":
			s, err := elem.String()
			if err != nil {
				parseErr = err
				return
			}
			tagName = s
			haveTag = true
		case "value":
			valIter = elem
			valType = elem.Type()
			haveVal = true
		default:
			parseErr = fmt.Errorf("unknown leaf field %q", key)
		}
	}, nil)
	if err != nil {
		return Value{}, err
	}
	if parseErr != nil {
		return Value{}, parseErr
	}
	if !haveTag || !haveVal {
		return Value{}, fmt.Errorf("leaf object needs both type and value")
	}
	tag, ok := TagFromString(tagName)
	if !ok {
		return Value{}, fmt.Errorf("unknown leaf type %q", tagName)
	}
	return valueFromJSONIter(tag, valType, &valIter)
}

func valueFromJSONIter(tag Tag, typ simdjson.Type, it *simdjson.Iter) (Value, error) {
	switch tag {
	case TagBool:
		if typ != simdjson.TypeBool {
			return Value{}, fmt.Errorf("bool value must be a json bool")
		}
		b, err := it.Bool()
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case TagUint8, TagUint16, TagUint32:
		u, err := jsonUint(typ, it)
		if err != nil {
			return Value{}, err
		}
		max, _ := tag.FixedSize()
		limit := uint64(1)<<(8*max) - 1
		if u > limit {
			return Value{}, fmt.Errorf("%s value %d out of range", tag, u)
		}
		switch tag {
		case TagUint8:
			return Uint8Value(uint8(u)), nil
		case TagUint16:
			return Uint16Value(uint16(u)), nil
		default:
			return Uint32Value(uint32(u)), nil
		}
	case TagUint64:
		if typ == simdjson.TypeString {
			s, err := it.String()
			if err != nil {
				return Value{}, err
			}
			u, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("invalid uint64 value %q", s)
			}
			return Uint64Value(u), nil
		}
		u, err := jsonUint(typ, it)
		if err != nil {
			return Value{}, err
		}
		return Uint64Value(u), nil
	case TagUint128, TagUint256:
		s, err := jsonString(typ, it)
		if err != nil {
			return Value{}, err
		}
		width, _ := tag.FixedSize()
		be, err := parseHexBytes(s, width, false)
		if err != nil {
			return Value{}, err
		}
		words := wordsFromBE(be)
		if tag == TagUint128 {
			return Uint128Value(words[0], words[1]), nil
		}
		return Uint256Value(words), nil
	case TagBytes32:
		s, err := jsonString(typ, it)
		if err != nil {
			return Value{}, err
		}
		b, err := parseHexBytes(s, 32, true)
		if err != nil {
			return Value{}, err
		}
		var payload [32]byte
		copy(payload[:], b)
		return Bytes32Value(payload), nil
	case TagBitlist:
		s, err := jsonString(typ, it)
		if err != nil {
			return Value{}, err
		}
		bits := make([]bool, len(s))
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '0':
			case '1':
				bits[i] = true
			default:
				return Value{}, fmt.Errorf("invalid bitlist character %q", s[i])
			}
		}
		return Value{Type: TagBitlist, Bits: bits}, nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedType, tag)
	}
}

func jsonUint(typ simdjson.Type, it *simdjson.Iter) (uint64, error) {
	switch typ {
	case simdjson.TypeInt:
		v, err := it.Int()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("integer value must not be negative")
		}
		return uint64(v), nil
	case simdjson.TypeUint:
		return it.Uint()
	case simdjson.TypeFloat:
		v, err := it.Float()
		if err != nil {
			return 0, err
		}
		if v < 0 || v > math.MaxUint64 || math.Trunc(v) != v {
			return 0, fmt.Errorf("integer value must be a whole non-negative number")
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("integer value must be a json number")
	}
}

func jsonString(typ simdjson.Type, it *simdjson.Iter) (string, error) {
	if typ != simdjson.TypeString {
		return "", fmt.Errorf("value must be a json string")
	}
	return it.String()
}

// parseHexBytes decodes a 0x-prefixed hex string into exactly width
// big-endian bytes. When exact is false shorter digit runs are accepted
// and zero-extended on the left.
func parseHexBytes(s string, width int, exact bool) ([]byte, error) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return nil, fmt.Errorf("hex value must carry a 0x prefix")
	}
	digits := s[2:]
	if len(digits) == 0 {
		return nil, fmt.Errorf("hex value has no digits")
	}
	if len(digits) > 2*width {
		return nil, fmt.Errorf("hex value wider than %d bytes", width)
	}
	if exact && len(digits) != 2*width {
		return nil, fmt.Errorf("hex value must hold exactly %d digits, have %d", 2*width, len(digits))
	}
	out := make([]byte, width)
	for i := 0; i < len(digits); i++ {
		n, ok := hexNibble(digits[len(digits)-1-i])
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q", digits[len(digits)-1-i])
		}
		out[width-1-i/2] |= n << (4 * (i % 2))
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
