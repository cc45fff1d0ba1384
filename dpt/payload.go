package dpt

import "fmt"

// PayloadKind identifies the wire shape of a payload.
type PayloadKind int

// Payload kinds.
const (
	// KindArray is a fixed-length byte sequence carried in a long APDU.
	KindArray PayloadKind = iota

	// KindBinary is a single bit carried in the APCI byte of a short APDU.
	KindBinary
)

// String returns the payload kind name.
func (k PayloadKind) String() string {
	switch k {
	case KindArray:
		return "DPTArray"
	case KindBinary:
		return "DPTBinary"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// Payload is a raw KNX APDU value: either a fixed-length byte sequence
// (DPTArray) or a single bit (DPTBinary). The interface is sealed; no other
// implementations exist.
type Payload interface {
	// Kind reports the wire shape of the payload.
	Kind() PayloadKind

	fmt.Stringer
}

// DPTArray is an immutable ordered byte sequence payload.
//
// The bytes are stored in a string so that arrays are comparable with ==
// and cannot be mutated after construction. Use NewDPTArray to build one
// and Bytes to read it back.
type DPTArray struct {
	data string
}

// NewDPTArray creates an array payload from the given bytes.
// The input is copied; later mutation of the caller's slice has no effect.
func NewDPTArray(data ...byte) DPTArray {
	return DPTArray{data: string(data)}
}

// Bytes returns a fresh copy of the payload bytes.
func (a DPTArray) Bytes() []byte {
	return []byte(a.data)
}

// Len returns the number of bytes in the payload.
func (a DPTArray) Len() int {
	return len(a.data)
}

// Kind returns KindArray.
func (a DPTArray) Kind() PayloadKind {
	return KindArray
}

// String returns the payload as uppercase hex, e.g. "DPTArray(0C1A)".
func (a DPTArray) String() string {
	return fmt.Sprintf("DPTArray(%X)", a.data)
}

// DPTBinary is a single-bit payload.
type DPTBinary struct {
	// Value is the bit carried in the short-frame APCI byte.
	Value bool
}

// NewDPTBinary creates a binary payload carrying the given bit.
func NewDPTBinary(value bool) DPTBinary {
	return DPTBinary{Value: value}
}

// Kind returns KindBinary.
func (b DPTBinary) Kind() PayloadKind {
	return KindBinary
}

// String returns "DPTBinary(0)" or "DPTBinary(1)".
func (b DPTBinary) String() string {
	if b.Value {
		return "DPTBinary(1)"
	}
	return "DPTBinary(0)"
}

// Shape is a transcoder's declared wire shape: the payload kind plus, for
// array payloads, the fixed byte length.
type Shape struct {
	Kind   PayloadKind
	Length int // bytes; only meaningful for KindArray
}

// ArrayShape returns the shape of an n-byte array payload.
func ArrayShape(n int) Shape {
	return Shape{Kind: KindArray, Length: n}
}

// BinaryShape is the shape of a single-bit payload.
var BinaryShape = Shape{Kind: KindBinary}

// validatePayload checks that payload matches the declared shape and returns
// the raw numeric components: the byte sequence for arrays, or a
// single-element slice wrapping the bit for binary payloads (so both shapes
// share one return signature).
//
// Every transcoder runs this before any semantic decoding. A nil payload or
// a kind mismatch yields a *PayloadError.
func validatePayload(transcoder string, payload Payload, shape Shape) ([]byte, error) {
	switch p := payload.(type) {
	case DPTArray:
		if shape.Kind != KindArray {
			return nil, &PayloadError{
				Transcoder:   transcoder,
				ExpectedKind: shape.Kind,
				ActualKind:   KindArray,
			}
		}
		if p.Len() != shape.Length {
			return nil, &PayloadError{
				Transcoder:     transcoder,
				ExpectedKind:   KindArray,
				ActualKind:     KindArray,
				ExpectedLength: shape.Length,
				ActualLength:   p.Len(),
			}
		}
		return p.Bytes(), nil

	case DPTBinary:
		if shape.Kind != KindBinary {
			return nil, &PayloadError{
				Transcoder:   transcoder,
				ExpectedKind: shape.Kind,
				ActualKind:   KindBinary,
			}
		}
		if p.Value {
			return []byte{0x01}, nil
		}
		return []byte{0x00}, nil

	default:
		// nil or an unknown Payload implementation
		return nil, &PayloadError{
			Transcoder:   transcoder,
			ExpectedKind: shape.Kind,
			ActualKind:   PayloadKind(-1),
		}
	}
}
