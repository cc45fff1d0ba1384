package dpt

import "fmt"

// ID identifies a datapoint type by its main number and optional sub number.
//
// The main number describes the wire format and encoding (e.g. 9 for the
// 2-octet float); the sub number narrows it to a measurement with a value
// range and unit (e.g. 9.001 for temperature in °C). An ID without a sub
// number identifies the generic format itself.
type ID struct {
	Main   int
	Sub    int
	HasSub bool
}

// MainID returns the ID of a generic format with no sub number.
func MainID(main int) ID {
	return ID{Main: main}
}

// SubID returns the ID of a specific datapoint type.
func SubID(main, sub int) ID {
	return ID{Main: main, Sub: sub, HasSub: true}
}

// String renders the ID in KNX notation: "9" or "9.001".
func (id ID) String() string {
	if !id.HasSub {
		return fmt.Sprintf("%d", id.Main)
	}
	return fmt.Sprintf("%d.%03d", id.Main, id.Sub)
}

// Transcoder converts between raw bus payloads and typed values for one
// datapoint type.
//
// Implementations are pure and stateless: Decode and Encode have no side
// effects, perform no I/O, and are safe for concurrent use.
type Transcoder interface {
	// ID returns the transcoder's main/sub identity.
	ID() ID

	// ValueType returns the transcoder's string alias (e.g. "temperature"),
	// or "" if it has none.
	ValueType() string

	// Unit returns the measurement unit of decoded values (e.g. "°C"),
	// or "" if the format is unitless.
	Unit() string

	// Shape returns the wire shape the transcoder expects.
	Shape() Shape

	// Decode converts a payload to a typed value. It validates the payload
	// shape first, returning a *PayloadError on mismatch, and rejects raw
	// components outside the format's legal value space with a
	// *ConversionError.
	Decode(payload Payload) (any, error)

	// Encode converts a value to a payload of the transcoder's declared
	// shape. Values that cannot be represented (wrong type, out of range)
	// are rejected with a *ConversionError.
	Encode(value any) (Payload, error)
}

// meta holds the static identity shared by every transcoder: name (used in
// error messages), ID, value-type alias, unit, and wire shape.
//
// meta and the family bases embedding it are not transcoders themselves and
// are never registered; only the concrete instances declared in the dpt_*.go
// files are.
type meta struct {
	name      string
	id        ID
	valueType string
	unit      string
	shape     Shape
}

// ID returns the transcoder's main/sub identity.
func (m meta) ID() ID {
	return m.id
}

// ValueType returns the transcoder's string alias, or "".
func (m meta) ValueType() string {
	return m.valueType
}

// Unit returns the measurement unit, or "".
func (m meta) Unit() string {
	return m.unit
}

// Shape returns the declared wire shape.
func (m meta) Shape() Shape {
	return m.shape
}

// validate checks payload against the declared shape and extracts the raw
// components. See validatePayload.
func (m meta) validate(payload Payload) ([]byte, error) {
	return validatePayload(m.name, payload, m.shape)
}
