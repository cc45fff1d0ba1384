package dpt

import "errors"

// ComplexValue is a structured decoded value with named fields. It converts
// to a generic string-keyed map for configuration and JSON round trips; each
// value type pairs this with an explicit fallible ...FromMap constructor.
//
// Values are transient: constructed fresh on each decode and consumed
// immediately by callers.
type ComplexValue interface {
	// AsMap returns a JSON-serialisable map representation of the value.
	AsMap() map[string]any
}

// encodeComplex implements Encode for transcoders whose value is a
// ComplexValue. It accepts either an already-constructed value of type T or
// a generic string-keyed map, which is first converted through fromMap.
//
// Any failure, whether in the map conversion or in the lower-level pack, is
// surfaced as a single *ConversionError carrying the original message and
// the offending input, so callers see one error shape regardless of where
// the failure originated.
func encodeComplex[T ComplexValue](m meta, value any, fromMap func(map[string]any) (T, error), pack func(T) (Payload, error)) (Payload, error) {
	var v T
	switch input := value.(type) {
	case T:
		v = input
	case map[string]any:
		parsed, err := fromMap(input)
		if err != nil {
			return nil, &ConversionError{Transcoder: m.name, Msg: err.Error(), Value: value}
		}
		v = parsed
	default:
		return nil, conversionErr(m.name, value, "unsupported value type %T", value)
	}

	payload, err := pack(v)
	if err != nil {
		var convErr *ConversionError
		if errors.As(err, &convErr) {
			return nil, err
		}
		return nil, &ConversionError{Transcoder: m.name, Msg: err.Error(), Value: value}
	}
	return payload, nil
}
