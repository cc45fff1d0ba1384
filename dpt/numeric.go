package dpt

// Numeric is implemented by transcoders whose decoded value is a plain
// number. It adds the declared value range and resolution of the format.
type Numeric interface {
	Transcoder

	// Range returns the declared minimum, maximum, and resolution of the
	// format. The range is authoritative metadata: each concrete transcoder
	// enforces its own bounds during Decode and Encode.
	Range() (min, max, resolution float64)

	// DecodeNumeric is Decode with a concrete numeric return type.
	DecodeNumeric(payload Payload) (float64, error)

	// EncodeNumeric is Encode with a concrete numeric parameter type.
	EncodeNumeric(value float64) (Payload, error)
}

// numeric is the base for numeric transcoders: identity plus declared
// minimum, maximum, and resolution.
type numeric struct {
	meta
	min        float64
	max        float64
	resolution float64
}

// Range returns the declared minimum, maximum, and resolution.
func (n numeric) Range() (float64, float64, float64) {
	return n.min, n.max, n.resolution
}

// inRange reports whether value lies within the declared bounds.
func (n numeric) inRange(value float64) bool {
	return value >= n.min && value <= n.max
}

// toFloat coerces the numeric Go kinds accepted by Encode to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
