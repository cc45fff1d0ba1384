package dpt

import "math"

// DPT5 encoding constants.
const (
	// dpt5RawMax is the maximum raw value of the 1-byte unsigned format.
	dpt5RawMax = 255

	// dpt5AngleMax is the engineering maximum of DPT 5.003 in degrees.
	dpt5AngleMax = 360

	// dpt5PercentMax is the engineering maximum of DPT 5.001 in percent.
	dpt5PercentMax = 100
)

// DPT1ByteUnsigned implements the KNX 1-byte unsigned format (DPT 5.xxx).
//
// The raw byte 0..255 maps linearly onto the engineering range declared per
// instance: raw 255 corresponds to the maximum value (100 % for 5.001, 360°
// for 5.003, 255 for the unscaled types).
type DPT1ByteUnsigned struct {
	numeric

	// factor converts one raw count to engineering units.
	factor float64
}

// 1-byte unsigned transcoders.
var (
	// Value1ByteUnsigned is the generic DPT 5 counter value (0-255).
	Value1ByteUnsigned = DPT1ByteUnsigned{
		numeric: numeric{
			meta:       u8Meta("DPTValue1ByteUnsigned", MainID(5), "1byte_unsigned", "counter pulses"),
			min:        0,
			max:        dpt5RawMax,
			resolution: 1,
		},
		factor: 1,
	}

	// Scaling is DPT 5.001: 0-100 %, raw 0-255.
	Scaling = DPT1ByteUnsigned{
		numeric: numeric{
			meta:       u8Meta("DPTScaling", SubID(5, 1), "percent", "%"),
			min:        0,
			max:        dpt5PercentMax,
			resolution: float64(dpt5PercentMax) / dpt5RawMax,
		},
		factor: float64(dpt5PercentMax) / dpt5RawMax,
	}

	// Angle is DPT 5.003: 0-360°, raw 0-255.
	Angle = DPT1ByteUnsigned{
		numeric: numeric{
			meta:       u8Meta("DPTAngle", SubID(5, 3), "angle", "°"),
			min:        0,
			max:        dpt5AngleMax,
			resolution: float64(dpt5AngleMax) / dpt5RawMax,
		},
		factor: float64(dpt5AngleMax) / dpt5RawMax,
	}

	// PercentU8 is DPT 5.004: 0-255 %, unscaled.
	PercentU8 = DPT1ByteUnsigned{
		numeric: numeric{
			meta:       u8Meta("DPTPercentU8", SubID(5, 4), "percent_u8", "%"),
			min:        0,
			max:        dpt5RawMax,
			resolution: 1,
		},
		factor: 1,
	}
)

// u8Meta builds the identity of a DPT 5.xxx transcoder.
func u8Meta(name string, id ID, valueType, unit string) meta {
	return meta{
		name:      name,
		id:        id,
		valueType: valueType,
		unit:      unit,
		shape:     ArrayShape(1),
	}
}

// DecodeNumeric converts the raw byte to engineering units.
func (d DPT1ByteUnsigned) DecodeNumeric(payload Payload) (float64, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return 0, err
	}
	return float64(raw[0]) * d.factor, nil
}

// Decode returns the decoded value as float64.
func (d DPT1ByteUnsigned) Decode(payload Payload) (any, error) {
	return d.DecodeNumeric(payload)
}

// EncodeNumeric converts an engineering value to the raw byte. Values
// outside the declared range are rejected.
func (d DPT1ByteUnsigned) EncodeNumeric(value float64) (Payload, error) {
	if !d.inRange(value) {
		return nil, conversionErr(d.name, value, "value must be %g-%g", d.min, d.max)
	}
	raw := math.Round(value / d.factor)
	return NewDPTArray(byte(raw)), nil
}

// Encode accepts any numeric Go value. See EncodeNumeric.
func (d DPT1ByteUnsigned) Encode(value any) (Payload, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, conversionErr(d.name, value, "number expected, got %T", value)
	}
	return d.EncodeNumeric(f)
}

// interface guard
var _ Numeric = DPT1ByteUnsigned{}
