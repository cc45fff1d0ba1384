package dpt

import "math"

// DPT9 encoding constants.
const (
	// dpt9Min and dpt9Max are the limits of the 2-byte float format itself.
	dpt9Min = -671088.64
	dpt9Max = 670760.96

	// dpt9MaxExponent is the largest exponent the 4-bit field can carry.
	dpt9MaxExponent = 15

	// dpt9MantissaMask extracts the 11-bit mantissa.
	dpt9MantissaMask = 0x07FF

	// dpt9MantissaMin and dpt9MantissaMax bound the signed two's complement
	// mantissa. The range is asymmetric: -2048 is representable, +2048 is not.
	dpt9MantissaMin = -2048
	dpt9MantissaMax = 2047

	// dpt9Invalid is the "sensor error / not available" sentinel defined for
	// all DPT 9.xxx types.
	dpt9Invalid = 0x7FFF
)

// DPT2ByteFloat implements the KNX 2-octet float format (DPT 9.xxx).
//
// Wire layout, big-endian:
//
//	Byte 0: SEEE EMMM (sign, exponent, mantissa high)
//	Byte 1: MMMM MMMM (mantissa low)
//
// Value = (0.01 × mantissa) × 2^exponent
type DPT2ByteFloat struct {
	numeric
}

// 2-byte float transcoders.
var (
	// Float2Byte is the generic DPT 9 value.
	Float2Byte = DPT2ByteFloat{f16("DPT2ByteFloat", MainID(9), "2byte_float", "", dpt9Min, dpt9Max)}

	// Temperature is DPT 9.001: temperature in °C.
	Temperature = DPT2ByteFloat{f16("DPTTemperature", SubID(9, 1), "temperature", "°C", -273, 670760)}

	// Lux is DPT 9.004: illuminance in lux.
	Lux = DPT2ByteFloat{f16("DPTLux", SubID(9, 4), "illuminance", "lx", 0, 670760)}

	// WindSpeed is DPT 9.005: wind speed in m/s.
	WindSpeed = DPT2ByteFloat{f16("DPTWsp", SubID(9, 5), "wind_speed_ms", "m/s", 0, 670760)}

	// Humidity is DPT 9.007: relative humidity in %.
	Humidity = DPT2ByteFloat{f16("DPTHumidity", SubID(9, 7), "humidity", "%", 0, 670760)}
)

// f16 builds a 2-byte float transcoder base with the given range.
func f16(name string, id ID, valueType, unit string, minimum, maximum float64) numeric {
	return numeric{
		meta: meta{
			name:      name,
			id:        id,
			valueType: valueType,
			unit:      unit,
			shape:     ArrayShape(2),
		},
		min:        minimum,
		max:        maximum,
		resolution: 0.01,
	}
}

// DecodeNumeric unpacks the 2-byte float. The 0x7FFF invalid sentinel is
// rejected.
func (d DPT2ByteFloat) DecodeNumeric(payload Payload) (float64, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return 0, err
	}

	bits := uint16(raw[0])<<8 | uint16(raw[1])
	if bits == dpt9Invalid {
		return 0, conversionErr(d.name, raw, "invalid value 0x7FFF (sensor error or not available)")
	}

	negative := bits&0x8000 != 0
	exp := (bits >> 11) & 0x0F
	mantissa := int16(bits & dpt9MantissaMask)
	if negative {
		mantissa |= -0x800 // sign extend the 11-bit two's complement
	}

	return float64(mantissa) * 0.01 * math.Pow(2, float64(exp)), nil
}

// Decode returns the decoded value as float64.
func (d DPT2ByteFloat) Decode(payload Payload) (any, error) {
	return d.DecodeNumeric(payload)
}

// EncodeNumeric packs a value into the 2-byte float format. Values outside
// the transcoder's declared range are rejected.
func (d DPT2ByteFloat) EncodeNumeric(value float64) (Payload, error) {
	if !d.inRange(value) {
		return nil, conversionErr(d.name, value, "value must be %g-%g", d.min, d.max)
	}

	// Normalise the signed mantissa; working on the magnitude instead would
	// lose the asymmetric -2048 extreme.
	exp := 0
	mantissa := value * 100
	for mantissa < dpt9MantissaMin || mantissa > dpt9MantissaMax {
		mantissa /= 2
		exp++
	}
	if exp > dpt9MaxExponent {
		return nil, conversionErr(d.name, value, "exponent overflow")
	}

	m := int16(math.Round(mantissa))

	var sign uint16
	if m < 0 {
		sign = 0x8000
	}
	encoded := sign | uint16(exp)<<11 | uint16(m)&dpt9MantissaMask
	return NewDPTArray(byte(encoded>>8), byte(encoded)), nil
}

// Encode accepts any numeric Go value. See EncodeNumeric.
func (d DPT2ByteFloat) Encode(value any) (Payload, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, conversionErr(d.name, value, "number expected, got %T", value)
	}
	return d.EncodeNumeric(f)
}

// interface guard
var _ Numeric = DPT2ByteFloat{}
