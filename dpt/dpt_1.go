package dpt

// DPT1Bit implements the KNX 1-bit format (DPT 1.xxx).
//
// Decoded values are bool; the bit travels as a DPTBinary payload.
type DPT1Bit struct {
	meta
}

// 1-bit transcoders.
var (
	// Switch is DPT 1.001: 0=Off, 1=On.
	Switch = DPT1Bit{bit1("DPTSwitch", 1, "switch")}

	// Bool is DPT 1.002: 0=False, 1=True.
	Bool = DPT1Bit{bit1("DPTBool", 2, "bool")}

	// Enable is DPT 1.003: 0=Disable, 1=Enable.
	Enable = DPT1Bit{bit1("DPTEnable", 3, "enable")}

	// Step is DPT 1.007: 0=Decrease, 1=Increase.
	Step = DPT1Bit{bit1("DPTStep", 7, "step")}

	// UpDown is DPT 1.008: 0=Up, 1=Down.
	UpDown = DPT1Bit{bit1("DPTUpDown", 8, "up_down")}

	// OpenClose is DPT 1.009: 0=Open, 1=Close.
	OpenClose = DPT1Bit{bit1("DPTOpenClose", 9, "open_close")}

	// Start is DPT 1.010: 0=Stop, 1=Start.
	Start = DPT1Bit{bit1("DPTStart", 10, "start")}

	// Trigger is DPT 1.017: any telegram triggers.
	Trigger = DPT1Bit{bit1("DPTTrigger", 17, "trigger")}
)

// bit1 builds the identity of a DPT 1.xxx transcoder.
func bit1(name string, sub int, valueType string) meta {
	return meta{
		name:      name,
		id:        SubID(1, sub),
		valueType: valueType,
		shape:     BinaryShape,
	}
}

// Decode returns the payload bit as a bool.
func (d DPT1Bit) Decode(payload Payload) (any, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return nil, err
	}
	return raw[0]&0x01 != 0, nil
}

// DecodeBool is Decode with a concrete return type.
func (d DPT1Bit) DecodeBool(payload Payload) (bool, error) {
	v, err := d.Decode(payload)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Encode accepts a bool and returns a binary payload.
func (d DPT1Bit) Encode(value any) (Payload, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, conversionErr(d.name, value, "bool expected, got %T", value)
	}
	return NewDPTBinary(b), nil
}

// interface guard
var _ Transcoder = DPT1Bit{}
