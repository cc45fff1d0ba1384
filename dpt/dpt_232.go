package dpt

import "fmt"

// RGB is the decoded value of DPT 232.600: an RGB colour with one byte per
// channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// AsMap returns a map with "red", "green", and "blue" keys.
func (c RGB) AsMap() map[string]any {
	return map[string]any{
		"red":   int(c.R),
		"green": int(c.G),
		"blue":  int(c.B),
	}
}

// rgbFromMap builds an RGB from a generic map. All three channels are
// required and must be integers 0-255.
func rgbFromMap(m map[string]any) (RGB, error) {
	channel := func(key string) (uint8, error) {
		v, ok := m[key]
		if !ok {
			return 0, fmt.Errorf("missing %s", key)
		}
		n, ok := toInt(v)
		if !ok || n < 0 || n > 255 {
			return 0, fmt.Errorf("%s must be 0-255, got %v", key, v)
		}
		return uint8(n), nil
	}

	r, err := channel("red")
	if err != nil {
		return RGB{}, err
	}
	g, err := channel("green")
	if err != nil {
		return RGB{}, err
	}
	b, err := channel("blue")
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b}, nil
}

// DPTColourRGB implements KNX RGB colour (DPT 232.600): three bytes in
// R, G, B order.
type DPTColourRGB struct {
	meta
}

// ColourRGB is the DPT 232.600 transcoder.
var ColourRGB = DPTColourRGB{meta{
	name:      "DPTColourRGB",
	id:        SubID(232, 600),
	valueType: "color_rgb",
	shape:     ArrayShape(3),
}}

// Decode unpacks the three colour channels.
func (d DPTColourRGB) Decode(payload Payload) (any, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return nil, err
	}
	return RGB{R: raw[0], G: raw[1], B: raw[2]}, nil
}

// Encode accepts an RGB or a generic map (see rgbFromMap).
func (d DPTColourRGB) Encode(value any) (Payload, error) {
	return encodeComplex(d.meta, value, rgbFromMap, d.pack)
}

// pack serialises an RGB into its three bytes.
func (d DPTColourRGB) pack(c RGB) (Payload, error) {
	return NewDPTArray(c.R, c.G, c.B), nil
}

// interface guards
var (
	_ Transcoder   = DPTColourRGB{}
	_ ComplexValue = RGB{}
)
