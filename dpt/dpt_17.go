package dpt

import "fmt"

// Scene encoding constants.
const (
	// sceneMax is the highest scene number.
	sceneMax = 63

	// sceneMask extracts the scene number.
	sceneMask = 0x3F

	// sceneLearnBit marks a learn/save request in DPT 18.001.
	sceneLearnBit = 0x80
)

// DPTSceneNumber implements KNX scene numbers (DPT 17.001): a single byte
// carrying scene 0-63.
type DPTSceneNumber struct {
	numeric
}

// SceneNumber is the DPT 17.001 transcoder.
var SceneNumber = DPTSceneNumber{numeric{
	meta: meta{
		name:      "DPTSceneNumber",
		id:        SubID(17, 1),
		valueType: "scene_number",
		shape:     ArrayShape(1),
	},
	min:        0,
	max:        sceneMax,
	resolution: 1,
}}

// DecodeNumeric returns the scene number. Bits 7-6 are ignored.
func (d DPTSceneNumber) DecodeNumeric(payload Payload) (float64, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return 0, err
	}
	return float64(raw[0] & sceneMask), nil
}

// Decode returns the scene number as float64.
func (d DPTSceneNumber) Decode(payload Payload) (any, error) {
	return d.DecodeNumeric(payload)
}

// EncodeNumeric packs a scene number 0-63.
func (d DPTSceneNumber) EncodeNumeric(value float64) (Payload, error) {
	if !d.inRange(value) || value != float64(int(value)) {
		return nil, conversionErr(d.name, value, "scene must be an integer 0-%d", sceneMax)
	}
	return NewDPTArray(byte(value) & sceneMask), nil
}

// Encode accepts any numeric Go value. See EncodeNumeric.
func (d DPTSceneNumber) Encode(value any) (Payload, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, conversionErr(d.name, value, "number expected, got %T", value)
	}
	return d.EncodeNumeric(f)
}

// SceneControlData is the decoded value of DPT 18.001: a scene number plus
// whether the scene should be learned (saved) rather than recalled.
type SceneControlData struct {
	Scene uint8
	Learn bool
}

// AsMap returns a map with "scene" and "learn" keys.
func (s SceneControlData) AsMap() map[string]any {
	return map[string]any{
		"scene": int(s.Scene),
		"learn": s.Learn,
	}
}

// sceneControlFromMap builds a SceneControlData from a generic map.
// "scene" is required; "learn" defaults to false.
func sceneControlFromMap(m map[string]any) (SceneControlData, error) {
	sceneValue, ok := m["scene"]
	if !ok {
		return SceneControlData{}, fmt.Errorf("missing scene")
	}
	scene, ok := toInt(sceneValue)
	if !ok || scene < 0 || scene > sceneMax {
		return SceneControlData{}, fmt.Errorf("scene must be 0-%d, got %v", sceneMax, sceneValue)
	}

	data := SceneControlData{Scene: uint8(scene)}
	if v, ok := m["learn"]; ok && v != nil {
		learn, ok := v.(bool)
		if !ok {
			return SceneControlData{}, fmt.Errorf("invalid learn %v", v)
		}
		data.Learn = learn
	}
	return data, nil
}

// DPTSceneControl implements KNX scene control (DPT 18.001).
//
// Bit 7 is the learn flag, bits 5-0 the scene number; bit 6 is reserved.
type DPTSceneControl struct {
	meta
}

// SceneControl is the DPT 18.001 transcoder.
var SceneControl = DPTSceneControl{meta{
	name:      "DPTSceneControl",
	id:        SubID(18, 1),
	valueType: "scene_control",
	shape:     ArrayShape(1),
}}

// Decode unpacks the scene number and learn flag.
func (d DPTSceneControl) Decode(payload Payload) (any, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return nil, err
	}
	return SceneControlData{
		Scene: raw[0] & sceneMask,
		Learn: raw[0]&sceneLearnBit != 0,
	}, nil
}

// Encode accepts a SceneControlData or a generic map (see
// sceneControlFromMap).
func (d DPTSceneControl) Encode(value any) (Payload, error) {
	return encodeComplex(d.meta, value, sceneControlFromMap, d.pack)
}

// pack serialises a SceneControlData into its single byte.
func (d DPTSceneControl) pack(s SceneControlData) (Payload, error) {
	if s.Scene > sceneMax {
		return nil, fmt.Errorf("scene must be 0-%d, got %d", sceneMax, s.Scene)
	}
	b := s.Scene & sceneMask
	if s.Learn {
		b |= sceneLearnBit
	}
	return NewDPTArray(b), nil
}

// interface guards
var (
	_ Numeric      = DPTSceneNumber{}
	_ Transcoder   = DPTSceneControl{}
	_ ComplexValue = SceneControlData{}
)
