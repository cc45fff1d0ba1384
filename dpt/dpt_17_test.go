package dpt

import (
	"errors"
	"testing"
)

// ─── DPT 17.001 (Scene Number) ─────────────────────────────────────

func TestSceneNumber_Encode(t *testing.T) {
	tests := []struct {
		name    string
		scene   float64
		want    byte
		wantErr bool
	}{
		{"scene 0", 0, 0x00, false},
		{"scene 1", 1, 0x01, false},
		{"scene 63", 63, 0x3F, false},
		{"scene 64 rejected", 64, 0, true},
		{"negative rejected", -1, 0, true},
		{"fractional rejected", 1.5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SceneNumber.EncodeNumeric(tt.scene)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EncodeNumeric(%v) error = %v, wantErr %v", tt.scene, err, tt.wantErr)
			}
			if !tt.wantErr && got != NewDPTArray(tt.want) {
				t.Errorf("EncodeNumeric(%v) = %v, want [%02X]", tt.scene, got, tt.want)
			}
		})
	}
}

func TestSceneNumber_Decode(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    float64
		wantErr bool
	}{
		{"scene 0", NewDPTArray(0x00), 0, false},
		{"scene 63", NewDPTArray(0x3F), 63, false},
		{"upper bits masked", NewDPTArray(0xFF), 63, false},
		{"empty payload", NewDPTArray(), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SceneNumber.DecodeNumeric(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeNumeric() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DecodeNumeric(%v) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

// ─── DPT 18.001 (Scene Control) ────────────────────────────────────

func TestSceneControl_Decode(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    SceneControlData
		wantErr bool
	}{
		{"recall scene 0", NewDPTArray(0x00), SceneControlData{Scene: 0}, false},
		{"recall scene 1", NewDPTArray(0x01), SceneControlData{Scene: 1}, false},
		{"learn scene 0", NewDPTArray(0x80), SceneControlData{Scene: 0, Learn: true}, false},
		{"learn scene 63", NewDPTArray(0xBF), SceneControlData{Scene: 63, Learn: true}, false},
		{"empty payload", NewDPTArray(), SceneControlData{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SceneControl.Decode(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Decode(%v) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestSceneControl_Encode(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    byte
		wantErr bool
	}{
		{"value object", SceneControlData{Scene: 1}, 0x01, false},
		{"learn bit", SceneControlData{Scene: 63, Learn: true}, 0xBF, false},
		{"from map", map[string]any{"scene": 5, "learn": true}, 0x85, false},
		{"map learn defaults to false", map[string]any{"scene": 5}, 0x05, false},
		{"map missing scene", map[string]any{"learn": true}, 0, true},
		{"map scene out of range", map[string]any{"scene": 64}, 0, true},
		{"map learn wrong type", map[string]any{"scene": 1, "learn": "yes"}, 0, true},
		{"unsupported type", 5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SceneControl.Encode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Encode(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrConversion) {
					t.Errorf("error does not unwrap to ErrConversion: %v", err)
				}
				return
			}
			if got != NewDPTArray(tt.want) {
				t.Errorf("Encode(%v) = %v, want [%02X]", tt.value, got, tt.want)
			}
		})
	}
}

func TestSceneControl_MapRoundTrip(t *testing.T) {
	value := SceneControlData{Scene: 42, Learn: true}
	got, err := sceneControlFromMap(value.AsMap())
	if err != nil {
		t.Fatalf("sceneControlFromMap() error = %v", err)
	}
	if got != value {
		t.Errorf("map round trip: %v → %v", value, got)
	}
}
