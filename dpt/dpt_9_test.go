package dpt

import (
	"errors"
	"math"
	"testing"
)

func TestDPT2ByteFloat_Decode(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    float64
		wantErr bool
	}{
		{"zero", NewDPTArray(0x00, 0x00), 0, false},
		{"21°C", NewDPTArray(0x0C, 0x1A), 21.0, false},
		{"negative", NewDPTArray(0x85, 0x9C), -6.12, false},
		{"invalid sentinel 0x7FFF", NewDPTArray(0x7F, 0xFF), 0, true},
		{"one byte only", NewDPTArray(0x0C), 0, true},
		{"binary payload", NewDPTBinary(true), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Temperature.DecodeNumeric(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeNumeric() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 0.01 {
				t.Errorf("DecodeNumeric(%v) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestDPT2ByteFloat_SentinelIsConversionError(t *testing.T) {
	_, err := Lux.DecodeNumeric(NewDPTArray(0x7F, 0xFF))
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("error = %v, want ErrConversion", err)
	}

	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("error is %T, want *ConversionError", err)
	}
	if convErr.Value == nil {
		t.Error("ConversionError carries no raw value")
	}
}

func TestDPT2ByteFloat_Encode(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"room temperature", 21.5, false},
		{"negative", -10.5, false},
		{"large", 500000, false},
		{"below absolute zero", -300, true}, // Temperature is -273 °C bounded
		{"out of format range", 700000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Temperature.EncodeNumeric(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EncodeNumeric(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			arr, ok := payload.(DPTArray)
			if !ok || arr.Len() != 2 {
				t.Errorf("EncodeNumeric(%v) = %v, want 2-byte array", tt.value, payload)
			}
		})
	}
}

func TestDPT2ByteFloat_GenericRangeWiderThanTemperature(t *testing.T) {
	// -300 is legal for the raw format, just not for 9.001.
	if _, err := Float2Byte.EncodeNumeric(-300); err != nil {
		t.Errorf("Float2Byte.EncodeNumeric(-300) error = %v", err)
	}
	if _, err := Temperature.EncodeNumeric(-300); err == nil {
		t.Error("Temperature.EncodeNumeric(-300) succeeded, want range rejection")
	}
}

func TestDPT2ByteFloat_NegativeExtreme(t *testing.T) {
	// The mantissa range is asymmetric: -2048 exists, +2048 does not, so the
	// format minimum needs the full negative extreme (0xF800).
	payload, err := Float2Byte.EncodeNumeric(-671088.64)
	if err != nil {
		t.Fatalf("EncodeNumeric(-671088.64) error = %v", err)
	}
	if payload != Payload(NewDPTArray(0xF8, 0x00)) {
		t.Fatalf("EncodeNumeric(-671088.64) = %v, want DPTArray(F800)", payload)
	}

	got, err := Float2Byte.DecodeNumeric(payload)
	if err != nil {
		t.Fatalf("DecodeNumeric() error = %v", err)
	}
	if got != -671088.64 {
		t.Errorf("DecodeNumeric() = %v, want -671088.64", got)
	}

	// Every value between the minimum and the largest magnitude the positive
	// mantissa covers must encode too.
	for _, v := range []float64{-671088.64, -671000, -670800, -670760.96} {
		if _, err := Float2Byte.EncodeNumeric(v); err != nil {
			t.Errorf("EncodeNumeric(%v) error = %v", v, err)
		}
	}
}

func TestDPT2ByteFloat_EncodeRounds(t *testing.T) {
	// Half a resolution step rounds up rather than truncating to zero.
	payload, err := Float2Byte.EncodeNumeric(0.005)
	if err != nil {
		t.Fatalf("EncodeNumeric(0.005) error = %v", err)
	}
	got, err := Float2Byte.DecodeNumeric(payload)
	if err != nil {
		t.Fatalf("DecodeNumeric() error = %v", err)
	}
	if got != 0.01 {
		t.Errorf("DecodeNumeric() = %v, want 0.01", got)
	}
}

func TestDPT2ByteFloat_RoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 21.5, -10.0, 100.0, 500.0, -40.0, 670000}

	for _, v := range values {
		payload, err := Float2Byte.EncodeNumeric(v)
		if err != nil {
			t.Errorf("EncodeNumeric(%v) error = %v", v, err)
			continue
		}
		got, err := Float2Byte.DecodeNumeric(payload)
		if err != nil {
			t.Errorf("DecodeNumeric() error = %v", err)
			continue
		}

		// The format has 11 bits of mantissa; allow 1% tolerance.
		tolerance := math.Abs(v) * 0.01
		if tolerance < 0.1 {
			tolerance = 0.1
		}
		if math.Abs(got-v) > tolerance {
			t.Errorf("round trip: %v → %v → %v", v, payload, got)
		}
	}
}

func TestDPT2ByteFloat_EncodeNonNumber(t *testing.T) {
	if _, err := Humidity.Encode("wet"); !errors.Is(err, ErrConversion) {
		t.Errorf("Encode(string) error = %v, want ErrConversion", err)
	}
}
