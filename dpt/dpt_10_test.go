package dpt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDPTTime_Decode(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		want    TimeOfDay
		wantErr bool
	}{
		{
			// weekday bits 0b001 = Monday, hour bits 0b00001 = 1
			"monday 01:05:07",
			NewDPTArray(0x21, 0x05, 0x07),
			TimeOfDay{Weekday: Monday, Hour: 1, Minute: 5, Second: 7},
			false,
		},
		{
			"no specific day",
			NewDPTArray(0x17, 0x3B, 0x3B),
			TimeOfDay{Weekday: AnyDay, Hour: 23, Minute: 59, Second: 59},
			false,
		},
		{
			"sunday is code 7",
			NewDPTArray(0xEC, 0x00, 0x00),
			TimeOfDay{Weekday: Sunday, Hour: 12},
			false,
		},
		{
			// bits 7-6 of minute and second bytes are ignored
			"reserved bits ignored",
			NewDPTArray(0x01, 0xC5, 0xC7),
			TimeOfDay{Weekday: AnyDay, Hour: 1, Minute: 5, Second: 7},
			false,
		},
		{
			// weekday=0, hour=30 packed as 0b000_11110
			"hour out of range",
			NewDPTArray(0x1E, 0x00, 0x00),
			TimeOfDay{},
			true,
		},
		{"two bytes only", NewDPTArray(0x21, 0x05), TimeOfDay{}, true},
		{"four bytes", NewDPTArray(0x21, 0x05, 0x07, 0x00), TimeOfDay{}, true},
		{"binary payload", NewDPTBinary(true), TimeOfDay{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Time.DecodeTime(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("DecodeTime(%v) = %v, want %v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestDPTTime_DecodeErrorKinds(t *testing.T) {
	// Wrong length is a payload error, not a conversion error.
	_, err := Time.DecodeTime(NewDPTArray(0x21, 0x05))
	require.ErrorIs(t, err, ErrInvalidPayload)

	var perr *PayloadError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.ExpectedLength)
	assert.Equal(t, 2, perr.ActualLength)

	// Out-of-range hour is a conversion error carrying the raw bytes.
	_, err = Time.DecodeTime(NewDPTArray(0x1E, 0x00, 0x00))
	require.ErrorIs(t, err, ErrConversion)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.NotNil(t, convErr.Value)
}

func TestDPTTime_Encode(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    DPTArray
		wantErr bool
	}{
		{
			"no specific day sentinel",
			TimeOfDay{},
			NewDPTArray(0x00, 0x00, 0x00),
			false,
		},
		{
			"monday 01:05:07",
			TimeOfDay{Weekday: Monday, Hour: 1, Minute: 5, Second: 7},
			NewDPTArray(0x21, 0x05, 0x07),
			false,
		},
		{
			"sunday emits code 7",
			TimeOfDay{Weekday: Sunday, Hour: 12},
			NewDPTArray(0xEC, 0x00, 0x00),
			false,
		},
		{
			"from map",
			map[string]any{"hour": 1, "minute": 5, "second": 7, "weekday": "monday"},
			NewDPTArray(0x21, 0x05, 0x07),
			false,
		},
		{
			"map without weekday",
			map[string]any{"hour": 23, "minute": 59, "second": 59},
			NewDPTArray(0x17, 0x3B, 0x3B),
			false,
		},
		{"hour out of range", TimeOfDay{Hour: 24}, DPTArray{}, true},
		{"negative minute", TimeOfDay{Minute: -1}, DPTArray{}, true},
		{"unknown weekday name", map[string]any{"hour": 1, "weekday": "someday"}, DPTArray{}, true},
		{"malformed map field", map[string]any{"hour": "late"}, DPTArray{}, true},
		{"unsupported type", "01:05:07", DPTArray{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Time.Encode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Encode(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				// Map parsing and packing failures share one error surface.
				if !errors.Is(err, ErrConversion) {
					t.Errorf("error does not unwrap to ErrConversion: %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Encode(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDPTTime_EncodeFromTime(t *testing.T) {
	// 2026-08-31 is a Monday.
	stamp := time.Date(2026, 8, 31, 1, 5, 7, 0, time.UTC)
	got, err := Time.Encode(stamp)
	require.NoError(t, err)
	assert.Equal(t, Payload(NewDPTArray(0x21, 0x05, 0x07)), got)
}

func TestDPTTime_RoundTrip(t *testing.T) {
	// Every weekday with every hour, plus a minute/second sweep.
	for weekday := AnyDay; weekday <= Sunday; weekday++ {
		for hour := 0; hour <= 23; hour++ {
			value := TimeOfDay{Weekday: weekday, Hour: hour, Minute: 5, Second: 7}
			payload, err := Time.Encode(value)
			if err != nil {
				t.Fatalf("Encode(%v) error = %v", value, err)
			}
			got, err := Time.DecodeTime(payload)
			if err != nil {
				t.Fatalf("DecodeTime(%v) error = %v", payload, err)
			}
			if got != value {
				t.Fatalf("round trip: %v → %v → %v", value, payload, got)
			}
		}
	}

	for minute := 0; minute <= 59; minute++ {
		for second := 0; second <= 59; second++ {
			value := TimeOfDay{Weekday: Friday, Hour: 13, Minute: minute, Second: second}
			payload, err := Time.Encode(value)
			if err != nil {
				t.Fatalf("Encode(%v) error = %v", value, err)
			}
			got, err := Time.DecodeTime(payload)
			if err != nil {
				t.Fatalf("DecodeTime(%v) error = %v", payload, err)
			}
			if got != value {
				t.Fatalf("round trip: %v → %v → %v", value, payload, got)
			}
		}
	}
}

func TestTimeOfDay_MapRoundTrip(t *testing.T) {
	values := []TimeOfDay{
		{},
		{Weekday: Monday, Hour: 1, Minute: 5, Second: 7},
		{Weekday: Sunday, Hour: 23, Minute: 59, Second: 59},
	}

	for _, v := range values {
		got, err := timeOfDayFromMap(v.AsMap())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "01:05:07", TimeOfDay{Hour: 1, Minute: 5, Second: 7}.String())
	assert.Equal(t, "monday 01:05:07", TimeOfDay{Weekday: Monday, Hour: 1, Minute: 5, Second: 7}.String())
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))
	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, Saturday, WeekdayOf(time.Saturday))
}
