package dpt

import (
	"fmt"
	"strings"
	"time"
)

// DPT10 bit layout, big-endian, bytes 0..2:
//
//	Byte 0: bits 7-5 weekday (0=any, 1=Monday .. 7=Sunday), bits 4-0 hour
//	Byte 1: bits 5-0 minute (bits 7-6 zero on encode, ignored on decode)
//	Byte 2: bits 5-0 second (bits 7-6 zero on encode, ignored on decode)
const (
	dpt10WeekdayMask  = 0xE0
	dpt10WeekdayShift = 5
	dpt10HourMask     = 0x1F
	dpt10MinuteMask   = 0x3F
	dpt10SecondMask   = 0x3F
)

// Weekday is the day-of-week field of a time-of-day value.
//
// The zero value AnyDay means "no specific day"; Monday through Sunday map
// directly onto the wire codes 1-7. Note the numbering differs from
// time.Weekday, which starts the week on Sunday.
type Weekday int

// Weekday values.
const (
	AnyDay Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"any", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// String returns the lowercase English day name, or "any".
func (w Weekday) String() string {
	if w < AnyDay || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// WeekdayOf converts a time.Weekday to a Weekday.
func WeekdayOf(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(w)
}

// parseWeekday converts a lowercase English day name back to a Weekday.
func parseWeekday(name string) (Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return AnyDay, false
}

// TimeOfDay is the decoded value of DPT 10.001: a time of day with an
// optional weekday. The zero value is 00:00:00 on no specific day.
type TimeOfDay struct {
	Hour    int
	Minute  int
	Second  int
	Weekday Weekday
}

// TimeOfDayOf extracts the time of day and weekday from a time.Time.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: WeekdayOf(t.Weekday()),
	}
}

// String renders "monday 01:05:07", or "01:05:07" for AnyDay.
func (t TimeOfDay) String() string {
	if t.Weekday == AnyDay {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%s %02d:%02d:%02d", t.Weekday, t.Hour, t.Minute, t.Second)
}

// AsMap returns a map with "hour", "minute", and "second" keys. When the
// value has a specific day, "weekday" holds the lowercase day name.
func (t TimeOfDay) AsMap() map[string]any {
	m := map[string]any{
		"hour":   t.Hour,
		"minute": t.Minute,
		"second": t.Second,
	}
	if t.Weekday != AnyDay {
		m["weekday"] = t.Weekday.String()
	}
	return m
}

// timeOfDayFromMap builds a TimeOfDay from a generic map as produced by
// AsMap. Missing time fields default to zero; a missing weekday means
// AnyDay. Range validation happens during encoding.
func timeOfDayFromMap(m map[string]any) (TimeOfDay, error) {
	var t TimeOfDay
	for _, field := range []struct {
		key string
		dst *int
	}{
		{"hour", &t.Hour},
		{"minute", &t.Minute},
		{"second", &t.Second},
	} {
		v, ok := m[field.key]
		if !ok {
			continue
		}
		n, ok := toInt(v)
		if !ok {
			return TimeOfDay{}, fmt.Errorf("invalid %s %v", field.key, v)
		}
		*field.dst = n
	}

	if v, ok := m["weekday"]; ok && v != nil {
		name, ok := v.(string)
		if !ok {
			return TimeOfDay{}, fmt.Errorf("invalid weekday %v", v)
		}
		day, ok := parseWeekday(name)
		if !ok {
			return TimeOfDay{}, fmt.Errorf("unknown weekday %q", name)
		}
		t.Weekday = day
	}
	return t, nil
}

// DPTTime implements KNX 3-octet time of day (DPT 10.001).
type DPTTime struct {
	meta
}

// Time is the DPT 10.001 transcoder.
var Time = DPTTime{meta{
	name:      "DPTTime",
	id:        SubID(10, 1),
	valueType: "time",
	shape:     ArrayShape(3),
}}

// Decode unpacks a 3-byte payload into a TimeOfDay. Field values outside
// their legal ranges are rejected with the raw bytes attached.
func (d DPTTime) Decode(payload Payload) (any, error) {
	return d.DecodeTime(payload)
}

// DecodeTime is Decode with a concrete return type.
func (d DPTTime) DecodeTime(payload Payload) (TimeOfDay, error) {
	raw, err := d.validate(payload)
	if err != nil {
		return TimeOfDay{}, err
	}

	t := TimeOfDay{
		Weekday: Weekday((raw[0] & dpt10WeekdayMask) >> dpt10WeekdayShift),
		Hour:    int(raw[0] & dpt10HourMask),
		Minute:  int(raw[1] & dpt10MinuteMask),
		Second:  int(raw[2] & dpt10SecondMask),
	}
	if err := t.check(); err != nil {
		return TimeOfDay{}, &ConversionError{Transcoder: d.name, Msg: err.Error(), Value: raw}
	}
	return t, nil
}

// Encode accepts a TimeOfDay, a time.Time, or a generic map (see
// timeOfDayFromMap) and packs it into the 3-byte layout. The weekday code 0
// ("any day") is emitted for values without a specific day.
func (d DPTTime) Encode(value any) (Payload, error) {
	if t, ok := value.(time.Time); ok {
		value = TimeOfDayOf(t)
	}
	return encodeComplex(d.meta, value, timeOfDayFromMap, d.pack)
}

// pack serialises a validated TimeOfDay into the wire layout.
func (d DPTTime) pack(t TimeOfDay) (Payload, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	return NewDPTArray(
		byte(t.Weekday)<<dpt10WeekdayShift|byte(t.Hour),
		byte(t.Minute),
		byte(t.Second),
	), nil
}

// check verifies every field is inside its legal range.
func (t TimeOfDay) check() error {
	if t.Weekday < AnyDay || t.Weekday > Sunday {
		return fmt.Errorf("weekday must be 0-7, got %d", int(t.Weekday))
	}
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("hour must be 0-23, got %d", t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("minute must be 0-59, got %d", t.Minute)
	}
	if t.Second < 0 || t.Second > 59 {
		return fmt.Errorf("second must be 0-59, got %d", t.Second)
	}
	return nil
}

// interface guards
var (
	_ Transcoder   = DPTTime{}
	_ ComplexValue = TimeOfDay{}
)
