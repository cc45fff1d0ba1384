package dpt

import (
	"errors"
	"fmt"
)

// Domain errors for the dpt package.
var (
	// ErrInvalidPayload is returned when a payload's kind or length does not
	// match a transcoder's declared wire shape. The payload cannot possibly
	// be this DPT; retrying is pointless.
	ErrInvalidPayload = errors.New("dpt: invalid payload")

	// ErrConversion is returned when a payload has the correct shape but the
	// decoded or encoded value violates the format's semantic constraints
	// (range, enumeration membership, malformed structured input).
	ErrConversion = errors.New("dpt: conversion failed")
)

// PayloadError reports a payload whose kind or length cannot match the
// transcoder's declared wire shape. It unwraps to ErrInvalidPayload.
type PayloadError struct {
	// Transcoder is the name of the transcoder that rejected the payload.
	Transcoder string

	// ExpectedKind and ActualKind describe a payload kind mismatch.
	ExpectedKind PayloadKind
	ActualKind   PayloadKind

	// ExpectedLength and ActualLength describe an array length mismatch.
	// Only meaningful when both kinds are KindArray.
	ExpectedLength int
	ActualLength   int
}

// Error renders the mismatch with expected vs. actual detail so callers can
// log a diagnostic without re-deriving state.
func (e *PayloadError) Error() string {
	if e.ExpectedKind != e.ActualKind {
		return fmt.Sprintf("dpt: invalid payload for %s: want %s, got %s",
			e.Transcoder, e.ExpectedKind, e.ActualKind)
	}
	return fmt.Sprintf("dpt: invalid payload for %s: want %d bytes, got %d",
		e.Transcoder, e.ExpectedLength, e.ActualLength)
}

// Unwrap allows errors.Is(err, ErrInvalidPayload).
func (e *PayloadError) Unwrap() error {
	return ErrInvalidPayload
}

// ConversionError reports a value that cannot be decoded or encoded by a
// transcoder. It carries the offending raw components or input value for
// diagnostic logging and unwraps to ErrConversion.
type ConversionError struct {
	// Transcoder is the name of the transcoder that rejected the value.
	Transcoder string

	// Msg describes why the value was rejected.
	Msg string

	// Value is the rejected input: raw payload bytes on decode, or the
	// caller-supplied value on encode.
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("dpt: conversion failed for %s: %s (value: %v)",
		e.Transcoder, e.Msg, e.Value)
}

// Unwrap allows errors.Is(err, ErrConversion).
func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

// conversionErr builds a *ConversionError with a formatted message.
func conversionErr(transcoder string, value any, format string, args ...any) error {
	return &ConversionError{
		Transcoder: transcoder,
		Msg:        fmt.Sprintf(format, args...),
		Value:      value,
	}
}
