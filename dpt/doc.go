// Package dpt converts between raw KNX bus payloads and strongly-typed
// application values.
//
// KNX communicates through group addresses, and every group object carries a
// value in a standardised Datapoint Type (DPT) written as "main.sub", for
// example 9.001 for a temperature in °C. The main number describes the wire
// format and encoding; the sub number narrows it to a measurement with a
// value range and unit. This package provides the transcoder for each
// supported DPT plus a registry so callers can resolve one from the
// identifiers found in configuration files and ETS project exports.
//
// # Payloads
//
// Two wire shapes exist: DPTArray, a fixed-length byte sequence carried in a
// long APDU, and DPTBinary, a single bit carried in the APCI byte of a short
// frame. Transcoders declare which shape and length they expect, and every
// Decode validates the payload against that declaration before touching its
// contents.
//
// # Transcoders
//
// Every format implements the Transcoder interface:
//
//	t, ok := dpt.Resolve("9.001")
//	if !ok {
//	    return fmt.Errorf("unknown DPT")
//	}
//	value, err := t.Decode(dpt.NewDPTArray(0x0C, 0x1A)) // 21.0 °C
//
// Numeric formats additionally implement Numeric, exposing their declared
// minimum, maximum and resolution; structured formats (time of day, scene
// control, RGB colour) decode to value objects implementing ComplexValue and
// accept either the value object or a generic string-keyed map on encode.
//
// # Lookup
//
// Resolve accepts an integer main number, a value-type alias ("temperature"),
// a numeric string ("9", "DPT-9", "9.001"), or a {"main": 9, "sub": 1} map.
// A miss is reported comma-ok style; it is an expected outcome, not an
// error.
//
// # Errors
//
// A payload whose kind or length cannot match the format fails with a
// *PayloadError (errors.Is ErrInvalidPayload); a payload or value that
// violates the format's semantic constraints fails with a *ConversionError
// (errors.Is ErrConversion). Both carry the expected/actual detail needed to
// log a diagnostic. Conversions are deterministic, so nothing is ever
// retried internally.
//
// # Thread Safety
//
// Transcoders are pure and stateless, and registries are immutable after
// construction; everything in this package is safe for concurrent use.
//
// # References
//
//   - KNX Specification: https://www.knx.org
package dpt
