// Package wire implements the compact text protocol that embeds one
// structured, typed event inside a single log line, so that both a human
// and a machine parser can extract it.
//
// # Grammar
//
//	message  := TypeMarker '[' property (';' property)* ']'
//	property := ident '=' value ('|' value)*
//	          | ident '=' '{' (entry (',' entry)*)? '}'
//	entry    := key ('=' value)?
//
// A one-character TypeMarker identifies the record kind ('M' for an
// operation record, 'W' for a watcher snapshot). Scalar properties hold
// strings, 64-bit integers or floats; multi-valued properties separate
// values with '|'; map-valued properties enclose entries in braces, where
// an entry without '=' is a bare marker key.
//
// # Escaping
//
// The reserved characters
//
//	;  |  =  ,  {  }  "  \
//
// occurring inside a raw value are escaped with a backslash prefix. The
// reader un-escapes symmetrically, so decode(encode(v)) == v for any value.
// This single canonical rule applies in both directions.
//
// # Canonical Order
//
// Map entries are rendered sorted by key. Canonicalization is guaranteed on
// read — two encodes of the same logical map decode to equal maps — so
// consumers must compare maps as unordered key/value sets, not lines as
// bytes.
//
// # Errors
//
// Decoding is opt-in tooling for consumers of the log stream; it is never
// on the instrumentation hot path. All malformed input is reported to the
// caller as an error wrapping one of the package sentinels
// (ErrUnexpectedEOF, ErrInvalidIdentifier, ErrMalformedNumber,
// ErrMalformedInput); nothing in this package panics on bad input.
package wire
