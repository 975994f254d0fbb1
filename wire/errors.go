package wire

import "errors"

// Sentinel decode errors. Errors returned by Reader methods wrap one of
// these; match with errors.Is.
var (
	// ErrUnexpectedEOF reports truncated input: a message, value, escape
	// sequence or map that ends before its closing delimiter.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidIdentifier reports a property or map key that does not
	// start with a letter or underscore.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMalformedNumber reports a numeric property whose value does not
	// parse as a 64-bit integer or float.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrMalformedInput reports any other protocol violation, such as a
	// missing separator or unbalanced map braces.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownProperty is returned by record decoders when a property
	// name is not recognized. Unknown properties are a protocol error,
	// never silently skipped.
	ErrUnknownProperty = errors.New("unknown property")
)
