package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Extract locates an encoded message of the given kind inside an arbitrary
// log line and returns its payload (the text between the brackets). The
// message starts at the first occurrence of the marker immediately
// followed by '[' and ends at the last ']' of the line. Returns false when
// the line carries no plausible message of that kind.
func Extract(marker byte, line string) (string, bool) {
	open := strings.Index(line, string([]byte{marker, messageOpen}))
	if open < 0 {
		return "", false
	}
	end := strings.LastIndexByte(line, messageClose)
	if end < open+2 {
		return "", false
	}
	return line[open+2 : end], true
}

// Reader parses one message payload produced by Writer. It consumes
// properties strictly left to right and automatically consumes the
// separators between them: after PropertyName, call the value method
// matching the property's type once per value.
//
// Readers keep parse state and are not safe for concurrent use.
type Reader struct {
	src        string
	pos        int
	firstProp  bool
	firstValue bool
}

// NewReader parses the payload returned by Extract.
func NewReader(payload string) *Reader {
	return &Reader{src: payload, firstProp: true}
}

// HasMore reports whether unparsed input remains.
func (r *Reader) HasMore() bool {
	return r.pos < len(r.src)
}

// PropertyName consumes the next property's identifier.
func (r *Reader) PropertyName() (string, error) {
	if !r.firstProp {
		if err := r.operator(propertySep); err != nil {
			return "", err
		}
	} else {
		r.firstProp = false
	}
	r.firstValue = true

	if r.pos >= len(r.src) {
		return "", ErrUnexpectedEOF
	}
	if !isIdentStart(r.src[r.pos]) {
		return "", fmt.Errorf("%w at position %d", ErrInvalidIdentifier, r.pos)
	}
	end := r.pos + 1
	for end < len(r.src) && isIdentPart(r.src[end]) {
		end++
	}
	name := r.src[r.pos:end]
	r.pos = end
	return name, nil
}

// String consumes the next value of the current property, un-escaping
// reserved characters.
func (r *Reader) String() (string, error) {
	if err := r.valueSeparator(); err != nil {
		return "", err
	}
	return r.scan(propertySep, valueSep, 0)
}

// Int64 consumes the next value as a 64-bit integer.
func (r *Reader) Int64() (int64, error) {
	s, err := r.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return n, nil
}

// Uint64 consumes the next value as an unsigned 64-bit integer.
func (r *Reader) Uint64() (uint64, error) {
	s, err := r.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return n, nil
}

// Float64 consumes the next value as a 64-bit float.
func (r *Reader) Float64() (float64, error) {
	s, err := r.String()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}
	return f, nil
}

// Map consumes the current property's value as a brace-delimited map.
// Entries come back canonicalized as an unordered key set; bare marker
// keys have nil values.
func (r *Reader) Map() (Map, error) {
	if err := r.valueSeparator(); err != nil {
		return nil, err
	}
	if err := r.operator(mapOpen); err != nil {
		return nil, err
	}

	m := Map{}
	if r.pos < len(r.src) && r.src[r.pos] == mapClose {
		r.pos++
		return m, nil
	}
	for {
		key, err := r.scan(mapSep, mapClose, mapEq)
		if err != nil {
			return nil, err
		}
		if key == "" {
			return nil, fmt.Errorf("%w: empty map key at position %d", ErrInvalidIdentifier, r.pos)
		}
		if r.pos >= len(r.src) {
			return nil, fmt.Errorf("%w: unbalanced map braces", ErrUnexpectedEOF)
		}
		switch r.src[r.pos] {
		case mapEq:
			r.pos++
			val, err := r.scan(mapSep, mapClose, 0)
			if err != nil {
				return nil, err
			}
			m[key] = &val
		default:
			m[key] = nil
		}
		if r.pos >= len(r.src) {
			return nil, fmt.Errorf("%w: unbalanced map braces", ErrUnexpectedEOF)
		}
		switch r.src[r.pos] {
		case mapSep:
			r.pos++
		case mapClose:
			r.pos++
			return m, nil
		default:
			return nil, fmt.Errorf("%w: expected %q or %q at position %d", ErrMalformedInput, mapSep, mapClose, r.pos)
		}
	}
}

func (r *Reader) valueSeparator() error {
	if r.firstValue {
		r.firstValue = false
		return r.operator(propertyEq)
	}
	return r.operator(valueSep)
}

func (r *Reader) operator(op byte) error {
	if r.pos >= len(r.src) {
		return ErrUnexpectedEOF
	}
	if r.src[r.pos] != op {
		return fmt.Errorf("%w: expected %q at position %d", ErrMalformedInput, op, r.pos)
	}
	r.pos++
	return nil
}

// scan reads characters until one of the stop bytes (a zero stop is
// ignored), un-escaping quote-prefixed reserved characters. The stop byte
// itself is not consumed.
func (r *Reader) scan(stop1, stop2, stop3 byte) (string, error) {
	var sb strings.Builder
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		if c == stop1 || c == stop2 || (stop3 != 0 && c == stop3) {
			return sb.String(), nil
		}
		if c == quote {
			r.pos++
			if r.pos >= len(r.src) {
				return "", fmt.Errorf("%w: unterminated escape", ErrUnexpectedEOF)
			}
			c = r.src[r.pos]
		}
		sb.WriteByte(c)
		r.pos++
	}
	return sb.String(), nil
}
