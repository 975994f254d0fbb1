package wire

// Protocol characters. The reserved set (everything that must be escaped
// inside raw values) is the separators plus the string delimiter and the
// quote character itself.
const (
	messageOpen  = '['
	messageClose = ']'
	propertySep  = ';'
	propertyEq   = '='
	valueSep     = '|'
	mapOpen      = '{'
	mapClose     = '}'
	mapSep       = ','
	mapEq        = '='
	stringDelim  = '"'
	quote        = '\\'
)

// Map is the value of a map-typed property. A nil entry value denotes a
// bare marker key (rendered without '='); a pointer to the empty string
// denotes an explicit empty value.
type Map map[string]*string

// Equal reports whether two maps hold the same entries, comparing marker
// keys and explicit values distinctly.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		ov, ok := other[k]
		if !ok {
			return false
		}
		if (v == nil) != (ov == nil) {
			return false
		}
		if v != nil && *v != *ov {
			return false
		}
	}
	return true
}

func isReserved(c byte) bool {
	switch c {
	case propertySep, valueSep, propertyEq, mapSep, mapOpen, mapClose, stringDelim, quote:
		return true
	}
	return false
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
