package wire

import (
	"sort"
	"strconv"
	"strings"
)

// Writer renders one encoded message line. Properties are appended in call
// order; the line is finalized by String.
//
// The zero value is not usable; construct with NewWriter. Writers are not
// safe for concurrent use and are meant to be built, rendered and
// discarded within one emission.
type Writer struct {
	sb     strings.Builder
	first  bool
	closed bool
}

// NewWriter starts a message of the given record kind, e.g. 'M' or 'W'.
func NewWriter(marker byte) *Writer {
	w := &Writer{first: true}
	w.sb.WriteByte(marker)
	w.sb.WriteByte(messageOpen)
	return w
}

// Property appends a string property, multi-valued when more than one
// value is given. Values are escaped; the name must be a plain identifier
// and is written as-is.
func (w *Writer) Property(name string, values ...string) *Writer {
	if w.closed {
		return w
	}
	w.separate()
	w.sb.WriteString(name)
	w.sb.WriteByte(propertyEq)
	for i, v := range values {
		if i > 0 {
			w.sb.WriteByte(valueSep)
		}
		w.escape(v)
	}
	return w
}

// PropertyInt appends an integer property, multi-valued when more than one
// value is given.
func (w *Writer) PropertyInt(name string, values ...int64) *Writer {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatInt(v, 10)
	}
	return w.Property(name, strs...)
}

// PropertyUint appends an unsigned integer property.
func (w *Writer) PropertyUint(name string, values ...uint64) *Writer {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatUint(v, 10)
	}
	return w.Property(name, strs...)
}

// PropertyFloat appends a float property.
func (w *Writer) PropertyFloat(name string, value float64) *Writer {
	return w.Property(name, strconv.FormatFloat(value, 'g', -1, 64))
}

// PropertyMap appends a map property. Entries are written sorted by key;
// nil values render as bare marker keys. Readers canonicalize anyway, so
// the sort only makes encoding deterministic.
func (w *Writer) PropertyMap(name string, m Map) *Writer {
	if w.closed {
		return w
	}
	w.separate()
	w.sb.WriteString(name)
	w.sb.WriteByte(propertyEq)
	w.sb.WriteByte(mapOpen)

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		if i > 0 {
			w.sb.WriteByte(mapSep)
		}
		w.escape(k)
		if v := m[k]; v != nil {
			w.sb.WriteByte(mapEq)
			w.escape(*v)
		}
	}
	w.sb.WriteByte(mapClose)
	return w
}

// String closes the message and returns the complete line. Further
// property calls after String are ignored.
func (w *Writer) String() string {
	if !w.closed {
		w.sb.WriteByte(messageClose)
		w.closed = true
	}
	return w.sb.String()
}

func (w *Writer) separate() {
	if w.first {
		w.first = false
		return
	}
	w.sb.WriteByte(propertySep)
}

func (w *Writer) escape(v string) {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if isReserved(c) {
			w.sb.WriteByte(quote)
		}
		w.sb.WriteByte(c)
	}
}
