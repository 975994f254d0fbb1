package wire_test

import (
	"testing"

	"github.com/aalemi-dev/meterkit/wire"
)

func str(s string) *string { return &s }

func TestWriterSingleProperty(t *testing.T) {
	got := wire.NewWriter('M').PropertyInt("a", 0).String()
	if got != "M[a=0]" {
		t.Errorf("got %q", got)
	}
}

func TestWriterMultiValue(t *testing.T) {
	tests := []struct {
		values []int64
		want   string
	}{
		{[]int64{0}, "M[a=0]"},
		{[]int64{0, 1}, "M[a=0|1]"},
		{[]int64{0, 1, 2}, "M[a=0|1|2]"},
		{[]int64{0, 1, 2, 3}, "M[a=0|1|2|3]"},
	}
	for _, tc := range tests {
		if got := wire.NewWriter('M').PropertyInt("a", tc.values...).String(); got != tc.want {
			t.Errorf("PropertyInt(%v) = %q, want %q", tc.values, got, tc.want)
		}
	}
}

func TestWriterSeveralProperties(t *testing.T) {
	got := wire.NewWriter('M').
		PropertyInt("a", 0, 1).
		PropertyInt("b", 4, 5).
		String()
	if got != "M[a=0|1;b=4|5]" {
		t.Errorf("got %q", got)
	}
}

func TestWriterEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `M[d=plain]`},
		{"hello world", `M[d=hello world]`},
		{"a;b", `M[d=a\;b]`},
		{"a|b", `M[d=a\|b]`},
		{"a=b", `M[d=a\=b]`},
		{"a,b", `M[d=a\,b]`},
		{"{x}", `M[d=\{x\}]`},
		{`say "hi"`, `M[d=say \"hi\"]`},
		{`back\slash`, `M[d=back\\slash]`},
	}
	for _, tc := range tests {
		if got := wire.NewWriter('M').Property("d", tc.in).String(); got != tc.want {
			t.Errorf("Property(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriterMapSortedByKey(t *testing.T) {
	m := wire.Map{"k2": nil, "k1": str("v1")}
	got := wire.NewWriter('M').PropertyMap("ctx", m).String()
	if got != "M[ctx={k1=v1,k2}]" {
		t.Errorf("got %q", got)
	}
}

func TestWriterEmptyMap(t *testing.T) {
	got := wire.NewWriter('M').PropertyMap("ctx", wire.Map{}).String()
	if got != "M[ctx={}]" {
		t.Errorf("got %q", got)
	}
}

func TestWriterLiteralLine(t *testing.T) {
	// The reference line for the full grammar: scalar, integer and
	// map-valued properties in one message.
	got := wire.NewWriter('M').
		Property("d", "hello world").
		PropertyInt("t0", 1000).
		PropertyInt("t1", 2000).
		PropertyMap("ctx", wire.Map{"k1": str("v1"), "k2": nil}).
		String()
	if got != "M[d=hello world;t0=1000;t1=2000;ctx={k1=v1,k2}]" {
		t.Errorf("got %q", got)
	}
}

func TestWriterClosedIsStable(t *testing.T) {
	w := wire.NewWriter('W')
	w.PropertyInt("c", 1)
	first := w.String()
	w.PropertyInt("ignored", 2)
	if second := w.String(); second != first {
		t.Errorf("writer reopened after String: %q vs %q", first, second)
	}
}
