package wire_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/meterkit/wire"
)

func TestExtract(t *testing.T) {
	payload, ok := wire.Extract('M', "some prefix M[a=1;b=2] trailing")
	require.True(t, ok)
	assert.Equal(t, "a=1;b=2", payload)

	_, ok = wire.Extract('M', "no message here")
	assert.False(t, ok)

	_, ok = wire.Extract('W', "M[a=1]")
	assert.False(t, ok, "marker kind must match")

	payload, ok = wire.Extract('W', "W[]")
	require.True(t, ok)
	assert.Equal(t, "", payload)
}

func TestReaderScalars(t *testing.T) {
	r := wire.NewReader("d=hello world;t0=1000;ld=0.75")

	name, err := r.PropertyName()
	require.NoError(t, err)
	assert.Equal(t, "d", name)
	v, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)

	name, err = r.PropertyName()
	require.NoError(t, err)
	assert.Equal(t, "t0", name)
	n, err := r.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	name, err = r.PropertyName()
	require.NoError(t, err)
	assert.Equal(t, "ld", name)
	f, err := r.Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.75, f)

	assert.False(t, r.HasMore())
}

func TestReaderMultiValue(t *testing.T) {
	r := wire.NewReader("m=100|200|300")
	_, err := r.PropertyName()
	require.NoError(t, err)
	for _, want := range []int64{100, 200, 300} {
		n, err := r.Int64()
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
	assert.False(t, r.HasMore())
}

func TestReaderUnescape(t *testing.T) {
	r := wire.NewReader(`d=a\;b\|c\=d\,e\{f\}g\"h\\i`)
	_, err := r.PropertyName()
	require.NoError(t, err)
	v, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, `a;b|c=d,e{f}g"h\i`, v)
}

func TestReaderMap(t *testing.T) {
	r := wire.NewReader("ctx={k1=v1,k2,k3=}")
	_, err := r.PropertyName()
	require.NoError(t, err)
	m, err := r.Map()
	require.NoError(t, err)

	empty := ""
	v1 := "v1"
	assert.True(t, m.Equal(wire.Map{"k1": &v1, "k2": nil, "k3": &empty}))
}

func TestReaderEmptyMap(t *testing.T) {
	r := wire.NewReader("ctx={}")
	_, err := r.PropertyName()
	require.NoError(t, err)
	m, err := r.Map()
	require.NoError(t, err)
	assert.Len(t, m, 0)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		read    func(r *wire.Reader) error
		want    error
	}{
		{
			name:    "truncated value escape",
			payload: `d=abc\`,
			read: func(r *wire.Reader) error {
				_, err := r.PropertyName()
				if err != nil {
					return err
				}
				_, err = r.String()
				return err
			},
			want: wire.ErrUnexpectedEOF,
		},
		{
			name:    "non identifier property name",
			payload: "1d=abc",
			read: func(r *wire.Reader) error {
				_, err := r.PropertyName()
				return err
			},
			want: wire.ErrInvalidIdentifier,
		},
		{
			name:    "malformed integer",
			payload: "t0=12x4",
			read: func(r *wire.Reader) error {
				_, err := r.PropertyName()
				if err != nil {
					return err
				}
				_, err = r.Int64()
				return err
			},
			want: wire.ErrMalformedNumber,
		},
		{
			name:    "unbalanced map braces",
			payload: "ctx={k1=v1",
			read: func(r *wire.Reader) error {
				_, err := r.PropertyName()
				if err != nil {
					return err
				}
				_, err = r.Map()
				return err
			},
			want: wire.ErrUnexpectedEOF,
		},
		{
			name:    "missing equals",
			payload: "d",
			read: func(r *wire.Reader) error {
				_, err := r.PropertyName()
				if err != nil {
					return err
				}
				_, err = r.String()
				return err
			},
			want: wire.ErrUnexpectedEOF,
		},
		{
			name:    "truncated after separator",
			payload: "a=1;",
			read: func(r *wire.Reader) error {
				_, err := r.PropertyName()
				if err != nil {
					return err
				}
				if _, err = r.Int64(); err != nil {
					return err
				}
				_, err = r.PropertyName()
				return err
			},
			want: wire.ErrUnexpectedEOF,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.read(wire.NewReader(tc.payload))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	v1 := "v1"
	line := wire.NewWriter('M').
		Property("d", "hello world").
		PropertyInt("t0", 1000).
		PropertyInt("t1", 2000).
		PropertyMap("ctx", wire.Map{"k1": &v1, "k2": nil}).
		String()
	assert.Equal(t, "M[d=hello world;t0=1000;t1=2000;ctx={k1=v1,k2}]", line)

	payload, ok := wire.Extract('M', line)
	require.True(t, ok)
	r := wire.NewReader(payload)

	props := map[string]any{}
	for r.HasMore() {
		name, err := r.PropertyName()
		require.NoError(t, err)
		switch name {
		case "d":
			v, err := r.String()
			require.NoError(t, err)
			props[name] = v
		case "t0", "t1":
			n, err := r.Int64()
			require.NoError(t, err)
			props[name] = n
		case "ctx":
			m, err := r.Map()
			require.NoError(t, err)
			props[name] = m
		default:
			t.Fatalf("unknown property %q", name)
		}
	}

	assert.Equal(t, "hello world", props["d"])
	assert.Equal(t, int64(1000), props["t0"])
	assert.Equal(t, int64(2000), props["t1"])
	assert.True(t, props["ctx"].(wire.Map).Equal(wire.Map{"k1": &v1, "k2": nil}))
}

func TestRoundTripReservedCharacters(t *testing.T) {
	values := []string{
		"plain",
		"semi;colon",
		"pipe|pipe",
		"eq=eq",
		"comma,comma",
		"{braces}",
		`quote"quote`,
		`back\slash`,
		`all;of|it=at,once{"}\`,
	}
	for _, v := range values {
		line := wire.NewWriter('M').Property("d", v).String()
		payload, ok := wire.Extract('M', line)
		require.True(t, ok, v)
		r := wire.NewReader(payload)
		_, err := r.PropertyName()
		require.NoError(t, err, v)
		got, err := r.String()
		require.NoError(t, err, v)
		assert.Equal(t, v, got)
	}
}
