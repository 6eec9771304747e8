package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsStringCoercion(t *testing.T) {
	p := Params{
		"str":  "hello",
		"num":  float64(42),
		"flag": true,
		"nil":  nil,
	}
	assert.Equal(t, "hello", p.String("str"))
	assert.Equal(t, "42", p.String("num"))
	assert.Equal(t, "true", p.String("flag"))
	assert.Equal(t, "", p.String("nil"))
	assert.Equal(t, "", p.String("missing"))
}

func TestParamsUintAcceptsNumbersAndStrings(t *testing.T) {
	p := Params{
		"float":    float64(42),
		"str":      "42",
		"negative": float64(-1),
		"junk":     "forty-two",
	}

	n, ok := p.Uint("float")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), n)

	n, ok = p.Uint("str")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), n)

	_, ok = p.Uint("negative")
	assert.False(t, ok)
	_, ok = p.Uint("junk")
	assert.False(t, ok)
	_, ok = p.Uint("missing")
	assert.False(t, ok)
}

func TestParamsRequireStringError(t *testing.T) {
	p := Params{}
	_, err := p.RequireString("userId")
	require.Error(t, err)
	assert.EqualError(t, err, "userId is required")
}

func TestParamsBoolAndInt(t *testing.T) {
	p := Params{
		"on":     true,
		"onStr":  "true",
		"badStr": "maybe",
		"n":      float64(7),
	}
	assert.True(t, p.Bool("on", false))
	assert.True(t, p.Bool("onStr", false))
	assert.False(t, p.Bool("badStr", false))
	assert.True(t, p.Bool("missing", true))
	assert.Equal(t, 7, p.Int("n", 0))
	assert.Equal(t, 14, p.Int("missing", 14))
}

func TestParamsStringSlice(t *testing.T) {
	p := Params{
		"opts":  []any{"a", "b", float64(3)},
		"notAn": "array",
	}
	assert.Equal(t, []string{"a", "b"}, p.StringSlice("opts"))
	assert.Nil(t, p.StringSlice("notAn"))
	assert.Nil(t, p.StringSlice("missing"))
}

func TestParamsTime(t *testing.T) {
	p := Params{
		"good": "2024-06-01T00:00:00Z",
		"bad":  "yesterday",
	}
	ts, ok := p.Time("good")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ts)

	_, ok = p.Time("bad")
	assert.False(t, ok)
}
