package dispatch

import (
	"fmt"
	"strconv"
	"time"

	"aeon_dashboard/internal/pkg"
)

// Params is the decoded params object of one action request. JSON numbers
// arrive as float64, ids frequently arrive as strings; the getters absorb
// both so handlers can validate eagerly with one call.
type Params map[string]any

func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func (p Params) RequireString(key string) (string, error) {
	s := p.String(key)
	if s == "" {
		return "", pkg.Validation(key + " is required")
	}
	return s, nil
}

func (p Params) Uint(key string) (uint64, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	case string:
		n, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	case int64:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	case uint64:
		return t, true
	}
	return 0, false
}

func (p Params) RequireUint(key string) (uint64, error) {
	n, ok := p.Uint(key)
	if !ok {
		return 0, pkg.Validation(key + " is required and must be a positive integer")
	}
	return n, nil
}

func (p Params) Int(key string, def int) int {
	if n, ok := p.Uint(key); ok {
		return int(n)
	}
	return def
}

func (p Params) Bool(key string, def bool) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// StringSlice accepts a JSON array of strings.
func (p Params) StringSlice(key string) []string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Time parses an RFC3339 timestamp parameter.
func (p Params) Time(key string) (time.Time, bool) {
	s := p.String(key)
	if s == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
