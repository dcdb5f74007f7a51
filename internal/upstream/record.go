package upstream

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one raw backend object, decoded from JSON. The legacy backend
// mixes camelCase and snake_case field names and sometimes hides a value
// inside a nested relation, so every accessor takes an ordered list of
// candidate keys and returns the first one that resolves. A key may contain
// dots to reach into nested objects ("customer.name").
type Record map[string]any

// AsRecord converts a decoded JSON value into a Record. Non-objects yield
// an empty record.
func AsRecord(v any) Record {
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// Lookup returns the first candidate key that resolves to a non-nil value.
func (r Record) Lookup(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r.resolve(key); ok {
			return v, true
		}
	}
	return nil, false
}

func (r Record) resolve(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if !strings.Contains(key, ".") {
		v, ok := r[key]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}
	parts := strings.Split(key, ".")
	current := r
	for i, part := range parts {
		v, ok := current[part]
		if !ok || v == nil {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		child, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		current = Record(child)
	}
	return nil, false
}

// Str resolves the candidates to a string. Numeric values are formatted
// (the backend serializes some ids as numbers); anything else yields "".
func (r Record) Str(keys ...string) string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// StrOr is Str with an explicit default.
func (r Record) StrOr(def string, keys ...string) string {
	if s := r.Str(keys...); s != "" {
		return s
	}
	return def
}

// Float resolves the candidates to a float64. String numerics parse; an
// invalid numeric string coerces to 0, matching how the backend's
// stringly-typed quantity fields must be treated.
func (r Record) Float(keys ...string) float64 {
	v, ok := r.Lookup(keys...)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Int resolves the candidates to an int64, truncating fractional values.
func (r Record) Int(keys ...string) int64 {
	return int64(r.Float(keys...))
}

// IntOr is Int with an explicit default for absent fields.
func (r Record) IntOr(def int64, keys ...string) int64 {
	if _, ok := r.Lookup(keys...); !ok {
		return def
	}
	return r.Int(keys...)
}

// Bool resolves the candidates to a bool; "true"/"1" and nonzero numbers
// count as true.
func (r Record) Bool(keys ...string) bool {
	v, ok := r.Lookup(keys...)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}

// Child resolves the candidates to a nested Record; absent or non-object
// values yield nil.
func (r Record) Child(keys ...string) Record {
	v, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// List resolves the candidates to a slice of Records, skipping non-object
// elements.
func (r Record) List(keys ...string) []Record {
	v, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Strings resolves the candidates to a slice of strings.
func (r Record) Strings(keys ...string) []string {
	v, ok := r.Lookup(keys...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Identity resolves the candidates to the record's mandatory id. Total
// absence is a normalization failure, never a silent default.
func (r Record) Identity(entity string, keys ...string) (string, error) {
	if id := r.Str(keys...); id != "" {
		return id, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingIdentity, entity)
}
