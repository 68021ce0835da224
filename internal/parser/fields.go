package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// lookup returns the first non-nil value among the given alias keys.
// Providers are inconsistent about field names ("text" vs "word",
// "speaker_id" vs "speaker"), so every field read goes through an
// ordered alias list.
func lookup(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// stringField coerces the first present alias to a string. Returns
// false when no alias is present or the coerced value is empty.
func stringField(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch tv := v.(type) {
		case string:
			s = tv
		case json.Number:
			s = tv.String()
		default:
			s = fmt.Sprint(tv)
		}
		if s != "" {
			return s, true
		}
	}
	return "", false
}

// floatField reads a numeric field under the given alias keys.
// present reports whether any alias carried a value at all; ok reports
// whether that value was coercible to a float. A present-but-garbage
// value (e.g. "abc" where a timestamp belongs) yields present=true,
// ok=false so callers can skip the entry rather than abort the parse.
func floatField(m map[string]any, keys ...string) (f float64, ok bool, present bool) {
	v, found := lookup(m, keys...)
	if !found {
		return 0, false, false
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, false, true
	}
	return f, true, true
}

// toFloat coerces JSON scalar values to float64. JSON numbers decode as
// float64, but some providers quote numbers as strings.
func toFloat(v any) (float64, error) {
	switch tv := v.(type) {
	case float64:
		return tv, nil
	case float32:
		return float64(tv), nil
	case int:
		return float64(tv), nil
	case int64:
		return float64(tv), nil
	case json.Number:
		return tv.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(tv), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

// objectSlice reads a list of JSON objects under key. Non-object
// elements are dropped; a missing or non-list value yields nil.
func objectSlice(m map[string]any, key string) []map[string]any {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		if obj, ok := el.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// objectField reads a nested JSON object under key.
func objectField(m map[string]any, key string) (map[string]any, bool) {
	obj, ok := m[key].(map[string]any)
	return obj, ok
}
