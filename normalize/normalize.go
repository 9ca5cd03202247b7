// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// ErrMalformed is matched by every *Error via errors.Is
var ErrMalformed = errors.New("malformed payload")

// Error reports a payload that cannot be turned into a record at all.
// Missing optional fields never produce an Error; they default instead.
type Error struct {
	Payload string // which payload type was being decoded
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("normalize %s: %s", e.Payload, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrMalformed
}

func malformed(payload, format string, args ...any) error {
	return &Error{Payload: payload, Reason: fmt.Sprintf(format, args...)}
}

// parse decodes raw JSON into generic values (objects become map[string]any)
func parse(payload string, raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, malformed(payload, "invalid JSON: %v", err)
	}
	return v, nil
}

// listOf accepts a bare array, {data:[...]} or {<key>:[...]} for any of keys
func listOf(v any, keys ...string) ([]any, bool) {
	if arr, ok := v.([]any); ok {
		return arr, true
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, k := range append([]string{"data"}, keys...) {
		if arr, ok := m[k].([]any); ok {
			return arr, true
		}
	}
	return nil, false
}

// objectOf accepts a bare object or {data:{...}}
func objectOf(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	if inner, ok := m["data"].(map[string]any); ok {
		return inner, true
	}
	return m, true
}

// pick returns the first non-empty value across a priority-ordered alias list
func pick(m map[string]any, aliases ...string) any {
	for _, a := range aliases {
		v, ok := m[a]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	var s string
	if err := mapstructure.WeakDecode(v, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func asInt(v any) int {
	if v == nil {
		return 0
	}
	var n int
	if err := mapstructure.WeakDecode(v, &n); err != nil {
		var f float64
		if err := mapstructure.WeakDecode(v, &f); err != nil {
			return 0
		}
		return int(f)
	}
	return n
}

func asOptionalInt(v any) *int {
	if v == nil {
		return nil
	}
	var f float64
	if err := mapstructure.WeakDecode(v, &f); err != nil {
		return nil
	}
	n := int(f)
	return &n
}

func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	var f float64
	if err := mapstructure.WeakDecode(v, &f); err != nil {
		return 0, false
	}
	return f, true
}

func asBool(v any) bool {
	if v == nil {
		return false
	}
	var b bool
	if err := mapstructure.WeakDecode(v, &b); err != nil {
		return false
	}
	return b
}

// asStrings keeps only array input; anything else is an empty list
func asStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// checkSuccess rejects envelopes that carry success:false
func checkSuccess(payload string, m map[string]any) error {
	v, ok := m["success"]
	if !ok || asBool(v) {
		return nil
	}
	msg := asString(pick(m, "message", "error"))
	if msg == "" {
		msg = "success is false"
	}
	return malformed(payload, "%s", msg)
}
