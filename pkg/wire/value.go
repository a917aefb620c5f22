// Package wire holds the generic value tree that payloads of the asset
// operation service decode into, and the helpers that read it.
//
// A decoded value is one of: nil, string, bool, Object or []any. XML carries
// every scalar as text, so booleans and numbers normally arrive as strings;
// Go values built by callers may use bool and are formatted on encode.
package wire

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/cascadews/cascade.go/pkg/constants"
)

// Object is a decoded wire object: element name to value.
type Object = map[string]any

// Get walks nested objects along keys. It returns nil when any step is
// missing or is not an object.
func Get(v any, keys ...string) any {
	cur := v
	for _, k := range keys {
		obj, ok := cur.(Object)
		if !ok || obj == nil {
			return nil
		}
		cur = obj[k]
	}
	return cur
}

// ObjectAt is Get narrowed to Object.
func ObjectAt(v any, keys ...string) (Object, bool) {
	obj, ok := Get(v, keys...).(Object)
	return obj, ok && obj != nil
}

// String returns v when it is a string. Other kinds, native booleans
// included, are not coerced.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// StringAt is Get narrowed to string; missing values yield "".
func StringAt(v any, keys ...string) string {
	s, _ := String(Get(v, keys...))
	return s
}

// Bool reads a wire boolean. The service sends "true"/"false" strings;
// values built in Go may hold a bool.
func Bool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == constants.True
	default:
		return false
	}
}

// FormatBool renders b the way the service expects it.
func FormatBool(b bool) string {
	if b {
		return constants.True
	}
	return constants.False
}

// Nullable returns nil for an empty string, s otherwise.
func Nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Keys returns the keys of obj in sorted order.
func Keys(obj Object) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone deep-copies a value tree.
func Clone(v any) any {
	switch t := v.(type) {
	case Object:
		if t == nil {
			return Object(nil)
		}
		out := make(Object, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}

// CloneObject is Clone for objects.
func CloneObject(obj Object) Object {
	if obj == nil {
		return nil
	}
	return Clone(obj).(Object)
}

// Decode copies a value tree into a typed Go value through its JSON form.
// dst follows the usual json struct tags.
func Decode(v any, dst any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrUnexpectedShape, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrUnexpectedShape, err)
	}
	return nil
}
