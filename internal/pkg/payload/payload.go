// Package payload holds untrusted request bodies and reduces them to allow-listed fields.
package payload

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Payload is a decoded JSON object received from a client. Values keep the types
// produced by encoding/json (string, float64, bool, nil, []any, map[string]any).
type Payload map[string]any

// Filter returns a new Payload holding only the entries of p whose key is listed in
// allowed. Values are copied as is and p is left untouched. Allowed names missing
// from p are simply absent from the result.
func Filter(p Payload, allowed ...string) Payload {
	filtered := make(Payload, len(allowed))
	for _, name := range allowed {
		if value, ok := p[name]; ok {
			filtered[name] = value
		}
	}
	return filtered
}

// Has reports whether the payload carries the field, whatever its value.
func (p Payload) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// HasAny reports whether the payload carries at least one of the fields.
func (p Payload) HasAny(names ...string) bool {
	for _, name := range names {
		if p.Has(name) {
			return true
		}
	}
	return false
}

// Keys returns the field names present in the payload, in no particular order.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	return keys
}

// String returns the field as a string. present is false when the field is absent;
// a present field holding anything but a JSON string is a ValueIsInvalidError.
func (p Payload) String(name string) (value string, present bool, err error) {
	raw, ok := p[name]
	if !ok {
		return "", false, nil
	}
	value, ok = raw.(string)
	if !ok {
		return "", true, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("expected a string, got %s", typeName(raw)))
	}
	return value, true, nil
}

// typeName names JSON value types the way a client would recognize them.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "array"
	case map[string]any, Payload:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
