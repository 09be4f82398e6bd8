package domain

import "time"

// Body is the opaque key-value content of a document.
type Body map[string]any

// Document is a stored body wrapped in its envelope.
type Document struct {
	// ID is assigned at creation and is stable across updates.
	ID string `json:"id"`

	// Created is when the document was first written. It never changes.
	Created time.Time `json:"created"`

	// Modified is when the document was last written.
	// It is monotonically non-decreasing.
	Modified time.Time `json:"modified"`

	// Body is the document content.
	Body Body `json:"doc"`
}

// Kind returns the body's "kind" field, or an empty string.
func (d Document) Kind() string {
	return d.Body.String("kind")
}

// String returns the string stored under key, or an empty string.
func (b Body) String(key string) string {
	s, _ := b[key].(string)
	return s
}

// Number returns the numeric value stored under key.
// Any Go integer or float type is accepted; the second result is false
// if the key is missing or not numeric.
func (b Body) Number(key string) (float64, bool) {
	return ToFloat(b[key])
}

// Strings returns the string slice stored under key.
// Both []string and []any holding strings are accepted.
func (b Body) Strings(key string) []string {
	switch v := b[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ToFloat converts any numeric value to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Clone returns a deep copy of the body. Nested maps and slices are copied;
// other values are shared.
func (b Body) Clone() Body {
	if b == nil {
		return nil
	}
	out := make(Body, len(b))
	for k, v := range b {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Body:
		return val.Clone()
	case map[string]any:
		return map[string]any(Body(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i := range val {
			out[i] = cloneValue(val[i])
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}

// Clone returns a copy of the document with a deep-copied body.
func (d Document) Clone() Document {
	d.Body = d.Body.Clone()
	return d
}
