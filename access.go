package jsonfeed

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Typed read/write primitives over the backing map. Every entity accessor
// is a one-line delegation to one of these, keyed by field name, so the
// absence/type-mismatch contract cannot drift between fields.

func getScalar[T string | bool](m map[string]any, key string) (T, bool, error) {
	var zero T
	v, ok := m[key]
	if !ok {
		return zero, false, nil
	}
	s, ok := v.(T)
	if !ok {
		return zero, false, fmt.Errorf("%s: %w", key, ErrUnexpectedType)
	}
	return s, true, nil
}

func getString(m map[string]any, key string) (string, bool, error) {
	return getScalar[string](m, key)
}

func getBool(m map[string]any, key string) (bool, bool, error) {
	return getScalar[bool](m, key)
}

// getUint64 reads a non-negative integral JSON number. Numbers written by
// this package are float64; json.Number and Go integer kinds are accepted
// so hand-built maps behave the same.
func getUint64(m map[string]any, key string) (uint64, bool, error) {
	v, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	n, ok := toUint64(v)
	if !ok {
		return 0, false, fmt.Errorf("%s: %w", key, ErrUnexpectedType)
	}
	return n, true, nil
}

func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) || n >= math.MaxUint64 {
			return 0, false
		}
		return uint64(n), true
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	}
	return 0, false
}

// getArray reads a JSON array whose elements all convert via elem. A
// single non-converting element fails the whole call; there are no
// partial results.
func getArray[E any](m map[string]any, key string, elem func(any) (E, bool)) ([]E, bool, error) {
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false, fmt.Errorf("%s: %w", key, ErrUnexpectedType)
	}
	out := make([]E, len(arr))
	for i, raw := range arr {
		e, ok := elem(raw)
		if !ok {
			return nil, false, fmt.Errorf("%s[%d]: %w", key, i, ErrUnexpectedType)
		}
		out[i] = e
	}
	return out, true, nil
}

func getStringArray(m map[string]any, key string) ([]string, bool, error) {
	return getArray(m, key, func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

func getObject(m map[string]any, key string) (map[string]any, bool, error) {
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("%s: %w", key, ErrUnexpectedType)
	}
	return obj, true, nil
}

func getObjectArray(m map[string]any, key string) ([]map[string]any, bool, error) {
	return getArray(m, key, func(v any) (map[string]any, bool) {
		obj, ok := v.(map[string]any)
		return obj, ok
	})
}

// setKey inserts or overwrites and reports the previous value, if any.
func setKey(m map[string]any, key string, value any) (any, bool) {
	prev, had := m[key]
	m[key] = value
	return prev, had
}

// removeKey deletes key if present and reports the removed value.
// Removing an absent key is a no-op, not an error.
func removeKey(m map[string]any, key string) (any, bool) {
	prev, had := m[key]
	if had {
		delete(m, key)
	}
	return prev, had
}

// deepCopyValue clones a JSON value tree. Scalars are immutable and
// shared; objects and arrays are copied recursively.
func deepCopyValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return deepCopyMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return x
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

// valueEqual compares two JSON value trees structurally. Object key order
// is irrelevant; numbers compare by numeric value regardless of whether
// they are stored as float64, json.Number, or a Go integer kind.
func valueEqual(a, b any) bool {
	if an, ok := toFloat64(a); ok {
		bn, ok := toFloat64(b)
		return ok && an == bn
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !valueEqual(v, bvv) {
				return false
			}
		}
		return true
	}
	return false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
