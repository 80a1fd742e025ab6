package jsonfeed

import (
	"encoding/json"
	"fmt"
	"io"
)

// Entity is implemented by every model form (owning, read-only view,
// read-write view) and exposes the backing JSON object.
type Entity interface {
	AsMap() map[string]any
}

// Equal reports whether two entities are backed by structurally equal
// JSON objects: same keys and recursively equal values, independent of
// key order and of how numbers are represented in memory.
func Equal(a, b Entity) bool {
	return valueEqual(a.AsMap(), b.AsMap())
}

// FromBytes decodes a JSON document and returns it as a Feed. Malformed
// JSON is reported by wrapping the encoding/json error; a well-formed
// document whose top level is not an object is ErrNotAnObject.
func FromBytes(b []byte) (*Feed, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return FromValue(v)
}

// FromString decodes a JSON document from a string. See FromBytes.
func FromString(s string) (*Feed, error) {
	return FromBytes([]byte(s))
}

// FromReader decodes a JSON document from r. See FromBytes.
func FromReader(r io.Reader) (*Feed, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return FromValue(v)
}

// FromValue wraps an already-decoded JSON value as a Feed. The value must
// be a JSON object (map[string]any); anything else is ErrNotAnObject. The
// map is wrapped, not copied.
func FromValue(v any) (*Feed, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return wrapFeed(m), nil
}

func unmarshalObject(b []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotAnObject
	}
	return m, nil
}

// getWrapped reads an object-valued key and wraps it in an entity view.
func getWrapped[E any](m map[string]any, key string, wrap func(map[string]any) E) (E, bool, error) {
	var zero E
	obj, ok, err := getObject(m, key)
	if err != nil || !ok {
		return zero, ok, err
	}
	return wrap(obj), true, nil
}

// getWrappedArray reads an array-of-objects key and wraps every element.
func getWrappedArray[E any](m map[string]any, key string, wrap func(map[string]any) E) ([]E, bool, error) {
	objs, ok, err := getObjectArray(m, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	out := make([]E, len(objs))
	for i, obj := range objs {
		out[i] = wrap(obj)
	}
	return out, true, nil
}

// objectsOf collects the backing objects of a slice of entities into a
// JSON array value. Ownership of the backing maps moves to the array.
func objectsOf[E Entity](entities []E) []any {
	arr := make([]any, len(entities))
	for i, e := range entities {
		arr[i] = e.AsMap()
	}
	return arr
}
