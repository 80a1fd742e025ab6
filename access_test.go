package jsonfeed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStringAbsentVersusMismatch(t *testing.T) {
	m := map[string]any{"title": 42.0}

	_, ok, err := getString(m, "missing")
	require.NoError(t, err, "absence is not an error")
	assert.False(t, ok)

	_, _, err = getString(m, "title")
	require.ErrorIs(t, err, ErrUnexpectedType)
	assert.Contains(t, err.Error(), "title")
}

func TestGetBool(t *testing.T) {
	m := map[string]any{"expired": true, "flag": "yes"}

	v, ok, err := getBool(m, "expired")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, v)

	_, _, err = getBool(m, "flag")
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestGetUint64Representations(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    uint64
		wantErr bool
	}{
		{name: "float64 integral", value: float64(180), want: 180},
		{name: "json.Number", value: json.Number("12345"), want: 12345},
		{name: "go int", value: 7, want: 7},
		{name: "go int64", value: int64(9), want: 9},
		{name: "go uint64", value: uint64(11), want: 11},
		{name: "negative", value: float64(-1), wantErr: true},
		{name: "fractional", value: 1.5, wantErr: true},
		{name: "string", value: "180", wantErr: true},
		{name: "bool", value: true, wantErr: true},
		{name: "negative json.Number", value: json.Number("-2"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{"size_in_bytes": tt.value}
			got, ok, err := getUint64(m, "size_in_bytes")
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnexpectedType)
				return
			}
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetArrayNoPartialResults(t *testing.T) {
	m := map[string]any{"tags": []any{"a", "b", 3.0}}

	_, _, err := getStringArray(m, "tags")
	require.ErrorIs(t, err, ErrUnexpectedType)
	assert.Contains(t, err.Error(), "tags[2]")

	m["tags"] = map[string]any{}
	_, _, err = getStringArray(m, "tags")
	assert.ErrorIs(t, err, ErrUnexpectedType, "object where array expected")
}

func TestGetObjectArray(t *testing.T) {
	m := map[string]any{
		"authors": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "b"},
		},
	}

	objs, ok, err := getObjectArray(m, "authors")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, objs, 2)
	assert.Equal(t, "b", objs[1]["name"])

	m["authors"] = []any{map[string]any{}, "not an object"}
	_, _, err = getObjectArray(m, "authors")
	require.ErrorIs(t, err, ErrUnexpectedType)
	assert.Contains(t, err.Error(), "authors[1]")
}

func TestSetReturnsPrevious(t *testing.T) {
	m := map[string]any{}

	prev, had := setKey(m, "title", "first")
	assert.False(t, had)
	assert.Nil(t, prev)

	prev, had = setKey(m, "title", "second")
	require.True(t, had)
	assert.Equal(t, "first", prev)
	assert.Equal(t, "second", m["title"])
}

func TestRemoveIsIdempotent(t *testing.T) {
	m := map[string]any{"title": "x"}

	prev, had := removeKey(m, "title")
	require.True(t, had)
	assert.Equal(t, "x", prev)

	for i := 0; i < 2; i++ {
		prev, had = removeKey(m, "title")
		assert.False(t, had)
		assert.Nil(t, prev)
	}
}

func TestValueEqualNumericRepresentations(t *testing.T) {
	a := map[string]any{"n": float64(5), "nested": []any{1.0}}
	b := map[string]any{"n": json.Number("5"), "nested": []any{int64(1)}}
	assert.True(t, valueEqual(a, b))

	c := map[string]any{"n": float64(6), "nested": []any{1.0}}
	assert.False(t, valueEqual(a, c))

	assert.False(t, valueEqual(map[string]any{"n": "5"}, map[string]any{"n": 5.0}),
		"string never equals number")
}

func TestDeepCopyIndependence(t *testing.T) {
	orig := map[string]any{
		"nested": map[string]any{"k": "v"},
		"arr":    []any{map[string]any{"x": 1.0}},
	}
	cp := deepCopyMap(orig)
	require.True(t, valueEqual(orig, cp))

	cp["nested"].(map[string]any)["k"] = "changed"
	cp["arr"].([]any)[0].(map[string]any)["x"] = 2.0

	assert.Equal(t, "v", orig["nested"].(map[string]any)["k"])
	assert.Equal(t, 1.0, orig["arr"].([]any)[0].(map[string]any)["x"])
}
