package canonicaljson

import (
	"encoding/json"
	"testing"
)

func TestMarshal_SortsKeysByUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple object",
			in:   `{"b": 2, "a": 1, "c": 3}`,
			want: `{"a":1,"b":2,"c":3}`,
		},
		{
			name: "nested objects and arrays keep array order",
			in:   `{"z": [3, 1, 2], "a": {"y": true, "x": false}}`,
			want: `{"a":{"x":false,"y":true},"z":[3,1,2]}`,
		},
		{
			name: "rfc 8785 ordering sample",
			in:   `{"€": "Euro Sign", "\r": "Carriage Return", "1": "One", "😀": "Emoji: Grinning Face", "ö": "Latin Small Letter O With Diaeresis"}`,
			want: `{"\r":"Carriage Return","1":"One","ö":"Latin Small Letter O With Diaeresis","€":"Euro Sign","😀":"Emoji: Grinning Face"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal([]byte(tt.in))
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarshal_StringEscapes(t *testing.T) {
	got, err := Marshal("a\"b\\c\x01\n\ttail")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `"a\"b\\c\u0001\n\ttail"`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMarshal_NumberFormatting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `0`, want: `0`},
		{in: `-0`, want: `0`},
		{in: `1`, want: `1`},
		{in: `1.0`, want: `1`},
		{in: `0.5`, want: `0.5`},
		{in: `-25`, want: `-25`},
		{in: `1e21`, want: `1e+21`},
		{in: `0.000001`, want: `0.000001`},
		{in: `0.0000001`, want: `1e-7`},
		{in: `333333333.33333329`, want: `333333333.3333333`},
	}

	for _, tt := range tests {
		got, err := Marshal(json.RawMessage(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%s): %v", tt.in, err)
		}
		if string(got) != tt.want {
			t.Fatalf("Marshal(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMarshal_GoValues(t *testing.T) {
	got, err := Marshal(map[string]any{
		"n":    uint64(10),
		"s":    "x",
		"b":    true,
		"null": nil,
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"b":true,"n":10,"null":null,"s":"x"}`
	if string(got) != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	in := []byte(`{"a": 1, "b": {"d": [1, 2], "c": "x"}}`)
	first, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Marshal(in)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("non-deterministic output: %s vs %s", first, again)
		}
	}
}

func TestMarshal_Errors(t *testing.T) {
	if _, err := Marshal([]byte(`{"a": 1} trailing`)); err == nil {
		t.Fatalf("expected trailing data error")
	}
	if _, err := Marshal([]byte(`{`)); err == nil {
		t.Fatalf("expected parse error")
	}
}
