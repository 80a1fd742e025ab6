// Package canonicaljson serializes JSON deterministically according to
// RFC 8785 (JSON Canonicalization Scheme).
//
// Two structurally equal feed documents always canonicalize to the same
// bytes, which makes the output suitable for hashing, deduplication,
// diffing, and golden tests. The scheme is a published standard rather
// than an ad-hoc stable key order, so canonical bytes are comparable
// across implementations and languages.
package canonicaljson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Marshal returns the RFC 8785 canonical encoding of v.
//
// v may be any value acceptable to encoding/json, including the feed
// entity types (which serialize as their backing object). []byte and
// json.RawMessage inputs are treated as encoded JSON and re-canonicalized.
// Object members are ordered by UTF-16 code units, arrays keep their
// order, numbers use ECMAScript formatting, and the output contains no
// insignificant whitespace.
func Marshal(v any) ([]byte, error) {
	raw, err := rawJSON(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		if err == nil {
			return nil, errors.New("canonicaljson: trailing data after JSON value")
		}
		return nil, err
	}

	return appendCanonical(nil, tree)
}

func rawJSON(v any) ([]byte, error) {
	switch x := v.(type) {
	case json.RawMessage:
		return x, nil
	case []byte:
		return x, nil
	default:
		return json.Marshal(v)
	}
}

func appendCanonical(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return append(dst, "null"...), nil
	case bool:
		return strconv.AppendBool(dst, x), nil
	case string:
		return appendCanonicalString(dst, x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return appendCanonicalNumber(dst, f)
	case float64:
		return appendCanonicalNumber(dst, x)
	case []any:
		dst = append(dst, '[')
		for i, elem := range x {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = appendCanonical(dst, elem)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case map[string]any:
		keys := sortedUTF16(x)
		dst = append(dst, '{')
		for i, k := range keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendCanonicalString(dst, k)
			dst = append(dst, ':')
			var err error
			dst, err = appendCanonical(dst, x[k])
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	default:
		return nil, fmt.Errorf("canonicaljson: unsupported value type %T", v)
	}
}

// sortedUTF16 returns the object's keys ordered by UTF-16 code units, the
// member ordering RFC 8785 requires.
func sortedUTF16(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	units := make(map[string][]uint16, len(keys))
	for _, k := range keys {
		units[k] = utf16.Encode([]rune(k))
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := units[keys[i]], units[keys[j]]
		for n := 0; n < len(a) && n < len(b); n++ {
			if a[n] != b[n] {
				return a[n] < b[n]
			}
		}
		return len(a) < len(b)
	})
	return keys
}

// appendCanonicalString writes JSON string syntax per RFC 8785 §3.2.2.2:
// the five named control characters use shorthand escapes, the remaining
// control characters use \u00xx with lowercase hex, and nothing else is
// escaped beyond quote and backslash.
func appendCanonicalString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			if r <= 0x1f {
				dst = append(dst, fmt.Sprintf(`\u%04x`, r)...)
			} else {
				dst = append(dst, string(r)...)
			}
		}
	}
	return append(dst, '"')
}

// appendCanonicalNumber writes a JSON number with ECMAScript
// serialization semantics over IEEE-754 doubles, as RFC 8785 requires.
func appendCanonicalNumber(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errors.New("canonicaljson: NaN and Infinity are not JSON numbers")
	}
	if f == 0 {
		// Covers -0 as well.
		return append(dst, '0'), nil
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		return append(dst, trimExponent(s)...), nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return append(dst, s...), nil
}

// trimExponent rewrites Go's zero-padded exponent form (1e-06) into the
// ECMAScript form without padding (1e-6).
func trimExponent(s string) string {
	e := strings.IndexByte(s, 'e')
	if e < 0 || e+2 >= len(s) {
		return s
	}
	mant, sign, exp := s[:e], s[e+1], s[e+2:]
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}
