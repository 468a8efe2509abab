// Package codec implements the strict JSON mapping decoder shared by the
// gdmath vector types.
//
// A vector is serialized as a JSON object whose keys are the lowercase
// component names. Decoding requires every key to be present with a numeric
// value; nothing is defaulted.
package codec

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/gogpu/gdmath/internal/lanes"
)

// ErrDecode is the sentinel wrapped by every decode failure.
var ErrDecode = errors.New("gdmath: decode error")

// Error describes why an input could not be decoded.
type Error struct {
	// Key is the offending mapping key, empty for structural errors.
	Key string

	// Reason is a short human-readable description.
	Reason string

	// Err is the underlying parser error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := "gdmath: decode"
	if e.Key != "" {
		msg += " " + strconv.Quote(e.Key)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns ErrDecode and the underlying error.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDecode, e.Err}
	}
	return []error{ErrDecode}
}

// Options controls decoding.
type Options struct {
	// AllowUnknownKeys ignores keys that are not component names.
	AllowUnknownKeys bool
}

// fields decodes data as a JSON object and returns the raw value of each key
// in keys order.
func fields(data []byte, keys []string, o Options) ([]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &Error{Reason: "expected a JSON object", Err: eris.Wrap(err, "unmarshal mapping")}
	}
	if m == nil {
		return nil, &Error{Reason: "expected a JSON object, got null"}
	}
	if len(m) > 0 {
		k, err := duplicateKey(data)
		if err != nil {
			return nil, &Error{Reason: "expected a JSON object", Err: eris.Wrap(err, "scan mapping keys")}
		}
		if k != "" {
			return nil, &Error{Key: k, Reason: "duplicate key"}
		}
	}

	raw := make([]json.RawMessage, len(keys))
	for i, k := range keys {
		v, ok := m[k]
		if !ok {
			return nil, &Error{Key: k, Reason: "missing component"}
		}
		raw[i] = bytes.TrimSpace(v)
	}

	if !o.AllowUnknownKeys && len(m) != len(keys) {
		for k := range m {
			if !contains(keys, k) {
				return nil, &Error{Key: k, Reason: "unknown key"}
			}
		}
	}
	return raw, nil
}

// duplicateKey returns the first top-level key that appears twice in the
// object in data, or "" if every key is unique.
func duplicateKey(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	seen := make(map[string]bool)
	depth := 0
	expectKey := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		if depth == 1 && expectKey {
			if k, ok := tok.(string); ok {
				if seen[k] {
					return k, nil
				}
				seen[k] = true
				expectKey = false
				continue
			}
		}
		switch tok {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
		// A value at depth 1 has just ended, or the object just opened.
		if depth == 1 {
			expectKey = true
		}
	}
}

func contains(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// isNumber reports whether a raw JSON value is a number literal.
func isNumber(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// DecodeInt32 decodes the mapping in data into dst, one key per lane.
// Every value must be an integer literal within the int32 range.
// dst is written only when the whole mapping is valid.
func DecodeInt32(data []byte, keys []string, dst []int32, o Options) error {
	raw, err := fields(data, keys, o)
	if err != nil {
		return err
	}

	var tmp [4]int32
	for i, r := range raw {
		if !isNumber(r) {
			return &Error{Key: keys[i], Reason: "not an integer: " + string(r)}
		}
		n, err := strconv.ParseInt(string(r), 10, 32)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return &Error{Key: keys[i], Reason: "out of int32 range: " + string(r)}
			}
			return &Error{Key: keys[i], Reason: "not an integer: " + string(r)}
		}
		tmp[i] = int32(n)
	}
	copy(dst, tmp[:len(raw)])
	return nil
}

// DecodeFloat decodes the mapping in data into dst, one key per lane.
// Every value must be a number representable by T.
func DecodeFloat[T lanes.Float](data []byte, keys []string, dst []T, o Options) error {
	raw, err := fields(data, keys, o)
	if err != nil {
		return err
	}

	bits := 64
	if _, ok := any(T(0)).(float32); ok {
		bits = 32
	}

	var tmp [4]T
	for i, r := range raw {
		if !isNumber(r) {
			return &Error{Key: keys[i], Reason: "not a number: " + string(r)}
		}
		f, err := strconv.ParseFloat(string(r), bits)
		if err != nil || math.IsInf(f, 0) {
			return &Error{Key: keys[i], Reason: "out of range: " + string(r)}
		}
		tmp[i] = T(f)
	}
	copy(dst, tmp[:len(raw)])
	return nil
}
