package gdmath

import (
	"strconv"
	"strings"
)

// Text form: "(x, y, z, w)" with ", " separators. Integers are plain decimal;
// floats use the shortest representation that parses back to the same Real.
// The output never depends on the locale.

func appendInts(b []byte, c []int32) []byte {
	b = append(b, '(')
	for i, x := range c {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendInt(b, int64(x), 10)
	}
	return append(b, ')')
}

func appendReals(b []byte, c []Real) []byte {
	b = append(b, '(')
	for i, x := range c {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendFloat(b, float64(x), 'g', -1, realBits)
	}
	return append(b, ')')
}

// String formats v like the engine: "(x, y, z, w)".
func (v Vector4i) String() string {
	c := v.Components()
	return string(appendInts(make([]byte, 0, 48), c[:]))
}

// String formats v as "(x, y, z)".
func (v Vector3i) String() string {
	c := v.Components()
	return string(appendInts(make([]byte, 0, 36), c[:]))
}

// String formats v as "(x, y)".
func (v Vector2i) String() string {
	c := v.Components()
	return string(appendInts(make([]byte, 0, 24), c[:]))
}

// String formats v as "(x, y, z, w)".
func (v Vector4) String() string {
	c := v.Components()
	return string(appendReals(make([]byte, 0, 64), c[:]))
}

// String formats v as "(x, y, z)".
func (v Vector3) String() string {
	c := v.Components()
	return string(appendReals(make([]byte, 0, 48), c[:]))
}

// String formats v as "(x, y)".
func (v Vector2) String() string {
	c := v.Components()
	return string(appendReals(make([]byte, 0, 32), c[:]))
}

// splitTuple returns the n trimmed fields of a "(a, b, ...)" string.
func splitTuple(s string, n int) ([]string, error) {
	s = strings.TrimSpace(s)
	inner, ok := strings.CutPrefix(s, "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return nil, &DecodeError{Reason: "expected parenthesized tuple: " + strconv.Quote(s)}
	}
	parts := strings.Split(inner, ",")
	if len(parts) != n {
		return nil, &DecodeError{Reason: "expected " + strconv.Itoa(n) + " components, got " + strconv.Itoa(len(parts))}
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func parseInts(s string, dst []int32) error {
	parts, err := splitTuple(s, len(dst))
	if err != nil {
		return err
	}
	for i, p := range parts {
		if strings.HasPrefix(p, "+") {
			return &DecodeError{Key: componentNames[i], Reason: "explicit sign: " + strconv.Quote(p)}
		}
		n, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return &DecodeError{Key: componentNames[i], Reason: "not an int32: " + strconv.Quote(p)}
		}
		dst[i] = int32(n)
	}
	return nil
}

func parseReals(s string, dst []Real) error {
	parts, err := splitTuple(s, len(dst))
	if err != nil {
		return err
	}
	for i, p := range parts {
		if strings.HasPrefix(p, "+") && p != "+Inf" {
			return &DecodeError{Key: componentNames[i], Reason: "explicit sign: " + strconv.Quote(p)}
		}
		f, err := strconv.ParseFloat(p, realBits)
		if err != nil {
			return &DecodeError{Key: componentNames[i], Reason: "not a number: " + strconv.Quote(p)}
		}
		dst[i] = Real(f)
	}
	return nil
}

// ParseVector4i parses the String form of a Vector4i. Whitespace around
// components is ignored; a leading '+' is rejected since String never writes
// one. Malformed input is a *DecodeError.
func ParseVector4i(s string) (Vector4i, error) {
	var c [4]int32
	if err := parseInts(s, c[:]); err != nil {
		return Vector4i{}, err
	}
	return vector4iOf(c), nil
}

// ParseVector3i parses the String form of a Vector3i.
func ParseVector3i(s string) (Vector3i, error) {
	var c [3]int32
	if err := parseInts(s, c[:]); err != nil {
		return Vector3i{}, err
	}
	return vector3iOf(c), nil
}

// ParseVector2i parses the String form of a Vector2i.
func ParseVector2i(s string) (Vector2i, error) {
	var c [2]int32
	if err := parseInts(s, c[:]); err != nil {
		return Vector2i{}, err
	}
	return vector2iOf(c), nil
}

// ParseVector4 parses the String form of a Vector4. The only signed-positive
// component accepted is "+Inf", as written by String.
func ParseVector4(s string) (Vector4, error) {
	var c [4]Real
	if err := parseReals(s, c[:]); err != nil {
		return Vector4{}, err
	}
	return vector4Of(c), nil
}

// ParseVector3 parses the String form of a Vector3.
func ParseVector3(s string) (Vector3, error) {
	var c [3]Real
	if err := parseReals(s, c[:]); err != nil {
		return Vector3{}, err
	}
	return vector3Of(c), nil
}

// ParseVector2 parses the String form of a Vector2.
func ParseVector2(s string) (Vector2, error) {
	var c [2]Real
	if err := parseReals(s, c[:]); err != nil {
		return Vector2{}, err
	}
	return vector2Of(c), nil
}
