package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Portal forms post every field as a string, so numeric request fields accept a JSON number,
// a numeric string, an empty string or null. Empty and null both mean "not provided".

// NullableInt is an optional whole number.
type NullableInt struct {
	Value int64
	Valid bool
}

// IntOf is a convenience constructor for a provided value.
func IntOf(v int64) NullableInt {
	return NullableInt{Value: v, Valid: true}
}

func (n *NullableInt) UnmarshalJSON(b []byte) error {
	raw, empty, err := unquoteNumber(b)
	if err != nil || empty {
		*n = NullableInt{}
		return err
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) {
			return fmt.Errorf("%q is not a whole number", raw)
		}
		v = int64(f)
	}
	*n = NullableInt{Value: v, Valid: true}
	return nil
}

func (n NullableInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, n.Value, 10), nil
}

// Ptr returns nil when the value was not provided, which pgx writes as NULL.
func (n NullableInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// NullableFloat is an optional decimal amount.
type NullableFloat struct {
	Value float64
	Valid bool
}

// FloatOf is a convenience constructor for a provided value.
func FloatOf(v float64) NullableFloat {
	return NullableFloat{Value: v, Valid: true}
}

func (n *NullableFloat) UnmarshalJSON(b []byte) error {
	raw, empty, err := unquoteNumber(b)
	if err != nil || empty {
		*n = NullableFloat{}
		return err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%q is not a number", raw)
	}
	*n = NullableFloat{Value: v, Valid: true}
	return nil
}

func (n NullableFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

// Ptr returns nil when the value was not provided, which pgx writes as NULL.
func (n NullableFloat) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// unquoteNumber strips JSON string quoting and reports whether the value is absent.
func unquoteNumber(b []byte) (string, bool, error) {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return "", true, nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false, err
		}
		raw = strings.TrimSpace(s)
	}
	return raw, raw == "", nil
}
