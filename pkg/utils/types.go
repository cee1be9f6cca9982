package utils

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coercible is implemented by the nullable payload types. Malformed reports
// the raw input when it could not be coerced to the target type.
type Coercible interface {
	Malformed() (raw string, bad bool)
}

// NullString is a string where blank input (after trimming) means null.
// Numbers and booleans are accepted and kept as their literal text.
type NullString struct {
	String string
	Valid  bool
	raw    string
	bad    bool
}

// NullFloat is a number that also accepts numeric strings ("12.5", "12,5").
// Blank strings mean null.
type NullFloat struct {
	Float64 float64
	Valid   bool
	raw     string
	bad     bool
}

// NullInt is an integer that also accepts numeric strings. Blank strings mean null.
type NullInt struct {
	Int64 int64
	Valid bool
	raw   string
	bad   bool
}

// StringOf returns a NullString; blank values are null.
func StringOf(s string) NullString {
	s = strings.TrimSpace(s)
	return NullString{String: s, Valid: s != ""}
}

// FloatOf returns a valid NullFloat.
func FloatOf(f float64) NullFloat {
	return NullFloat{Float64: f, Valid: true}
}

// IntOf returns a valid NullInt.
func IntOf(i int64) NullInt {
	return NullInt{Int64: i, Valid: true}
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// UnmarshalJSON implements json.Unmarshaler
func (s *NullString) UnmarshalJSON(data []byte) error {
	*s = NullString{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return nil
	}
	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringOf(str)
	case '{', '[':
		s.raw, s.bad = string(data), true
	default:
		// numbers and booleans keep their literal text
		*s = StringOf(string(data))
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (s NullString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.String)
}

// Value implements driver.Valuer
func (s NullString) Value() (driver.Value, error) {
	if !s.Valid {
		return nil, nil
	}
	return s.String, nil
}

// Ptr returns nil for null values
func (s NullString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// Malformed implements Coercible
func (s NullString) Malformed() (string, bool) {
	return s.raw, s.bad
}

// UnmarshalJSON implements json.Unmarshaler
func (f *NullFloat) UnmarshalJSON(data []byte) error {
	*f = NullFloat{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return nil
	}
	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
	}
	v, ok := parseDecimal(text)
	if !ok {
		f.raw, f.bad = text, true
		return nil
	}
	f.Float64, f.Valid = v, true
	return nil
}

// MarshalJSON implements json.Marshaler
func (f NullFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Float64)
}

// Value implements driver.Valuer
func (f NullFloat) Value() (driver.Value, error) {
	if !f.Valid {
		return nil, nil
	}
	return f.Float64, nil
}

// Ptr returns nil for null values
func (f NullFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// Malformed implements Coercible
func (f NullFloat) Malformed() (string, bool) {
	return f.raw, f.bad
}

// UnmarshalJSON implements json.Unmarshaler
func (i *NullInt) UnmarshalJSON(data []byte) error {
	*i = NullInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		return nil
	}
	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
	}
	v, ok := parseDecimal(text)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		i.raw, i.bad = text, true
		return nil
	}
	i.Int64, i.Valid = int64(v), true
	return nil
}

// MarshalJSON implements json.Marshaler
func (i NullInt) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.Int64)
}

// Value implements driver.Valuer
func (i NullInt) Value() (driver.Value, error) {
	if !i.Valid {
		return nil, nil
	}
	return i.Int64, nil
}

// Ptr returns nil for null values
func (i NullInt) Ptr() *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}

// Malformed implements Coercible
func (i NullInt) Malformed() (string, bool) {
	return i.raw, i.bad
}

// parseDecimal accepts a decimal comma when no dot is present ("12,5").
func parseDecimal(text string) (float64, bool) {
	if !strings.Contains(text, ".") && strings.Count(text, ",") == 1 {
		text = strings.Replace(text, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
