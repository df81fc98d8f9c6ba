package domain

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// StringList is an ordered list of non-empty strings stored as a Postgres
// text[] column. It accepts either a JSON array or a comma-separated string
// on input, and always marshals to a JSON array (never null).
type StringList []string

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = StringList{}

	var items []any
	if err := json.Unmarshal(data, &items); err == nil {
		out := make(StringList, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case string:
				if v != "" {
					out = append(out, v)
				}
			case float64:
				if v != 0 {
					out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
				}
			}
		}
		*l = out
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		out := make(StringList, 0)
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*l = out
	}

	// Any other shape decodes to an empty list.
	return nil
}

func (l *StringList) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

// IDList decodes hotel_ids style fields: a JSON array of numbers or numeric
// strings, or a comma-separated string. Entries that do not parse to a
// positive integer are dropped.
type IDList []int64

func (l *IDList) UnmarshalJSON(data []byte) error {
	*l = IDList{}

	appendID := func(out IDList, raw string) IDList {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || id <= 0 {
			return out
		}
		return append(out, id)
	}

	var items []any
	if err := json.Unmarshal(data, &items); err == nil {
		out := make(IDList, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case float64:
				if v == float64(int64(v)) && v > 0 {
					out = append(out, int64(v))
				}
			case string:
				out = appendID(out, v)
			}
		}
		*l = out
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		out := make(IDList, 0)
		for _, part := range strings.Split(raw, ",") {
			out = appendID(out, part)
		}
		*l = out
	}

	return nil
}

// OptionalNumber is a tri-state numeric field: absent or empty (stored as
// null), present with a valid number, or present but malformed. Callers
// reject the request when a non-empty value fails to parse, matching the
// per-field validation errors of the public API.
type OptionalNumber struct {
	set   bool
	valid bool
	value float64
}

func NumberOf(v float64) OptionalNumber {
	return OptionalNumber{set: true, valid: true, value: v}
}

func (o *OptionalNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		o.set = true
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			o.valid = true
			o.value = v
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		o.set = true
		o.valid = true
		o.value = v
		return nil
	}

	// Present but not a number or string.
	o.set = true
	return nil
}

// IsNull reports whether the field was empty and should be stored as null.
func (o OptionalNumber) IsNull() bool { return !o.set }

// Float returns the parsed value along with whether it was a valid number.
func (o OptionalNumber) Float() (float64, bool) { return o.value, o.valid }

// PositiveInt returns the value as a strictly positive integer. The second
// return is false when the value is malformed, fractional, or non-positive.
func (o OptionalNumber) PositiveInt() (int64, bool) {
	if !o.valid || o.value != float64(int64(o.value)) || o.value <= 0 {
		return 0, false
	}
	return int64(o.value), true
}

// NonNegative returns the value when it is a valid number >= 0.
func (o OptionalNumber) NonNegative() (float64, bool) {
	if !o.valid || o.value < 0 {
		return 0, false
	}
	return o.value, true
}
