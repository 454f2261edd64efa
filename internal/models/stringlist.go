package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list-of-strings field persisted as a JSON array.
// Historical rows may hold a comma-joined string instead, so decoding
// is lenient: a JSON array is tried first, then a delimiter split.
// Elements are always trimmed and empty entries dropped, so a value
// round-trips identically regardless of which stored form it came from.
type StringList []string

// ParseStringList decodes a stored value into a canonical list
func ParseStringList(raw string) StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StringList{}
	}

	if strings.HasPrefix(raw, "[") {
		var items []string
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return normalize(items)
		}
		// Malformed JSON falls through to the delimiter split
	}

	return normalize(strings.Split(raw, ","))
}

func normalize(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Value encodes the list in its canonical stored form
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan decodes a stored value, accepting both JSON and comma form
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = ParseStringList(v)
	case []byte:
		*l = ParseStringList(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}

// UnmarshalJSON accepts either a JSON array or a single delimited
// string, so request payloads are normalized the same way stored
// values are.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = normalize(items)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("expected array of strings or string: %w", err)
	}
	*l = ParseStringList(joined)
	return nil
}

// MarshalJSON always emits a real array, never null
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
