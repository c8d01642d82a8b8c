package entity

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// prices and amounts go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// StringList is an ordered list of strings stored as a JSON array in a TEXT
// column. NULL or malformed column data reads back as an empty list.
type StringList []string

func (StringList) GormDataType() string { return "text" }

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	*l = decodeJSONArray[string](src)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// LineItems is an ordered list of opaque cart/order entries. Each element is
// kept verbatim as raw JSON; the shape is never inspected.
type LineItems []json.RawMessage

func (LineItems) GormDataType() string { return "text" }

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]json.RawMessage(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LineItems) Scan(src any) error {
	*l = decodeJSONArray[json.RawMessage](src)
	return nil
}

func (l LineItems) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(l))
}

func decodeJSONArray[T any](src any) []T {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return []T{}
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}
