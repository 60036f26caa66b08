package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Entity is a single catalogue record as returned by the remote collection.
// Name is always present; the other fields may be empty when the remote omits them.
type Entity struct {
	Name      string        `json:"name"`
	Gender    string        `json:"gender,omitempty"`
	Height    NumericString `json:"height,omitempty"`
	Mass      NumericString `json:"mass,omitempty"`
	BirthYear string        `json:"birth_year,omitempty"`
	EyeColor  string        `json:"eye_color,omitempty"`
}

// NumericString is a numeric attribute carried as text ("172", "unknown").
// It decodes from a JSON string, a JSON number or null.
type NumericString string

// String returns the textual form of the value.
func (n NumericString) String() string {
	return string(n)
}

// UnmarshalJSON accepts both "172" and 172.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	if n == nil {
		return errors.New("cannot unmarshal into nil NumericString")
	}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric field must be a string or number: %w", err)
	}
	*n = NumericString(num.String())
	return nil
}

// Float parses the value as a number. Thousands separators are ignored,
// so "1,358" parses as 1358. The boolean is false for "unknown", "n/a" and empty values.
func (n NumericString) Float() (float64, bool) {
	return parseMeasure(string(n))
}

func parseMeasure(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ',' {
			cleaned = append(cleaned, s[i])
		}
	}
	v, err := strconv.ParseFloat(string(cleaned), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
