package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fee is a camp fee as the client sent it. Clients post fees either as JSON
// numbers or as strings; the original text is kept so substring filters
// match what participants typed and see.
type Fee string

// UnmarshalJSON accepts a JSON string, number or null.
func (f *Fee) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Fee(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("fee must be a number or a string: %w", err)
	}
	*f = Fee(n.String())
	return nil
}

// String returns the fee text.
func (f Fee) String() string {
	return string(f)
}

// Amount parses the fee as a decimal number.
func (f Fee) Amount() (float64, error) {
	if f == "" {
		return 0, fmt.Errorf("fee is empty")
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, fmt.Errorf("parse fee %q: %w", string(f), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("fee %q is not finite", string(f))
	}
	return v, nil
}

// Positive reports whether the fee parses to a value greater than zero.
func (f Fee) Positive() bool {
	v, err := f.Amount()
	return err == nil && v > 0
}

// MinorUnits converts the fee to the smallest currency unit. The decimal
// text is read digit by digit so 19.99 is exactly 1999; digits past the
// second decimal place are truncated (19.999 -> 1999).
func (f Fee) MinorUnits() (int64, error) {
	v, err := f.Amount()
	if err != nil {
		return 0, err
	}
	text := string(f)
	if !plainDecimal(text) {
		// Exponent or hex forms: fall back to the shortest decimal text.
		text = strconv.FormatFloat(v, 'f', -1, 64)
	}

	neg := strings.HasPrefix(text, "-")
	text = strings.TrimLeft(text, "+-")
	whole, frac, _ := strings.Cut(text, ".")
	if whole == "" {
		whole = "0"
	}
	frac = (frac + "00")[:2]

	units, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("fee %q out of range: %w", string(f), err)
	}
	if neg {
		units = -units
	}
	return units, nil
}

// plainDecimal reports whether s is an optional sign, digits and at most one
// decimal point.
func plainDecimal(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" || s == "." {
		return false
	}
	dot := false
	for _, c := range s {
		switch {
		case c == '.' && !dot:
			dot = true
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
