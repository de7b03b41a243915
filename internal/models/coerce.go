package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber is a float64 that accepts a JSON number or a numeric string.
// Non-numeric input decodes to zero.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	if n == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*n = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexNumber(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

// Float returns the numeric value.
func (n FlexNumber) Float() float64 { return float64(n) }

// Int returns the truncated integer value.
func (n FlexNumber) Int() int { return int(n) }

// FlexBool is a bool decoded with JavaScript truthiness: false, 0, "", and
// null are false; everything else (including objects and arrays) is true.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	if b == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*b = false
		return nil
	}
	switch trimmed[0] {
	case 't':
		*b = true
	case 'f':
		*b = false
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*b = false
			return nil
		}
		*b = s != ""
	case '{', '[':
		*b = true
	default:
		var v float64
		if err := json.Unmarshal(trimmed, &v); err != nil {
			*b = false
			return nil
		}
		*b = v != 0
	}
	return nil
}

// Bool returns the boolean value.
func (b FlexBool) Bool() bool { return bool(b) }
