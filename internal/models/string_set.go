package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StringSet is a []string that tolerates loosely-typed JSON input.
// An array decodes element-wise with each element stringified and trimmed,
// a bare string decodes to a one-element set, and any other shape (number,
// bool, object, null) decodes to an empty set.
type StringSet []string

func (s StringSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	if s == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*s = StringSet{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var raw []interface{}
		if err := dec.Decode(&raw); err != nil {
			*s = StringSet{}
			return nil
		}
		out := make(StringSet, 0, len(raw))
		for _, el := range raw {
			out = append(out, strings.TrimSpace(stringifyElement(el)))
		}
		*s = out
	case '"':
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			*s = StringSet{}
			return nil
		}
		*s = StringSet{strings.TrimSpace(single)}
	default:
		*s = StringSet{}
	}
	return nil
}

func stringifyElement(el interface{}) string {
	switch v := el.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Contains reports exact membership of v in the set.
func (s StringSet) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
