package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{`2024`, 2024},
		{`7.5`, 7.5},
		{`"2024"`, 2024},
		{`" 120 "`, 120},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
	}
	for _, tt := range tests {
		var n FlexNumber
		if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
		}
		if n.Float() != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, n.Float(), tt.want)
		}
	}
}

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"yes"`, true},
		{`"false"`, true}, // non-empty string is truthy
		{`""`, false},
		{`null`, false},
		{`[1]`, true},
		{`{}`, true},
	}
	for _, tt := range tests {
		var b FlexBool
		if err := json.Unmarshal([]byte(tt.input), &b); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
		}
		if b.Bool() != tt.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, b.Bool(), tt.want)
		}
	}
}
