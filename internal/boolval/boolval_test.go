package boolval

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"YeS", true},
		{"on", true},
		{"ON", true},
		{"false", false},
		{"False", false},
		{"0", false},
		{"no", false},
		{"NO", false},
		{"off", false},
		{"oFF", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", " ", "y", "n", "2", "truthy", " true", "nope", "enabled"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", in)
			}
			if !errors.Is(err, ErrInvalidBoolean) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidBoolean", in, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if Format(true) != "Yes" {
		t.Errorf("Format(true) = %q, want Yes", Format(true))
	}
	if Format(false) != "No" {
		t.Errorf("Format(false) = %q, want No", Format(false))
	}
}
