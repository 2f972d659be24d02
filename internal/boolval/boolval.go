package boolval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoolean is returned when text is not one of the accepted boolean spellings.
var ErrInvalidBoolean = errors.New("invalid boolean value")

var (
	falsy  = map[string]bool{"false": true, "0": true, "no": true, "off": true}
	truthy = map[string]bool{"true": true, "1": true, "yes": true, "on": true}
)

// Parse interprets a free-form flag value. Matching is case-insensitive.
func Parse(text string) (bool, error) {
	v := strings.ToLower(text)
	if falsy[v] {
		return false, nil
	}
	if truthy[v] {
		return true, nil
	}
	return false, fmt.Errorf("%w: %q (expected true/false, yes/no, on/off or 1/0)", ErrInvalidBoolean, text)
}

// Format renders a boolean the way listings show it.
func Format(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
