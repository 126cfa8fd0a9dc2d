package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Dictionary selects which Merriam-Webster reference is queried
type Dictionary string

const (
	DictionaryLearners   Dictionary = "learners"
	DictionaryCollegiate Dictionary = "collegiate"
)

// DefaultDictionary is used when no preference has been stored yet
const DefaultDictionary = DictionaryLearners

// AllDictionaries lists the supported variants in display order
var AllDictionaries = []Dictionary{DictionaryLearners, DictionaryCollegiate}

// ParseDictionary converts user input (flag, preference, select option) to a Dictionary
func ParseDictionary(value string) (Dictionary, error) {
	d := Dictionary(strings.ToLower(strings.TrimSpace(value)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown dictionary %q, expected one of %v", value, AllDictionaries)
	}
	return d, nil
}

// IsValid reports whether d is one of the known variants
func (d Dictionary) IsValid() bool {
	for _, known := range AllDictionaries {
		if d == known {
			return true
		}
	}
	return false
}

// String returns the string representation of Dictionary
func (d Dictionary) String() string {
	return string(d)
}

// DisplayName returns a human-friendly name for menus and dialogs
func (d Dictionary) DisplayName() string {
	switch d {
	case DictionaryLearners:
		return "Learner's Dictionary"
	case DictionaryCollegiate:
		return "Collegiate Dictionary"
	default:
		return string(d)
	}
}

// PathSegment returns the reference path relative to the API root,
// e.g. "learners/json/".
func (d Dictionary) PathSegment() string {
	return string(d) + "/json/"
}

// Set implements pflag.Value so the type can back a --dictionary flag
func (d *Dictionary) Set(value string) error {
	parsed, err := ParseDictionary(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Type implements pflag.Value
func (d *Dictionary) Type() string {
	return "dictionary"
}

// UnmarshalJSON rejects unknown variants so an incompatible saved state is
// detected instead of silently carried along.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return d.Set(raw)
}
