package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is one dictionary record returned by the Merriam-Webster API.
// Only the fields rendered by the app are typed; nested sense data stays opaque.
type Entry struct {
	Meta             EntryMeta    `json:"meta"`
	Headword         HeadwordInfo `json:"hwi"`
	FunctionalLabel  *string      `json:"fl,omitempty"`
	Definitions      []Definition `json:"def,omitempty"`
	ShortDefinitions []string     `json:"shortdef,omitempty"`
}

// EntryMeta carries the identifying metadata of an entry
type EntryMeta struct {
	ID        string   `json:"id"`
	UUID      string   `json:"uuid,omitempty"`
	Stems     []string `json:"stems,omitempty"`
	Offensive bool     `json:"offensive"`
}

// HeadwordInfo holds the headword and its pronunciations
type HeadwordInfo struct {
	// Value is the headword as spelled by the service, with "*" syllable breaks
	Value          string `json:"hw"`
	Pronunciations any    `json:"prs,omitempty"`
}

// UnmarshalJSON accepts the API's "hw" key as well as "value", which older
// saved states used for the same field.
func (h *HeadwordInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		HW             *string `json:"hw"`
		Value          *string `json:"value"`
		Pronunciations any     `json:"prs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}

	switch {
	case raw.HW != nil:
		h.Value = *raw.HW
	case raw.Value != nil:
		h.Value = *raw.Value
	default:
		h.Value = ""
	}
	h.Pronunciations = raw.Pronunciations
	return nil
}

// Display returns the headword without syllable markers
func (h HeadwordInfo) Display() string {
	return strings.ReplaceAll(h.Value, "*", "")
}

// Definition is one definition section of an entry
type Definition struct {
	VerbDivider string `json:"vd,omitempty"`
	// SenseSequence is the nested "sseq" tree, decoded as generic JSON values
	SenseSequence any `json:"sseq,omitempty"`
}

// SenseText returns the sense sequence in debug form; nested senses are not
// rendered structurally.
func (d Definition) SenseText() string {
	if d.SenseSequence == nil {
		return ""
	}
	return fmt.Sprintf("%v", d.SenseSequence)
}

// Label returns the functional label (part of speech) or "" when absent
func (e Entry) Label() string {
	if e.FunctionalLabel == nil {
		return ""
	}
	return *e.FunctionalLabel
}

// HasLabel reports whether the entry carries a functional label
func (e Entry) HasLabel() bool {
	return e.FunctionalLabel != nil
}

// Headwords returns the raw headword of every entry, preserving order
func Headwords(entries []Entry) []string {
	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.Headword.Value)
	}
	return words
}
