package state

// Package state holds the application state shared by the render loop: the
// preferred dictionary, the word being typed and the last fetched entries. The
// state is owned by the UI goroutine and is not safe for concurrent use.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ytget/vocab-trainer/internal/config"
	"github.com/ytget/vocab-trainer/internal/dictionary"
	"github.com/ytget/vocab-trainer/internal/model"
)

// Storage is the key-value store provided by the host application.
// fyne.Preferences satisfies it.
type Storage interface {
	String(key string) string
	SetString(key string, value string)
}

// State is the application state persisted between sessions
type State struct {
	PreferredDictionary model.Dictionary `json:"preferred_dictionary"`
	CurrentWord         *string          `json:"current_word,omitempty"`
	Entries             []model.Entry    `json:"entries"`
}

// Default returns the state used on first start
func Default() *State {
	return &State{
		PreferredDictionary: model.DefaultDictionary,
		Entries:             []model.Entry{},
	}
}

// Initialize restores the state saved in storage, or returns the default
// state when nothing was saved or the saved blob is not compatible.
func Initialize(storage Storage, log zerolog.Logger) *State {
	blob := storage.String(config.KeyAppState)
	if blob == "" {
		log.Debug().Msg("no saved state, using defaults")
		return Default()
	}

	s, err := Restore([]byte(blob))
	if err != nil {
		log.Warn().Err(err).Msg("saved state is not compatible, using defaults")
		return Default()
	}

	log.Debug().
		Str("dictionary", s.PreferredDictionary.String()).
		Int("entries", len(s.Entries)).
		Msg("state restored")
	return s
}

// Restore decodes a saved blob. Decoding starts from the default state, so
// fields missing from older blobs keep their default values.
func Restore(blob []byte) (*State, error) {
	s := Default()
	if err := json.Unmarshal(blob, s); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if !s.PreferredDictionary.IsValid() {
		return nil, fmt.Errorf("unknown dictionary %q", s.PreferredDictionary)
	}
	if s.Entries == nil {
		s.Entries = []model.Entry{}
	}
	return s, nil
}

// Persist serializes the full state into storage
func Persist(storage Storage, s *State) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	storage.SetString(config.KeyAppState, string(blob))
	return nil
}

// SetCurrentWord replaces the current word unconditionally
func (s *State) SetCurrentWord(text string) {
	s.CurrentWord = &text
}

// Word returns the current word and whether one has been entered
func (s *State) Word() (string, bool) {
	if s.CurrentWord == nil {
		return "", false
	}
	return *s.CurrentWord, true
}

// SetPreferredDictionary switches the dictionary used by later fetches
func (s *State) SetPreferredDictionary(d model.Dictionary) error {
	if !d.IsValid() {
		return fmt.Errorf("unknown dictionary %q", d)
	}
	s.PreferredDictionary = d
	return nil
}

// ApplyEntries replaces the fetched entries wholesale
func (s *State) ApplyEntries(entries []model.Entry) {
	if entries == nil {
		entries = []model.Entry{}
	}
	s.Entries = entries
}

// Headwords returns the headword of each entry in order
func (s *State) Headwords() []string {
	return model.Headwords(s.Entries)
}

// FetchDefinition fetches word from the preferred dictionary and replaces the
// entries on success. On failure the previous entries are kept and the error
// is returned as a *dictionary.TransportError, *dictionary.DecodeError or
// *dictionary.NotFoundError wrapped with context.
func (s *State) FetchDefinition(ctx context.Context, fetcher dictionary.Fetcher, word string) error {
	entries, err := fetcher.Fetch(ctx, s.PreferredDictionary, word)
	if err != nil {
		return fmt.Errorf("fetch definition for %q: %w", word, err)
	}
	s.ApplyEntries(entries)
	return nil
}
