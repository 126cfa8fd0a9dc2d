package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/vocab-trainer/internal/dictionary"
	"github.com/ytget/vocab-trainer/internal/model"
)

var (
	// ErrLookupInProgress is returned by Start while another lookup is running
	ErrLookupInProgress = errors.New("lookup already in progress")

	// ErrEmptyWord is returned by Start when there is nothing to look up
	ErrEmptyWord = errors.New("word is empty")

	// ErrNoActiveLookup is returned by Cancel when nothing is running
	ErrNoActiveLookup = errors.New("no active lookup")
)

// Service runs lookups against a dictionary.Fetcher
type Service struct {
	fetcher dictionary.Fetcher
	log     zerolog.Logger

	mu       sync.Mutex
	active   *model.Lookup
	last     *model.Lookup
	cancel   context.CancelFunc
	onUpdate func(*model.Lookup) // callback for UI updates
	wg       sync.WaitGroup
}

var _ Lookuper = (*Service)(nil)

// NewService creates a new lookup service
func NewService(fetcher dictionary.Fetcher, log zerolog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		log:     log,
	}
}

// SetUpdateCallback sets the callback function for lookup updates.
// The callback runs on the service goroutine and receives a snapshot.
func (s *Service) SetUpdateCallback(callback func(*model.Lookup)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Start adds a new lookup and begins fetching it in the background
func (s *Service) Start(dict model.Dictionary, word string) (*model.Lookup, error) {
	if strings.TrimSpace(word) == "" {
		return nil, ErrEmptyWord
	}
	if !dict.IsValid() {
		return nil, fmt.Errorf("unknown dictionary %q", dict)
	}

	s.mu.Lock()
	if s.active != nil {
		activeWord := s.active.Word
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %q", ErrLookupInProgress, activeWord)
	}

	ctx, cancel := context.WithCancel(context.Background())
	lookup := &model.Lookup{
		ID:         generateLookupID(),
		Word:       word,
		Dictionary: dict,
		Status:     model.LookupStatusPending,
		StartedAt:  time.Now(),
	}
	s.active = lookup
	s.last = lookup
	s.cancel = cancel
	s.wg.Add(1)
	snapshot := *lookup
	s.mu.Unlock()

	s.notifyUpdate(&snapshot)

	go s.run(ctx, lookup)

	return &snapshot, nil
}

// Cancel stops the active lookup
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil || s.active.Status.IsFinished() {
		return ErrNoActiveLookup
	}

	// The final status is set by the lookup goroutine
	s.cancel()
	return nil
}

// Active returns a snapshot of the running lookup
func (s *Service) Active() (*model.Lookup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, false
	}
	snapshot := *s.active
	return &snapshot, true
}

// Last returns a snapshot of the most recently started lookup
func (s *Service) Last() (*model.Lookup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, false
	}
	snapshot := *s.last
	return &snapshot, true
}

// Wait blocks until the running lookup, if any, has finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// run performs the fetch for a lookup
func (s *Service) run(ctx context.Context, lookup *model.Lookup) {
	defer s.wg.Done()

	s.updateStatus(lookup, func(l *model.Lookup) {
		l.Status = model.LookupStatusFetching
	})

	log := s.log.With().Str("lookup", lookup.ID).Str("word", lookup.Word).Logger()
	log.Info().Str("dictionary", lookup.Dictionary.String()).Msg("lookup started")

	entries, err := s.fetcher.Fetch(ctx, lookup.Dictionary, lookup.Word)

	s.mu.Lock()
	switch {
	case err != nil && errors.Is(ctx.Err(), context.Canceled):
		lookup.Status = model.LookupStatusCanceled
		lookup.LastError = ctx.Err()
	case err != nil:
		lookup.Status = model.LookupStatusError
		lookup.LastError = err
	default:
		lookup.Status = model.LookupStatusCompleted
		lookup.Entries = entries
	}
	lookup.FinishedAt = time.Now()
	s.active = nil
	s.cancel()
	s.cancel = nil
	snapshot := *lookup
	s.mu.Unlock()

	event := log.Info()
	if snapshot.Status == model.LookupStatusError {
		event = log.Warn().Str("error", snapshot.ErrorText())
	}
	event.
		Str("status", snapshot.Status.String()).
		Int("entries", len(snapshot.Entries)).
		Dur("elapsed", snapshot.Duration()).
		Msg("lookup finished")

	s.notifyUpdate(&snapshot)
}

// updateStatus mutates a lookup under the lock and notifies a snapshot
func (s *Service) updateStatus(lookup *model.Lookup, mutate func(*model.Lookup)) {
	s.mu.Lock()
	mutate(lookup)
	snapshot := *lookup
	s.mu.Unlock()

	s.notifyUpdate(&snapshot)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(lookup *model.Lookup) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(lookup)
	}
}

// generateLookupID generates a unique lookup ID
func generateLookupID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("lookup-%d", time.Now().UnixNano())
	}
	return "lookup-" + id.String()
}
