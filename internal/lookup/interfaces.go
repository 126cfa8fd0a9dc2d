package lookup

import (
	"github.com/ytget/vocab-trainer/internal/model"
)

// Lookuper defines the interface for the lookup service.
type Lookuper interface {
	SetUpdateCallback(func(*model.Lookup))

	// Start begins fetching word from dict; it fails while another lookup is active
	Start(dict model.Dictionary, word string) (*model.Lookup, error)

	// Cancel stops the active lookup, if any
	Cancel() error

	// Active returns the running lookup
	Active() (*model.Lookup, bool)

	// Last returns the most recently started lookup
	Last() (*model.Lookup, bool)

	// Wait blocks until no lookup is running
	Wait()
}
