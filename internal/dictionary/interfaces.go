package dictionary

import (
	"context"

	"github.com/ytget/vocab-trainer/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/dictionary/mock_fetcher.go -package=mock_dictionary

// Fetcher retrieves the entries for a word from one dictionary reference.
type Fetcher interface {
	Fetch(ctx context.Context, dict model.Dictionary, word string) ([]model.Entry, error)
}
