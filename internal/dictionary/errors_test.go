package dictionary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	withStatus := &TransportError{URL: "https://x/learners/json/a", StatusCode: 503, Err: errors.New("unexpected status 503")}
	assert.Equal(t, "dictionary: request https://x/learners/json/a failed with status 503", withStatus.Error())

	network := &TransportError{URL: "https://x/learners/json/a", Err: context.DeadlineExceeded}
	assert.Contains(t, network.Error(), "context deadline exceeded")
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", network), context.DeadlineExceeded)
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{Body: []byte("[{"), Err: inner}
	assert.Equal(t, "dictionary: decode response: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, `dictionary: no entries for "gregarous"`, (&NotFoundError{Word: "gregarous"}).Error())
	assert.Equal(t,
		`dictionary: no entries for "gregarous", did you mean: gregarious, gregariously`,
		(&NotFoundError{Word: "gregarous", Suggestions: []string{"gregarious", "gregariously"}}).Error(),
	)
}
