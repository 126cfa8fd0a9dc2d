package dictionary

import (
	"fmt"
	"strings"
)

// TransportError reports a failure to obtain a response body: network, DNS,
// connection or a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dictionary: request %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("dictionary: request %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not match the entry schema
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dictionary: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when the service knows no entry for the word and
// answers with spelling suggestions instead.
type NotFoundError struct {
	Word        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("dictionary: no entries for %q", e.Word)
	}
	return fmt.Sprintf("dictionary: no entries for %q, did you mean: %s", e.Word, strings.Join(e.Suggestions, ", "))
}
