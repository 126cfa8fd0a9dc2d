package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/vocab-trainer/internal/model"
)

const redactedKey = "REDACTED"

// Options configures a Client
type Options struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration // 0 disables the client timeout
	UserAgent string
	Logger    zerolog.Logger
}

// Client fetches entries from the Merriam-Webster API
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	log     zerolog.Logger
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a Client; the base URL must end with "/"
func NewClient(opts Options) *Client {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &Client{
		http:    client,
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		log:     opts.Logger.With().Str("adapter", "merriam-webster").Logger(),
	}
}

// Fetch issues one GET for word against dict and decodes the entries.
// No retries are attempted.
func (c *Client) Fetch(ctx context.Context, dict model.Dictionary, word string) ([]model.Entry, error) {
	reqURL := RequestURL(c.baseURL, dict, word, c.apiKey)
	logURL := c.redact(reqURL)

	c.log.Debug().Str("word", word).Str("dictionary", dict.String()).Str("url", logURL).Msg("dictionary request")

	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		Get(reqURL)
	if err != nil {
		c.log.Error().Err(err).Str("word", word).Msg("dictionary request failed")
		return nil, &TransportError{URL: logURL, Err: c.redactError(err)}
	}
	if !res.IsSuccess() {
		c.log.Error().Int("status", res.StatusCode()).Str("word", word).Msg("dictionary request failed")
		return nil, &TransportError{
			URL:        logURL,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected status %d", res.StatusCode()),
		}
	}

	entries, err := decodeEntries(word, res.Body())
	if err != nil {
		c.log.Warn().Err(err).Str("word", word).Msg("dictionary response rejected")
		return nil, err
	}

	c.log.Debug().
		Str("word", word).
		Int("status", res.StatusCode()).
		Int("entries", len(entries)).
		Dur("elapsed", time.Since(start)).
		Msg("dictionary response")

	return entries, nil
}

// decodeEntries converts a response body into entries. The service answers
// unknown words with a JSON array of suggestion strings.
func decodeEntries(word string, body []byte) ([]model.Entry, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if len(items) == 0 {
		return nil, &NotFoundError{Word: word}
	}

	var suggestions []string
	if err := json.Unmarshal(body, &suggestions); err == nil {
		return nil, &NotFoundError{Word: word, Suggestions: suggestions}
	}

	entries := make([]model.Entry, 0, len(items))
	for i, item := range items {
		var entry model.Entry
		if err := json.Unmarshal(item, &entry); err != nil {
			return nil, &DecodeError{Body: body, Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Client) redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(c.apiKey), redactedKey)
	return strings.ReplaceAll(s, c.apiKey, redactedKey)
}

// redactError keeps the error chain intact (context errors stay detectable)
// while removing the key from the message.
func (c *Client) redactError(err error) error {
	msg := err.Error()
	if c.apiKey == "" || !strings.Contains(msg, c.apiKey) && !strings.Contains(msg, url.QueryEscape(c.apiKey)) {
		return err
	}
	return &redactedError{msg: c.redact(msg), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
