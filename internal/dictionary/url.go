package dictionary

import (
	"net/url"
	"strings"

	"github.com/ytget/vocab-trainer/internal/model"
)

// RequestURL returns {baseURL}{dictionary}/json/{word}?key={apiKey}. The word
// is path-escaped but otherwise sent as typed.
func RequestURL(baseURL string, dict model.Dictionary, word, apiKey string) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString(dict.PathSegment())
	b.WriteString(url.PathEscape(word))
	b.WriteString("?key=")
	b.WriteString(url.QueryEscape(apiKey))
	return b.String()
}
