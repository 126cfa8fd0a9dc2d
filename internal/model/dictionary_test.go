package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionary(t *testing.T) {
	tests := []struct {
		input   string
		want    Dictionary
		wantErr bool
	}{
		{input: "learners", want: DictionaryLearners},
		{input: "Collegiate", want: DictionaryCollegiate},
		{input: "  learners ", want: DictionaryLearners},
		{input: "thesaurus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDictionary(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionary_PathSegment(t *testing.T) {
	assert.Equal(t, "learners/json/", DictionaryLearners.PathSegment())
	assert.Equal(t, "collegiate/json/", DictionaryCollegiate.PathSegment())
}

func TestDictionary_JSON(t *testing.T) {
	data, err := json.Marshal(DictionaryCollegiate)
	require.NoError(t, err)
	assert.Equal(t, `"collegiate"`, string(data))

	var d Dictionary
	require.NoError(t, json.Unmarshal([]byte(`"learners"`), &d))
	assert.Equal(t, DictionaryLearners, d)

	assert.Error(t, json.Unmarshal([]byte(`"medical"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDictionary_DisplayName(t *testing.T) {
	assert.Equal(t, "Learner's Dictionary", DictionaryLearners.DisplayName())
	assert.Equal(t, "Collegiate Dictionary", DictionaryCollegiate.DisplayName())
	assert.Equal(t, "other", Dictionary("other").DisplayName())
}
