package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Duration(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Zero(t, (&Lookup{}).Duration())

	finished := &Lookup{StartedAt: start, FinishedAt: start.Add(1500 * time.Millisecond)}
	assert.Equal(t, 1500*time.Millisecond, finished.Duration())

	running := &Lookup{StartedAt: time.Now().Add(-time.Second)}
	assert.GreaterOrEqual(t, running.Duration(), time.Second)
}

func TestLookup_ErrorText(t *testing.T) {
	assert.Empty(t, (&Lookup{}).ErrorText())
	assert.Equal(t, "boom", (&Lookup{LastError: errors.New("boom")}).ErrorText())
}
