package model

import (
	"time"
)

// Lookup represents a single dictionary request and its outcome
type Lookup struct {
	ID         string
	Word       string
	Dictionary Dictionary
	Status     LookupStatus
	Entries    []Entry   // set when Status is Completed
	LastError  error     // set when Status is Error
	StartedAt  time.Time // when the lookup was created
	FinishedAt time.Time // when the lookup reached a finished state
}

// Duration returns how long the lookup took, or the time elapsed so far while active
func (l *Lookup) Duration() time.Duration {
	if l.StartedAt.IsZero() {
		return 0
	}
	if l.FinishedAt.IsZero() {
		return time.Since(l.StartedAt)
	}
	return l.FinishedAt.Sub(l.StartedAt)
}

// ErrorText returns the last error message, or "" if the lookup did not fail
func (l *Lookup) ErrorText() string {
	if l.LastError == nil {
		return ""
	}
	return l.LastError.Error()
}
