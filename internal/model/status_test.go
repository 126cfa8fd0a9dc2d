package model

import "testing"

func TestLookupStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   LookupStatus
		expected bool
	}{
		{LookupStatusPending, true},
		{LookupStatusFetching, true},
		{LookupStatusCompleted, false},
		{LookupStatusCanceled, false},
		{LookupStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("LookupStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLookupStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   LookupStatus
		expected bool
	}{
		{LookupStatusPending, false},
		{LookupStatusFetching, false},
		{LookupStatusCompleted, true},
		{LookupStatusCanceled, true},
		{LookupStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("LookupStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestLookupStatus_String(t *testing.T) {
	status := LookupStatusFetching
	expected := "Fetching"
	result := status.String()

	if result != expected {
		t.Errorf("LookupStatus.String() = %s, expected %s", result, expected)
	}
}
