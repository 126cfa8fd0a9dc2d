package model

// LookupStatus represents the status of a dictionary lookup
type LookupStatus string

const (
	// LookupStatusPending means the lookup is created but the request is not sent yet
	LookupStatusPending LookupStatus = "Pending"

	// LookupStatusFetching means the HTTP request is in flight
	LookupStatusFetching LookupStatus = "Fetching"

	// LookupStatusCompleted means entries were fetched and decoded
	LookupStatusCompleted LookupStatus = "Completed"

	// LookupStatusCanceled means the lookup was canceled by the user or on shutdown
	LookupStatusCanceled LookupStatus = "Canceled"

	// LookupStatusError means the lookup failed with an error
	LookupStatusError LookupStatus = "Error"
)

// String returns the string representation of LookupStatus
func (ls LookupStatus) String() string {
	return string(ls)
}

// IsActive returns true while the lookup still owns the request slot
func (ls LookupStatus) IsActive() bool {
	return ls == LookupStatusPending || ls == LookupStatusFetching
}

// IsFinished returns true if the lookup is in a finished state (completed, canceled, or error)
func (ls LookupStatus) IsFinished() bool {
	return ls == LookupStatusCompleted || ls == LookupStatusCanceled || ls == LookupStatusError
}
