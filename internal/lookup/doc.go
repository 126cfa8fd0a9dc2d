package lookup

// Package lookup runs dictionary requests off the UI goroutine. It allows one
// lookup at a time, tracks its status, supports cancellation and reports every
// status change to the UI through an update callback.
