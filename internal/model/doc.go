package model

// Package model defines domain data structures used across the app: the
// dictionary variants, Merriam-Webster entries, and lookup requests with their
// status enum. Structures are JSON-tagged so they can be persisted as part of
// the application state.
