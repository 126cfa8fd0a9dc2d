package platform

// Package platform contains OS integration helpers: where the application
// keeps its files on each platform and filesystem helpers for creating them.
