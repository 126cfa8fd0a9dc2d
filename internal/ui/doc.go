package ui

// Package ui contains the Fyne-based desktop user interface for the vocabulary
// trainer. It binds the text field to the application state, starts lookups
// through the lookup service and renders fetched entries, the headword side
// panel, notifications and settings. All UI strings are localized via
// Localization.
