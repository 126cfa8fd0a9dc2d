package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeyShowSidePanel = "show_side_panel"

	// KeyAppState holds the serialized application state blob
	KeyAppState = "app_state"
)

// Default values
const (
	DefaultLanguage      = "system"
	DefaultWindowWidth   = 800
	DefaultWindowHeight  = 600
	DefaultShowSidePanel = true

	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// Settings manages UI preferences stored by the host application
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Preferences exposes the underlying key-value storage
func (s *Settings) Preferences() fyne.Preferences {
	return s.app.Preferences()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetWindowSize returns the last saved window size
func (s *Settings) GetWindowSize() fyne.Size {
	prefs := s.app.Preferences()
	width := prefs.FloatWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := prefs.FloatWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if width < MinWindowWidth || height < MinWindowHeight {
		return fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	}
	return fyne.NewSize(float32(width), float32(height))
}

// SetWindowSize stores the window size; sizes below the minimum are ignored
func (s *Settings) SetWindowSize(size fyne.Size) {
	if size.Width < MinWindowWidth || size.Height < MinWindowHeight {
		return
	}
	s.app.Preferences().SetFloat(KeyWindowWidth, float64(size.Width))
	s.app.Preferences().SetFloat(KeyWindowHeight, float64(size.Height))
}

// GetShowSidePanel returns whether the headword side panel is visible
func (s *Settings) GetShowSidePanel() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowSidePanel, DefaultShowSidePanel)
}

// SetShowSidePanel sets whether the headword side panel is visible
func (s *Settings) SetShowSidePanel(show bool) {
	s.app.Preferences().SetBool(KeyShowSidePanel, show)
}
