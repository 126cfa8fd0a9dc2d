package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}

	if settings.Preferences() != app.Preferences() {
		t.Error("Settings should expose the app preferences")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	if size != fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight) {
		t.Errorf("Expected default window size, got %v", size)
	}

	// Test setting custom value
	settings.SetWindowSize(fyne.NewSize(1024, 768))
	size = settings.GetWindowSize()
	if size != fyne.NewSize(1024, 768) {
		t.Errorf("Expected window size 1024x768, got %v", size)
	}

	// Too small sizes are not stored
	settings.SetWindowSize(fyne.NewSize(10, 10))
	size = settings.GetWindowSize()
	if size != fyne.NewSize(1024, 768) {
		t.Errorf("Expected window size to stay 1024x768, got %v", size)
	}

	// Corrupt stored values fall back to the default
	app.Preferences().SetFloat(KeyWindowWidth, 5)
	size = settings.GetWindowSize()
	if size != fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight) {
		t.Errorf("Expected default window size for corrupt value, got %v", size)
	}
}

func TestShowSidePanel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowSidePanel() != DefaultShowSidePanel {
		t.Errorf("Expected default side panel visibility %v", DefaultShowSidePanel)
	}

	settings.SetShowSidePanel(false)
	if settings.GetShowSidePanel() {
		t.Error("Expected side panel to be hidden")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
