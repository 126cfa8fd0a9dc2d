package app

// Package app wires configuration, logging, the dictionary client, the lookup
// service, the application state and the Fyne window together.

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/ytget/vocab-trainer/internal/config"
	"github.com/ytget/vocab-trainer/internal/dictionary"
	"github.com/ytget/vocab-trainer/internal/logger"
	"github.com/ytget/vocab-trainer/internal/lookup"
	"github.com/ytget/vocab-trainer/internal/model"
	"github.com/ytget/vocab-trainer/internal/state"
	"github.com/ytget/vocab-trainer/internal/ui"
)

const (
	AppID   = "com.ytget.vocab-trainer"
	AppName = "Vocabulary Trainer"
)

// Options controls how the GUI starts
type Options struct {
	ConfigFile string
	// Dictionary overrides the restored preferred dictionary when set
	Dictionary model.Dictionary
	Version    string
}

// NewLogger builds the process logger from the loaded configuration
func NewLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
}

// NewDictionaryClient builds the HTTP dictionary client from the loaded configuration
func NewDictionaryClient(cfg *config.Config, log zerolog.Logger) *dictionary.Client {
	return dictionary.NewClient(dictionary.Options{
		BaseURL:   cfg.API.BaseURL,
		APIKey:    cfg.API.Key,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Logger:    logger.Component(log, "dictionary"),
	})
}

// RunGUI loads configuration, builds the window and blocks until it is closed.
// The application state is persisted when the window closes.
func RunGUI(opts Options) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("config.Load > %w", err)
	}
	log := NewLogger(cfg)
	log.Info().Str("version", opts.Version).Msg("vocabulary trainer starting")

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewReadingTheme())

	window, root, err := Build(a, cfg, opts, log)
	if err != nil {
		return err
	}

	window.SetCloseIntercept(func() {
		if err := root.SaveState(); err != nil {
			log.Error().Err(err).Msg("failed to save state")
		}
		window.Close()
	})

	window.ShowAndRun()
	log.Info().Msg("vocabulary trainer stopped")
	return nil
}

// Build creates the main window and its UI for the Fyne app a
func Build(a fyne.App, cfg *config.Config, opts Options, log zerolog.Logger) (fyne.Window, *ui.RootUI, error) {
	settings := config.NewSettings(a)

	st := state.Initialize(settings.Preferences(), logger.Component(log, "state"))
	if opts.Dictionary != "" {
		if err := st.SetPreferredDictionary(opts.Dictionary); err != nil {
			return nil, nil, fmt.Errorf("state.SetPreferredDictionary > %w", err)
		}
	}

	service := lookup.NewService(NewDictionaryClient(cfg, log), logger.Component(log, "lookup"))

	window := a.NewWindow(AppName)
	window.Resize(settings.GetWindowSize())
	window.SetMaster()

	root := ui.NewRootUI(window, a, st, service, logger.Component(log, "ui"))
	return window, root, nil
}
