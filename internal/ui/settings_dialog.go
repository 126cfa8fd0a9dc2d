package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/vocab-trainer/internal/config"
	"github.com/ytget/vocab-trainer/internal/model"
)

// SettingsValues is the outcome of a saved settings dialog
type SettingsValues struct {
	Dictionary    model.Dictionary
	Language      string
	ShowSidePanel bool
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	dictionary   model.Dictionary
	onSaved      func(SettingsValues)

	// UI components
	dictionarySelect *widget.Select
	languageSelect   *widget.Select
	sidePanelCheck   *widget.Check

	languageCodes map[string]string // display label -> language code
}

// NewSettingsDialog creates a new settings dialog. dictionary is the
// dictionary currently held by the application state.
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, dictionary model.Dictionary, onSaved func(SettingsValues)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		dictionary:   dictionary,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	dictionaryOptions := make([]string, 0, len(model.AllDictionaries))
	for _, d := range model.AllDictionaries {
		dictionaryOptions = append(dictionaryOptions, d.DisplayName())
	}
	sd.dictionarySelect = widget.NewSelect(dictionaryOptions, nil)

	languageLabels := sd.settings.GetLanguageOptions()
	codes := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	sd.languageCodes = make(map[string]string, len(codes))
	languageOptions := make([]string, 0, len(codes))
	for _, code := range codes {
		label := languageLabels[code]
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.sidePanelCheck = widget.NewCheck(sd.localization.GetText(KeyShowSidePanel), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDictionary)+":"),
		sd.dictionarySelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		sd.sidePanelCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dictionarySelect.SetSelected(sd.dictionary.DisplayName())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.sidePanelCheck.SetChecked(sd.settings.GetShowSidePanel())
}

// Values returns what the dialog currently shows
func (sd *SettingsDialog) Values() SettingsValues {
	values := SettingsValues{
		Dictionary:    sd.dictionary,
		Language:      sd.settings.GetLanguage(),
		ShowSidePanel: sd.sidePanelCheck.Checked,
	}
	for _, d := range model.AllDictionaries {
		if d.DisplayName() == sd.dictionarySelect.Selected {
			values.Dictionary = d
		}
	}
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		values.Language = code
	}
	return values
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	values := sd.Values()
	sd.settings.SetLanguage(values.Language)
	sd.settings.SetShowSidePanel(values.ShowSidePanel)
	sd.dictionary = values.Dictionary

	if sd.onSaved != nil {
		sd.onSaved(values)
	}
}
