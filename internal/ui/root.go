package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/vocab-trainer/internal/config"
	"github.com/ytget/vocab-trainer/internal/dictionary"
	"github.com/ytget/vocab-trainer/internal/lookup"
	"github.com/ytget/vocab-trainer/internal/model"
	"github.com/ytget/vocab-trainer/internal/state"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	state        *state.State
	lookupSvc    lookup.Lookuper
	log          zerolog.Logger

	titleText   *canvas.Text
	wordEntry   *widget.Entry
	fetchBtn    *widget.Button
	wordHeading *canvas.Text
	resultBox   *fyne.Container
	results     *container.Scroll

	headwordList  *widget.List
	sidePanel     fyne.CanvasObject
	sidePanelHead *widget.Label
	body          *fyne.Container

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, st *state.State, lookupSvc lookup.Lookuper, log zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(fyne.CurrentDevice()),
		state:        st,
		lookupSvc:    lookupSvc,
		log:          log,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.lookupSvc.SetUpdateCallback(ui.onLookupUpdate)

	ui.setupUI()
	ui.log.Debug().
		Str("dictionary", st.PreferredDictionary.String()).
		Int("entries", len(st.Entries)).
		Msg("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), theme.Color(theme.ColorNameForeground))
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.Alignment = fyne.TextAlignCenter

	ui.wordEntry = widget.NewEntry()
	ui.wordEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterWord))
	if word, ok := ui.state.Word(); ok {
		ui.wordEntry.SetText(word)
	}
	// Every edit goes straight into the state
	ui.wordEntry.OnChanged = ui.onWordChanged
	ui.wordEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}

	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyGetDefinition), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	inputRow := container.NewBorder(nil, nil, settingsBtn, ui.fetchBtn, ui.wordEntry)

	// Notification panel under the input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.wordHeading = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.wordHeading.TextStyle = fyne.TextStyle{Bold: true}
	ui.wordHeading.TextSize = WordTextSize
	ui.wordHeading.Alignment = fyne.TextAlignCenter

	ui.resultBox = container.NewVBox()
	ui.results = container.NewScroll(container.NewVBox(ui.wordHeading, ui.resultBox))

	ui.headwordList = widget.NewList(
		func() int {
			return len(ui.state.Entries)
		},
		func() fyne.CanvasObject {
			return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateHeadwordItem(id, obj)
		},
	)
	ui.sidePanelHead = widget.NewLabelWithStyle(ui.localization.GetText(KeyHeadwords), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.sidePanel = container.NewBorder(ui.sidePanelHead, nil, nil, nil, ui.headwordList)

	ui.body = container.NewStack()
	ui.applySidePanelSetting()

	top := container.NewVBox(
		ui.titleText,
		widget.NewSeparator(),
		inputRow,
		ui.notificationContainer,
		widget.NewSeparator(),
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.body))

	ui.refreshWordHeading()
	ui.renderEntries()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()

	ui.wordEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterWord))
	ui.fetchBtn.SetText(ui.localization.GetText(KeyGetDefinition))
	ui.sidePanelHead.SetText(ui.localization.GetText(KeyHeadwords))

	ui.renderEntries()
}

// applySidePanelSetting shows or hides the headword panel
func (ui *RootUI) applySidePanelSetting() {
	if ui.settings.GetShowSidePanel() {
		ui.body.Objects = []fyne.CanvasObject{ui.mobile.SplitWithSidePanel(ui.sidePanel, ui.results)}
	} else {
		ui.body.Objects = []fyne.CanvasObject{ui.results}
	}
	ui.body.Refresh()
}

// updateHeadwordItem renders one "i: headword" row of the side panel
func (ui *RootUI) updateHeadwordItem(id widget.ListItemID, obj fyne.CanvasObject) {
	label, ok := obj.(*widget.Label)
	if !ok || id < 0 || id >= len(ui.state.Entries) {
		return
	}
	label.SetText(fmt.Sprintf(HeadwordItemFormat, id, ui.state.Entries[id].Headword.Value))
}

// onWordChanged stores every edit of the text field as the current word
func (ui *RootUI) onWordChanged(text string) {
	ui.state.SetCurrentWord(text)
	ui.refreshWordHeading()
}

// refreshWordHeading shows the current word above the entries
func (ui *RootUI) refreshWordHeading() {
	word, ok := ui.state.Word()
	if !ok {
		ui.wordHeading.Text = ""
		ui.wordHeading.Hide()
	} else {
		ui.wordHeading.Text = word
		ui.wordHeading.Show()
	}
	ui.wordHeading.Refresh()
}

// onFetchClick starts a lookup of the current word
func (ui *RootUI) onFetchClick() {
	word, ok := ui.state.Word()
	if !ok || strings.TrimSpace(word) == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterWord), false)
		return
	}

	dict := ui.state.PreferredDictionary
	l, err := ui.lookupSvc.Start(dict, word)
	if err != nil {
		if errors.Is(err, lookup.ErrLookupInProgress) {
			ui.showNotification(ui.localization.GetText(KeyLookupInProgress), true)
			return
		}
		ui.log.Error().Err(err).Str("word", word).Msg("failed to start lookup")
		ui.showNotification(ui.localization.GetText(KeyLookupFailed)+": "+err.Error(), false)
		return
	}

	ui.log.Info().
		Str("lookup_id", l.ID).
		Str("word", word).
		Str("dictionary", dict.String()).
		Msg("lookup started")
}

// onLookupUpdate handles status updates from the lookup service. It is called
// from the service goroutine.
func (ui *RootUI) onLookupUpdate(l *model.Lookup) {
	fyne.Do(func() {
		ui.applyLookup(l)
	})
}

// applyLookup reflects a lookup status in the UI; must run on the UI goroutine
func (ui *RootUI) applyLookup(l *model.Lookup) {
	if l.Status.IsActive() {
		ui.fetchBtn.Disable()
		ui.showNotification(ui.localization.Format(KeyLookingUp, l.Word), true)
		return
	}

	ui.fetchBtn.Enable()
	switch l.Status {
	case model.LookupStatusCompleted:
		ui.state.ApplyEntries(l.Entries)
		ui.hideNotification()
		ui.renderEntries()
	case model.LookupStatusError:
		// Entries of the previous lookup stay on screen
		ui.showNotification(ui.errorMessage(l.LastError), false)
	case model.LookupStatusCanceled:
		ui.hideNotification()
	}
}

// errorMessage turns a lookup error into a localized, user-facing message
func (ui *RootUI) errorMessage(err error) string {
	var notFound *dictionary.NotFoundError
	var transport *dictionary.TransportError
	var decode *dictionary.DecodeError

	switch {
	case errors.As(err, &notFound):
		msg := ui.localization.Format(KeyNoEntries, notFound.Word)
		if len(notFound.Suggestions) > 0 {
			msg += ". " + ui.localization.Format(KeyDidYouMean, strings.Join(notFound.Suggestions, SuggestionJoiner))
		}
		return msg
	case errors.As(err, &transport):
		return ui.localization.GetText(KeyNetworkError) + ": " + transport.Error()
	case errors.As(err, &decode):
		return ui.localization.GetText(KeyUnexpectedReply) + ": " + decode.Error()
	case err != nil:
		return ui.localization.GetText(KeyLookupFailed) + ": " + err.Error()
	}
	return ui.localization.GetText(KeyLookupFailed)
}

// renderEntries rebuilds the result area and the side panel from the state
func (ui *RootUI) renderEntries() {
	objects := make([]fyne.CanvasObject, 0, len(ui.state.Entries))
	for _, entry := range ui.state.Entries {
		objects = append(objects, NewEntryCard(entry, ui.localization))
	}
	ui.resultBox.Objects = objects
	ui.resultBox.Refresh()
	ui.results.ScrollToTop()

	ui.headwordList.Refresh()
}

// showNotification displays a message in the notification panel under the word input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.window, ui.settings, ui.localization, ui.state.PreferredDictionary, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the saved settings to the running UI
func (ui *RootUI) onSettingsSaved(values SettingsValues) {
	if err := ui.state.SetPreferredDictionary(values.Dictionary); err != nil {
		ui.log.Error().Err(err).Msg("failed to switch dictionary")
	}
	ui.onLanguageChange(values.Language)
	ui.applySidePanelSetting()
	ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
}

// SaveState cancels a running lookup, stores the window size and persists
// the application state. It is called when the window closes.
func (ui *RootUI) SaveState() error {
	if err := ui.lookupSvc.Cancel(); err != nil && !errors.Is(err, lookup.ErrNoActiveLookup) {
		ui.log.Warn().Err(err).Msg("failed to cancel lookup")
	}
	waitWithTimeout(ui.lookupSvc.Wait, ShutdownWait)

	ui.settings.SetWindowSize(ui.window.Canvas().Size())

	if err := state.Persist(ui.settings.Preferences(), ui.state); err != nil {
		return fmt.Errorf("state.Persist > %w", err)
	}
	ui.log.Debug().Int("entries", len(ui.state.Entries)).Msg("state persisted")
	return nil
}

// waitWithTimeout calls wait and gives up after timeout
func waitWithTimeout(wait func(), timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
