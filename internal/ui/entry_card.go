package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/vocab-trainer/internal/model"
)

// EntryCard renders one dictionary entry: the headword with its functional
// label, then each definition's sense sequence separated by a rule.
type EntryCard struct {
	widget.BaseWidget

	entry        model.Entry
	localization *Localization

	headerLabel *widget.Label
	senseLabels []*widget.Label
	content     *fyne.Container
}

// NewEntryCard creates a card for entry
func NewEntryCard(entry model.Entry, localization *Localization) *EntryCard {
	ec := &EntryCard{
		entry:        entry,
		localization: localization,
	}
	ec.ExtendBaseWidget(ec)
	ec.createUI()
	return ec
}

// Entry returns the rendered entry
func (ec *EntryCard) Entry() model.Entry {
	return ec.entry
}

// HeaderText returns the headword line as shown
func (ec *EntryCard) HeaderText() string {
	return ec.headerLabel.Text
}

// SenseTexts returns the text of every rendered definition
func (ec *EntryCard) SenseTexts() []string {
	texts := make([]string, 0, len(ec.senseLabels))
	for _, l := range ec.senseLabels {
		texts = append(texts, l.Text)
	}
	return texts
}

func (ec *EntryCard) createUI() {
	ec.headerLabel = widget.NewLabelWithStyle(headerText(ec.entry), fyne.TextAlignLeading, fyne.TextStyle{Italic: true, Bold: true})
	ec.headerLabel.Wrapping = fyne.TextWrapWord

	ec.content = container.NewVBox(ec.headerLabel)

	if len(ec.entry.Definitions) == 0 {
		empty := widget.NewLabel(ec.localization.GetText(KeyNoDefinitions))
		empty.Importance = widget.LowImportance
		ec.content.Add(empty)
		return
	}

	for i, def := range ec.entry.Definitions {
		if i > 0 {
			ec.content.Add(widget.NewSeparator())
		}
		if def.VerbDivider != "" {
			vd := widget.NewLabelWithStyle(def.VerbDivider, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
			vd.Importance = widget.LowImportance
			ec.content.Add(vd)
		}
		sense := widget.NewLabel(def.SenseText())
		sense.Wrapping = fyne.TextWrapWord
		ec.senseLabels = append(ec.senseLabels, sense)
		ec.content.Add(sense)
	}
}

// headerText joins the headword and the functional label when present
func headerText(entry model.Entry) string {
	if !entry.HasLabel() {
		return entry.Headword.Value
	}
	return entry.Headword.Value + MiddleDotSeparator + entry.Label()
}

// CreateRenderer creates the widget renderer
func (ec *EntryCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ec.content)
}
