package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

// CardActions are the handlers behind the card buttons
type CardActions struct {
	Play  func(model.Result)
	Save  func(model.Result)
	Share func(model.Result)
}

// ResultCard displays one analysed segment
type ResultCard struct {
	widget.BaseWidget

	result model.Result
	texts  *i18n.Localization

	titleLabel     *widget.Label
	segmentLabel   *widget.Label
	melodyLabel    *widget.Label
	frequencyLabel *widget.Label
	overallLabel   *widget.Label

	playBtn  *widget.Button
	saveBtn  *widget.Button
	shareBtn *widget.Button
}

// NewResultCard creates a card for result
func NewResultCard(result model.Result, texts *i18n.Localization, actions CardActions) *ResultCard {
	c := &ResultCard{
		result: result,
		texts:  texts,
	}
	c.ExtendBaseWidget(c)

	c.titleLabel = widget.NewLabel("")
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis

	c.segmentLabel = widget.NewLabel("")
	c.segmentLabel.Importance = widget.LowImportance

	c.melodyLabel = widget.NewLabel("")
	c.frequencyLabel = widget.NewLabel("")
	c.overallLabel = widget.NewLabel("")
	c.overallLabel.TextStyle = fyne.TextStyle{Bold: true}

	c.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() { call(actions.Play, c.result) })
	c.saveBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), func() { call(actions.Save, c.result) })
	c.shareBtn = widget.NewButtonWithIcon("", theme.MailForwardIcon(), func() { call(actions.Share, c.result) })
	c.shareBtn.Importance = widget.HighImportance

	if result.AudioURL == "" {
		c.playBtn.Disable()
		c.saveBtn.Disable()
	}

	c.RefreshTexts()
	return c
}

func call(fn func(model.Result), r model.Result) {
	if fn != nil {
		fn(r)
	}
}

// Result returns the rendered record
func (c *ResultCard) Result() model.Result {
	return c.result
}

// RefreshTexts re-renders every label with the current language
func (c *ResultCard) RefreshTexts() {
	c.titleLabel.SetText(c.result.GetDisplayTitle())
	c.segmentLabel.SetText(c.texts.Format(i18n.KeySegmentFormat, c.result.StartMinute, c.result.EndMinute))
	c.melodyLabel.SetText(scoreLine(c.texts.GetText(i18n.KeyMelody), c.result.MelodyScore))
	c.frequencyLabel.SetText(scoreLine(c.texts.GetText(i18n.KeyFrequency), c.result.FrequencyScore))
	c.overallLabel.SetText(scoreLine(c.texts.GetText(i18n.KeyOverall), c.result.CombinedScore))
	c.playBtn.SetText(c.texts.GetText(i18n.KeyPlay))
	c.saveBtn.SetText(c.texts.GetText(i18n.KeySaveAudio))
	c.shareBtn.SetText(c.texts.GetText(i18n.KeyShare))
}

func scoreLine(label string, score float64) string {
	return label + ": " + model.FormatScore(score)
}

// Texts returns the visible label texts, top to bottom
func (c *ResultCard) Texts() []string {
	return []string{
		c.titleLabel.Text,
		c.segmentLabel.Text,
		c.melodyLabel.Text,
		c.frequencyLabel.Text,
		c.overallLabel.Text,
	}
}

// CreateRenderer lays out title, segment, scores and the action row
func (c *ResultCard) CreateRenderer() fyne.WidgetRenderer {
	scores := container.NewGridWithColumns(3, c.melodyLabel, c.frequencyLabel, c.overallLabel)
	actions := container.NewHBox(c.playBtn, c.saveBtn, c.shareBtn)

	body := container.NewVBox(
		c.titleLabel,
		c.segmentLabel,
		scores,
		actions,
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(body)
}
