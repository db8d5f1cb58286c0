package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/charmbracelet/log"

	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

// ResultsView owns the results region. Render and Clear run on the UI
// goroutine; Replace may be called from anywhere.
type ResultsView struct {
	texts   *i18n.Localization
	actions CardActions

	cards []*ResultCard
	box   *fyne.Container
}

// NewResultsView creates an empty results region
func NewResultsView(texts *i18n.Localization, actions CardActions) *ResultsView {
	return &ResultsView{
		texts:   texts,
		actions: actions,
		box:     container.NewVBox(),
	}
}

// Container returns the cards container
func (v *ResultsView) Container() fyne.CanvasObject {
	return v.box
}

// Render appends a card for result
func (v *ResultsView) Render(result model.Result) *ResultCard {
	card := NewResultCard(result, v.texts, v.actions)
	v.cards = append(v.cards, card)
	v.box.Add(card)
	return card
}

// Clear removes every card
func (v *ResultsView) Clear() {
	v.cards = nil
	v.box.RemoveAll()
}

// Replace clears the region and renders results in order
func (v *ResultsView) Replace(results []model.Result) {
	fyne.DoAndWait(func() {
		v.Clear()
		for _, r := range results {
			v.Render(r)
		}
	})
	log.Debug("results rendered", "cards", len(results))
}

// Cards returns the rendered cards in order
func (v *ResultsView) Cards() []*ResultCard {
	return append([]*ResultCard(nil), v.cards...)
}

// RefreshTexts re-renders cards after a language change
func (v *ResultsView) RefreshTexts() {
	for _, c := range v.cards {
		c.RefreshTexts()
	}
}
