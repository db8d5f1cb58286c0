package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prosody-desktop/internal/i18n"
)

// SubmitButton is a form's submit control. While busy it is disabled and
// shows the "analyzing" label.
type SubmitButton struct {
	button  *widget.Button
	texts   *i18n.Localization
	idleKey string

	mu   sync.Mutex
	busy bool
}

// NewSubmitButton creates a button labelled with idleKey
func NewSubmitButton(texts *i18n.Localization, idleKey string, onTapped func()) *SubmitButton {
	b := &SubmitButton{
		texts:   texts,
		idleKey: idleKey,
	}
	b.button = widget.NewButton(texts.GetText(idleKey), onTapped)
	b.button.Importance = widget.HighImportance
	return b
}

// Button returns the underlying widget
func (b *SubmitButton) Button() *widget.Button {
	return b.button
}

// SetBusy toggles the busy state. It is safe to call from any goroutine.
func (b *SubmitButton) SetBusy(busy bool) {
	b.mu.Lock()
	b.busy = busy
	b.mu.Unlock()

	fyne.Do(b.refresh)
}

// IsBusy reports whether a submission is running
func (b *SubmitButton) IsBusy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busy
}

// RefreshTexts re-reads the labels after a language change
func (b *SubmitButton) RefreshTexts() {
	b.refresh()
}

func (b *SubmitButton) refresh() {
	if b.IsBusy() {
		b.button.SetText(b.texts.GetText(i18n.KeyAnalyzing))
		b.button.Disable()
		return
	}
	b.button.SetText(b.texts.GetText(b.idleKey))
	b.button.Enable()
}
