package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toast is the in-window notification strip. A new message replaces the
// current one and restarts the hide timer.
type Toast struct {
	label *widget.Label
	panel *fyne.Container

	delay time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	message    string
	visible    bool
}

// NewToast creates a hidden toast
func NewToast() *Toast {
	t := &Toast{delay: ToastAutoHide}

	t.label = widget.NewLabel("")
	t.label.Alignment = fyne.TextAlignCenter
	t.label.Wrapping = fyne.TextWrapWord

	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	bg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	bg.StrokeColor = theme.Color(theme.ColorNamePrimary)
	bg.StrokeWidth = 1

	t.panel = container.NewPadded(container.NewStack(bg, container.NewPadded(t.label)))
	t.panel.Hide()

	return t
}

// Container returns the toast canvas object
func (t *Toast) Container() fyne.CanvasObject {
	return t.panel
}

// Notify shows message and schedules it to disappear. It is safe to call
// from any goroutine.
func (t *Toast) Notify(message string) {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	if t.timer != nil {
		t.timer.Stop()
	}
	t.message = message
	t.visible = true
	t.timer = time.AfterFunc(t.delay, func() { t.hide(gen) })
	t.mu.Unlock()

	fyne.Do(func() {
		if !t.isCurrent(gen) {
			return
		}
		t.label.SetText(message)
		t.panel.Show()
	})
}

// hide removes the message shown by generation gen, unless a newer one replaced it
func (t *Toast) hide(gen uint64) {
	t.mu.Lock()
	if gen != t.generation {
		t.mu.Unlock()
		return
	}
	t.visible = false
	t.mu.Unlock()

	fyne.Do(func() {
		if !t.isCurrent(gen) {
			return
		}
		t.panel.Hide()
	})
}

func (t *Toast) isCurrent(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return gen == t.generation
}

// Message returns the last message
func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

// Visible reports whether a message is currently shown
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}
