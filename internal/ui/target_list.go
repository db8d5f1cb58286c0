package ui

import (
	"context"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

// PlaylistExpander resolves a playlist link into targets
type PlaylistExpander interface {
	Expand(ctx context.Context, url string, startMinute int) ([]model.Target, error)
}

// TargetRow is one editable link with its start minute
type TargetRow struct {
	widget.BaseWidget

	ID string

	urlEntry    *widget.Entry
	minuteEntry *widget.Entry
	removeBtn   *widget.Button
}

func newTargetRow(texts *i18n.Localization, url string, startMinute int, onRemove func(*TargetRow)) *TargetRow {
	r := &TargetRow{ID: uuid.NewString()}

	r.urlEntry = widget.NewEntry()
	r.urlEntry.SetPlaceHolder(texts.GetText(i18n.KeyURLPlaceholder))
	r.urlEntry.SetText(url)

	r.minuteEntry = widget.NewEntry()
	r.minuteEntry.SetPlaceHolder(texts.GetText(i18n.KeyMinuteLabel))
	r.minuteEntry.SetText(strconv.Itoa(startMinute))

	r.removeBtn = widget.NewButtonWithIcon(texts.GetText(i18n.KeyRemoveRow), theme.DeleteIcon(), func() {
		if onRemove != nil {
			onRemove(r)
		}
	})
	r.removeBtn.Importance = widget.LowImportance

	r.ExtendBaseWidget(r)
	return r
}

// CreateRenderer lays the row out as [url | minute | remove]
func (r *TargetRow) CreateRenderer() fyne.WidgetRenderer {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(MinuteEntryWidth, 0))
	minute := container.NewStack(spacer, r.minuteEntry)

	right := container.NewHBox(minute, r.removeBtn)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, right, r.urlEntry))
}

// Input returns the raw text of the row
func (r *TargetRow) Input() model.TargetInput {
	return model.TargetInput{
		URL:         r.urlEntry.Text,
		StartMinute: r.minuteEntry.Text,
	}
}

// SetInput replaces the text of the row
func (r *TargetRow) SetInput(url, startMinute string) {
	r.urlEntry.SetText(url)
	r.minuteEntry.SetText(startMinute)
}

func (r *TargetRow) refreshTexts(texts *i18n.Localization) {
	r.urlEntry.SetPlaceHolder(texts.GetText(i18n.KeyURLPlaceholder))
	r.minuteEntry.SetPlaceHolder(texts.GetText(i18n.KeyMinuteLabel))
	r.removeBtn.SetText(texts.GetText(i18n.KeyRemoveRow))
}

// TargetListEditor owns the ordered list of link rows. Its methods, except
// Collect and ImportPlaylist, must run on the UI goroutine.
type TargetListEditor struct {
	texts         *i18n.Localization
	defaultMinute func() int

	rows []*TargetRow
	box  *fyne.Container
}

// NewTargetListEditor creates an editor seeded with one empty row
func NewTargetListEditor(texts *i18n.Localization, defaultMinute func() int) *TargetListEditor {
	if defaultMinute == nil {
		defaultMinute = func() int { return model.DefaultStartMinute }
	}
	e := &TargetListEditor{
		texts:         texts,
		defaultMinute: defaultMinute,
		box:           container.NewVBox(),
	}
	e.AddTarget("", defaultMinute())
	return e
}

// Container returns the rows container
func (e *TargetListEditor) Container() fyne.CanvasObject {
	return e.box
}

// AddTarget appends a row at the end of the list
func (e *TargetListEditor) AddTarget(url string, startMinute int) *TargetRow {
	row := newTargetRow(e.texts, url, startMinute, e.RemoveTarget)
	e.rows = append(e.rows, row)
	e.box.Add(row)
	log.Debug("target row added", "row", row.ID, "rows", len(e.rows))
	return row
}

// AddEmptyTarget appends a blank row with the configured default minute
func (e *TargetListEditor) AddEmptyTarget() *TargetRow {
	return e.AddTarget("", e.defaultMinute())
}

// RemoveTarget removes row. The list may become empty.
func (e *TargetListEditor) RemoveTarget(row *TargetRow) {
	for i, r := range e.rows {
		if r == row {
			e.rows = append(e.rows[:i], e.rows[i+1:]...)
			e.box.Remove(row)
			log.Debug("target row removed", "row", row.ID, "rows", len(e.rows))
			return
		}
	}
}

// Rows returns the rows in display order
func (e *TargetListEditor) Rows() []*TargetRow {
	return append([]*TargetRow(nil), e.rows...)
}

// Inputs returns the raw text of every row in display order
func (e *TargetListEditor) Inputs() []model.TargetInput {
	inputs := make([]model.TargetInput, 0, len(e.rows))
	for _, r := range e.rows {
		inputs = append(inputs, r.Input())
	}
	return inputs
}

// Targets returns the rows that would be submitted right now
func (e *TargetListEditor) Targets() []model.Target {
	return model.BuildRequest(e.Inputs()).Items
}

// Collect snapshots the rows on the UI goroutine and builds a link batch
func (e *TargetListEditor) Collect() (analysis.Batch, error) {
	var inputs []model.TargetInput
	fyne.DoAndWait(func() {
		inputs = e.Inputs()
	})
	return analysis.NewURLBatch(inputs), nil
}

// ImportPlaylist expands url and appends one row per video, replacing rows
// that have no link yet. It blocks on the network, so call it off the UI goroutine.
func (e *TargetListEditor) ImportPlaylist(ctx context.Context, expander PlaylistExpander, url string) (int, error) {
	targets, err := expander.Expand(ctx, url, e.defaultMinute())
	if err != nil {
		return 0, err
	}

	fyne.DoAndWait(func() {
		for _, r := range e.Rows() {
			if model.CleanURL(r.urlEntry.Text) == "" {
				e.RemoveTarget(r)
			}
		}
		for _, t := range targets {
			e.AddTarget(t.URL, t.StartMinute)
		}
	})

	return len(targets), nil
}

// RefreshTexts re-reads placeholders after a language change
func (e *TargetListEditor) RefreshTexts() {
	for _, r := range e.rows {
		r.refreshTexts(e.texts)
	}
}
