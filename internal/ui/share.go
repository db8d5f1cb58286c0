package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"

	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
	"github.com/ytget/prosody-desktop/internal/platform"
	"github.com/ytget/prosody-desktop/internal/submit"
)

var errNoClipboard = errors.New("clipboard unavailable")

// ExportSink receives the share text of a result card
type ExportSink interface {
	Export(text string) error

	// SuccessKey is the message shown after export, empty for none
	SuccessKey() string

	// FailureKey is the message shown when Export fails
	FailureKey() string
}

// nativeShareSink hands the text to the platform share sheet
type nativeShareSink struct {
	share func(string) error
}

func (s nativeShareSink) Export(text string) error { return s.share(text) }
func (s nativeShareSink) SuccessKey() string { return "" }
func (s nativeShareSink) FailureKey() string { return i18n.KeyShareCancelled }

// clipboardSink copies the text to the system clipboard
type clipboardSink struct {
	clipboard func() fyne.Clipboard
}

func (s clipboardSink) Export(text string) error {
	cb := s.clipboard()
	if cb == nil {
		return errNoClipboard
	}
	cb.SetContent(text)
	return nil
}

func (s clipboardSink) SuccessKey() string { return i18n.KeyCopied }
func (s clipboardSink) FailureKey() string { return i18n.KeyCopyFailed }

// Sharer exports result summaries, picking a sink on every invocation
type Sharer struct {
	texts    *i18n.Localization
	notifier submit.Notifier

	canShare  func() bool
	share     func(string) error
	clipboard func() fyne.Clipboard
}

// NewSharer creates a sharer backed by the platform share sheet and the app clipboard
func NewSharer(texts *i18n.Localization, notifier submit.Notifier) *Sharer {
	return &Sharer{
		texts:     texts,
		notifier:  notifier,
		canShare:  platform.CanShare,
		share:     platform.ShareText,
		clipboard: currentClipboard,
	}
}

func currentClipboard() fyne.Clipboard {
	app := fyne.CurrentApp()
	if app == nil {
		return nil
	}
	return app.Clipboard()
}

// Sink returns the export sink available right now
func (s *Sharer) Sink() ExportSink {
	if s.canShare() {
		return nativeShareSink{share: s.share}
	}
	return clipboardSink{clipboard: s.clipboard}
}

// Share exports the summary of result and reports the outcome
func (s *Sharer) Share(result model.Result) {
	text := result.Summary(model.SummaryLabels{
		Title:     s.texts.GetText(i18n.KeyShareTitle),
		Melody:    s.texts.GetText(i18n.KeyMelody),
		Frequency: s.texts.GetText(i18n.KeyFrequency),
		Overall:   s.texts.GetText(i18n.KeyOverall),
	})

	sink := s.Sink()
	if err := sink.Export(text); err != nil {
		log.Warn("share failed", "url", result.URL, "err", err)
		s.notifier.Notify(s.texts.GetText(sink.FailureKey()))
		return
	}
	if key := sink.SuccessKey(); key != "" {
		s.notifier.Notify(s.texts.GetText(key))
	}
}
