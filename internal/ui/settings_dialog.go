package ui

import (
	"errors"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prosody-desktop/internal/config"
	"github.com/ytget/prosody-desktop/internal/i18n"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	texts    *i18n.Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	backendEntry   *widget.Entry
	minuteEntry    *widget.Entry
	audioDirEntry  *widget.Entry
	revealCheck    *widget.Check
	languageSelect *widget.Select

	// display name -> language code
	languageCodes map[string]string
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, texts *i18n.Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, texts, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, texts *i18n.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		texts:    texts,
		window:   window,
		onSaved:  onSaved,
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
	sd.backendEntry = widget.NewEntry()
	sd.backendEntry.SetPlaceHolder(config.DefaultBackendURL)
	sd.backendEntry.Validator = func(s string) error {
		if _, err := config.NormalizeBackendURL(s); err != nil {
			return errors.New(sd.texts.GetText(i18n.KeyInvalidBackendURL))
		}
		return nil
	}

	sd.minuteEntry = widget.NewEntry()

	sd.audioDirEntry = widget.NewEntry()
	browseBtn := widget.NewButton(sd.texts.GetText(i18n.KeyBrowse), sd.onBrowseDirectory)
	audioDirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.audioDirEntry)

	sd.revealCheck = widget.NewCheck(sd.texts.GetText(i18n.KeyAutoReveal), nil)

	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.texts.GetText(i18n.KeyBackendURL), sd.backendEntry),
		widget.NewFormItem(sd.texts.GetText(i18n.KeyDefaultMinute), sd.minuteEntry),
		widget.NewFormItem(sd.texts.GetText(i18n.KeyAudioDirectory), audioDirRow),
		widget.NewFormItem("", sd.revealCheck),
		widget.NewFormItem(sd.texts.GetText(i18n.KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.texts.GetText(i18n.KeySettings),
		sd.texts.GetText(i18n.KeySave),
		sd.texts.GetText(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendEntry.SetText(sd.settings.GetBackendURL())
	sd.minuteEntry.SetText(strconv.Itoa(sd.settings.GetDefaultStartMinute()))
	sd.audioDirEntry.SetText(sd.settings.GetAudioDirectory())
	sd.revealCheck.SetChecked(sd.settings.GetAutoRevealSaved())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.audioDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.Apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// Apply writes the dialog fields to settings
func (sd *SettingsDialog) Apply() error {
	if err := sd.settings.SetBackendURL(sd.backendEntry.Text); err != nil {
		return errors.New(sd.texts.GetText(i18n.KeyInvalidBackendURL))
	}

	if minute, err := strconv.Atoi(sd.minuteEntry.Text); err == nil {
		sd.settings.SetDefaultStartMinute(minute)
	}

	if dir := sd.audioDirEntry.Text; dir != "" {
		sd.settings.SetAudioDirectory(dir)
	}

	sd.settings.SetAutoRevealSaved(sd.revealCheck.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	return nil
}
