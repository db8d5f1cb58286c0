package ui

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/config"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
	"github.com/ytget/prosody-desktop/internal/platform"
	"github.com/ytget/prosody-desktop/internal/submit"
)

// Form names used in logs
const (
	LinksFormName  = "links"
	UploadFormName = "upload"
)

// RootUI represents the main window: the link form, the upload form, the
// shared results region and the notification strip.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *i18n.Localization
	analyzer     analysis.Analyzer
	expander     PlaylistExpander

	toast   *Toast
	sharer  *Sharer
	editor  *TargetListEditor
	upload  *UploadForm
	results *ResultsView

	linkButton   *SubmitButton
	uploadButton *SubmitButton
	linkCtrl     *submit.Controller
	uploadCtrl   *submit.Controller

	targetsCard *widget.Card
	uploadCard  *widget.Card
	resultsCard *widget.Card
	addRowBtn   *widget.Button
	importBtn   *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, analyzer analysis.Analyzer, settings *config.Settings, localization *i18n.Localization, expander PlaylistExpander) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		analyzer:     analyzer,
		expander:     expander,
	}

	window.SetTitle(localization.GetText(i18n.KeyAppTitle))

	ui.setupUI()
	log.Debug("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.toast = NewToast()
	ui.sharer = NewSharer(ui.localization, ui.toast)

	// Link form
	ui.editor = NewTargetListEditor(ui.localization, ui.settings.GetDefaultStartMinute)
	ui.addRowBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeyAddRow), theme.ContentAddIcon(), func() {
		ui.editor.AddEmptyTarget()
	})
	ui.importBtn = widget.NewButtonWithIcon(ui.localization.GetText(i18n.KeyImportPlaylist), theme.ListIcon(), ui.onImportPlaylist)
	if ui.expander == nil {
		ui.importBtn.Hide()
	}
	ui.linkButton = NewSubmitButton(ui.localization, i18n.KeySubmitURLs, ui.onSubmitLinks)

	linkActions := container.NewBorder(nil, nil, container.NewHBox(ui.addRowBtn, ui.importBtn), ui.linkButton.Button())
	ui.targetsCard = widget.NewCard(ui.localization.GetText(i18n.KeyTargetsHeading), "",
		container.NewVBox(ui.editor.Container(), linkActions))

	// Upload form
	ui.upload = NewUploadForm(ui.window, ui.localization, ui.settings.GetDefaultStartMinute())
	ui.uploadButton = NewSubmitButton(ui.localization, i18n.KeySubmitUpload, ui.onSubmitUpload)
	ui.uploadCard = widget.NewCard(ui.localization.GetText(i18n.KeyUploadHeading), "",
		container.NewVBox(ui.upload.Container(), container.NewBorder(nil, nil, nil, ui.uploadButton.Button())))

	// Results
	ui.results = NewResultsView(ui.localization, CardActions{
		Play:  ui.onPlay,
		Save:  ui.onSaveAudio,
		Share: ui.sharer.Share,
	})
	ui.resultsCard = widget.NewCard(ui.localization.GetText(i18n.KeyResultsHeading), "", ui.results.Container())

	// One controller type serves both forms
	ui.linkCtrl = submit.NewController(LinksFormName, ui.editor, ui.analyzer, ui.linkButton, ui.toast, ui.results, ui.localization)
	ui.uploadCtrl = submit.NewController(UploadFormName, ui.upload, ui.analyzer, ui.uploadButton, ui.toast, ui.results, ui.localization)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, settingsBtn,
		widget.NewLabelWithStyle(ui.localization.GetText(i18n.KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	page := container.NewVBox(ui.targetsCard, ui.uploadCard, ui.resultsCard)

	content := container.NewBorder(
		header,                     // top
		ui.toast.Container(),       // bottom
		nil,                        // left
		nil,                        // right
		container.NewVScroll(page), // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))

	ui.targetsCard.SetTitle(ui.localization.GetText(i18n.KeyTargetsHeading))
	ui.uploadCard.SetTitle(ui.localization.GetText(i18n.KeyUploadHeading))
	ui.resultsCard.SetTitle(ui.localization.GetText(i18n.KeyResultsHeading))
	ui.addRowBtn.SetText(ui.localization.GetText(i18n.KeyAddRow))
	ui.importBtn.SetText(ui.localization.GetText(i18n.KeyImportPlaylist))

	ui.linkButton.RefreshTexts()
	ui.uploadButton.RefreshTexts()
	ui.editor.RefreshTexts()
	ui.upload.RefreshTexts()
	ui.results.RefreshTexts()
}

// onSubmitLinks starts the link pipeline off the UI goroutine
func (ui *RootUI) onSubmitLinks() {
	go ui.runSubmission(ui.linkCtrl)
}

// onSubmitUpload starts the upload pipeline off the UI goroutine
func (ui *RootUI) onSubmitUpload() {
	go ui.runSubmission(ui.uploadCtrl)
}

func (ui *RootUI) runSubmission(ctrl *submit.Controller) {
	if err := ctrl.Submit(context.Background()); err != nil && !errors.Is(err, submit.ErrInFlight) {
		log.Debug("submission ended with error", "form", ctrl.Name(), "err", err)
	}
}

// onImportPlaylist asks for a playlist link and appends its videos as rows
func (ui *RootUI) onImportPlaylist() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("https://www.youtube.com/playlist?list=...")

	dialog.ShowForm(
		ui.localization.GetText(i18n.KeyImportPlaylist),
		ui.localization.GetText(i18n.KeyImportPlaylist),
		ui.localization.GetText(i18n.KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(ui.localization.GetText(i18n.KeyPlaylistURL), entry)},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			playlistURL := entry.Text
			ui.importBtn.Disable()
			go ui.importPlaylist(playlistURL)
		},
		ui.window,
	)
}

func (ui *RootUI) importPlaylist(playlistURL string) {
	defer fyne.Do(ui.importBtn.Enable)

	count, err := ui.editor.ImportPlaylist(context.Background(), ui.expander, playlistURL)
	if err != nil {
		log.Warn("playlist import failed", "url", playlistURL, "err", err)
		ui.toast.Notify(ui.localization.GetText(i18n.KeyPlaylistFailed) + ": " + err.Error())
		return
	}
	ui.toast.Notify(ui.localization.Format(i18n.KeyPlaylistImported, count))
}

// onPlay opens the analysed segment with the default player
func (ui *RootUI) onPlay(result model.Result) {
	target := ui.analyzer.ResolveURL(result.AudioURL)
	u, err := url.Parse(target)
	if err == nil {
		err = ui.app.OpenURL(u)
	}
	if err != nil {
		log.Warn("unable to open audio", "url", target, "err", err)
		ui.toast.Notify(ui.localization.GetText(i18n.KeyPlayFailed))
	}
}

// onSaveAudio downloads the segment into the audio directory
func (ui *RootUI) onSaveAudio(result model.Result) {
	dir := ui.settings.GetAudioDirectory()
	reveal := ui.settings.GetAutoRevealSaved()

	go func() {
		path, err := ui.analyzer.FetchAudio(context.Background(), result.AudioURL, dir)
		if err != nil {
			log.Error("segment download failed", "audio_url", result.AudioURL, "err", err)
			ui.toast.Notify(ui.localization.GetText(i18n.KeyAudioSaveFailed) + ": " + err.Error())
			return
		}

		log.Info("segment saved", "path", path)
		ui.toast.Notify(ui.localization.GetText(i18n.KeyAudioSaved) + ": " + filepath.Base(path))
		platform.NotifyMediaScanner(path)

		if reveal {
			if err := platform.OpenFileInManager(path); err != nil {
				log.Warn("unable to reveal segment", "path", path, "err", err)
			}
		}
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running session
func (ui *RootUI) applySettings() {
	ui.analyzer.SetBaseURL(ui.settings.GetBackendURL())
	ui.onLanguageChange(ui.settings.GetLanguage())
	ui.toast.Notify(ui.localization.GetText(i18n.KeySettingsSaved))
}

// Editor returns the link rows editor
func (ui *RootUI) Editor() *TargetListEditor { return ui.editor }

// Upload returns the upload form
func (ui *RootUI) Upload() *UploadForm { return ui.upload }

// Results returns the results region
func (ui *RootUI) Results() *ResultsView { return ui.results }

// Toast returns the notification strip
func (ui *RootUI) Toast() *Toast { return ui.toast }

// LinkController returns the controller of the link form
func (ui *RootUI) LinkController() *submit.Controller { return ui.linkCtrl }

// UploadController returns the controller of the upload form
func (ui *RootUI) UploadController() *submit.Controller { return ui.uploadCtrl }
