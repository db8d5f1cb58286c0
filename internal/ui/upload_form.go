package ui

import (
	"image/color"
	"io"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

// UploadForm is the local-file form: a list of chosen audio files and one
// shared start minute.
type UploadForm struct {
	window fyne.Window
	texts  *i18n.Localization

	files []model.AudioFile

	filesBox    *fyne.Container
	emptyLabel  *widget.Label
	minuteEntry *widget.Entry
	addBtn      *widget.Button
	content     *fyne.Container
}

// NewUploadForm creates an empty upload form
func NewUploadForm(window fyne.Window, texts *i18n.Localization, defaultMinute int) *UploadForm {
	f := &UploadForm{
		window: window,
		texts:  texts,
	}

	f.emptyLabel = widget.NewLabel(texts.GetText(i18n.KeyNoFileChosen))
	f.emptyLabel.Importance = widget.LowImportance
	f.filesBox = container.NewVBox(f.emptyLabel)

	f.minuteEntry = widget.NewEntry()
	f.minuteEntry.SetPlaceHolder(texts.GetText(i18n.KeyMinuteLabel))
	f.minuteEntry.SetText(strconv.Itoa(defaultMinute))

	f.addBtn = widget.NewButtonWithIcon(texts.GetText(i18n.KeyAddFile), theme.FileAudioIcon(), f.onChooseFile)

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(MinuteEntryWidth, 0))
	controls := container.NewHBox(f.addBtn, container.NewStack(spacer, f.minuteEntry))

	f.content = container.NewVBox(f.filesBox, controls)
	return f
}

// Container returns the form body
func (f *UploadForm) Container() fyne.CanvasObject {
	return f.content
}

// AddFile appends a file to the selection
func (f *UploadForm) AddFile(file model.AudioFile) {
	f.files = append(f.files, file)
	f.refreshFiles()
	log.Debug("audio file added", "name", file.Name, "size", file.Size, "files", len(f.files))
}

// RemoveFile drops the file at index
func (f *UploadForm) RemoveFile(index int) {
	if index < 0 || index >= len(f.files) {
		return
	}
	f.files = append(f.files[:index], f.files[index+1:]...)
	f.refreshFiles()
}

// Files returns the selected files
func (f *UploadForm) Files() []model.AudioFile {
	return append([]model.AudioFile(nil), f.files...)
}

// SetStartMinute replaces the raw minute text
func (f *UploadForm) SetStartMinute(text string) {
	f.minuteEntry.SetText(text)
}

// Collect snapshots the selection on the UI goroutine and builds an upload batch
func (f *UploadForm) Collect() (analysis.Batch, error) {
	var files []model.AudioFile
	var minute string
	fyne.DoAndWait(func() {
		files = f.Files()
		minute = f.minuteEntry.Text
	})
	return analysis.NewUploadBatch(files, minute), nil
}

// RefreshTexts re-reads labels after a language change
func (f *UploadForm) RefreshTexts() {
	f.emptyLabel.SetText(f.texts.GetText(i18n.KeyNoFileChosen))
	f.minuteEntry.SetPlaceHolder(f.texts.GetText(i18n.KeyMinuteLabel))
	f.addBtn.SetText(f.texts.GetText(i18n.KeyAddFile))
}

func (f *UploadForm) refreshFiles() {
	f.filesBox.RemoveAll()
	if len(f.files) == 0 {
		f.filesBox.Add(f.emptyLabel)
		return
	}

	for i, file := range f.files {
		index := i
		label := widget.NewLabel(fileLabel(file))
		label.Truncation = fyne.TextTruncateEllipsis
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() { f.RemoveFile(index) })
		remove.Importance = widget.LowImportance
		f.filesBox.Add(container.NewBorder(nil, nil, widget.NewIcon(theme.FileAudioIcon()), remove, label))
	}
}

// fileLabel renders "name · 3.2 MB"
func fileLabel(file model.AudioFile) string {
	if file.Size < 0 {
		return file.Name
	}
	return file.Name + MiddleDotSeparator + humanize.Bytes(uint64(file.Size))
}

// onChooseFile opens the native picker filtered to audio files
func (f *UploadForm) onChooseFile() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Error("file picker failed", "err", err)
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		_ = reader.Close()
		f.AddFile(audioFileFromURI(uri))
	}, f.window)
	picker.SetFilter(storage.NewExtensionFileFilter(AudioExtensions))
	picker.Show()
}

// audioFileFromURI describes a picked file; the content is reopened on submit
func audioFileFromURI(uri fyne.URI) model.AudioFile {
	size := int64(-1)
	if uri.Scheme() == "file" {
		if info, err := os.Stat(uri.Path()); err == nil {
			size = info.Size()
		}
	}

	return model.AudioFile{
		Name: uri.Name(),
		Size: size,
		Open: func() (io.ReadCloser, error) {
			return storage.Reader(uri)
		},
	}
}
