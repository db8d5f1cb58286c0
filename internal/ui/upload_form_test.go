package ui

import (
	"errors"
	"io"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

func memFile(name string, size int64) model.AudioFile {
	return model.AudioFile{
		Name: name,
		Size: size,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("ID3")), nil },
	}
}

func TestUploadForm_Collect(t *testing.T) {
	app := test.NewApp()
	f := NewUploadForm(app.NewWindow("test"), i18n.NewLocalization(), 10)

	f.AddFile(memFile("a.mp3", 1500))
	f.AddFile(memFile("b.wav", 2048))
	f.SetStartMinute("3.9")

	batch, err := f.Collect()
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	upload, ok := batch.(analysis.UploadBatch)
	if !ok {
		t.Fatalf("Expected UploadBatch, got %T", batch)
	}
	if len(upload.Files) != 2 || upload.Files[0].Name != "a.mp3" {
		t.Errorf("Unexpected files %+v", upload.Files)
	}
	if upload.StartMinute != 3 {
		t.Errorf("Expected truncated minute 3, got %d", upload.StartMinute)
	}
}

func TestUploadForm_EmptySelection(t *testing.T) {
	app := test.NewApp()
	f := NewUploadForm(app.NewWindow("test"), i18n.NewLocalization(), 10)
	f.SetStartMinute("")

	batch, _ := f.Collect()
	if err := batch.Validate(); !errors.Is(err, analysis.ErrNoFiles) {
		t.Errorf("Validate() error = %v, expected %v", err, analysis.ErrNoFiles)
	}
	if batch.(analysis.UploadBatch).StartMinute != model.DefaultStartMinute {
		t.Error("Empty minute should default to 10")
	}
	if len(f.filesBox.Objects) != 1 || f.filesBox.Objects[0] != f.emptyLabel {
		t.Error("Empty selection should show the placeholder label")
	}
}

func TestUploadForm_RemoveFile(t *testing.T) {
	app := test.NewApp()
	f := NewUploadForm(app.NewWindow("test"), i18n.NewLocalization(), 10)
	f.AddFile(memFile("a.mp3", 1))
	f.AddFile(memFile("b.mp3", 1))

	f.RemoveFile(0)
	f.RemoveFile(5)

	files := f.Files()
	if len(files) != 1 || files[0].Name != "b.mp3" {
		t.Errorf("Unexpected files after removal %+v", files)
	}
}

func TestFileLabel(t *testing.T) {
	tests := []struct {
		file     model.AudioFile
		expected string
	}{
		{memFile("voice.mp3", 1500), "voice.mp3 · 1.5 kB"},
		{memFile("voice.mp3", -1), "voice.mp3"},
	}

	for _, tt := range tests {
		if got := fileLabel(tt.file); got != tt.expected {
			t.Errorf("fileLabel() = %q, expected %q", got, tt.expected)
		}
	}
}
