package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/prosody-desktop/internal/model"
)

// Endpoints and wire field names
const (
	AnalyzePath       = "/analyze"
	AnalyzeUploadPath = "/analyze-upload"

	FilesField       = "files"
	StartMinuteField = "start_minute"

	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Batch is one submission: it knows where it goes and how to encode itself.
type Batch interface {
	// Endpoint returns the backend path for this batch
	Endpoint() string

	// Len returns the number of items analysed by this batch
	Len() int

	// Validate reports ErrNoTargets or ErrNoFiles for an empty batch
	Validate() error

	// Encode returns the request body and its content type
	Encode() (io.Reader, string, error)
}

// URLBatch is a JSON batch of remote links
type URLBatch struct {
	Request model.AnalysisRequest
}

// NewURLBatch builds a link batch from raw editor rows
func NewURLBatch(inputs []model.TargetInput) URLBatch {
	return URLBatch{Request: model.BuildRequest(inputs)}
}

// Endpoint returns the JSON analysis path
func (b URLBatch) Endpoint() string { return AnalyzePath }

// Len returns the number of links
func (b URLBatch) Len() int { return len(b.Request.Items) }

// Validate requires at least one link
func (b URLBatch) Validate() error {
	if len(b.Request.Items) == 0 {
		return ErrNoTargets
	}
	return nil
}

// Encode marshals the request as JSON
func (b URLBatch) Encode() (io.Reader, string, error) {
	req := b.Request
	if req.Items == nil {
		req.Items = []model.Target{}
	}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, "", fmt.Errorf("encode links: %w", err)
	}
	return bytes.NewReader(data), ContentTypeJSON, nil
}

// UploadBatch is a multipart batch of local audio files sharing one offset
type UploadBatch struct {
	Files       []model.AudioFile
	StartMinute int
}

// NewUploadBatch builds a file batch; the minute text is coerced like a row's
func NewUploadBatch(files []model.AudioFile, startMinute string) UploadBatch {
	return UploadBatch{
		Files:       files,
		StartMinute: model.ParseStartMinute(startMinute),
	}
}

// Endpoint returns the upload analysis path
func (b UploadBatch) Endpoint() string { return AnalyzeUploadPath }

// Len returns the number of files
func (b UploadBatch) Len() int { return len(b.Files) }

// Validate requires at least one file
func (b UploadBatch) Validate() error {
	if len(b.Files) == 0 {
		return ErrNoFiles
	}
	return nil
}

// Encode streams the files as multipart form data. Every file goes into a
// `files` part, followed by the shared `start_minute` field.
func (b UploadBatch) Encode() (io.Reader, string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	contentType := mw.FormDataContentType()

	go func() {
		err := b.writeParts(mw)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	return pr, contentType, nil
}

// writeParts writes one part per file and the start minute field
func (b UploadBatch) writeParts(mw *multipart.Writer) error {
	for _, file := range b.Files {
		if err := writeFilePart(mw, file); err != nil {
			return err
		}
	}
	return mw.WriteField(StartMinuteField, strconv.Itoa(b.StartMinute))
}

func writeFilePart(mw *multipart.Writer, file model.AudioFile) error {
	if file.Open == nil {
		return fmt.Errorf("file %s: no reader", file.Name)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer src.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FilesField, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", audioContentType(file.Name))

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", file.Name, err)
	}

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy %s: %w", file.Name, err)
	}
	return nil
}

// audioContentType guesses a MIME type from the file extension
func audioContentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return ContentTypeOctetStream
}
