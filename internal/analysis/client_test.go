package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ytget/prosody-desktop/internal/model"
)

const twoResults = `{"results":[
	{"url":"A","start_minute":5,"end_minute":6,"melody_score":87.5,"frequency_score":10,"combined_score":48.75,"audio_url":"/audio/1/segment.mp3"},
	{"url":"B","start_minute":15,"end_minute":16,"melody_score":100,"frequency_score":0,"combined_score":50,"audio_url":"/audio/2/segment.mp3"}]}`

func TestAnalyze_URLBatch(t *testing.T) {
	var gotBody model.AnalysisRequest
	var gotContentType, gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != AnalyzePath {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get(RequestIDHeader)
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, twoResults)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/")
	batch := NewURLBatch([]model.TargetInput{
		{URL: "A", StartMinute: "5"},
		{URL: "B", StartMinute: "15"},
	})

	resp, err := client.Analyze(context.Background(), batch)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotContentType != ContentTypeJSON {
		t.Errorf("Expected content type %s, got %s", ContentTypeJSON, gotContentType)
	}
	if gotRequestID == "" {
		t.Error("Expected a request ID header")
	}

	want := []model.Target{{URL: "A", StartMinute: 5}, {URL: "B", StartMinute: 15}}
	if len(gotBody.Items) != len(want) {
		t.Fatalf("Expected %d items on the wire, got %d", len(want), len(gotBody.Items))
	}
	for i := range want {
		if gotBody.Items[i] != want[i] {
			t.Errorf("Item %d: expected %+v, got %+v", i, want[i], gotBody.Items[i])
		}
	}

	if len(resp.Results) != 2 || resp.Results[0].URL != "A" || resp.Results[1].URL != "B" {
		t.Errorf("Expected results A then B, got %+v", resp.Results)
	}
}

func TestAnalyze_UploadBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != AnalyzeUploadPath {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("Failed to parse multipart form: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		files := r.MultipartForm.File[FilesField]
		if len(files) != 2 {
			t.Errorf("Expected 2 file parts, got %d", len(files))
		} else {
			if files[0].Filename != "one.mp3" || files[1].Filename != "two.wav" {
				t.Errorf("Unexpected file names %s, %s", files[0].Filename, files[1].Filename)
			}
			f, _ := files[0].Open()
			data, _ := io.ReadAll(f)
			f.Close()
			if string(data) != "first" {
				t.Errorf("Expected first file content 'first', got %q", data)
			}
		}

		if got := r.MultipartForm.Value[StartMinuteField]; len(got) != 1 || got[0] != "7" {
			t.Errorf("Expected start_minute [7], got %v", got)
		}

		_, _ = io.WriteString(w, `{"results":[]}`)
	}))
	defer srv.Close()

	files := []model.AudioFile{
		{Name: "one.mp3", Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("first")), nil }},
		{Name: "two.wav", Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("second")), nil }},
	}

	client := NewClient(srv.Client(), srv.URL)
	resp, err := client.Analyze(context.Background(), NewUploadBatch(files, "7"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Expected no results, got %d", len(resp.Results))
	}
}

func TestAnalyze_UploadDefaultMinute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.FormValue(StartMinuteField); got != "10" {
			t.Errorf("Expected default start_minute 10, got %q", got)
		}
		_, _ = io.WriteString(w, `{"results":[]}`)
	}))
	defer srv.Close()

	files := []model.AudioFile{
		{Name: "one.mp3", Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("x")), nil }},
	}

	client := NewClient(srv.Client(), srv.URL)
	if _, err := client.Analyze(context.Background(), NewUploadBatch(files, "")); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestAnalyze_ServerErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"string detail", http.StatusBadRequest, `{"detail":"bad url"}`, "bad url"},
		{"validation list", http.StatusUnprocessableEntity,
			`{"detail":[{"loc":["body","items"],"msg":"List should have at least 1 item"},{"msg":"invalid url"}]}`,
			"List should have at least 1 item; invalid url"},
		{"no detail", http.StatusInternalServerError, `{"error":"boom"}`, ""},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
		{"empty body", http.StatusServiceUnavailable, ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.Client(), srv.URL)
			_, err := client.Analyze(context.Background(), NewURLBatch([]model.TargetInput{{URL: "A"}}))

			var serverErr *ServerError
			if !errors.As(err, &serverErr) {
				t.Fatalf("Expected ServerError, got %T: %v", err, err)
			}
			if serverErr.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, serverErr.StatusCode)
			}
			if serverErr.Detail != tt.wantDetail {
				t.Errorf("Expected detail %q, got %q", tt.wantDetail, serverErr.Detail)
			}
		})
	}
}

func TestAnalyze_TransportErrors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"results":[`)
		}))
		defer srv.Close()

		_, err := NewClient(srv.Client(), srv.URL).Analyze(context.Background(), NewURLBatch([]model.TargetInput{{URL: "A"}}))
		var transportErr *TransportError
		if !errors.As(err, &transportErr) || transportErr.Op != "decode" {
			t.Fatalf("Expected decode TransportError, got %v", err)
		}
	})

	t.Run("missing results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"items":[]}`)
		}))
		defer srv.Close()

		_, err := NewClient(srv.Client(), srv.URL).Analyze(context.Background(), NewURLBatch([]model.TargetInput{{URL: "A"}}))
		if !errors.Is(err, errMissingResults) {
			t.Fatalf("Expected errMissingResults, got %v", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := srv.URL
		srv.Close()

		_, err := NewClient(nil, addr).Analyze(context.Background(), NewURLBatch([]model.TargetInput{{URL: "A"}}))
		var transportErr *TransportError
		if !errors.As(err, &transportErr) || transportErr.Op != "send" {
			t.Fatalf("Expected send TransportError, got %v", err)
		}
	})

	t.Run("file open failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.ReadAll(r.Body)
			_, _ = io.WriteString(w, `{"results":[]}`)
		}))
		defer srv.Close()

		files := []model.AudioFile{{Name: "gone.mp3", Open: func() (io.ReadCloser, error) {
			return nil, os.ErrNotExist
		}}}

		_, err := NewClient(srv.Client(), srv.URL).Analyze(context.Background(), NewUploadBatch(files, "10"))
		if err == nil {
			t.Fatal("Expected an error for an unreadable file")
		}
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			t.Fatalf("Expected TransportError, got %T: %v", err, err)
		}
	})
}

func TestBatchValidate(t *testing.T) {
	if err := NewURLBatch(nil).Validate(); !errors.Is(err, ErrNoTargets) {
		t.Errorf("Expected ErrNoTargets, got %v", err)
	}
	if err := NewURLBatch([]model.TargetInput{{URL: " "}}).Validate(); !errors.Is(err, ErrNoTargets) {
		t.Errorf("Expected ErrNoTargets for blank rows, got %v", err)
	}
	if err := NewURLBatch([]model.TargetInput{{URL: "A"}}).Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := NewUploadBatch(nil, "10").Validate(); !errors.Is(err, ErrNoFiles) {
		t.Errorf("Expected ErrNoFiles, got %v", err)
	}
}

func TestResolveURL(t *testing.T) {
	client := NewClient(nil, "http://backend:8000/")

	tests := []struct {
		ref      string
		expected string
	}{
		{"/audio/x/segment.mp3", "http://backend:8000/audio/x/segment.mp3"},
		{"audio/x/segment.mp3", "http://backend:8000/audio/x/segment.mp3"},
		{"https://cdn.example/a.mp3", "https://cdn.example/a.mp3"},
	}

	for _, test := range tests {
		result := client.ResolveURL(test.ref)
		if result != test.expected {
			t.Errorf("ResolveURL(%s) = %s, expected %s", test.ref, result, test.expected)
		}
	}

	client.SetBaseURL("https://other.example")
	if got := client.ResolveURL("/analyze"); got != "https://other.example/analyze" {
		t.Errorf("After SetBaseURL, ResolveURL = %s", got)
	}
}

func TestFetchAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/audio/job1/segment.mp3" {
			_, _ = io.WriteString(w, "ID3audio")
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "segments")
	client := NewClient(srv.Client(), srv.URL)

	path, err := client.FetchAudio(context.Background(), "/audio/job1/segment.mp3", dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(path) != "job1-segment.mp3" {
		t.Errorf("Expected file name job1-segment.mp3, got %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "ID3audio" {
		t.Errorf("Unexpected saved content %q (err %v)", data, err)
	}

	_, err = client.FetchAudio(context.Background(), "/audio/missing/segment.mp3", dir)
	var serverErr *ServerError
	if !errors.As(err, &serverErr) || serverErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 ServerError, got %v", err)
	}
}

func TestSegmentFileName(t *testing.T) {
	tests := []struct {
		audioURL string
		expected string
	}{
		{"/audio/abc/segment.mp3", "abc-segment.mp3"},
		{"http://host/audio/def/segment.mp3?x=1", "def-segment.mp3"},
		{"/audio/take.mp3", "take.mp3"},
		{"segment.mp3", "segment.mp3"},
	}

	for _, test := range tests {
		result := segmentFileName(test.audioURL)
		if result != test.expected {
			t.Errorf("segmentFileName(%s) = %s, expected %s", test.audioURL, result, test.expected)
		}
	}

	if got := segmentFileName("/"); !strings.HasPrefix(got, "segment-") {
		t.Errorf("Expected generated name for empty path, got %s", got)
	}
}

type closeRecorder struct {
	io.Reader
	closed chan struct{}
}

func (c *closeRecorder) Close() error {
	close(c.closed)
	return nil
}

func TestAnalyze_BadBackendReleasesUpload(t *testing.T) {
	src := &closeRecorder{Reader: strings.NewReader("ID3 audio"), closed: make(chan struct{})}
	files := []model.AudioFile{{Name: "take.mp3", Size: 9, Open: func() (io.ReadCloser, error) {
		return src, nil
	}}}

	_, err := NewClient(nil, "http://[::1").Analyze(context.Background(), NewUploadBatch(files, "10"))
	var transportErr *TransportError
	if !errors.As(err, &transportErr) || transportErr.Op != "request" {
		t.Fatalf("Expected request TransportError, got %v", err)
	}

	select {
	case <-src.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the upload file to be closed after the request failed")
	}
}
