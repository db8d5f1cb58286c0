package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/prosody-desktop/internal/model"
	"github.com/ytget/prosody-desktop/internal/platform"
)

// Request constants
const (
	RequestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Client sends batches to the prosody backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	mu         sync.RWMutex
}

// compile-time interface assertion
var _ Analyzer = (*Client)(nil)

// NewClient creates a backend client. A nil httpClient uses http.DefaultClient,
// which has no timeout: a hung request keeps the form busy until it settles.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// SetBaseURL points the client at another backend
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// BaseURL returns the current backend address
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// ResolveURL turns a server-relative reference such as an audio_url into an
// absolute URL. Absolute references are returned unchanged.
func (c *Client) ResolveURL(ref string) string {
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	return c.BaseURL() + "/" + strings.TrimLeft(ref, "/")
}

// Analyze sends one batch and returns the decoded results
func (c *Client) Analyze(ctx context.Context, batch Batch) (*model.AnalysisResponse, error) {
	body, contentType, err := batch.Encode()
	if err != nil {
		return nil, &TransportError{Op: "encode", Err: err}
	}

	endpoint := c.ResolveURL(batch.Endpoint())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		// streaming bodies hold an open file until the reader goes away
		if closer, ok := body.(io.Closer); ok {
			closer.Close()
		}
		return nil, &TransportError{Op: "request", Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", ContentTypeJSON)
	req.Header.Set(RequestIDHeader, requestID)

	log.Info("analysis request", "endpoint", batch.Endpoint(), "items", batch.Len(), "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("analysis request failed", "request_id", requestID, "err", err)
		return nil, &TransportError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		detail := parseDetail(raw)
		log.Warn("analysis rejected", "request_id", requestID, "status", resp.StatusCode, "detail", detail)
		return nil, &ServerError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var payload struct {
		Results *[]model.Result `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Op: "decode", Err: err}
	}
	if payload.Results == nil {
		return nil, &TransportError{Op: "decode", Err: errMissingResults}
	}

	log.Info("analysis completed", "request_id", requestID, "results", len(*payload.Results),
		"elapsed", time.Since(started).Round(time.Millisecond))

	return &model.AnalysisResponse{Results: *payload.Results}, nil
}

// FetchAudio downloads an analysed segment into dir and returns the file path
func (c *Client) FetchAudio(ctx context.Context, audioURL, dir string) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("analysis: create audio dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResolveURL(audioURL), nil)
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ServerError{StatusCode: resp.StatusCode}
	}

	target := filepath.Join(dir, segmentFileName(audioURL))
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("analysis: create %s: %w", target, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(target)
		return "", &TransportError{Op: "download", Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("analysis: close %s: %w", target, err)
	}

	log.Info("segment saved", "path", target)
	return target, nil
}

// segmentFileName derives a unique local name from an audio URL such as
// /audio/<job>/segment.mp3 -> <job>-segment.mp3
func segmentFileName(audioURL string) string {
	p := audioURL
	if u, err := url.Parse(audioURL); err == nil {
		p = u.Path
	}
	p = strings.Trim(p, "/")

	base := path.Base(p)
	if base == "." || base == "/" || base == "" {
		return "segment-" + uuid.NewString()[:8] + ".mp3"
	}

	parent := path.Base(path.Dir(p))
	if parent == "." || parent == "" || parent == "audio" {
		return base
	}
	return parent + "-" + base
}
