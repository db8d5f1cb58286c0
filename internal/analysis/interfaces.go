package analysis

import (
	"context"

	"github.com/ytget/prosody-desktop/internal/model"
)

// Analyzer defines the interface for the analysis backend.
type Analyzer interface {
	// Analyze sends one batch and returns the results in request order
	Analyze(ctx context.Context, batch Batch) (*model.AnalysisResponse, error)

	// FetchAudio downloads an analysed segment into dir and returns the file path
	FetchAudio(ctx context.Context, audioURL, dir string) (string, error)

	// ResolveURL turns a server-relative reference into an absolute URL
	ResolveURL(ref string) string

	// SetBaseURL points the client at another backend
	SetBaseURL(baseURL string)
}
