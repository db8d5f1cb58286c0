package submit

import (
	"context"

	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/model"
)

// Source snapshots the form and returns the batch to send
type Source interface {
	Collect() (analysis.Batch, error)
}

// Analyzer sends a batch to the backend
type Analyzer interface {
	Analyze(ctx context.Context, batch analysis.Batch) (*model.AnalysisResponse, error)
}

// Control is the submit button of a form
type Control interface {
	// SetBusy disables the control and shows the busy label, or restores it
	SetBusy(busy bool)
}

// Notifier shows a transient message
type Notifier interface {
	Notify(message string)
}

// Renderer owns the results region
type Renderer interface {
	// Replace clears every card and renders results in order
	Replace(results []model.Result)
}

// Texts resolves display strings
type Texts interface {
	GetText(key string) string
}
