package submit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/ytget/prosody-desktop/internal/analysis"
	"github.com/ytget/prosody-desktop/internal/i18n"
	"github.com/ytget/prosody-desktop/internal/model"
)

// ErrInFlight is returned when a submission of the same form is still running
var ErrInFlight = errors.New("submission already in flight")

// Controller runs the request lifecycle of one form
type Controller struct {
	name     string
	source   Source
	analyzer Analyzer
	control  Control
	notifier Notifier
	renderer Renderer
	texts    Texts

	inFlight atomic.Bool

	mu    sync.RWMutex
	state model.SubmissionState
}

// NewController creates a controller for the form called name
func NewController(name string, source Source, analyzer Analyzer, control Control, notifier Notifier, renderer Renderer, texts Texts) *Controller {
	return &Controller{
		name:     name,
		source:   source,
		analyzer: analyzer,
		control:  control,
		notifier: notifier,
		renderer: renderer,
		texts:    texts,
		state:    model.StateIdle,
	}
}

// Name returns the form name used in logs
func (c *Controller) Name() string {
	return c.name
}

// State returns the current lifecycle state
func (c *Controller) State() model.SubmissionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Submit collects, validates and sends one batch. On success the renderer
// receives the results; on failure exactly one notification is shown and the
// results region is left alone. The control is re-enabled in every case.
// Submit blocks until the backend answers, so callers run it off the UI goroutine.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		log.Debug("submission ignored, already in flight", "form", c.name)
		return ErrInFlight
	}
	defer c.inFlight.Store(false)

	c.control.SetBusy(true)
	defer func() {
		c.control.SetBusy(false)
		c.setState(model.StateIdle)
	}()

	c.setState(model.StateValidating)
	batch, err := c.source.Collect()
	if err != nil {
		return c.fail(err)
	}
	if err := batch.Validate(); err != nil {
		return c.fail(err)
	}

	c.setState(model.StateSubmitting)
	log.Info("submitting batch", "form", c.name, "endpoint", batch.Endpoint(), "items", batch.Len())

	resp, err := c.analyzer.Analyze(ctx, batch)
	if err != nil {
		return c.fail(err)
	}

	var results []model.Result
	if resp != nil {
		results = resp.Results
	}
	c.renderer.Replace(results)
	c.setState(model.StateSucceeded)
	log.Info("analysis succeeded", "form", c.name, "results", len(results))

	return nil
}

func (c *Controller) fail(err error) error {
	c.setState(model.StateFailed)
	log.Warn("submission failed", "form", c.name, "err", err)
	c.notifier.Notify(Message(err, c.texts))
	return err
}

func (c *Controller) setState(state model.SubmissionState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// Message maps a submission error to the text shown to the user
func Message(err error, texts Texts) string {
	var serverErr *analysis.ServerError
	var transportErr *analysis.TransportError

	switch {
	case errors.Is(err, analysis.ErrNoTargets):
		return texts.GetText(i18n.KeyNoTargets)
	case errors.Is(err, analysis.ErrNoFiles):
		return texts.GetText(i18n.KeyNoFiles)
	case errors.As(err, &serverErr):
		if serverErr.Detail != "" {
			return serverErr.Detail
		}
		return texts.GetText(i18n.KeyAnalysisFailed)
	case errors.As(err, &transportErr):
		if transportErr.Err != nil {
			return transportErr.Err.Error()
		}
		return texts.GetText(i18n.KeyAnalysisFailed)
	default:
		return err.Error()
	}
}
