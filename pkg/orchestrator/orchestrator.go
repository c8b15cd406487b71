// Package orchestrator drives one prediction submission cycle: collect form
// entries, serialize, validate, issue the request, and route the outcome to
// the result renderer or the notification channel.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/clinsight/go-predictform/pkg/form"
	"github.com/clinsight/go-predictform/pkg/notify"
	"github.com/clinsight/go-predictform/pkg/payload"
	"github.com/clinsight/go-predictform/pkg/predict"
)

// State is the submission cycle state. Cycles always return to StateIdle.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

const (
	defaultWorkingLabel = "Predicting…"

	genericFailureText = "Prediction request failed. Please try again."
)

// ErrBusy is returned when Submit is called while a cycle is in flight. The
// trigger control is disabled for the whole cycle, so under normal operation
// this cannot fire; it exists as the programmatic guard for callers that
// bypass the control.
var ErrBusy = errors.New("orchestrator: submission already in progress")

// ValidationError reports the required fields a submission left blank. No
// request is issued when it fires.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "orchestrator: missing required fields: " + strings.Join(e.Fields, ", ")
}

// EntrySource yields the current form entries. It is consulted fresh on every
// submission because the form's live state may have changed between cycles.
type EntrySource interface {
	Entries(ctx context.Context) (form.Entries, error)
}

// Predictor issues the prediction request.
type Predictor interface {
	Predict(ctx context.Context, p payload.Payload) (predict.Result, error)
}

// ResultRenderer receives the result of a successful cycle.
type ResultRenderer interface {
	Render(predict.Result)
}

// TriggerControl is the submit control. Disabling it for the duration of a
// cycle is the sole re-entrancy guard; Enable must restore the original
// label.
type TriggerControl interface {
	Disable(workingLabel string)
	Enable()
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithEntrySource injects the form entry collaborator.
func WithEntrySource(source EntrySource) Option {
	return func(o *Orchestrator) {
		o.source = source
	}
}

// WithPredictor injects the prediction client.
func WithPredictor(predictor Predictor) Option {
	return func(o *Orchestrator) {
		o.predictor = predictor
	}
}

// WithResultRenderer injects the result renderer.
func WithResultRenderer(renderer ResultRenderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithNotifier injects the notification channel.
func WithNotifier(channel notify.Channel) Option {
	return func(o *Orchestrator) {
		o.notifier = channel
	}
}

// WithTriggerControl injects the submit control.
func WithTriggerControl(control TriggerControl) Option {
	return func(o *Orchestrator) {
		o.control = control
	}
}

// WithWorkingLabel overrides the label shown on the control while a cycle is
// in flight.
func WithWorkingLabel(label string) Option {
	return func(o *Orchestrator) {
		if label != "" {
			o.workingLabel = label
		}
	}
}

// WithLogger attaches a diagnostics logger. Transport errors are logged here
// and never shown to the user.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator is the submission state machine:
//
//	Idle → Submitting → (Success | Failed) → Idle
//
// It runs one cycle at a time. The awaited network call is the only
// suspension point, and no second cycle can start during it because the
// trigger control stays disabled until the cycle ends.
type Orchestrator struct {
	source       EntrySource
	predictor    Predictor
	renderer     ResultRenderer
	notifier     notify.Channel
	control      TriggerControl
	workingLabel string
	logger       *zap.Logger
	state        State
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		workingLabel: defaultWorkingLabel,
		logger:       zap.NewNop(),
		state:        StateIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// State reports the current cycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// Submit runs one full submission cycle. All failure branches surface as
// notifications and a returned error; none propagate further. The trigger
// control and the Idle state are restored on every exit path, including
// panics in collaborators.
func (o *Orchestrator) Submit(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := o.checkWiring(); err != nil {
		return err
	}
	if o.state != StateIdle {
		return ErrBusy
	}

	o.state = StateSubmitting
	if o.control != nil {
		o.control.Disable(o.workingLabel)
	}
	defer func() {
		if o.control != nil {
			o.control.Enable()
		}
		o.state = StateIdle
	}()

	entries, err := o.source.Entries(ctx)
	if err != nil {
		o.state = StateFailed
		o.logger.Error("collecting form entries failed", zap.Error(err))
		o.notifier.Show(notify.Danger(genericFailureText, notify.ErrorTimeout))
		return fmt.Errorf("orchestrator: collect entries: %w", err)
	}

	p := payload.Serialize(entries)
	if missing := payload.Missing(p); len(missing) > 0 {
		o.state = StateFailed
		o.notifier.Show(notify.Warning(
			"Missing required fields: "+strings.Join(missing, ", "),
			notify.ValidationTimeout))
		return &ValidationError{Fields: missing}
	}

	res, err := o.predictor.Predict(ctx, p)
	if err != nil {
		o.state = StateFailed
		var reqErr *predict.RequestError
		if errors.As(err, &reqErr) {
			o.notifier.Show(notify.Danger("Prediction error: "+reqErr.Message, notify.ErrorTimeout))
			return err
		}
		o.logger.Error("prediction request failed", zap.Error(err))
		o.notifier.Show(notify.Danger(genericFailureText, notify.ErrorTimeout))
		return fmt.Errorf("orchestrator: predict: %w", err)
	}

	o.state = StateSuccess
	if o.renderer != nil {
		o.renderer.Render(res)
	}
	return nil
}

func (o *Orchestrator) checkWiring() error {
	if o.source == nil {
		return errors.New("orchestrator: entry source is required")
	}
	if o.predictor == nil {
		return errors.New("orchestrator: predictor is required")
	}
	if o.notifier == nil {
		return errors.New("orchestrator: notifier is required")
	}
	return nil
}
