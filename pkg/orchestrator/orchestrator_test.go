package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clinsight/go-predictform/pkg/form"
	"github.com/clinsight/go-predictform/pkg/notify"
	"github.com/clinsight/go-predictform/pkg/payload"
	"github.com/clinsight/go-predictform/pkg/predict"
)

type stubSource struct {
	entries form.Entries
	err     error
	calls   int
}

func (s *stubSource) Entries(_ context.Context) (form.Entries, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

type stubPredictor struct {
	result predict.Result
	err    error
	calls  int
	got    payload.Payload
}

func (s *stubPredictor) Predict(_ context.Context, p payload.Payload) (predict.Result, error) {
	s.calls++
	s.got = p
	if s.err != nil {
		return predict.Result{}, s.err
	}
	return s.result, nil
}

type stubRenderer struct {
	rendered []predict.Result
}

func (s *stubRenderer) Render(res predict.Result) {
	s.rendered = append(s.rendered, res)
}

type captureChannel struct {
	messages []notify.Message
}

func (c *captureChannel) Show(msg notify.Message) {
	c.messages = append(c.messages, msg)
}

type recordingControl struct {
	disabled bool
	label    string
	history  []string
}

func (c *recordingControl) Disable(workingLabel string) {
	c.disabled = true
	c.label = workingLabel
	c.history = append(c.history, "disable:"+workingLabel)
}

func (c *recordingControl) Enable() {
	c.disabled = false
	c.label = "Predict"
	c.history = append(c.history, "enable")
}

func probability(v float64) *float64 {
	return &v
}

func newHarness(source *stubSource, predictor *stubPredictor) (*Orchestrator, *stubRenderer, *captureChannel, *recordingControl) {
	renderer := &stubRenderer{}
	channel := &captureChannel{}
	control := &recordingControl{label: "Predict"}
	orch := New(
		WithEntrySource(source),
		WithPredictor(predictor),
		WithResultRenderer(renderer),
		WithNotifier(channel),
		WithTriggerControl(control),
	)
	return orch, renderer, channel, control
}

func TestSubmitSuccess(t *testing.T) {
	source := &stubSource{entries: form.Entries{
		{Name: "Age", Raw: "63"},
		{Name: "Race", Raw: "1"},
	}}
	predictor := &stubPredictor{result: predict.Result{
		Prediction:  "Dead",
		Probability: probability(0.73),
	}}
	orch, renderer, channel, control := newHarness(source, predictor)

	if err := orch.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if predictor.calls != 1 {
		t.Fatalf("expected exactly one request, got %d", predictor.calls)
	}
	if len(renderer.rendered) != 1 {
		t.Fatalf("expected one rendered result, got %d", len(renderer.rendered))
	}
	if renderer.rendered[0].Prediction != "Dead" {
		t.Fatalf("unexpected rendered result: %+v", renderer.rendered[0])
	}
	if len(channel.messages) != 0 {
		t.Fatalf("expected no notifications on success, got %v", channel.messages)
	}
	if control.disabled {
		t.Fatalf("control must end the cycle enabled")
	}
	if control.label != "Predict" {
		t.Fatalf("control label not restored: %q", control.label)
	}
	if orch.State() != StateIdle {
		t.Fatalf("expected idle state, got %s", orch.State())
	}
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	source := &stubSource{entries: form.Entries{
		{Name: "Age", Raw: "63"},
		{Name: "Tumor", Raw: ""},
	}}
	predictor := &stubPredictor{}
	orch, renderer, channel, control := newHarness(source, predictor)

	err := orch.Submit(context.Background())
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if diff := cmp.Diff([]string{"Tumor"}, valErr.Fields); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}

	if predictor.calls != 0 {
		t.Fatalf("no network call may be issued on validation failure")
	}
	if len(renderer.rendered) != 0 {
		t.Fatalf("nothing should render on validation failure")
	}
	if len(channel.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(channel.messages))
	}
	msg := channel.messages[0]
	if msg.Severity != notify.SeverityWarning {
		t.Fatalf("expected warning severity, got %s", msg.Severity)
	}
	if msg.Text != "Missing required fields: Tumor" {
		t.Fatalf("unexpected notification text: %q", msg.Text)
	}
	if msg.Timeout != notify.ValidationTimeout {
		t.Fatalf("expected validation timeout, got %s", msg.Timeout)
	}
	if control.disabled {
		t.Fatalf("control must be re-enabled immediately after validation failure")
	}
}

func TestSubmitRequestError(t *testing.T) {
	source := &stubSource{entries: form.Entries{{Name: "Age", Raw: "63"}}}
	predictor := &stubPredictor{err: &predict.RequestError{
		Status:  500,
		Message: "model unavailable",
	}}
	orch, renderer, channel, control := newHarness(source, predictor)

	err := orch.Submit(context.Background())
	var reqErr *predict.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected request error passthrough, got %v", err)
	}

	if len(channel.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(channel.messages))
	}
	msg := channel.messages[0]
	if msg.Text != "Prediction error: model unavailable" {
		t.Fatalf("unexpected notification text: %q", msg.Text)
	}
	if msg.Severity != notify.SeverityDanger {
		t.Fatalf("expected danger severity, got %s", msg.Severity)
	}
	if msg.Timeout != notify.ErrorTimeout {
		t.Fatalf("expected error timeout, got %s", msg.Timeout)
	}
	if len(renderer.rendered) != 0 {
		t.Fatalf("nothing should render on request error")
	}
	if control.disabled {
		t.Fatalf("control must end the cycle enabled")
	}
}

func TestSubmitTransportError(t *testing.T) {
	source := &stubSource{entries: form.Entries{{Name: "Age", Raw: "63"}}}
	predictor := &stubPredictor{err: errors.New("connection refused")}
	orch, _, channel, control := newHarness(source, predictor)

	if err := orch.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	if len(channel.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(channel.messages))
	}
	msg := channel.messages[0]
	if msg.Severity != notify.SeverityDanger {
		t.Fatalf("expected danger severity, got %s", msg.Severity)
	}
	if msg.Text != "Prediction request failed. Please try again." {
		t.Fatalf("transport detail must not leak to the user: %q", msg.Text)
	}
	if control.disabled {
		t.Fatalf("control must end the cycle enabled")
	}
}

func TestSubmitEntrySourceError(t *testing.T) {
	source := &stubSource{err: errors.New("terminal gone")}
	predictor := &stubPredictor{}
	orch, _, channel, control := newHarness(source, predictor)

	if err := orch.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if predictor.calls != 0 {
		t.Fatalf("no request may be issued when collection fails")
	}
	if len(channel.messages) != 1 || channel.messages[0].Severity != notify.SeverityDanger {
		t.Fatalf("expected one danger notification, got %v", channel.messages)
	}
	if control.disabled {
		t.Fatalf("control must end the cycle enabled")
	}
}

func TestCleanupRunsOnEveryBranch(t *testing.T) {
	branches := []struct {
		name      string
		source    *stubSource
		predictor *stubPredictor
	}{
		{
			name:      "success",
			source:    &stubSource{entries: form.Entries{{Name: "Age", Raw: "1"}}},
			predictor: &stubPredictor{result: predict.Result{Prediction: "Alive"}},
		},
		{
			name:      "validation failure",
			source:    &stubSource{entries: form.Entries{{Name: "Age", Raw: ""}}},
			predictor: &stubPredictor{},
		},
		{
			name:      "request error",
			source:    &stubSource{entries: form.Entries{{Name: "Age", Raw: "1"}}},
			predictor: &stubPredictor{err: &predict.RequestError{Status: 400, Message: "bad"}},
		},
		{
			name:      "transport error",
			source:    &stubSource{entries: form.Entries{{Name: "Age", Raw: "1"}}},
			predictor: &stubPredictor{err: errors.New("boom")},
		},
	}

	for _, branch := range branches {
		t.Run(branch.name, func(t *testing.T) {
			orch, _, _, control := newHarness(branch.source, branch.predictor)
			_ = orch.Submit(context.Background())

			if control.disabled {
				t.Fatalf("control must end the cycle enabled")
			}
			if control.label != "Predict" {
				t.Fatalf("label not restored: %q", control.label)
			}
			if orch.State() != StateIdle {
				t.Fatalf("state must return to idle, got %s", orch.State())
			}

			last := control.history[len(control.history)-1]
			if last != "enable" {
				t.Fatalf("enable must be the final control action, history: %v", control.history)
			}
		})
	}
}

func TestCleanupRunsOnRendererPanic(t *testing.T) {
	source := &stubSource{entries: form.Entries{{Name: "Age", Raw: "1"}}}
	predictor := &stubPredictor{result: predict.Result{Prediction: "Alive"}}
	channel := &captureChannel{}
	control := &recordingControl{label: "Predict"}
	orch := New(
		WithEntrySource(source),
		WithPredictor(predictor),
		WithResultRenderer(panickingRenderer{}),
		WithNotifier(channel),
		WithTriggerControl(control),
	)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		_ = orch.Submit(context.Background())
	}()

	if control.disabled {
		t.Fatalf("control must be re-enabled even when a collaborator panics")
	}
	if orch.State() != StateIdle {
		t.Fatalf("state must return to idle after panic, got %s", orch.State())
	}
}

type panickingRenderer struct{}

func (panickingRenderer) Render(predict.Result) {
	panic("renderer exploded")
}

func TestFreshEntriesPerSubmission(t *testing.T) {
	source := &stubSource{entries: form.Entries{{Name: "Age", Raw: "1"}}}
	predictor := &stubPredictor{result: predict.Result{Prediction: "Alive"}}
	orch, _, _, _ := newHarness(source, predictor)

	if err := orch.Submit(context.Background()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := orch.Submit(context.Background()); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if source.calls != 2 {
		t.Fatalf("entries must be collected fresh per cycle, got %d calls", source.calls)
	}
	if predictor.calls != 2 {
		t.Fatalf("expected one request per cycle, got %d", predictor.calls)
	}
}

func TestSubmitBusyGuard(t *testing.T) {
	control := &recordingControl{label: "Predict"}
	channel := &captureChannel{}
	predictor := &stubPredictor{result: predict.Result{Prediction: "Alive"}}

	var orch *Orchestrator
	reentrant := entriesFunc(func(ctx context.Context) (form.Entries, error) {
		// A second submit during the in-flight cycle must be rejected
		// without touching any collaborator.
		if err := orch.Submit(ctx); !errors.Is(err, ErrBusy) {
			return nil, errors.New("re-entrant submit was not rejected")
		}
		return form.Entries{{Name: "Age", Raw: "1"}}, nil
	})

	orch = New(
		WithEntrySource(reentrant),
		WithPredictor(predictor),
		WithNotifier(channel),
		WithTriggerControl(control),
	)

	if err := orch.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if predictor.calls != 1 {
		t.Fatalf("expected exactly one request, got %d", predictor.calls)
	}
}

type entriesFunc func(ctx context.Context) (form.Entries, error)

func (f entriesFunc) Entries(ctx context.Context) (form.Entries, error) {
	return f(ctx)
}

func TestSubmitRequiresWiring(t *testing.T) {
	orch := New()
	if err := orch.Submit(context.Background()); err == nil {
		t.Fatalf("expected wiring error")
	}
}
