package result

import (
	"go.uber.org/zap"

	"github.com/clinsight/go-predictform/pkg/predict"
)

const (
	// UnknownLabel is shown when the service omits the predicted class.
	UnknownLabel = "Unknown"

	noteAvailable   = "Shown value is the model's probability of the adverse outcome class; for clinical context only."
	noteUnavailable = "Probability not available for this prediction."
)

// ProgressBar is the bounded progress indicator the renderer drives.
type ProgressBar interface {
	Update(percent float64, label string)
}

// Chart is the two-slice proportion chart contract.
type Chart interface {
	SetSlices([2]float64)
	Redraw() error
}

// TextSink receives a line of display text.
type TextSink interface {
	SetText(string)
}

// Option customises the renderer.
type Option func(*Renderer)

// WithProgressBar attaches the progress indicator.
func WithProgressBar(bar ProgressBar) Option {
	return func(r *Renderer) {
		r.progress = bar
	}
}

// WithChart attaches the proportion chart.
func WithChart(chart Chart) Option {
	return func(r *Renderer) {
		r.chart = chart
	}
}

// WithClassSink attaches the predicted-class label target.
func WithClassSink(sink TextSink) Option {
	return func(r *Renderer) {
		r.class = sink
	}
}

// WithNoteSink attaches the explanatory note target.
func WithNoteSink(sink TextSink) Option {
	return func(r *Renderer) {
		r.note = sink
	}
}

// WithLogger attaches a diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer fans a prediction result out to its display collaborators. Every
// collaborator is optional; missing ones are skipped.
type Renderer struct {
	progress ProgressBar
	chart    Chart
	class    TextSink
	note     TextSink
	logger   *zap.Logger
}

// New constructs a Renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render updates the class label, progress indicator, and chart from one
// result. It never fails: a malformed probability degrades to the
// "not available" display state, and chart redraw errors are only logged.
// The result is not retained past the call.
func (r *Renderer) Render(res predict.Result) {
	label := res.Prediction
	if label == "" {
		label = UnknownLabel
	}
	if r.class != nil {
		r.class.SetText(label)
	}

	pct, ok := Percent(res.Probability)
	if !ok {
		if r.progress != nil {
			r.progress.Update(0, "N/A")
		}
		if r.note != nil {
			r.note.SetText(noteUnavailable)
		}
		r.redraw(ResetSlices)
		return
	}

	if r.progress != nil {
		r.progress.Update(pct, FormatPercent(pct))
	}
	if r.note != nil {
		r.note.SetText(noteAvailable)
	}
	r.redraw(Slices(pct))
}

func (r *Renderer) redraw(slices [2]float64) {
	if r.chart == nil {
		return
	}
	r.chart.SetSlices(slices)
	if err := r.chart.Redraw(); err != nil {
		r.logger.Warn("chart redraw failed", zap.Error(err))
	}
}
