package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/clinsight/go-predictform/pkg/form"
	"github.com/clinsight/go-predictform/pkg/payload"
	"github.com/clinsight/go-predictform/pkg/predict"
	"github.com/clinsight/go-predictform/pkg/result"
)

const templateName = "templates/report"

// Row is one submitted field in the report table.
type Row struct {
	Label   string
	Display string
}

// BuilderOption customises a Builder.
type BuilderOption func(*Builder)

// WithEngine overrides the template engine.
func WithEngine(engine *Engine) BuilderOption {
	return func(b *Builder) {
		if engine != nil {
			b.engine = engine
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// Builder renders the HTML summary of one prediction cycle.
type Builder struct {
	engine   *Engine
	sanitize *bluemonday.Policy
	now      func() time.Time
}

// NewBuilder constructs a Builder with the embedded template.
func NewBuilder(options ...BuilderOption) (*Builder, error) {
	engine, err := NewEngine()
	if err != nil {
		return nil, err
	}
	b := &Builder{
		engine:   engine,
		sanitize: bluemonday.StrictPolicy(),
		now:      time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b, nil
}

// Build renders the report for a submitted payload and its result. The
// prediction label comes from the remote service, so it is stripped of any
// markup before it reaches the template.
func (b *Builder) Build(def form.Definition, p payload.Payload, res predict.Result) (string, error) {
	prediction := strings.TrimSpace(b.sanitize.Sanitize(res.Prediction))
	if prediction == "" {
		prediction = result.UnknownLabel
	}

	pct, ok := result.Percent(res.Probability)
	percentText := "N/A"
	slices := result.ResetSlices
	note := "Probability not available for this prediction."
	if ok {
		percentText = result.FormatPercent(pct)
		slices = result.Slices(pct)
		note = "Shown value is the model's probability of the adverse outcome class; for clinical context only."
	}

	data := map[string]any{
		"form_name":        def.Name,
		"generated_at":     b.now().Format(time.RFC3339),
		"rows":             b.rows(def, p),
		"prediction":       prediction,
		"percent_text":     percentText,
		"percent_width":    formatSlice(pct),
		"death_percent":    formatSlice(slices[0]),
		"survival_percent": formatSlice(slices[1]),
		"note":             note,
	}

	out, err := b.engine.RenderTemplate(templateName, data)
	if err != nil {
		return "", fmt.Errorf("report: build: %w", err)
	}
	return out, nil
}

func (b *Builder) rows(def form.Definition, p payload.Payload) []Row {
	rows := make([]Row, 0, p.Len())
	for _, name := range p.Names() {
		value, _ := p.Value(name)
		label := name
		display := displayValue(value)

		if field, ok := def.FieldByName(name); ok {
			label = field.DisplayLabel()
			if n, isNum := value.(float64); isNum && field.Kind == form.FieldKindChoice {
				if choiceLabel, known := field.ChoiceLabel(int(n)); known {
					display = choiceLabel
				}
			}
		}
		rows = append(rows, Row{Label: label, Display: b.sanitize.Sanitize(display)})
	}
	return rows
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "—"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func formatSlice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
