package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clinsight/go-predictform/pkg/form"
)

const blankOption = "(leave blank)"

// CollectorOption customises a Collector.
type CollectorOption func(*Collector)

// WithDriver overrides the prompt driver.
func WithDriver(driver Driver) CollectorOption {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// Collector prompts for every field of a form definition, in definition
// order, and yields one entry per field, blanks included. It implements the
// orchestrator's EntrySource contract, so every Submit triggers a fresh pass
// over the form.
type Collector struct {
	def    form.Definition
	driver Driver
}

// NewCollector constructs a Collector over a form definition.
func NewCollector(def form.Definition, options ...CollectorOption) *Collector {
	c := &Collector{
		def:    def,
		driver: NewSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Entries prompts for all fields and returns the collected raw values.
func (c *Collector) Entries(ctx context.Context) (form.Entries, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}

	entries := make(form.Entries, 0, len(c.def.Fields))
	for _, field := range c.def.Fields {
		raw, err := c.promptField(ctx, field)
		if err != nil {
			return nil, err
		}
		entries = append(entries, form.Entry{Name: field.Name, Raw: raw})
	}
	return entries, nil
}

func (c *Collector) promptField(ctx context.Context, field form.Field) (string, error) {
	switch field.Kind {
	case form.FieldKindChoice:
		return c.promptChoice(ctx, field)
	default:
		return c.promptNumeric(ctx, field)
	}
}

func (c *Collector) promptNumeric(ctx context.Context, field form.Field) (string, error) {
	cfg := InputConfig{
		Message:   field.DisplayLabel(),
		Help:      numericHelp(field),
		Validator: numericOrBlank,
	}
	raw, err := c.driver.Input(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("prompt: field %s: %w", field.Name, err)
	}
	return raw, nil
}

func (c *Collector) promptChoice(ctx context.Context, field form.Field) (string, error) {
	options := make([]string, 0, len(field.Choices)+1)
	options = append(options, blankOption)
	for _, choice := range field.Choices {
		options = append(options, choice.Label)
	}

	idx, err := c.driver.Select(ctx, SelectConfig{
		Message: field.DisplayLabel(),
		Options: options,
		Help:    field.Help,
	})
	if err != nil {
		return "", fmt.Errorf("prompt: field %s: %w", field.Name, err)
	}
	if idx <= 0 || idx > len(field.Choices) {
		return "", nil
	}
	return field.Choices[idx-1].Raw(), nil
}

// numericOrBlank keeps the prompt loop honest without taking over
// validation: blanks are allowed (the payload validator reports them), only
// non-numeric junk is bounced back to the user.
func numericOrBlank(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return errors.New("enter a number or leave blank")
	}
	return nil
}

func numericHelp(field form.Field) string {
	if field.Bounds == nil {
		return field.Help
	}
	bounds := fmt.Sprintf("Expected range %s–%s.",
		strconv.FormatFloat(field.Bounds.Min, 'f', -1, 64),
		strconv.FormatFloat(field.Bounds.Max, 'f', -1, 64))
	if field.Help == "" {
		return bounds
	}
	return field.Help + " " + bounds
}
