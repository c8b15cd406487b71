// Package predictform orchestrates prediction submissions against a remote
// survival-prediction service: form collection, payload serialization and
// validation, the request state machine, and result rendering.
package predictform

import (
	"context"

	"github.com/clinsight/go-predictform/pkg/form"
	"github.com/clinsight/go-predictform/pkg/notify"
	"github.com/clinsight/go-predictform/pkg/orchestrator"
	"github.com/clinsight/go-predictform/pkg/payload"
	"github.com/clinsight/go-predictform/pkg/predict"
	"github.com/clinsight/go-predictform/pkg/result"
)

// Definition re-exports the form definition type for convenience.
type Definition = form.Definition

// Entries re-exports the collected form entries type.
type Entries = form.Entries

// Payload re-exports the serialized payload type.
type Payload = payload.Payload

// Result re-exports the prediction result type.
type Result = predict.Result

// Message re-exports the notification message type.
type Message = notify.Message

// Option re-exports the orchestrator option type.
type Option = orchestrator.Option

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so simple callers only import one package.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewClient constructs a prediction client for the given base URL.
func NewClient(baseURL string, options ...predict.Option) (*predict.Client, error) {
	return predict.NewClient(baseURL, options...)
}

// NewResultRenderer constructs a result renderer.
func NewResultRenderer(options ...result.Option) *result.Renderer {
	return result.New(options...)
}

// Submit runs one full submission cycle with an orchestrator assembled from
// the provided options. It is the simplest entry point for callers that do
// not need to hold on to the orchestrator between submissions.
func Submit(ctx context.Context, options ...orchestrator.Option) error {
	return orchestrator.New(options...).Submit(ctx)
}

// SEERDefinition returns the built-in breast-cancer survival form.
func SEERDefinition() Definition {
	return form.SEER()
}
