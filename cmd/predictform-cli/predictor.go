package main

import (
	"context"

	"github.com/clinsight/go-predictform/pkg/orchestrator"
	"github.com/clinsight/go-predictform/pkg/payload"
	"github.com/clinsight/go-predictform/pkg/predict"
	"github.com/clinsight/go-predictform/pkg/result"
)

// capturePredictor wraps the real client so the report builder can reuse the
// payload and result of the cycle after the orchestrator finishes.
type capturePredictor struct {
	orchestrator.Predictor
	called  bool
	payload payload.Payload
	result  predict.Result
}

func (c *capturePredictor) Predict(ctx context.Context, p payload.Payload) (predict.Result, error) {
	res, err := c.Predictor.Predict(ctx, p)
	if err != nil {
		return res, err
	}
	c.called = true
	c.payload = p
	c.result = res
	return res, nil
}

// splitChart fans chart updates out to both the terminal bar and the donut
// PNG.
type splitChart struct {
	term  result.Chart
	donut result.Chart
}

func (s splitChart) SetSlices(slices [2]float64) {
	s.term.SetSlices(slices)
	s.donut.SetSlices(slices)
}

func (s splitChart) Redraw() error {
	if err := s.term.Redraw(); err != nil {
		return err
	}
	return s.donut.Redraw()
}
