// Package widgets holds the concrete display implementations behind the
// renderer's seams: a PNG donut chart, terminal progress/proportion bars, and
// the terminal trigger control.
package widgets

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	defaultDonutSize = 512

	sliceDeathLabel    = "Death"
	sliceSurvivalLabel = "Survival"
)

// DonutOption customises a Donut.
type DonutOption func(*Donut)

// WithSize sets the rendered image's width and height in pixels.
func WithSize(size int) DonutOption {
	return func(d *Donut) {
		if size > 0 {
			d.size = size
		}
	}
}

// WithSliceLabels overrides the two slice labels (adverse outcome first).
func WithSliceLabels(adverse, complement string) DonutOption {
	return func(d *Donut) {
		if adverse != "" {
			d.labels[0] = adverse
		}
		if complement != "" {
			d.labels[1] = complement
		}
	}
}

// Donut renders the two-slice proportion chart as a PNG. It implements the
// result.Chart contract: slice updates are cheap, Redraw rasterizes.
type Donut struct {
	out    io.Writer
	size   int
	labels [2]string
	slices [2]float64
}

// NewDonut constructs a Donut writing PNG bytes to out on every Redraw.
func NewDonut(out io.Writer, options ...DonutOption) *Donut {
	d := &Donut{
		out:    out,
		size:   defaultDonutSize,
		labels: [2]string{sliceDeathLabel, sliceSurvivalLabel},
		slices: [2]float64{0, 100},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// SetSlices stores the [adverse, complement] percentages.
func (d *Donut) SetSlices(slices [2]float64) {
	d.slices = slices
}

// Redraw rasterizes the current slices.
func (d *Donut) Redraw() error {
	if d.out == nil {
		return errors.New("widgets: donut has no output writer")
	}

	values := make([]chart.Value, 0, 2)
	for i, slice := range d.slices {
		if slice <= 0 {
			// go-chart cannot draw zero-sized pie slices.
			continue
		}
		values = append(values, chart.Value{
			Value: slice,
			Label: fmt.Sprintf("%s %s%%", d.labels[i], trimFloat(slice)),
		})
	}
	if len(values) == 0 {
		return errors.New("widgets: no drawable slices")
	}

	donut := chart.DonutChart{
		Width:  d.size,
		Height: d.size,
		Values: values,
	}
	if err := donut.Render(chart.PNG, d.out); err != nil {
		return fmt.Errorf("widgets: render donut: %w", err)
	}
	return nil
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
