// Package curve samples total energy against compression factor and renders
// the result as a chart.
//
// Rendering is a capability, not a requirement: callers hold a Renderer (or
// nil) and decide what to do when it is missing. Nothing in pkg/energy or
// pkg/report depends on this package.
package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ja7ad/breakeven/pkg/energy"
)

// Defaults for Options.
const (
	DefaultMaxCF   = 15.0
	DefaultSamples = 1000
	// UsefulCF is the conventional "useful compression" threshold marked on charts.
	UsefulCF = 5.0
)

// Options controls how the curve is sampled.
type Options struct {
	MaxCF   float64 // upper CF bound, > 1
	Samples int     // number of points, >= 2
}

// DefaultOptions returns the default sampling range [1, 15] with 1000 points.
func DefaultOptions() Options {
	return Options{MaxCF: DefaultMaxCF, Samples: DefaultSamples}
}

// Point is the energy breakdown at one compression factor.
type Point struct {
	CF             float64
	CompressionWh  float64
	TransmissionWh float64
	TotalWh        float64
}

// Curve is a sampled energy-vs-CF curve for one scenario.
type Curve struct {
	Scenario   energy.Scenario
	Points     []Point
	MaxCF      float64
	BaselineWh float64 // uncompressed transfer energy
	BreakEven  float64 // +Inf when there is none
}

// Validate checks the sampling range. The returned error wraps ErrBadRange.
func (o Options) Validate() error {
	if !(o.MaxCF > 1) || math.IsInf(o.MaxCF, 0) {
		return fmt.Errorf("%w: max CF must be a finite number > 1 (got %v)", ErrBadRange, o.MaxCF)
	}
	if o.Samples < 2 {
		return fmt.Errorf("%w: need at least 2 samples (got %d)", ErrBadRange, o.Samples)
	}
	return nil
}

// Sample evaluates the energy model on a uniform CF grid over [1, opts.MaxCF].
// s.CompressionFactor is ignored.
func Sample(s energy.Scenario, opts Options) (*Curve, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cfs := floats.Span(make([]float64, opts.Samples), 1.0, opts.MaxCF)
	// Span accumulates l+step*i; pin the upper end so the range is exact.
	cfs[len(cfs)-1] = opts.MaxCF

	pts := make([]Point, len(cfs))
	for i, cf := range cfs {
		b := energy.Compute(s.WithCF(cf))
		pts[i] = Point{
			CF:             cf,
			CompressionWh:  b.CompressionWh,
			TransmissionWh: b.TransmissionWh,
			TotalWh:        b.TotalWh,
		}
	}

	return &Curve{
		Scenario:   s,
		Points:     pts,
		MaxCF:      opts.MaxCF,
		BaselineWh: energy.Baseline(s),
		BreakEven:  energy.BreakEven(s),
	}, nil
}

// BreakEvenVisible reports whether the break-even CF falls inside [1, MaxCF].
func (c *Curve) BreakEvenVisible() bool {
	return !math.IsInf(c.BreakEven, 0) && c.BreakEven >= 1 && c.BreakEven <= c.MaxCF
}

// UsefulVisible reports whether the UsefulCF marker falls inside the range.
func (c *Curve) UsefulVisible() bool { return UsefulCF <= c.MaxCF }

// Totals returns the total energy of every sample.
func (c *Curve) Totals() []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.TotalWh
	}
	return out
}

// MaxTotal returns the highest total energy on the curve.
func (c *Curve) MaxTotal() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	return floats.Max(c.Totals())
}
