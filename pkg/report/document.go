package report

import (
	"math"

	"github.com/ja7ad/breakeven/pkg/energy"
)

// Document is the machine-readable form of a Report, shared by the JSON and
// YAML writers. It carries raw numbers instead of formatted strings.
type Document struct {
	Title              string           `json:"title" yaml:"title"`
	Scenario           energy.Scenario  `json:"scenario" yaml:"scenario"`
	WithCompression    energy.Breakdown `json:"with_compression" yaml:"with_compression"`
	WithoutCompression Uncompressed     `json:"without_compression" yaml:"without_compression"`
	Economics          Economics        `json:"economics" yaml:"economics"`
	Verdict            Verdict          `json:"verdict" yaml:"verdict"`
}

// Uncompressed is the CF=1 breakdown; it has no compression energy.
type Uncompressed struct {
	TransmissionWh  float64 `json:"transmission_energy_wh" yaml:"transmission_energy_wh"`
	TotalWh         float64 `json:"total_energy_wh" yaml:"total_energy_wh"`
	TransmissionHrs float64 `json:"transmission_time_hrs" yaml:"transmission_time_hrs"`
}

// Economics holds the break-even and savings figures.
// BreakEvenCF is nil when no break-even exists, since JSON has no infinity.
type Economics struct {
	BreakEvenCF     *float64 `json:"break_even_cf" yaml:"break_even_cf"`
	BreakEvenExists bool     `json:"break_even_exists" yaml:"break_even_exists"`
	SafetyMargin    float64  `json:"safety_margin" yaml:"safety_margin"`
	EnergySavedWh   float64  `json:"energy_saved_wh" yaml:"energy_saved_wh"`
	EnergySavedPct  float64  `json:"energy_saved_pct" yaml:"energy_saved_pct"`
	ROI             float64  `json:"energy_roi" yaml:"energy_roi"`
}

// Document returns the machine-readable form of r.
func (r *Report) Document() Document {
	a := r.Analysis

	econ := Economics{
		BreakEvenExists: a.BreaksEven(),
		SafetyMargin:    a.SafetyMargin,
		EnergySavedWh:   a.SavedWh,
		EnergySavedPct:  a.SavedPct,
		ROI:             a.ROI,
	}
	if !math.IsInf(a.BreakEven, 0) && !math.IsNaN(a.BreakEven) {
		be := a.BreakEven
		econ.BreakEvenCF = &be
	}

	return Document{
		Title:           r.Title,
		Scenario:        a.Scenario,
		WithCompression: a.Actual,
		WithoutCompression: Uncompressed{
			TransmissionWh:  a.Baseline.TransmissionWh,
			TotalWh:         a.Baseline.TotalWh,
			TransmissionHrs: a.Baseline.TransmissionHrs,
		},
		Economics: econ,
		Verdict:   r.Verdict,
	}
}
