package energy

import "github.com/ja7ad/breakeven/pkg/types"

// Scenario holds the inputs of one compress-then-transmit estimate.
// Units:
//   - CorpusSize: decimal gigabytes (1 GB = 8e9 bits)
//   - CompressionFactor: dimensionless, uncompressed/compressed (1.0 = none)
//   - Bandwidth: megabits per second
//   - TransmitPower/CompressPower: Watts
//   - CompressTime: hours
type Scenario struct {
	CorpusSize        types.Gigabytes `json:"corpus_size_gb" yaml:"corpus_size_gb" validate:"gt=0,finite"`
	CompressionFactor float64         `json:"compression_factor" yaml:"compression_factor" validate:"gt=0,finite"`
	Bandwidth         types.Mbps      `json:"bandwidth_mbps" yaml:"bandwidth_mbps" validate:"gt=0,finite"`
	TransmitPower     float64         `json:"transmit_power_w" yaml:"transmit_power_w" validate:"gt=0,finite"`
	CompressPower     float64         `json:"compress_power_w" yaml:"compress_power_w" validate:"gt=0,finite"`
	CompressTime      float64         `json:"compress_time_hrs" yaml:"compress_time_hrs" validate:"gt=0,finite"`
}

// DefaultScenario returns a Scenario pre-filled with the default hardware
// figures. CorpusSize, CompressionFactor and Bandwidth are left zero and
// must be supplied by the caller.
func DefaultScenario() Scenario {
	return Scenario{
		TransmitPower: 5.0,  // W, satellite-class transmitter
		CompressPower: 0.5,  // W, low-power compression board
		CompressTime:  36.0, // hours for one compression pass
	}
}

// WithCF returns a copy of s using the given compression factor.
func (s Scenario) WithCF(cf float64) Scenario {
	s.CompressionFactor = cf
	return s
}

// Breakdown is the energy split for one scenario at one compression factor.
type Breakdown struct {
	CompressionWh   float64 `json:"compression_energy_wh" yaml:"compression_energy_wh"`
	TransmissionWh  float64 `json:"transmission_energy_wh" yaml:"transmission_energy_wh"`
	TotalWh         float64 `json:"total_energy_wh" yaml:"total_energy_wh"`
	TransmissionHrs float64 `json:"transmission_time_hrs" yaml:"transmission_time_hrs"`
}

// Analysis is the full result for a scenario: the breakdown at the requested
// compression factor, the uncompressed baseline and the economics derived
// from both.
type Analysis struct {
	Scenario  Scenario
	Actual    Breakdown // at Scenario.CompressionFactor
	Baseline  Breakdown // CF = 1.0, no compression pass
	BreakEven float64   // +Inf when compression never pays off

	// SafetyMargin is CompressionFactor / BreakEven (0 when BreakEven is +Inf).
	SafetyMargin float64
	SavedWh      float64
	SavedPct     float64
	// ROI is SavedWh per Wh spent compressing; 0 when nothing is spent.
	ROI float64
}

// BreaksEven reports whether a finite break-even compression factor exists.
func (a Analysis) BreaksEven() bool { return !isInf(a.BreakEven) }

// Saves reports whether the requested compression factor is above break-even.
func (a Analysis) Saves() bool { return a.Scenario.CompressionFactor > a.BreakEven }
