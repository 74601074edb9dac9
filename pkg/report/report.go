// Package report turns an energy.Analysis into a presentation-neutral report:
// an ordered list of sections, each a list of labeled numeric fields, plus an
// interpretive verdict. Writers in this package serialise a Report as text,
// JSON, YAML, Markdown or HTML; none of them recompute anything.
package report

import (
	"github.com/ja7ad/breakeven/pkg/energy"
	"github.com/ja7ad/breakeven/pkg/util"
)

// Title is the heading every writer prints first.
const Title = "Compression Energy Break-Even Analysis"

// Decimal places per kind of quantity. Kept fixed for a whole report.
const (
	PrecEnergy    = 1
	PrecPercent   = 1
	PrecROI       = 1
	PrecMargin    = 2
	PrecTime      = 2
	PrecBreakEven = 3
	// PrecEcho prints inputs back with the fewest digits that round-trip.
	PrecEcho = -1
)

// Section keys.
const (
	SectionScenario     = "scenario"
	SectionCompressed   = "with_compression"
	SectionUncompressed = "without_compression"
	SectionEconomics    = "economics"
)

// Field is one labeled value of a section.
type Field struct {
	Key   string
	Label string
	Value float64
	Unit  string
	Prec  int
	// Note is an optional trailing remark, rendered after the value.
	Note string
}

// Number returns the value formatted at the field's precision.
func (f Field) Number() string {
	if f.Prec == PrecEcho {
		return util.FmtShortest(f.Value)
	}
	return util.FmtFloat(f.Value, f.Prec)
}

// Text returns the value with its unit, e.g. "106.9 Wh" or "9.375:1".
func (f Field) Text() string {
	s := f.Number()
	switch f.Unit {
	case "":
	case ":1", "x", "%":
		s += f.Unit
	default:
		s += " " + f.Unit
	}
	return s
}

// Section is a titled group of fields.
type Section struct {
	Key    string
	Title  string
	Fields []Field
}

// Field returns the field with the given key.
func (s Section) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Report is the structured result of one analysis.
type Report struct {
	Title    string
	Sections []Section
	Verdict  Verdict
	Analysis energy.Analysis
}

// Section returns the section with the given key.
func (r *Report) Section(key string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// New builds the report for a.
func New(a energy.Analysis) *Report {
	s := a.Scenario

	scenario := Section{
		Key:   SectionScenario,
		Title: "Scenario Parameters",
		Fields: []Field{
			{Key: "corpus_size_gb", Label: "Corpus Size", Value: float64(s.CorpusSize), Unit: "GB", Prec: PrecEcho},
			{Key: "compression_factor", Label: "Compression Factor", Value: s.CompressionFactor, Unit: ":1", Prec: PrecEcho},
			{Key: "bandwidth_mbps", Label: "Transmission BW", Value: float64(s.Bandwidth), Unit: "Mbps", Prec: PrecEcho},
			{Key: "transmit_power_w", Label: "Transmit Power", Value: s.TransmitPower, Unit: "W", Prec: PrecEcho},
			{Key: "compress_power_w", Label: "Compress Power", Value: s.CompressPower, Unit: "W", Prec: PrecEcho},
			{Key: "compress_time_hrs", Label: "Compress Time", Value: s.CompressTime, Unit: "hours", Prec: PrecEcho},
		},
	}

	compressed := Section{
		Key:   SectionCompressed,
		Title: "Energy Breakdown (with compression)",
		Fields: []Field{
			{Key: "compression_energy_wh", Label: "Compression Energy", Value: a.Actual.CompressionWh, Unit: "Wh", Prec: PrecEnergy},
			{Key: "transmission_energy_wh", Label: "Transmission Energy", Value: a.Actual.TransmissionWh, Unit: "Wh", Prec: PrecEnergy},
			{Key: "total_energy_wh", Label: "Total Energy", Value: a.Actual.TotalWh, Unit: "Wh", Prec: PrecEnergy},
			{Key: "transmission_time_hrs", Label: "Transmission Time", Value: a.Actual.TransmissionHrs, Unit: "hours", Prec: PrecTime},
		},
	}

	// No compression line: nothing is spent compressing at CF=1.
	uncompressed := Section{
		Key:   SectionUncompressed,
		Title: "Energy (no compression, CF=1.0)",
		Fields: []Field{
			{Key: "transmission_energy_wh", Label: "Transmission Energy", Value: a.Baseline.TransmissionWh, Unit: "Wh", Prec: PrecEnergy},
			{Key: "total_energy_wh", Label: "Total Energy", Value: a.Baseline.TotalWh, Unit: "Wh", Prec: PrecEnergy},
		},
	}

	economics := Section{
		Key:   SectionEconomics,
		Title: "Energy Economics",
		Fields: []Field{
			{Key: "break_even_cf", Label: "Break-even CF", Value: a.BreakEven, Unit: ":1", Prec: PrecBreakEven},
			{Key: "safety_margin", Label: "Safety Margin", Value: a.SafetyMargin, Unit: "x", Prec: PrecMargin},
			{Key: "energy_saved_wh", Label: "Energy Saved", Value: a.SavedWh, Unit: "Wh", Prec: PrecEnergy},
			{Key: "energy_saved_pct", Label: "Energy Saved (share)", Value: a.SavedPct, Unit: "%", Prec: PrecPercent},
			{
				Key: "energy_roi", Label: "Energy ROI", Value: a.ROI, Unit: "x", Prec: PrecROI,
				Note: "every 1 Wh spent saves " + util.FmtFloat(a.ROI, PrecROI) + " Wh",
			},
		},
	}

	return &Report{
		Title:    Title,
		Sections: []Section{scenario, compressed, uncompressed, economics},
		Verdict:  Judge(s.CompressionFactor, a.BreakEven, a.ROI),
		Analysis: a,
	}
}
