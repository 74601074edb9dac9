package energy

import (
	"math"

	"github.com/ja7ad/breakeven/pkg/types"
	"github.com/ja7ad/breakeven/pkg/util"
)

// Compute returns the energy breakdown of s at s.CompressionFactor.
//
// Compression is modelled as a fixed-cost pass, so CompressionWh does not
// depend on the compression factor:
//
//	E_compress  = P_compress * T_compress
//	T_transmit  = (bits / CF) / bps / 3600
//	E_transmit  = P_transmit * T_transmit
//
// Compute does not validate s. Zero or negative inputs propagate through the
// formulas following IEEE-754 (e.g. zero bandwidth yields +Inf); use Validate
// or Analyze to reject them.
func Compute(s Scenario) Breakdown {
	eCompress := s.CompressPower * s.CompressTime

	hrs := (s.CorpusSize.Bits() / s.CompressionFactor) / s.Bandwidth.BitsPerSecond() / types.SecondsPerHour
	eTransmit := s.TransmitPower * hrs

	return Breakdown{
		CompressionWh:   eCompress,
		TransmissionWh:  eTransmit,
		TotalWh:         eCompress + eTransmit,
		TransmissionHrs: hrs,
	}
}

// Uncompressed returns the breakdown of sending the corpus as-is: CF = 1 and
// no compression pass, so CompressionWh is zero. s.CompressionFactor is ignored.
func Uncompressed(s Scenario) Breakdown {
	hrs := s.CorpusSize.Bits() / s.Bandwidth.BitsPerSecond() / types.SecondsPerHour
	e := s.TransmitPower * hrs
	return Breakdown{
		TransmissionWh:  e,
		TotalWh:         e,
		TransmissionHrs: hrs,
	}
}

// Baseline returns the energy of sending the corpus uncompressed.
func Baseline(s Scenario) float64 { return Uncompressed(s).TotalWh }

// BreakEven returns the compression factor at which compress+transmit costs
// exactly as much as transmitting uncompressed. s.CompressionFactor is ignored.
//
// Solving E_compress + E_uncompressed/CF = E_uncompressed for CF gives
//
//	CF = E_uncompressed / (E_uncompressed - E_compress)
//
// When the compression pass alone costs at least as much as the uncompressed
// transfer there is no solution and +Inf is returned.
func BreakEven(s Scenario) float64 {
	eUncompressed := Baseline(s)
	eCompress := s.CompressPower * s.CompressTime

	if eCompress >= eUncompressed {
		return math.Inf(1)
	}
	return eUncompressed / (eUncompressed - eCompress)
}

// Analyze validates s and returns its breakdown, the uncompressed baseline,
// the break-even compression factor and the savings economics.
func Analyze(s Scenario) (Analysis, error) {
	if err := Validate(s); err != nil {
		return Analysis{}, err
	}

	actual := Compute(s)
	baseline := Uncompressed(s)
	be := BreakEven(s)

	saved := baseline.TotalWh - actual.TotalWh

	return Analysis{
		Scenario:     s,
		Actual:       actual,
		Baseline:     baseline,
		BreakEven:    be,
		SafetyMargin: s.CompressionFactor / be,
		SavedWh:      saved,
		SavedPct:     100 * util.SafeDiv(saved, baseline.TotalWh),
		ROI:          ROI(saved, actual.CompressionWh),
	}, nil
}

// ROI returns energy saved per unit of energy spent compressing.
// It is 0 when compressionWh is 0.
func ROI(savedWh, compressionWh float64) float64 {
	if compressionWh == 0 {
		return 0
	}
	return savedWh / compressionWh
}

func isInf(x float64) bool { return math.IsInf(x, 1) }
