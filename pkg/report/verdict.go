package report

import (
	"fmt"
	"math"

	"github.com/ja7ad/breakeven/pkg/util"
)

// ROI thresholds for the positive verdict tiers.
const (
	ROIJustified = 36.0
	ROIModerate  = 20.0
)

// Tier grades a positive verdict by energy ROI.
type Tier string

const (
	TierNone      Tier = ""
	TierJustified Tier = "justified"
	TierModerate  Tier = "moderate"
	TierLow       Tier = "low"
)

// Level is the severity of one verdict line.
type Level string

const (
	LevelOK   Level = "ok"
	LevelWarn Level = "warn"
	LevelFail Level = "fail"
)

// Line is one sentence of the verdict.
type Line struct {
	Level Level  `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Verdict is the interpretation of an analysis.
type Verdict struct {
	// Positive is true when the requested CF is above break-even.
	Positive bool   `json:"energy_positive" yaml:"energy_positive"`
	Tier     Tier   `json:"tier,omitempty" yaml:"tier,omitempty"`
	Lines    []Line `json:"lines" yaml:"lines"`
}

// Judge interprets a compression factor against its break-even value and ROI.
// It is a pure function of its arguments.
func Judge(cf, breakEven, roi float64) Verdict {
	if math.IsInf(breakEven, 1) {
		return Verdict{
			Lines: []Line{
				{LevelFail, "Compression overhead exceeds transmission savings"},
				{LevelFail, "No compression factor can recover the compression cost"},
			},
		}
	}
	if !(cf > breakEven) {
		return Verdict{
			Lines: []Line{
				{LevelFail, "Compression overhead exceeds transmission savings"},
				{LevelFail, fmt.Sprintf("Need CF >= %s:1 to break even", util.FmtFloat(breakEven, PrecBreakEven))},
			},
		}
	}

	v := Verdict{
		Positive: true,
		Lines: []Line{{
			LevelOK,
			fmt.Sprintf("Compression is energy-positive with %sx safety margin", util.FmtFloat(cf/breakEven, PrecMargin)),
		}},
	}

	roiText := util.FmtFloat(roi, PrecROI)
	switch {
	case roi >= ROIJustified:
		v.Tier = TierJustified
		v.Lines = append(v.Lines, Line{LevelOK, fmt.Sprintf("ROI %sx >= %.0fx: multi-layer complexity justified", roiText, ROIJustified)})
	case roi >= ROIModerate:
		v.Tier = TierModerate
		v.Lines = append(v.Lines, Line{LevelWarn, fmt.Sprintf("ROI %sx: moderate returns, simpler algorithms may suffice", roiText)})
	default:
		v.Tier = TierLow
		v.Lines = append(v.Lines, Line{LevelWarn, fmt.Sprintf("ROI %sx: low returns, reconsider complexity", roiText)})
	}
	return v
}
