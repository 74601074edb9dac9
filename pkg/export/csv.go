// Package export writes a sampled energy curve (and the report it belongs to)
// as tabular data for spreadsheets and other tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ja7ad/breakeven/pkg/curve"
	"github.com/ja7ad/breakeven/pkg/util"
)

// Header is the first CSV row.
var Header = []string{"cf", "compression_wh", "transmission_wh", "total_wh"}

// WriteCSV writes one row per curve sample. Values use the shortest
// representation that parses back to the same float64.
func WriteCSV(w io.Writer, c *curve.Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: csv header: %w", err)
	}
	for _, p := range c.Points {
		if err := cw.Write([]string{
			util.FmtShortest(p.CF),
			util.FmtShortest(p.CompressionWh),
			util.FmtShortest(p.TransmissionWh),
			util.FmtShortest(p.TotalWh),
		}); err != nil {
			return fmt.Errorf("export: csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
