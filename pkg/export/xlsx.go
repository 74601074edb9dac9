package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/ja7ad/breakeven/pkg/curve"
	"github.com/ja7ad/breakeven/pkg/report"
)

// Sheet names of the workbook.
const (
	SheetSummary = "Summary"
	SheetCurve   = "Curve"
)

var (
	summaryHeader = []any{"Section", "Property", "Value", "Unit"}
	curveHeader   = []any{"CF", "Compression (Wh)", "Transmission (Wh)", "Total (Wh)", "No Compression (Wh)"}
)

// WriteXLSX writes a workbook with the report on a Summary sheet and the
// samples of c on a Curve sheet, plus a line chart of the curve.
func WriteXLSX(w io.Writer, r *report.Report, c *curve.Curve) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	if err := writeSummary(f, r); err != nil {
		return fmt.Errorf("export: xlsx summary: %w", err)
	}

	if _, err := f.NewSheet(SheetCurve); err != nil {
		return fmt.Errorf("export: xlsx: %w", err)
	}
	if err := writeCurve(f, c); err != nil {
		return fmt.Errorf("export: xlsx curve: %w", err)
	}
	if len(c.Points) > 0 {
		if err := f.AddChart(SheetCurve, "G2", curveChart(len(c.Points))); err != nil {
			return fmt.Errorf("export: xlsx chart: %w", err)
		}
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: xlsx write: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, r *report.Report) error {
	if err := f.SetSheetRow(SheetSummary, "A1", &summaryHeader); err != nil {
		return err
	}
	row := 2
	for _, s := range r.Sections {
		for _, fd := range s.Fields {
			// Spreadsheets have no infinity; keep the rendered text instead.
			var v any = fd.Value
			if math.IsInf(fd.Value, 0) || math.IsNaN(fd.Value) {
				v = fd.Number()
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			vals := []any{s.Title, fd.Label, v, fd.Unit}
			if err := f.SetSheetRow(SheetSummary, cell, &vals); err != nil {
				return err
			}
			row++
		}
	}

	row++
	for _, l := range r.Verdict.Lines {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		vals := []any{"Interpretation", string(l.Level), l.Text}
		if err := f.SetSheetRow(SheetSummary, cell, &vals); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(SheetSummary, "A", "B", 36)
}

func writeCurve(f *excelize.File, c *curve.Curve) error {
	if err := f.SetSheetRow(SheetCurve, "A1", &curveHeader); err != nil {
		return err
	}
	for i, p := range c.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := []any{p.CF, p.CompressionWh, p.TransmissionWh, p.TotalWh, c.BaselineWh}
		if err := f.SetSheetRow(SheetCurve, cell, &vals); err != nil {
			return err
		}
	}
	return nil
}

func curveChart(n int) *excelize.Chart {
	last := n + 1
	series := func(col string) excelize.ChartSeries {
		return excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", SheetCurve, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetCurve, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", SheetCurve, col, col, last),
			Marker:     excelize.ChartMarker{Symbol: "none"},
		}
	}
	return &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			series("D"),
			series("C"),
			series("E"),
		},
		Title:     []excelize.RichTextRun{{Text: "Energy Consumption vs. Compression Factor"}},
		Legend:    excelize.ChartLegend{Position: "top"},
		Dimension: excelize.ChartDimension{Width: 720, Height: 420},
		XAxis: excelize.ChartAxis{
			TickLabelSkip: max(1, n/14),
			Title:         []excelize.RichTextRun{{Text: "Compression Factor"}},
		},
		YAxis: excelize.ChartAxis{
			MajorGridLines: true,
			Title:          []excelize.RichTextRun{{Text: "Total Energy (Wh)"}},
		},
	}
}
