package curve

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ja7ad/breakeven/pkg/util"
)

// DefaultFile is the image written when no path is given.
const DefaultFile = "energy_curve.png"

// Renderer draws a curve as an image.
type Renderer interface {
	Render(w io.Writer, c *Curve) error
}

// Save renders c with r into the file at path, creating parent directories.
// A nil r returns ErrUnavailable without touching the filesystem. The file is
// removed again if rendering fails.
func Save(r Renderer, c *Curve, path string) (err error) {
	if r == nil {
		return ErrUnavailable
	}

	f, err := util.CreateFile(path)
	if err != nil {
		return fmt.Errorf("curve: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := r.Render(f, c); err != nil {
		return fmt.Errorf("curve: render: %w", err)
	}
	return nil
}

var (
	transmitFill = color.NRGBA{R: 214, G: 39, B: 40, A: 77}
	compressFill = color.NRGBA{R: 31, G: 119, B: 180, A: 77}
	totalColor   = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	baseColor    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	beColor      = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	usefulColor  = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
)

// PNGRenderer renders curves with gonum/plot.
type PNGRenderer struct {
	Width, Height vg.Length
	// Format is any extension gonum/plot understands ("png", "svg", "pdf", ...).
	Format string
}

// NewPNGRenderer returns a 12x7 inch PNG renderer.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: 12 * vg.Inch, Height: 7 * vg.Inch, Format: "png"}
}

// Render draws c and encodes it to w.
func (r *PNGRenderer) Render(w io.Writer, c *Curve) error {
	p, err := r.Plot(c)
	if err != nil {
		return err
	}
	cw, err := draw.NewFormattedCanvas(r.Width, r.Height, r.Format)
	if err != nil {
		return err
	}
	dc := draw.New(cw)
	placeLegend(p, dc, c)
	p.Draw(dc)
	_, err = cw.WriteTo(w)
	return err
}

const legendGap = 6 // points between the legend and the line above it

// placeLegend moves the top-right legend under the highest line at the right
// edge of the chart, the baseline or the end of the total curve.
func placeLegend(p *plot.Plot, dc draw.Canvas, c *Curve) {
	data := p.DataCanvas(dc)
	_, y := p.Transforms(&data)
	hi := math.Max(c.BaselineWh, c.Points[len(c.Points)-1].TotalWh)
	p.Legend.YOffs = y(hi) - legendTop(p, dc) - vg.Points(legendGap)
}

// legendTop is the y coordinate the legend is anchored to before YOffs.
func legendTop(p *plot.Plot, dc draw.Canvas) vg.Length {
	top := dc.Max.Y
	if p.Title.Text != "" {
		top -= p.Title.TextStyle.Rectangle(p.Title.Text).Size().Y + p.Title.Padding
	}
	return top
}

// Plot builds the chart: transmission area with the compression area stacked
// on top, the total line, the uncompressed baseline, the break-even marker
// (when inside the range) and the UsefulCF marker.
func (r *PNGRenderer) Plot(c *Curve) (*plot.Plot, error) {
	if c == nil || len(c.Points) < 2 {
		return nil, errors.New("curve: nothing to plot")
	}

	s := c.Scenario
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Energy Consumption vs. Compression Factor\n%s corpus, %s downlink, %sW transmitter",
		s.CorpusSize.Humanized(), s.Bandwidth.Humanized(), util.FmtShortest(s.TransmitPower))
	p.X.Label.Text = "Compression Factor"
	p.Y.Label.Text = "Total Energy (Wh)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	n := len(c.Points)
	first, last := c.Points[0].CF, c.Points[n-1].CF

	transmit := make(plotter.XYs, 0, n+2)
	transmit = append(transmit, plotter.XY{X: first, Y: 0})
	total := make(plotter.XYs, n)
	band := make(plotter.XYs, 2*n)
	for i, pt := range c.Points {
		transmit = append(transmit, plotter.XY{X: pt.CF, Y: pt.TransmissionWh})
		total[i] = plotter.XY{X: pt.CF, Y: pt.TotalWh}
		band[i] = plotter.XY{X: pt.CF, Y: pt.TransmissionWh}
		band[2*n-1-i] = plotter.XY{X: pt.CF, Y: pt.TransmissionWh + pt.CompressionWh}
	}
	transmit = append(transmit, plotter.XY{X: last, Y: 0})

	yMax := c.MaxTotal() * 1.1

	transArea, err := area(transmit, transmitFill)
	if err != nil {
		return nil, err
	}
	compArea, err := area(band, compressFill)
	if err != nil {
		return nil, err
	}
	p.Add(transArea, compArea)
	p.Legend.Add("Transmission Energy", transArea)
	p.Legend.Add("Compression Energy", compArea)

	totalLine, err := line(total, totalColor, 2)
	if err != nil {
		return nil, err
	}
	p.Add(totalLine)
	p.Legend.Add("Total Energy", totalLine)

	baseLine, err := line(plotter.XYs{{X: first, Y: c.BaselineWh}, {X: last, Y: c.BaselineWh}}, baseColor, 2, 6, 4)
	if err != nil {
		return nil, err
	}
	p.Add(baseLine)
	p.Legend.Add(fmt.Sprintf("No Compression (%.0f Wh)", c.BaselineWh), baseLine)

	if c.BreakEvenVisible() {
		beLine, err := line(plotter.XYs{{X: c.BreakEven, Y: 0}, {X: c.BreakEven, Y: yMax}}, beColor, 2, 6, 4)
		if err != nil {
			return nil, err
		}
		p.Add(beLine)
		p.Legend.Add(fmt.Sprintf("Break-even (%.3f:1)", c.BreakEven), beLine)

		note, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: c.BreakEven + 0.5, Y: c.BaselineWh * 0.8}},
			Labels: []string{fmt.Sprintf("CF > %.3f:1 saves energy", c.BreakEven)},
		})
		if err != nil {
			return nil, err
		}
		note.TextStyle[0].Color = beColor
		p.Add(note)
	}

	if c.UsefulVisible() {
		useful, err := line(plotter.XYs{{X: UsefulCF, Y: 0}, {X: UsefulCF, Y: yMax}}, usefulColor, 2, 2, 3)
		if err != nil {
			return nil, err
		}
		p.Add(useful)
		p.Legend.Add(`5:1 "Useful" Threshold`, useful)
	}

	// Add widens the ranges to fit the data; pin them afterwards.
	p.X.Min, p.X.Max = first, c.MaxCF
	p.Y.Min, p.Y.Max = 0, yMax

	return p, nil
}

func area(xys plotter.XYs, fill color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	return poly, nil
}

// line returns a solid line, or a dashed one when dashes (on, off, ...) are given in points.
func line(xys plotter.XYs, col color.Color, width float64, dashes ...float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.Color = col
	l.Width = vg.Points(width)
	for _, d := range dashes {
		l.Dashes = append(l.Dashes, vg.Points(d))
	}
	return l, nil
}
