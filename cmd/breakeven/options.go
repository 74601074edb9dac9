package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ja7ad/breakeven/pkg/curve"
	"github.com/ja7ad/breakeven/pkg/energy"
	"github.com/ja7ad/breakeven/pkg/export"
	"github.com/ja7ad/breakeven/pkg/report"
	"github.com/ja7ad/breakeven/pkg/util"
)

type options struct {
	Scenario energy.Scenario
	Curve    curve.Options

	Plot     bool
	PlotFile string
	Format   report.Format
	CSVPath  string
	XLSXPath string
	Verbose  bool

	// Renderer draws --plot charts; nil when no backend is available.
	Renderer curve.Renderer
}

func defaultOptions(r curve.Renderer) *options {
	return &options{
		Scenario: energy.DefaultScenario(),
		Curve:    curve.DefaultOptions(),
		PlotFile: curve.DefaultFile,
		Format:   report.FormatText,
		Renderer: r,
	}
}

func (o *options) Bind(fs *pflag.FlagSet) {
	s := &o.Scenario
	fs.Float64Var((*float64)(&s.CorpusSize), "size", 0, "corpus size in GB (decimal, 1 GB = 8e9 bits)")
	fs.Float64Var(&s.CompressionFactor, "cf", 0, "compression factor, e.g. 9.375 for 9.375:1")
	fs.Float64Var((*float64)(&s.Bandwidth), "bandwidth", 0, "transmission bandwidth in Mbps")
	fs.Float64Var(&s.TransmitPower, "transmit-power", s.TransmitPower, "transmitter power draw in W")
	fs.Float64Var(&s.CompressPower, "compress-power", s.CompressPower, "power draw while compressing in W")
	fs.Float64Var(&s.CompressTime, "compress-time", s.CompressTime, "compression duration in hours")

	fs.BoolVar(&o.Plot, "plot", false, "render the energy-vs-CF chart")
	fs.StringVar(&o.PlotFile, "plot-file", o.PlotFile, "chart output path")
	fs.Float64Var(&o.Curve.MaxCF, "max-cf", o.Curve.MaxCF, "upper compression factor of the sampled curve")
	fs.IntVar(&o.Curve.Samples, "samples", o.Curve.Samples, "number of curve samples")

	fs.VarP(&o.Format, "format", "o", "report format: "+formatNames())
	fs.StringVar(&o.CSVPath, "csv", "", "write the sampled curve to a CSV file")
	fs.StringVar(&o.XLSXPath, "xlsx", "", "write the report and sampled curve to an Excel workbook")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log debug details to stderr")
}

// needsCurve reports whether any requested output uses the sampled curve.
func (o *options) needsCurve() bool {
	return o.Plot || o.CSVPath != "" || o.XLSXPath != ""
}

func (o *options) Validate() error {
	if err := energy.Validate(o.Scenario); err != nil {
		return err
	}
	if o.needsCurve() {
		if err := o.Curve.Validate(); err != nil {
			return err
		}
	}
	if o.Plot && o.PlotFile == "" {
		return errors.New("--plot-file must not be empty")
	}
	return nil
}

func (o *options) Run(ctx context.Context, out io.Writer, log *slog.Logger) error {
	a, err := energy.Analyze(o.Scenario)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "analysis",
		"total_wh", a.Actual.TotalWh,
		"baseline_wh", a.Baseline.TotalWh,
		"break_even_cf", a.BreakEven,
		"roi", a.ROI,
	)

	r := report.New(a)
	w, err := report.NewWriter(o.Format, out)
	if err != nil {
		return err
	}
	if err := w.Write(r); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !o.needsCurve() {
		return nil
	}

	c, err := curve.Sample(o.Scenario, o.Curve)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "curve sampled", "points", len(c.Points), "max_cf", c.MaxCF)

	if o.Plot {
		// A missing or failing chart never fails the run.
		if err := curve.Save(o.Renderer, c, o.PlotFile); err != nil {
			log.WarnContext(ctx, "chart skipped", "err", err)
		} else {
			log.InfoContext(ctx, "chart saved", "path", o.PlotFile)
		}
	}

	if o.CSVPath != "" {
		if err := writeFile(o.CSVPath, func(w io.Writer) error { return export.WriteCSV(w, c) }); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		log.DebugContext(ctx, "csv written", "path", o.CSVPath)
	}

	if o.XLSXPath != "" {
		if err := writeFile(o.XLSXPath, func(w io.Writer) error { return export.WriteXLSX(w, r, c) }); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		log.DebugContext(ctx, "xlsx written", "path", o.XLSXPath)
	}

	return nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := util.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

func formatNames() string {
	names := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}
