package report

import (
	"io"
	"math"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs the report as GitHub-flavored Markdown: one table
// per section, a mermaid pie chart of the energy split and the verdict as
// alert blocks.
type MarkdownWriter struct {
	out io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to out.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	return &MarkdownWriter{out: out}
}

// Write outputs r in Markdown.
func (w *MarkdownWriter) Write(r *Report) error {
	md := markdown.NewMarkdown(w.out)

	md.H1(r.Title)
	md.PlainText("")

	for _, s := range r.Sections {
		w.writeSection(md, s)
		if s.Key == SectionCompressed {
			w.writePieChart(md, r)
		}
	}

	w.writeVerdict(md, r.Verdict)

	return md.Build()
}

func (w *MarkdownWriter) writeSection(md *markdown.Markdown, s Section) {
	md.H2(s.Title)
	md.PlainText("")

	rows := make([][]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		v := f.Text()
		if f.Note != "" {
			v += " (" + f.Note + ")"
		}
		rows = append(rows, []string{f.Label, v})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart shows how the total splits between compressing and sending.
// Skipped when either share is not a positive finite number.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, r *Report) {
	c, t := r.Analysis.Actual.CompressionWh, r.Analysis.Actual.TransmissionWh
	if !positiveFinite(c) || !positiveFinite(t) {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Energy split at requested CF (Wh)"),
		piechart.WithShowData(true),
	)
	chart.LabelAndFloatValue("Compression", math.Round(c*10)/10)
	chart.LabelAndFloatValue("Transmission", math.Round(t*10)/10)

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeVerdict(md *markdown.Markdown, v Verdict) {
	md.H2("Interpretation")
	md.PlainText("")

	for _, l := range v.Lines {
		switch l.Level {
		case LevelOK:
			md.Tip(l.Text)
		case LevelWarn:
			md.Warning(l.Text)
		default:
			md.Caution(l.Text)
		}
		md.PlainText("")
	}
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
