package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

var (
	rule = strings.Repeat("=", 70)

	levelMarks = map[Level]string{
		LevelOK:   "[+]",
		LevelWarn: "[!]",
		LevelFail: "[x]",
	}
)

// TextWriter prints the report as aligned plain text for terminals.
type TextWriter struct {
	out io.Writer
}

// NewTextWriter creates a TextWriter that outputs to out.
func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{out: out}
}

// Write prints r.
func (w *TextWriter) Write(r *Report) error {
	bw := bufio.NewWriter(w.out)

	fmt.Fprintf(bw, "\n%s\n  %s\n%s\n", rule, r.Title, rule)

	for _, s := range r.Sections {
		fmt.Fprintf(bw, "\n%s:\n", s.Title)

		// one tabwriter per section keeps columns aligned within the block
		tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
		for _, f := range s.Fields {
			if f.Note != "" {
				fmt.Fprintf(tw, "  %s:\t%s (%s)\n", f.Label, f.Text(), f.Note)
				continue
			}
			fmt.Fprintf(tw, "  %s:\t%s\n", f.Label, f.Text())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprint(bw, "\nInterpretation:\n")
	for _, l := range r.Verdict.Lines {
		fmt.Fprintf(bw, "  %s %s\n", levelMarks[l.Level], l.Text)
	}

	fmt.Fprintf(bw, "\n%s\n", rule)
	return bw.Flush()
}
