package report

import (
	"bytes"
	"html/template"
	"io"
)

// HTMLWriter outputs the report as a standalone HTML page.
type HTMLWriter struct {
	out io.Writer
}

// NewHTMLWriter creates an HTMLWriter that outputs to out.
func NewHTMLWriter(out io.Writer) *HTMLWriter {
	return &HTMLWriter{out: out}
}

// Write renders r into the page template. Nothing is written if rendering fails.
func (w *HTMLWriter) Write(r *Report) error {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r); err != nil {
		return err
	}
	_, err := w.out.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;max-width:720px;font-size:14px;margin-bottom:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.ok{color:#1a7f37}
.warn{color:#9a6700}
.fail{color:#cf222e}
</style>

<h1>{{.Title}}</h1>

<p class="small">
Total: {{printf "%.1f" .Analysis.Actual.TotalWh}} Wh &nbsp;|&nbsp;
Uncompressed: {{printf "%.1f" .Analysis.Baseline.TotalWh}} Wh
</p>

{{range .Sections}}
<h2>{{.Title}}</h2>
<table>
<tbody>
{{range .Fields}}
<tr><td>{{.Label}}</td><td>{{.Text}}{{if .Note}} <span class="small">({{.Note}})</span>{{end}}</td></tr>
{{end}}
</tbody>
</table>
{{end}}

<h2>Interpretation</h2>
<ul>
{{range .Verdict.Lines}}
  <li class="{{.Level}}">{{.Text}}</li>
{{end}}
</ul>
</html>
`))
