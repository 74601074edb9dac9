package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// JSONWriter outputs the report Document as indented JSON.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// Write outputs r as JSON followed by a newline.
func (w *JSONWriter) Write(r *Report) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Document())
}

// YAMLWriter outputs the report Document as YAML.
type YAMLWriter struct {
	out io.Writer
}

// NewYAMLWriter creates a YAMLWriter that outputs to out.
func NewYAMLWriter(out io.Writer) *YAMLWriter {
	return &YAMLWriter{out: out}
}

// Write outputs r as a single YAML document.
func (w *YAMLWriter) Write(r *Report) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(r.Document()); err != nil {
		return err
	}
	return enc.Close()
}
