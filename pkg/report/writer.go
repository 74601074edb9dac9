package report

import (
	"fmt"
	"io"
	"strings"
)

// Writer serialises a Report to its destination.
type Writer interface {
	Write(r *Report) error
}

// Format names an output format. It implements pflag.Value so it can be
// bound directly to a command-line flag.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format, default first.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML}

var formatAliases = map[string]Format{
	"txt": FormatText,
	"yml": FormatYAML,
	"md":  FormatMarkdown,
}

// ParseFormat resolves a format name or alias, case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (one of: %s)", ErrUnknownFormat, s, formatList())
}

func (f *Format) String() string { return string(*f) }

func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string { return "format" }

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// NewWriter returns the Writer for format f writing to out.
func NewWriter(f Format, out io.Writer) (Writer, error) {
	switch f {
	case FormatText, "":
		return NewTextWriter(out), nil
	case FormatJSON:
		return NewJSONWriter(out), nil
	case FormatYAML:
		return NewYAMLWriter(out), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatHTML:
		return NewHTMLWriter(out), nil
	default:
		return nil, fmt.Errorf("%w %q (one of: %s)", ErrUnknownFormat, string(f), formatList())
	}
}
