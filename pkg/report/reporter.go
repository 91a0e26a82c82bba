// Package report renders a judged submission for people and
// machines: plain text, JSON, YAML, Markdown and HTML.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Reporter defines the interface for rendering a summary.
type Reporter interface {
	// GenerateReport renders the summary.
	GenerateReport(summary *Summary) ([]byte, error)

	// WriteReport writes the rendered summary to w.
	WriteReport(w io.Writer, summary *Summary) error
}

// Output formats understood by NewReporter.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// ErrUnknownFormat is returned by NewReporter for unsupported
// formats.
var ErrUnknownFormat = errors.New("unknown report format")

var factories = map[string]func(bool) Reporter{
	FormatText:     func(bool) Reporter { return NewTextReporter() },
	FormatJSON:     func(pretty bool) Reporter { return NewJSONReporter(pretty) },
	FormatYAML:     func(bool) Reporter { return NewYAMLReporter() },
	FormatMarkdown: func(bool) Reporter { return NewMarkdownReporter() },
	FormatHTML:     func(bool) Reporter { return NewHTMLReporter() },
}

// Formats lists the supported formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(factories))
	for f := range factories {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// NewReporter returns the reporter for format. Pretty applies to
// JSON only.
func NewReporter(format string, pretty bool) (Reporter, error) {
	factory, ok := factories[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf(
			"%w %q (want one of %s)",
			ErrUnknownFormat, format, strings.Join(Formats(), ", "),
		)
	}
	return factory(pretty), nil
}

// writeGenerated renders with gen and writes the bytes to w.
func writeGenerated(
	w io.Writer,
	summary *Summary,
	gen func(*Summary) ([]byte, error),
) error {
	data, err := gen(summary)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
