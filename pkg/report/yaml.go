package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLReporter generates YAML reports.
type YAMLReporter struct{}

// NewYAMLReporter creates a YAML reporter.
func NewYAMLReporter() *YAMLReporter { return &YAMLReporter{} }

// GenerateReport renders the summary as YAML.
func (r *YAMLReporter) GenerateReport(s *Summary) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteReport writes a YAML report to w.
func (r *YAMLReporter) WriteReport(w io.Writer, s *Summary) error {
	return writeGenerated(w, s, r.GenerateReport)
}
