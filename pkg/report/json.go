package report

import (
	"encoding/json"
	"io"
)

// JSONReporter generates JSON reports.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport renders the summary as JSON.
func (r *JSONReporter) GenerateReport(s *Summary) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// WriteReport writes a JSON report to w.
func (r *JSONReporter) WriteReport(w io.Writer, s *Summary) error {
	return writeGenerated(w, s, r.GenerateReport)
}
