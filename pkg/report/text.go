package report

import (
	"bytes"
	"fmt"
	"io"
)

// TextReporter renders the classic console report.
type TextReporter struct{}

// NewTextReporter creates a text reporter.
func NewTextReporter() *TextReporter { return &TextReporter{} }

// GenerateReport renders the summary as plain text.
func (r *TextReporter) GenerateReport(s *Summary) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes the plain text report to w.
func (r *TextReporter) WriteReport(w io.Writer, s *Summary) error {
	if _, err := fmt.Fprintf(
		w, "Total tests passed: %d out of %d\n",
		s.Passed, s.TotalTests,
	); err != nil {
		return err
	}
	for _, t := range s.Tests {
		if _, err := fmt.Fprintf(
			w, "Test %d: %s\n", t.Number, t.Output,
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(
		w, "Total Test Suites Created: %d\n", s.SuitesCreated,
	)
	return err
}
