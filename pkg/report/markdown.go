package report

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownReporter generates Markdown reports.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// GenerateReport renders the summary as Markdown.
func (r *MarkdownReporter) GenerateReport(
	s *Summary,
) ([]byte, error) {
	var sb strings.Builder

	title := s.Task
	if title == "" {
		title = "Submission"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("**Submission:** %s\n\n", s.SubmissionID))
	sb.WriteString(fmt.Sprintf("**Solution:** `%s`\n\n", s.Solution))

	sb.WriteString("## Tests\n\n")
	sb.WriteString("| Test | Kind | Result |\n")
	sb.WriteString("|------|------|--------|\n")
	for _, t := range s.Tests {
		sb.WriteString(fmt.Sprintf(
			"| %d | %s | %s |\n",
			t.Number, t.Kind, strings.ToUpper(t.Output),
		))
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Tests | %d |\n", s.TotalTests))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", s.Passed))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", s.Failed))
	sb.WriteString(fmt.Sprintf("| Pass Rate | %.0f%% |\n", s.PassRate*100))
	sb.WriteString(fmt.Sprintf("| Duration | %v |\n", s.Duration))
	sb.WriteString(fmt.Sprintf(
		"| Test Suites Created | %d |\n", s.SuitesCreated,
	))

	return []byte(sb.String()), nil
}

// WriteReport writes a Markdown report to w.
func (r *MarkdownReporter) WriteReport(w io.Writer, s *Summary) error {
	return writeGenerated(w, s, r.GenerateReport)
}
