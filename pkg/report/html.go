package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
)

// HTMLReporter generates a standalone HTML page.
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter() *HTMLReporter { return &HTMLReporter{} }

// GenerateReport renders the summary as HTML.
func (r *HTMLReporter) GenerateReport(s *Summary) ([]byte, error) {
	var buf bytes.Buffer
	title := "Submission Report: " + s.Task
	r.writeHeader(&buf, title)

	fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(
		&buf, "<p><strong>Submission:</strong> <code>%s</code></p>\n",
		html.EscapeString(s.SubmissionID),
	)

	buf.WriteString("<h2>Tests</h2>\n<table>\n")
	buf.WriteString("<tr><th>Test</th><th>Kind</th><th>Result</th></tr>\n")
	for _, t := range s.Tests {
		class := "status-failed"
		if t.Passed {
			class = "status-passed"
		}
		fmt.Fprintf(
			&buf,
			"<tr><td>%d</td><td>%s</td><td class=\"%s\">%s</td></tr>\n",
			t.Number, html.EscapeString(string(t.Kind)),
			class, html.EscapeString(t.Output),
		)
	}
	buf.WriteString("</table>\n")

	buf.WriteString("<h2>Summary</h2>\n<table>\n")
	fmt.Fprintf(&buf, "<tr><td>Passed</td><td>%d / %d</td></tr>\n", s.Passed, s.TotalTests)
	fmt.Fprintf(&buf, "<tr><td>Pass Rate</td><td>%.0f%%</td></tr>\n", s.PassRate*100)
	fmt.Fprintf(&buf, "<tr><td>Duration</td><td>%v</td></tr>\n", s.Duration)
	fmt.Fprintf(&buf, "<tr><td>Test Suites Created</td><td>%d</td></tr>\n", s.SuitesCreated)
	buf.WriteString("</table>\n</body>\n</html>\n")

	return buf.Bytes(), nil
}

// WriteReport writes an HTML report to w.
func (r *HTMLReporter) WriteReport(w io.Writer, s *Summary) error {
	return writeGenerated(w, s, r.GenerateReport)
}

func (r *HTMLReporter) writeHeader(buf *bytes.Buffer, title string) {
	fmt.Fprintf(buf, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; }
table { border-collapse: collapse; width: 100%%; margin: 10px 0; }
th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
.status-passed { color: #27ae60; font-weight: bold; }
.status-failed { color: #e74c3c; font-weight: bold; }
</style>
</head>
<body>
`, html.EscapeString(title))
}
