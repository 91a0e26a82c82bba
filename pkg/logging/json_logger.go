package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// Output receives one JSON object per line. Nil means stdout.
	Output  io.Writer
	Level   LogLevel
	Verbose bool
	Fields  map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu      *sync.Mutex
	closed  *bool
	output  io.Writer
	level   LogLevel
	fields  map[string]any
	verbose bool
}

// NewJSONLogger creates a new JSON logger.
func NewJSONLogger(config LoggerConfig) *JSONLogger {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	closed := false
	return &JSONLogger{
		mu:      &sync.Mutex{},
		closed:  &closed,
		output:  out,
		level:   config.Level,
		verbose: config.Verbose,
		fields:  mergeFields(config.Fields, nil),
	}
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    mergeFields(l.fields, fields),
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if *l.closed {
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a logger sharing this one's writer with
// additional default fields.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	return &JSONLogger{
		mu:      l.mu,
		closed:  l.closed,
		output:  l.output,
		level:   l.level,
		verbose: l.verbose,
		fields:  mergeFields(l.fields, fields),
	}
}

// Close marks the logger closed and closes the writer unless it
// is stdout or stderr. Later entries are dropped.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if *l.closed {
		return nil
	}
	*l.closed = true

	if l.output == os.Stdout || l.output == os.Stderr {
		return nil
	}
	if closer, ok := l.output.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
