// Command harness judges a solution against a task and prints the
// report.
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"digital.vasic.harness/pkg/bank"
	"digital.vasic.harness/pkg/logging"
	"digital.vasic.harness/pkg/metrics"
	"digital.vasic.harness/pkg/report"
	"digital.vasic.harness/pkg/runner"
	"digital.vasic.harness/pkg/submission"
	"digital.vasic.harness/pkg/suite"
	"digital.vasic.harness/pkg/task"
	"digital.vasic.harness/pkg/testcase"
)

//go:embed tasks.yaml
var builtinTasks []byte

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(
	args []string,
	getenv func(string) string,
	stdout, stderr io.Writer,
) int {
	cfg, err := parseConfig(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "harness:", err)
		return 2
	}

	logger := newLogger(cfg, stderr)
	defer logger.Close()

	// Advanced traces go to stderr so the report stays parseable.
	tracer := logging.NewConsoleLoggerTo(stderr, false, true)

	if cfg.List {
		b, err := loadBank(tracer)
		if err != nil {
			fmt.Fprintln(stderr, "harness:", err)
			return 1
		}
		for _, t := range b.All() {
			fmt.Fprintf(stdout, "%s\t%s\t%d tests\n", t.ID(), t.Description(), t.TestCount())
		}
		return 0
	}

	tk, err := selectTask(cfg, tracer)
	if err != nil {
		fmt.Fprintln(stderr, "harness:", err)
		return 1
	}

	m := metrics.NewMemoryMetrics()
	r := runner.New(runner.WithLogger(logger), runner.WithMetrics(m))
	sub := r.CheckSolution(submission.NewSolution(cfg.Solution), tk)

	// Validated in parseConfig.
	reporter, _ := report.NewReporter(cfg.Format, cfg.Pretty)
	summary := report.BuildSummary(tk, sub, suite.TotalCreated())
	if err := reporter.WriteReport(stdout, summary); err != nil {
		fmt.Fprintln(stderr, "harness: write report:", err)
		return 1
	}

	logger.Debug("metrics",
		logging.IntField("runs", m.RunTotal()),
		logging.LogField("pass_rate", m.PassRate()),
	)
	return 0
}

// newLogger builds the run logger from cfg, fanning out when
// several backends are named.
func newLogger(cfg Config, stderr io.Writer) logging.Logger {
	level := cfg.logLevel()
	verbose := level == logging.LevelDebug
	var loggers []logging.Logger
	for _, name := range cfg.backends() {
		switch name {
		case logConsole:
			loggers = append(loggers,
				logging.NewConsoleLoggerTo(stderr, verbose, false).AtLevel(level))
		case logJSON:
			loggers = append(loggers, logging.NewJSONLogger(logging.LoggerConfig{
				Output:  stderr,
				Level:   level,
				Verbose: verbose,
				Fields:  map[string]any{"component": "harness"},
			}))
		case logZap:
			loggers = append(loggers, logging.NewProductionZapLogger(stderr, level))
		}
	}
	switch len(loggers) {
	case 0:
		return logging.NullLogger{}
	case 1:
		return loggers[0]
	}
	return logging.NewMultiLogger(loggers...)
}

func loadBank(tracer logging.Logger) (*bank.Bank, error) {
	b := bank.New(bank.WithTracer(tracer))
	if err := b.LoadBytes(builtinTasks, bank.FormatYAML, "tasks.yaml"); err != nil {
		return nil, err
	}
	return b, nil
}

// selectTask returns the built-in task named by cfg.TaskID, or the
// example task built in code.
func selectTask(cfg Config, tracer logging.Logger) (*task.Task, error) {
	if cfg.TaskID != "" {
		b, err := loadBank(tracer)
		if err != nil {
			return nil, err
		}
		return b.Get(cfg.TaskID)
	}

	s := suite.New()
	if err := s.Add(testcase.NewBasic("input1", "input1")); err != nil {
		return nil, err
	}
	if err := s.Add(testcase.NewBasic("input2", "expected2")); err != nil {
		return nil, err
	}
	return task.New("Example Task", s), nil
}
