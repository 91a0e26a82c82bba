package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"digital.vasic.harness/pkg/logging"
	"digital.vasic.harness/pkg/report"
)

// Logger backends selectable with -log. Several backends can be
// combined as a comma list.
const (
	logNone    = "none"
	logConsole = "console"
	logJSON    = "json"
	logZap     = "zap"
)

// Config holds the command-line settings.
type Config struct {
	Format   string
	Pretty   bool
	Log      string
	Level    string
	Verbose  bool
	TaskID   string
	Solution string
	List     bool
}

func defaultConfig() Config {
	return Config{
		Format:   report.FormatText,
		Log:      logNone,
		Level:    "info",
		Solution: "user_solution_code",
	}
}

// applyEnv overrides defaults with HARNESS_FORMAT, HARNESS_LOG,
// HARNESS_LEVEL and HARNESS_VERBOSE. Flags still take precedence.
func applyEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv("HARNESS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("HARNESS_LOG"); v != "" {
		cfg.Log = v
	}
	if v := getenv("HARNESS_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v, err := strconv.ParseBool(getenv("HARNESS_VERBOSE")); err == nil {
		cfg.Verbose = v
	}
	return cfg
}

// parseConfig reads flags from args on top of the environment.
// Usage goes to errOut.
func parseConfig(
	args []string, getenv func(string) string, errOut io.Writer,
) (Config, error) {
	cfg := applyEnv(defaultConfig(), getenv)
	fs := flag.NewFlagSet("harness", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Format, "format", cfg.Format,
		"report format: "+strings.Join(report.Formats(), ", "))
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "indent JSON reports")
	fs.StringVar(&cfg.Log, "log", cfg.Log,
		"run log backends, comma separated: none, console, json, zap")
	fs.StringVar(&cfg.Level, "level", cfg.Level,
		"minimum log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose,
		"log every test (same as -level debug)")
	fs.StringVar(&cfg.TaskID, "task", cfg.TaskID,
		"run a built-in task instead of the example")
	fs.StringVar(&cfg.Solution, "solution", cfg.Solution,
		"solution payload to submit")
	fs.BoolVar(&cfg.List, "list", cfg.List, "list built-in tasks and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that flag parsing cannot.
func (c Config) Validate() error {
	var errs []error
	if _, err := report.NewReporter(c.Format, c.Pretty); err != nil {
		errs = append(errs, err)
	}
	backends := c.backends()
	for _, name := range backends {
		switch name {
		case logConsole, logJSON, logZap:
		case logNone:
			if len(backends) > 1 {
				errs = append(errs, fmt.Errorf("log backend %q cannot be combined", logNone))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown log backend %q", name))
		}
	}
	if _, ok := logging.ParseLevel(c.Level); !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Level))
	}
	return errors.Join(errs...)
}

// backends splits Log into trimmed backend names.
func (c Config) backends() []string {
	var names []string
	for _, name := range strings.Split(c.Log, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// logLevel resolves Level, with Verbose forcing debug.
func (c Config) logLevel() logging.LogLevel {
	if c.Verbose {
		return logging.LevelDebug
	}
	level, _ := logging.ParseLevel(c.Level)
	return level
}
