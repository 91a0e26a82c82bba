package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"digital.vasic.harness/pkg/logging"
	"digital.vasic.harness/pkg/report"
	"digital.vasic.harness/pkg/suite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func runHarness(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, noEnv, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ExampleTask(t *testing.T) {
	suite.DefaultCounter.Reset()
	defer suite.DefaultCounter.Reset()

	code, out, _ := runHarness(t)

	require.Equal(t, 0, code)
	assert.Equal(t,
		"Total tests passed: 1 out of 2\n"+
			"Test 1: Passed\n"+
			"Test 2: Failed\n"+
			"Total Test Suites Created: 2\n",
		out,
	)
}

func TestRun_BuiltinAdvancedTask(t *testing.T) {
	code, out, errOut := runHarness(t, "-task", "advanced")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Total tests passed: 2 out of 3\n")
	assert.Contains(t, out, "Test 3: Failed\n")
	assert.Equal(t, 2, strings.Count(errOut, "Running advanced test with complexity level"))
}

func TestRun_JSONReport(t *testing.T) {
	code, out, _ := runHarness(t, "-format", "json", "-task", "example")

	require.Equal(t, 0, code)
	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "example", s.TaskID)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 2, s.TotalTests)
}

func TestRun_JSONLogs(t *testing.T) {
	code, _, errOut := runHarness(t, "-log", "json", "-verbose", "-solution", "secret_payload")

	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `"message":"submission_started"`)
	assert.Contains(t, errOut, `"message":"test_completed"`)
	assert.Contains(t, errOut, `"message":"metrics"`)
	assert.NotContains(t, errOut, "secret_payload")
}

func TestRun_ConsoleLogs(t *testing.T) {
	code, _, errOut := runHarness(t, "-log", "console")

	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "submission_completed")
}

func TestRun_List(t *testing.T) {
	code, out, _ := runHarness(t, "-list")

	require.Equal(t, 0, code)
	assert.Equal(t,
		"advanced\tAdvanced Task\t3 tests\n"+
			"example\tExample Task\t2 tests\n",
		out,
	)
}

func TestRun_UnknownTask(t *testing.T) {
	code, _, errOut := runHarness(t, "-task", "nope")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "task not found: nope")
}

func TestRun_BadFlags(t *testing.T) {
	tests := [][]string{
		{"-format", "pdf"},
		{"-log", "syslog"},
		{"-nope"},
		{"extra"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, _, errOut := runHarness(t, args...)
			assert.Equal(t, 2, code)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runHarness(t, "-h")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "-format")
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, noEnv, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestParseConfig_EnvThenFlags(t *testing.T) {
	env := map[string]string{
		"HARNESS_FORMAT":  "yaml",
		"HARNESS_LOG":     "json",
		"HARNESS_VERBOSE": "true",
	}
	getenv := func(k string) string { return env[k] }

	cfg, err := parseConfig([]string{"-format", "markdown"}, getenv, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, "json", cfg.Log)
	assert.True(t, cfg.Verbose)
}

func TestApplyEnv_IgnoresBadBool(t *testing.T) {
	cfg := applyEnv(defaultConfig(), func(k string) string {
		if k == "HARNESS_VERBOSE" {
			return "loud"
		}
		return ""
	})
	assert.False(t, cfg.Verbose)
}

func TestConfig_ValidateJoinsErrors(t *testing.T) {
	err := Config{Format: "pdf", Log: "syslog"}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.Contains(t, err.Error(), `unknown log backend "syslog"`)
}

func TestRun_ZapLogs(t *testing.T) {
	code, out, errOut := runHarness(t, "-log", "zap", "-solution", "secret_payload")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "Total tests passed: 1 out of 2\n")
	assert.Contains(t, errOut, `"msg":"submission_started"`)
	assert.Contains(t, errOut, `"msg":"submission_completed"`)
	assert.NotContains(t, errOut, `"msg":"test_completed"`)
	assert.NotContains(t, errOut, "secret_payload")
}

func TestRun_CombinedBackends(t *testing.T) {
	code, _, errOut := runHarness(t, "-log", "console, json")

	require.Equal(t, 0, code)
	assert.Equal(t, 2, strings.Count(errOut, "submission_started"))
	assert.Contains(t, errOut, `"message":"submission_started"`)
	assert.Contains(t, errOut, `"component":"harness"`)
}

func TestRun_LevelFiltersEntries(t *testing.T) {
	code, _, errOut := runHarness(t, "-log", "json,zap", "-level", "warn")

	require.Equal(t, 0, code)
	assert.NotContains(t, errOut, "submission_started")
	assert.NotContains(t, errOut, "submission_completed")
}

func TestRun_BadLogSettings(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-level", "loud"}, `unknown log level "loud"`},
		{[]string{"-log", "none,json"}, `log backend "none" cannot be combined`},
		{[]string{"-log", "json,syslog"}, `unknown log backend "syslog"`},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, _, errOut := runHarness(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestParseConfig_LevelFromEnv(t *testing.T) {
	getenv := func(k string) string {
		if k == "HARNESS_LEVEL" {
			return "error"
		}
		return ""
	}

	cfg, err := parseConfig(nil, getenv, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, logging.LevelError, cfg.logLevel())

	cfg, err = parseConfig([]string{"-verbose"}, getenv, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logging.LevelDebug, cfg.logLevel())
}

func TestNewLogger_Backends(t *testing.T) {
	tests := []struct {
		log  string
		want any
	}{
		{"none", logging.NullLogger{}},
		{"console", &logging.ConsoleLogger{}},
		{"json", &logging.JSONLogger{}},
		{"zap", &logging.ZapLogger{}},
		{"console,zap", &logging.MultiLogger{}},
	}
	for _, tt := range tests {
		t.Run(tt.log, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Log = tt.log
			assert.IsType(t, tt.want, newLogger(cfg, &bytes.Buffer{}))
		})
	}
}
