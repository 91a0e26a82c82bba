package submission

import (
	"testing"
	"time"

	"digital.vasic.harness/pkg/suite"
	"digital.vasic.harness/pkg/testcase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution(t *testing.T) {
	sol := NewSolution("user_solution_code")

	assert.Equal(t, "user_solution_code", sol.Code())
	assert.Equal(t, 18, sol.Len())
	assert.Len(t, sol.Fingerprint(), 12)
	assert.Equal(t, sol.Fingerprint(), NewSolution("user_solution_code").Fingerprint())
	assert.NotEqual(t, sol.Fingerprint(), NewSolution("other").Fingerprint())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Passed", Label(true))
	assert.Equal(t, "Failed", Label(false))
}

func TestNew_DefaultResults(t *testing.T) {
	sub := New(NewSolution("code"), 3)

	assert.Equal(t, 3, sub.TestCount())
	assert.Equal(t, 0, sub.TotalPassed())
	for _, r := range sub.Results() {
		assert.False(t, r.Passed)
		assert.Empty(t, r.ActualOutput)
	}
	assert.Equal(t, "code", sub.Solution().Code())
}

func TestNew_ID(t *testing.T) {
	a := New(NewSolution(""), 0)
	b := New(NewSolution(""), 0)

	parsed, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNew_NegativeCount(t *testing.T) {
	sub := New(NewSolution(""), -2)
	assert.Equal(t, 0, sub.TestCount())
}

func TestRecordAndResult(t *testing.T) {
	sub := New(NewSolution("code"), 2)
	want := Result{
		Number: 2, Kind: testcase.KindBasic,
		ActualOutput: OutputPassed, Passed: true,
	}

	require.NoError(t, sub.Record(1, want))

	got, err := sub.Result(1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, sub.CountPassed())
}

func TestRecordAndResult_OutOfRange(t *testing.T) {
	sub := New(NewSolution("code"), 1)

	assert.ErrorIs(t, sub.Record(1, Result{}), suite.ErrIndexOutOfRange)
	assert.ErrorIs(t, sub.Record(-1, Result{}), suite.ErrIndexOutOfRange)
	_, err := sub.Result(5)
	assert.ErrorIs(t, err, suite.ErrIndexOutOfRange)
}

func TestResults_ReturnsCopy(t *testing.T) {
	sub := New(NewSolution("code"), 1)

	view := sub.Results()
	view[0].Passed = true

	got, err := sub.Result(0)
	require.NoError(t, err)
	assert.False(t, got.Passed)
}

func TestAllPassed(t *testing.T) {
	sub := New(NewSolution(""), 2)
	assert.False(t, sub.AllPassed())

	sub.SetTotalPassed(2)
	assert.True(t, sub.AllPassed())

	assert.True(t, New(NewSolution(""), 0).AllPassed())
}

func TestComplete_Duration(t *testing.T) {
	sub := New(NewSolution(""), 0)
	assert.Zero(t, sub.Duration())

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	sub.Complete(start, start.Add(250*time.Millisecond))

	assert.Equal(t, start, sub.StartedAt())
	assert.Equal(t, start.Add(250*time.Millisecond), sub.FinishedAt())
	assert.Equal(t, 250*time.Millisecond, sub.Duration())
}
