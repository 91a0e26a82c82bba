package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryMetrics_RecordTest(t *testing.T) {
	m := NewMemoryMetrics()
	m.RecordTest("basic", true)
	m.RecordTest("basic", true)
	m.RecordTest("advanced", false)

	assert.Equal(t, 2, m.TestCount("basic", true))
	assert.Equal(t, 0, m.TestCount("basic", false))
	assert.Equal(t, 1, m.TestCount("advanced", false))
}

func TestMemoryMetrics_RecordSubmission(t *testing.T) {
	m := NewMemoryMetrics()
	m.RecordSubmission(1, 2, 2*time.Millisecond)
	m.RecordSubmission(3, 3, time.Millisecond)

	assert.Equal(t, 2, m.Submissions())
	assert.InDelta(t, 0.8, m.PassRate(), 1e-9)
	assert.Equal(t, 3*time.Millisecond, m.TotalDuration())
}

func TestMemoryMetrics_PassRateEmpty(t *testing.T) {
	m := NewMemoryMetrics()
	m.RecordSubmission(0, 0, 0)
	assert.Equal(t, 0.0, m.PassRate())
}

func TestMemoryMetrics_RunTotal(t *testing.T) {
	m := NewMemoryMetrics()
	m.IncrementRunTotal()
	m.IncrementRunTotal()
	assert.Equal(t, 2, m.RunTotal())
}

func TestNoopMetrics(t *testing.T) {
	var m HarnessMetrics = NoopMetrics{}
	// Should not panic
	m.RecordTest("basic", true)
	m.RecordSubmission(1, 1, time.Second)
	m.IncrementRunTotal()
}
