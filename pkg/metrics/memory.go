package metrics

import (
	"sync"
	"time"
)

// MemoryMetrics implements HarnessMetrics with in-memory
// counters. It is safe for concurrent use.
type MemoryMetrics struct {
	mu          sync.Mutex
	tests       map[string]int
	submissions int
	testsPassed int
	testsTotal  int
	durations   []time.Duration
	runTotal    int
}

// NewMemoryMetrics creates a new MemoryMetrics instance.
func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{
		tests: make(map[string]int),
	}
}

func testKey(kind string, passed bool) string {
	if passed {
		return kind + ":passed"
	}
	return kind + ":failed"
}

func (m *MemoryMetrics) RecordTest(kind string, passed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tests[testKey(kind, passed)]++
}

func (m *MemoryMetrics) RecordSubmission(
	passed, total int, duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions++
	m.testsPassed += passed
	m.testsTotal += total
	m.durations = append(m.durations, duration)
}

func (m *MemoryMetrics) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

// TestCount returns how many tests of kind ended with passed.
func (m *MemoryMetrics) TestCount(kind string, passed bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tests[testKey(kind, passed)]
}

// Submissions returns the number of recorded submissions.
func (m *MemoryMetrics) Submissions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissions
}

// PassRate returns passed/total over all submissions, or 0 when
// no tests were recorded.
func (m *MemoryMetrics) PassRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.testsTotal == 0 {
		return 0
	}
	return float64(m.testsPassed) / float64(m.testsTotal)
}

// TotalDuration sums the recorded submission durations.
func (m *MemoryMetrics) TotalDuration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total time.Duration
	for _, d := range m.durations {
		total += d
	}
	return total
}

// RunTotal returns the total number of runs.
func (m *MemoryMetrics) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}
