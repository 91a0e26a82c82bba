// Package bank loads declarative task definitions and keeps the
// resulting tasks by ID.
package bank

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"digital.vasic.harness/pkg/logging"
	"digital.vasic.harness/pkg/suite"
	"digital.vasic.harness/pkg/task"
	"digital.vasic.harness/pkg/testcase"
)

var (
	// ErrTaskNotFound is returned by Get for unknown IDs.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateTask is returned when a load would replace an
	// existing task.
	ErrDuplicateTask = errors.New("task already loaded")
)

// Bank holds tasks built from definitions. It is safe for
// concurrent use.
type Bank struct {
	mu      sync.RWMutex
	tasks   map[string]*task.Task
	sources []string
	counter *suite.Counter
	tracer  logging.Logger
}

// Option configures a Bank.
type Option func(*Bank)

// WithCounter sets the counter suites built by the bank record
// on.
func WithCounter(c *suite.Counter) Option {
	return func(b *Bank) {
		if c != nil {
			b.counter = c
		}
	}
}

// WithTracer sets the tracer given to advanced cases.
func WithTracer(l logging.Logger) Option {
	return func(b *Bank) {
		if l != nil {
			b.tracer = l
		}
	}
}

// New creates a new empty Bank.
func New(opts ...Option) *Bank {
	b := &Bank{
		tasks:   make(map[string]*task.Task),
		counter: suite.DefaultCounter,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Load decodes a bank from r. source names the input in errors
// and in Sources. Either every task is added or none is.
func (b *Bank) Load(r io.Reader, format Format, source string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read bank %s: %w", source, err)
	}
	return b.LoadBytes(data, format, source)
}

// LoadBytes is like Load for an in-memory bank.
func (b *Bank) LoadBytes(data []byte, format Format, source string) error {
	var file File
	if err := decode(data, format, &file); err != nil {
		return fmt.Errorf("parse bank %s: %w", source, err)
	}

	if verrs := Validate(file); len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i, v := range verrs {
			errs[i] = v
		}
		return fmt.Errorf("validate bank %s: %w", source, errors.Join(errs...))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, def := range file.Tasks {
		if _, exists := b.tasks[def.ID]; exists {
			return fmt.Errorf("bank %s: %w: %s", source, ErrDuplicateTask, def.ID)
		}
	}
	for _, def := range file.Tasks {
		b.tasks[def.ID] = b.build(def)
	}
	b.sources = append(b.sources, source)
	return nil
}

func (b *Bank) build(def Definition) *task.Task {
	s := suite.New(suite.WithCounter(b.counter))
	for _, td := range def.Tests {
		// Cases built here are never nil.
		_ = s.Add(b.buildCase(td))
	}
	return task.NewWithID(def.ID, def.Description, s)
}

func (b *Bank) buildCase(td TestDef) testcase.Case {
	if td.ComplexityLevel == nil {
		return testcase.NewBasic(td.Input, td.Expected)
	}
	return testcase.NewAdvanced(
		td.Input, td.Expected, *td.ComplexityLevel,
		testcase.WithTracer(b.tracer),
	)
}

// Get retrieves a task by ID.
func (b *Bank) Get(id string) (*task.Task, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t, nil
}

// IDs returns the loaded task IDs in sorted order.
func (b *Bank) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.tasks))
	for id := range b.tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all loaded tasks sorted by ID.
func (b *Bank) All() []*task.Task {
	ids := b.IDs()
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]*task.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := b.tasks[id]; ok {
			result = append(result, t)
		}
	}
	return result
}

// Count returns the number of loaded tasks.
func (b *Bank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tasks)
}

// Sources returns the names of the loaded inputs.
func (b *Bank) Sources() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]string, len(b.sources))
	copy(result, b.sources)
	return result
}
