package bank

// File is the on-disk structure of a task bank. The same struct
// decodes from JSON, YAML and TOML.
type File struct {
	Version string       `json:"version" yaml:"version" toml:"version"`
	Name    string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Tasks   []Definition `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// Definition declares one task.
type Definition struct {
	ID          string    `json:"id" yaml:"id" toml:"id"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Tests       []TestDef `json:"tests" yaml:"tests" toml:"tests"`
}

// TestDef declares one test case. A set ComplexityLevel makes it
// an advanced case.
type TestDef struct {
	Input           string `json:"input" yaml:"input" toml:"input"`
	Expected        string `json:"expected" yaml:"expected" toml:"expected"`
	ComplexityLevel *int   `json:"complexity_level,omitempty" yaml:"complexity_level,omitempty" toml:"complexity_level,omitempty"`
}
