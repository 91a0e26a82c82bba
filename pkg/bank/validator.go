package bank

import "fmt"

// ValidationError represents a validation issue found in a bank
// file.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("tasks[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a decoded bank and returns all errors found.
func Validate(file File) []ValidationError {
	var errs []ValidationError

	if file.Version == "" {
		errs = append(errs, ValidationError{
			Field: "version", Message: "version is required", Index: -1,
		})
	}

	ids := make(map[string]bool)
	for i, def := range file.Tasks {
		switch {
		case def.ID == "":
			errs = append(errs, ValidationError{
				Field: "id", Message: "task ID is required", Index: i,
			})
		case ids[def.ID]:
			errs = append(errs, ValidationError{
				Field: "id", Message: fmt.Sprintf("duplicate ID: %s", def.ID), Index: i,
			})
		default:
			ids[def.ID] = true
		}

		if def.Description == "" {
			errs = append(errs, ValidationError{
				Field: "description", Message: "task description is required", Index: i,
			})
		}

		for j, td := range def.Tests {
			if td.ComplexityLevel != nil && *td.ComplexityLevel < 0 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("tests[%d].complexity_level", j),
					Message: "must not be negative",
					Index:   i,
				})
			}
		}
	}

	return errs
}
