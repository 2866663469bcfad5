package pricing

import "fmt"

// ValidationError reports a selection that references an option absent from
// the catalog. It is always surfaced to the caller, never recovered.
type ValidationError struct {
	Category string
	Value    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid selection: %s=%s", e.Category, e.Value)
}
