package timeline

import "fmt"

// InvalidDurationError reports a duration that cannot be scheduled against:
// a usable window of zero or less, or a clip with a zero/negative length.
type InvalidDurationError struct {
	Reason string
	Value  float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration: %s (%.3fs)", e.Reason, e.Value)
}

// InvariantError reports a defensive composition check failure. It indicates
// a logic defect, is always fatal, and must never be retried.
type InvariantError struct {
	Check  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("composition invariant violated: %s: %s", e.Check, e.Detail)
}
