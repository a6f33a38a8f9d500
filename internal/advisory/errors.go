package advisory

import "fmt"

// ValidationError is a caller-facing rejection detected before any analysis
// runs. These are the only errors AnalyzeClaim raises for a well-formed
// item lookup; the HTTP layer maps them to a 4xx response.
type ValidationError struct {
	Field  string // Which input failed, or "item" for eligibility failures
	Reason string // Human-readable reason, safe to show the claimant
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// DegradationError marks an advisory model failure: unreachable, timed out,
// or unparsable output. It never escapes the engine: every degradation is
// absorbed into the fixed fallback analysis. The type exists so "model
// failed" is a value the pipeline branches on, not a swallowed panic.
type DegradationError struct {
	Stage  string // "questions", "comparison", or "matching"
	Reason string
	Err    error // Underlying cause, if any
}

func (e *DegradationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("advisory model degraded (%s): %s: %v", e.Stage, e.Reason, e.Err)
	}
	return fmt.Sprintf("advisory model degraded (%s): %s", e.Stage, e.Reason)
}

func (e *DegradationError) Unwrap() error {
	return e.Err
}

func degradedf(stage, reason string, err error) *DegradationError {
	return &DegradationError{Stage: stage, Reason: reason, Err: err}
}
