package pipeline

import "fmt"

// MissingFieldError reports a schema field absent from the submission or blank
// after trimming. Recoverable by resubmitting.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing value for %s", e.Field)
}

// InvalidNumberError reports a field whose value failed the numeric-format
// rule. The raw text is echoed back so the caller can show what was rejected.
type InvalidNumberError struct {
	Field string
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid numeric value for %s: %q", e.Field, e.Value)
}

// ShapeMismatchError reports artifact skew: the loaded input scaler produces a
// different column count than the loaded model expects. Retrying cannot fix a
// static artifact mismatch.
type ShapeMismatchError struct {
	Expected int
	Actual   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("input shape mismatch: model expects %d columns, got %d", e.Expected, e.Actual)
}

// OutputArityError reports a de-scaled output whose length does not match the
// output schema. It signals artifact corruption rather than bad input.
type OutputArityError struct {
	Expected int
	Actual   int
}

func (e *OutputArityError) Error() string {
	return fmt.Sprintf("model produced %d outputs, schema has %d", e.Actual, e.Expected)
}
