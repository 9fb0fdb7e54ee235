package pipeline

import (
	"strconv"
	"strings"

	"github.com/mostafasaleh00/Personal-Expenses-Optimizer/ml"
)

// BuildVector converts a raw string-keyed submission into a feature vector in
// schema order. It never reorders, deduplicates, or fills defaults: every
// schema field must be present with a valid value.
func BuildVector(raw map[string]string) ([]float64, error) {
	names := ml.FeatureNames()
	vector := make([]float64, 0, len(names))
	for _, name := range names {
		value := strings.TrimSpace(raw[name])
		if value == "" {
			return nil, &MissingFieldError{Field: name}
		}
		if !isPlainDecimal(value) {
			return nil, &InvalidNumberError{Field: name, Value: value}
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &InvalidNumberError{Field: name, Value: value}
		}
		vector = append(vector, parsed)
	}
	return vector, nil
}

// isPlainDecimal accepts only unsigned plain decimals: digits with at most one
// decimal point and at least one digit. No signs, no exponents, no grouping.
// This deliberately narrow rule is part of the input contract; do not widen it.
func isPlainDecimal(value string) bool {
	digits := 0
	dots := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}
