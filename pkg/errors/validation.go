package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxSamples bounds how many points a single range may produce.
const maxSamples = 10000

// ValidateFinite rejects NaN and infinite values. name identifies the
// offending input in the message (e.g. "slope", "x1").
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidInput, "%s is not a number", name)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite", name)
	}
	return nil
}

// ValidateRange checks a sampling range [from, to] walked in increments of step.
//
// Validation rules:
//   - All three values must be finite
//   - step must be positive
//   - from must not exceed to
//   - The range may not produce more than 10000 samples
func ValidateRange(from, to, step float64) error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"from", from}, {"to", to}, {"step", step}} {
		if err := ValidateFinite(v.name, v.val); err != nil {
			return err
		}
	}

	if step <= 0 {
		return New(ErrCodeInvalidInput, "step must be positive, got %g", step)
	}
	if from > to {
		return New(ErrCodeInvalidInput, "from (%g) must not exceed to (%g)", from, to)
	}
	if (to-from)/step >= maxSamples {
		return New(ErrCodeInvalidInput, "range produces too many samples (max %d)", maxSamples)
	}
	return nil
}

// ValidatePath validates a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
