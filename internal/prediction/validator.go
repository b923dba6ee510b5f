package prediction

import (
	"fmt"
	"math"
	"strconv"
)

// FieldError describes one problem with one query parameter
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries the full list of field problems for a rejected
// request, so the caller can report every violation at once
type ValidationError struct {
	Problems []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input parameters (%d problems)", len(e.Problems))
}

// Validator validates raw query parameters against the feature metadata
type Validator struct{}

// NewValidator creates a new feature validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks the provided parameters and produces the raw feature
// vector in model order. It does not stop at the first problem: the returned
// slice lists every missing, unparseable, or out-of-domain field. A non-nil
// problem list means the vector must not be used.
func (v *Validator) Validate(params map[string]string) ([]float64, []FieldError) {
	features := make([]float64, FeatureCount)
	var problems []FieldError

	for i, f := range Features {
		raw, ok := params[f.Name]
		if !ok || raw == "" {
			problems = append(problems, FieldError{
				Field:  f.Name,
				Reason: "required parameter is missing",
			})
			continue
		}

		if f.Binary {
			value, err := strconv.Atoi(raw)
			if err != nil {
				problems = append(problems, FieldError{
					Field:  f.Name,
					Reason: fmt.Sprintf("value %q is not an integer", raw),
				})
				continue
			}
			if value != 0 && value != 1 {
				problems = append(problems, FieldError{
					Field:  f.Name,
					Reason: fmt.Sprintf("value %d must be 0 or 1", value),
				})
				continue
			}
			features[i] = float64(value)
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			problems = append(problems, FieldError{
				Field:  f.Name,
				Reason: fmt.Sprintf("value %q is not a finite number", raw),
			})
			continue
		}
		features[i] = value
	}

	if len(problems) > 0 {
		return nil, problems
	}

	return features, nil
}
