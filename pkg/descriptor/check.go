package descriptor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/battgen/battgen/pkg/pack"
)

var (
	ErrNotPositive     = errors.New("must be positive")
	ErrVoltageOrdering = errors.New("voltages must satisfy vmin <= vnom <= vmax")
)

// ValidationError reports a descriptor field whose value is implausible.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("descriptor: %s: %s (value=%s)", e.Field, e.Wrapped, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// Check returns the plausibility problems of m. None of them prevents the
// module from being used: calculations on a degenerate module produce
// infinities or NaNs rather than failures.
func Check(m pack.Module) []error {
	var errs []error

	if m.Series < 1 {
		errs = append(errs, &ValidationError{Field: "series", Value: strconv.Itoa(m.Series), Wrapped: ErrNotPositive})
	}
	if m.Parallel < 1 {
		errs = append(errs, &ValidationError{Field: "parallel", Value: strconv.Itoa(m.Parallel), Wrapped: ErrNotPositive})
	}
	if m.Q <= 0 {
		errs = append(errs, &ValidationError{Field: "q", Value: formatFloat(m.Q), Wrapped: ErrNotPositive})
	}
	if m.VMin > m.VNom || m.VNom > m.VMax {
		errs = append(errs, &ValidationError{
			Field:   "vnom",
			Value:   fmt.Sprintf("%s/%s/%s", formatFloat(m.VMin), formatFloat(m.VNom), formatFloat(m.VMax)),
			Wrapped: ErrVoltageOrdering,
		})
	}

	return errs
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
