package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Weight is the declared weight of a parcel. It is backed by a decimal so that
// summing the weights of a bundle never accumulates float rounding error.
//
// The zero value is a valid weight of 0.
type Weight struct {
	value decimal.Decimal
}

// NewWeight builds a Weight from a plain number. Negative, NaN and infinite
// values are rejected.
//
// Example:
//
//	w, err := kernel.NewWeight(12.5)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel: %w", err)
//	}
func NewWeight(value float64) (Weight, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", value))
	}

	d := decimal.NewFromFloat(value)
	if d.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is less than 0", d))
	}

	return Weight{value: d}, nil
}

// ZeroWeight returns a weight of 0.
func ZeroWeight() Weight {
	return Weight{value: decimal.Zero}
}

// Add returns the sum of both weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{value: w.value.Add(other.value)}
}

// IsPositive reports whether the weight is strictly greater than 0.
func (w Weight) IsPositive() bool {
	return w.value.IsPositive()
}

// IsZero reports whether the weight is 0.
func (w Weight) IsZero() bool {
	return w.value.IsZero()
}

// Equal compares weights by value, so 30 and 30.0 are equal.
func (w Weight) Equal(other Weight) bool {
	return w.value.Equal(other.value)
}

func (w Weight) String() string {
	return w.value.String()
}
