package treatment

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
)

// ErrTreatmentIsNotConstructed is returned when a treatment did not come from
// one of the New*Treatment constructors.
var ErrTreatmentIsNotConstructed = errors.New("treatment must be created via its constructor")

// Treatment evaluates whether the order it wraps can be processed.
type Treatment interface {
	Evaluate() bool
}

// Single is a treatment bound to exactly one order. Subject returns the order
// whose verdict Evaluate gives, so callers never pair a verdict with another order.
type Single interface {
	Treatment

	// Subject returns the wrapped order.
	Subject() order.Order

	// Validate returns ErrTreatmentIsNotConstructed for nil or zero-value treatments.
	Validate() error
}

// DenyRule accepts every value except one. Both the international and the
// hazardous policies are instances of it keyed on different fields.
type DenyRule[T comparable] struct {
	forbidden T
}

// NewDenyRule returns a rule that rejects exactly forbidden.
func NewDenyRule[T comparable](forbidden T) DenyRule[T] {
	return DenyRule[T]{forbidden: forbidden}
}

// Allows reports whether v differs from the forbidden value.
func (r DenyRule[T]) Allows(v T) bool {
	return v != r.forbidden
}
