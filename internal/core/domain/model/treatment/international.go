package treatment

import (
	"dispatch/internal/core/domain/model/order"
)

// ForbiddenDestination is the only destination international orders cannot reach.
const ForbiddenDestination = "Mordor"

var destinationRule = NewDenyRule(ForbiddenDestination)

// InternationalTreatment accepts every international order except those bound
// for ForbiddenDestination. The match is exact and case-sensitive.
type InternationalTreatment struct {
	order *order.InternationalOrder
}

// NewInternationalTreatment wraps o. It fails if o was not built by its constructor.
func NewInternationalTreatment(o *order.InternationalOrder) (*InternationalTreatment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &InternationalTreatment{order: o}, nil
}

// Subject returns the wrapped order.
func (t *InternationalTreatment) Subject() order.Order {
	return t.order
}

// Validate returns ErrTreatmentIsNotConstructed unless t wraps a constructed order.
func (t *InternationalTreatment) Validate() error {
	if t == nil || t.order.Validate() != nil {
		return ErrTreatmentIsNotConstructed
	}
	return nil
}

// Evaluate returns false iff the destination is ForbiddenDestination.
func (t *InternationalTreatment) Evaluate() bool {
	return destinationRule.Allows(t.order.Destination())
}
