package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// InternationalOrder is a cross-border shipment. Whether it is accepted depends
// only on its destination.
type InternationalOrder struct {
	header
	weight kernel.Weight
}

// NewInternationalOrder builds an international order with a fresh identifier.
//
// Example:
//
//	o, err := order.NewInternationalOrder("Comarca", 100)
//	if err != nil {
//	    return err
//	}
func NewInternationalOrder(destination string, weight float64) (*InternationalOrder, error) {
	h, hErr := newHeader(destination)
	w, wErr := kernel.NewWeight(weight)
	if err := errors.Join(hErr, wErr); err != nil {
		return nil, err
	}

	return &InternationalOrder{header: h, weight: w}, nil
}

func (o *InternationalOrder) Weight() kernel.Weight {
	return o.weight
}

func (o *InternationalOrder) Kind() Kind {
	return International
}

func (o *InternationalOrder) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.validate()
}
