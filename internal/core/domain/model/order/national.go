package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// NationalOrder is a domestic shipment. No acceptance rule applies to it on its
// own; it takes part in bundles through its weight.
type NationalOrder struct {
	header
	weight kernel.Weight
}

// NewNationalOrder builds a national order with a fresh identifier.
func NewNationalOrder(destination string, weight float64) (*NationalOrder, error) {
	h, hErr := newHeader(destination)
	w, wErr := kernel.NewWeight(weight)
	if err := errors.Join(hErr, wErr); err != nil {
		return nil, err
	}

	return &NationalOrder{header: h, weight: w}, nil
}

func (o *NationalOrder) Weight() kernel.Weight {
	return o.weight
}

func (o *NationalOrder) Kind() Kind {
	return National
}

func (o *NationalOrder) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.validate()
}
