package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an order did not come from one of
// the New*Order constructors.
var ErrOrderIsNotConstructed = errors.New("order must be created via its constructor")

// Order is the contract every order variant satisfies.
type Order interface {
	// ID returns the identifier generated when the order was built.
	ID() kernel.UUID

	// Destination returns where the order is shipped to.
	Destination() string

	// Kind reports the order variant.
	Kind() Kind

	// Validate returns ErrOrderIsNotConstructed for zero-value or nil orders.
	Validate() error
}

// Weighted is implemented by orders that declare a weight.
type Weighted interface {
	Weight() kernel.Weight
}

// header holds what every variant shares. It is embedded by value so the
// variants expose ID and Destination without repeating them.
type header struct {
	id          kernel.UUID
	destination string
}

func newHeader(destination string) (header, error) {
	if destination == "" {
		return header{}, errs.NewValueIsRequiredError("destination")
	}
	return header{
		id:          kernel.NewUUID(),
		destination: destination,
	}, nil
}

// ID returns the order's unique identifier.
func (h header) ID() kernel.UUID {
	return h.id
}

// Destination returns the delivery destination.
func (h header) Destination() string {
	return h.destination
}

func (h header) validate() error {
	if h.id.Validate() != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual reports whether both orders are the same entity. Two orders built
// with identical fields are still different orders.
func IsEqual(a, b Order) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID().IsEqual(b.ID())
}

// WeightOf returns the declared weight of o, or zero for variants that carry none.
func WeightOf(o Order) kernel.Weight {
	if w, ok := o.(Weighted); ok {
		return w.Weight()
	}
	return kernel.ZeroWeight()
}

// Validate checks o for nil before delegating, so a typed nil pointer stored in
// the interface is reported instead of dereferenced.
func Validate(o Order) error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.Validate()
}
