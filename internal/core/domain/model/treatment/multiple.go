package treatment

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// MultipleTreatment evaluates a bundle of orders as one shipment.
//
// Evaluate reads the bundle's cached values, so call RecomputePackageCount and
// RecomputeTotalWeight first. Until then the total weight is 0 and the bundle
// is rejected.
//
// The package-count check compares the recomputed count against the number of
// orders the bundle was built with. Both come from the same set, so it only
// rejects when the bundle changed after construction and the count was
// recomputed.
type MultipleTreatment struct {
	bundle *order.MultiOrder
}

// NewMultipleTreatment bundles orders (see order.NewMultiOrder for set semantics).
//
// Example:
//
//	t, err := treatment.NewMultipleTreatment(gondor, minasTirith, rohan)
//	if err != nil {
//	    return err
//	}
//	t.RecomputePackageCount()
//	t.RecomputeTotalWeight()
//	ok := t.Evaluate()
func NewMultipleTreatment(orders ...order.Order) (*MultipleTreatment, error) {
	bundle, err := order.NewMultiOrder(orders...)
	if err != nil {
		return nil, err
	}
	return &MultipleTreatment{bundle: bundle}, nil
}

// Bundle returns the wrapped bundle.
func (t *MultipleTreatment) Bundle() *order.MultiOrder {
	return t.bundle
}

func (t *MultipleTreatment) RecomputePackageCount() {
	t.bundle.RecomputePackageCount()
}

func (t *MultipleTreatment) RecomputeTotalWeight() {
	t.bundle.RecomputeTotalWeight()
}

func (t *MultipleTreatment) PackageCount() int {
	return t.bundle.PackageCount()
}

func (t *MultipleTreatment) TotalWeight() kernel.Weight {
	return t.bundle.TotalWeight()
}

// Evaluate returns true iff the cached total weight is positive and the cached
// package count equals the bundle's declared count.
func (t *MultipleTreatment) Evaluate() bool {
	return t.bundle.TotalWeight().IsPositive() &&
		t.bundle.PackageCount() == t.bundle.DeclaredCount()
}
