package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// MultiOrder is a bundle of orders shipped as one. Constituents form a set
// keyed by order identifier; adding the same order twice keeps one copy.
//
// PackageCount and TotalWeight are cached: they return whatever the last
// RecomputePackageCount / RecomputeTotalWeight call stored (zero before the
// first call) and are never refreshed implicitly. Add and Remove leave the
// cache untouched, so a caller that changes the bundle must recompute before
// reading.
//
// MultiOrder is not safe for concurrent use.
type MultiOrder struct {
	orders        map[kernel.UUID]Order
	sequence      []kernel.UUID
	declaredCount int

	packageCount int
	totalWeight  kernel.Weight
}

// NewMultiOrder bundles orders. Duplicates by identifier collapse into one
// constituent; the number of distinct constituents becomes DeclaredCount.
func NewMultiOrder(orders ...Order) (*MultiOrder, error) {
	m := &MultiOrder{
		orders:      make(map[kernel.UUID]Order, len(orders)),
		totalWeight: kernel.ZeroWeight(),
	}

	var errList []error
	for i, o := range orders {
		if err := Validate(o); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orders[%d]", i), err))
			continue
		}
		m.add(o)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	m.declaredCount = len(m.sequence)
	return m, nil
}

// DeclaredCount returns the number of distinct constituents the bundle was built with.
func (m *MultiOrder) DeclaredCount() int {
	return m.declaredCount
}

// Orders returns the current constituents in insertion order.
func (m *MultiOrder) Orders() []Order {
	out := make([]Order, 0, len(m.sequence))
	for _, id := range m.sequence {
		out = append(out, m.orders[id])
	}
	return out
}

// Contains reports whether an order with the given identifier is in the bundle.
func (m *MultiOrder) Contains(id kernel.UUID) bool {
	_, ok := m.orders[id]
	return ok
}

// Add puts o into the bundle. It returns false if o is invalid or already present.
func (m *MultiOrder) Add(o Order) bool {
	if Validate(o) != nil || m.Contains(o.ID()) {
		return false
	}
	m.add(o)
	return true
}

// Remove drops the order with the given identifier. It returns false if no such
// order is in the bundle.
func (m *MultiOrder) Remove(id kernel.UUID) bool {
	if !m.Contains(id) {
		return false
	}
	delete(m.orders, id)
	for i, seqID := range m.sequence {
		if seqID == id {
			m.sequence = append(m.sequence[:i], m.sequence[i+1:]...)
			break
		}
	}
	return true
}

// RecomputePackageCount stores the current number of constituents.
func (m *MultiOrder) RecomputePackageCount() {
	m.packageCount = len(m.sequence)
}

// RecomputeTotalWeight stores the sum of the constituents' weights. Orders
// without a weight count as 0.
func (m *MultiOrder) RecomputeTotalWeight() {
	total := kernel.ZeroWeight()
	for _, id := range m.sequence {
		total = total.Add(WeightOf(m.orders[id]))
	}
	m.totalWeight = total
}

// PackageCount returns the value stored by the last RecomputePackageCount.
func (m *MultiOrder) PackageCount() int {
	return m.packageCount
}

// TotalWeight returns the value stored by the last RecomputeTotalWeight.
func (m *MultiOrder) TotalWeight() kernel.Weight {
	return m.totalWeight
}

func (m *MultiOrder) add(o Order) {
	if _, ok := m.orders[o.ID()]; ok {
		return
	}
	m.orders[o.ID()] = o
	m.sequence = append(m.sequence, o.ID())
}
