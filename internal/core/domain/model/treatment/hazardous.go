package treatment

import (
	"dispatch/internal/core/domain/model/order"
)

// ForbiddenInstruction is the handling directive the office refuses to ship under.
const ForbiddenInstruction = "No ponerselo en el dedo"

var instructionRule = NewDenyRule(ForbiddenInstruction)

// HazardousTreatment accepts every hazardous order whose instruction is not
// exactly ForbiddenInstruction.
type HazardousTreatment struct {
	order *order.HazardousOrder
}

// NewHazardousTreatment wraps o. It fails if o was not built by its constructor.
func NewHazardousTreatment(o *order.HazardousOrder) (*HazardousTreatment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &HazardousTreatment{order: o}, nil
}

// Subject returns the wrapped order.
func (t *HazardousTreatment) Subject() order.Order {
	return t.order
}

// Validate returns ErrTreatmentIsNotConstructed unless t wraps a constructed order.
func (t *HazardousTreatment) Validate() error {
	if t == nil || t.order.Validate() != nil {
		return ErrTreatmentIsNotConstructed
	}
	return nil
}

// Evaluate returns false iff the instruction is ForbiddenInstruction.
func (t *HazardousTreatment) Evaluate() bool {
	return instructionRule.Allows(t.order.Instruction())
}
