package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/treatment"
	"dispatch/internal/pkg/guard"
)

var (
	ErrProcessTreatmentCommandIsNotConstructed = errors.New(
		"ProcessTreatmentCommand must be created via NewProcessTreatmentCommand constructor",
	)
	ErrTreatmentIsRequired = errors.New("treatment is required")
)

// ProcessTreatmentCommand asks the office to process one treatment and report
// the status of the order that treatment wraps.
//
// Example:
//
//	o, _ := order.NewInternationalOrder("Comarca", 100)
//	t, _ := treatment.NewInternationalTreatment(o)
//	cmd, err := NewProcessTreatmentCommand(t)
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch request: %w", err)
//	}
//
//	status, err := handler.Handle(ctx, cmd)
type ProcessTreatmentCommand struct { //nolint:recvcheck //using for validation
	treatment treatment.Single

	guard guard.ConstructorGuard
}

// NewProcessTreatmentCommand validates that t is present and was built by its
// constructor. The status line is always rendered for t's own order.
func NewProcessTreatmentCommand(t treatment.Single) (ProcessTreatmentCommand, error) {
	cmd := ProcessTreatmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTreatment(t); err != nil {
		return ProcessTreatmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessTreatmentCommand) Validate() error {
	return c.guard.Validate(ErrProcessTreatmentCommandIsNotConstructed)
}

func (c ProcessTreatmentCommand) Treatment() treatment.Single {
	return c.treatment
}

// Order returns the order whose destination appears in the status line.
func (c ProcessTreatmentCommand) Order() order.Order {
	return c.treatment.Subject()
}

func (c *ProcessTreatmentCommand) setTreatment(t treatment.Single) error {
	if t == nil {
		return ErrTreatmentIsRequired
	}
	if err := t.Validate(); err != nil {
		return err
	}
	c.treatment = t
	return nil
}
