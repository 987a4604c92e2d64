package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/treatment"
	"dispatch/internal/pkg/guard"
)

var (
	ErrProcessBundleCommandIsNotConstructed = errors.New(
		"ProcessBundleCommand must be created via NewProcessBundleCommand constructor",
	)
	ErrBundleIsRequired = errors.New("bundle treatment is required")
)

// ProcessBundleCommand asks the office to process a multi-order bundle.
type ProcessBundleCommand struct {
	treatment *treatment.MultipleTreatment

	guard guard.ConstructorGuard
}

// NewProcessBundleCommand wraps a MultipleTreatment.
func NewProcessBundleCommand(t *treatment.MultipleTreatment) (ProcessBundleCommand, error) {
	if t == nil {
		return ProcessBundleCommand{}, ErrBundleIsRequired
	}

	return ProcessBundleCommand{
		treatment: t,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessBundleCommand) Validate() error {
	return c.guard.Validate(ErrProcessBundleCommandIsNotConstructed)
}

func (c ProcessBundleCommand) Treatment() *treatment.MultipleTreatment {
	return c.treatment
}
