package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/treatment"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBundle(t *testing.T, weights ...float64) *treatment.MultipleTreatment {
	t.Helper()
	destinations := []string{"Gondor", "Minas Tirith", "Rohan"}
	orders := make([]order.Order, 0, len(weights))
	for i, w := range weights {
		o, err := order.NewNationalOrder(destinations[i%len(destinations)], w)
		require.NoError(t, err)
		orders = append(orders, o)
	}
	tr, err := treatment.NewMultipleTreatment(orders...)
	require.NoError(t, err)
	return tr
}

func TestProcessBundleCommandHandler_Handle_Accepted(t *testing.T) {
	ctx := context.Background()
	tr := newBundle(t, 10, 10, 10)
	cmd, _ := commands.NewProcessBundleCommand(tr)

	reporter := new(MockStatusReporter)
	mock.InOrder(
		reporter.On("Report", ctx, "Gondor ACEPTADO", services.Accepted).Return(nil).Once(),
		reporter.On("Report", ctx, "Minas Tirith ACEPTADO", services.Accepted).Return(nil).Once(),
		reporter.On("Report", ctx, "Rohan ACEPTADO", services.Accepted).Return(nil).Once(),
	)

	h := commands.NewProcessBundleCommandHandler(services.NewOffice(), reporter, discardLogger())
	status, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.Accepted, status)
	assert.Equal(t, 3, tr.PackageCount())
	assert.Equal(t, "30", tr.TotalWeight().String())
	reporter.AssertExpectations(t)
}

func TestProcessBundleCommandHandler_Handle_ZeroWeight(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewProcessBundleCommand(newBundle(t, 0, 0))

	reporter := new(MockStatusReporter)
	reporter.On("Report", ctx, mock.AnythingOfType("string"), services.Rejected).Return(nil).Twice()

	h := commands.NewProcessBundleCommandHandler(services.NewOffice(), reporter, discardLogger())
	status, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, services.Rejected, status)
	reporter.AssertExpectations(t)
}

func TestProcessBundleCommandHandler_Handle_ValidationError(t *testing.T) {
	reporter := new(MockStatusReporter)

	h := commands.NewProcessBundleCommandHandler(services.NewOffice(), reporter, discardLogger())
	_, err := h.Handle(context.Background(), commands.ProcessBundleCommand{})

	require.ErrorIs(t, err, commands.ErrProcessBundleCommandIsNotConstructed)
	reporter.AssertNotCalled(t, "Report", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessBundleCommandHandler_Handle_ReportErrorsAreJoined(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewProcessBundleCommand(newBundle(t, 10, 10))

	reportErr := errors.New("terminal closed")
	reporter := new(MockStatusReporter)
	reporter.On("Report", ctx, "Gondor ACEPTADO", services.Accepted).Return(reportErr).Once()
	reporter.On("Report", ctx, "Minas Tirith ACEPTADO", services.Accepted).Return(nil).Once()

	h := commands.NewProcessBundleCommandHandler(services.NewOffice(), reporter, discardLogger())
	status, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, reportErr)
	assert.Equal(t, services.Accepted, status)
	reporter.AssertExpectations(t)
}
