package commands

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// Office is what the handler needs from the dispatch office.
type Office interface {
	services.Processor
	RenderStatus(accepted bool, o order.Order) string
}

// ProcessTreatmentCommandHandler runs a treatment through the office, renders
// the status line and hands it to a StatusReporter.
//
// Example:
//
//	handler := NewProcessTreatmentCommandHandler(services.NewOffice(), reporter, logger)
//	status, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("dispatch failed: %w", err)
//	}
type ProcessTreatmentCommandHandler struct {
	office   Office
	reporter ports.StatusReporter
	logger   *slog.Logger
}

// NewProcessTreatmentCommandHandler creates a handler reporting through reporter.
func NewProcessTreatmentCommandHandler(
	office Office,
	reporter ports.StatusReporter,
	logger *slog.Logger,
) ProcessTreatmentCommandHandler {
	return ProcessTreatmentCommandHandler{
		office:   office,
		reporter: reporter,
		logger:   logger.With("component", "process_treatment_handler"),
	}
}

// Handle processes the command. The returned Status is valid even when the
// reporter fails; the error then describes the reporting failure.
func (h *ProcessTreatmentCommandHandler) Handle(ctx context.Context, cmd ProcessTreatmentCommand) (services.Status, error) {
	if err := cmd.Validate(); err != nil {
		return services.Rejected, err
	}

	accepted := h.office.Process(cmd.Treatment())
	status := services.StatusOf(accepted)
	line := h.office.RenderStatus(accepted, cmd.Order())

	h.logger.InfoContext(ctx, "Treatment processed",
		"order_id", cmd.Order().ID().String(),
		"kind", cmd.Order().Kind().String(),
		"destination", cmd.Order().Destination(),
		"status", status.String(),
	)

	if err := h.reporter.Report(ctx, line, status); err != nil {
		h.logger.ErrorContext(ctx, "Status report failed", "order_id", cmd.Order().ID().String(), "error", err)
		return status, fmt.Errorf("report status of order %s: %w", cmd.Order().ID(), err)
	}

	return status, nil
}
