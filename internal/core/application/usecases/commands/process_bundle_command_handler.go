package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ProcessBundleCommandHandler recomputes a bundle's package count and total
// weight, runs it through the office and reports one status line per
// constituent order, all carrying the bundle's verdict.
type ProcessBundleCommandHandler struct {
	office   Office
	reporter ports.StatusReporter
	logger   *slog.Logger
}

// NewProcessBundleCommandHandler creates a handler reporting through reporter.
func NewProcessBundleCommandHandler(
	office Office,
	reporter ports.StatusReporter,
	logger *slog.Logger,
) ProcessBundleCommandHandler {
	return ProcessBundleCommandHandler{
		office:   office,
		reporter: reporter,
		logger:   logger.With("component", "process_bundle_handler"),
	}
}

// Handle processes the bundle. Reporting continues past a failed line; all
// reporter errors are returned joined.
func (h *ProcessBundleCommandHandler) Handle(ctx context.Context, cmd ProcessBundleCommand) (services.Status, error) {
	if err := cmd.Validate(); err != nil {
		return services.Rejected, err
	}

	t := cmd.Treatment()
	t.RecomputePackageCount()
	t.RecomputeTotalWeight()

	accepted := h.office.Process(t)
	status := services.StatusOf(accepted)

	h.logger.InfoContext(ctx, "Bundle processed",
		"packages", t.PackageCount(),
		"declared", t.Bundle().DeclaredCount(),
		"total_weight", t.TotalWeight().String(),
		"status", status.String(),
	)

	var errList []error
	for _, o := range t.Bundle().Orders() {
		line := h.office.RenderStatus(accepted, o)
		if err := h.reporter.Report(ctx, line, status); err != nil {
			h.logger.ErrorContext(ctx, "Status report failed", "order_id", o.ID().String(), "error", err)
			errList = append(errList, fmt.Errorf("report status of order %s: %w", o.ID(), err))
		}
	}

	return status, errors.Join(errList...)
}
