package cmd

import (
	"io"
	"log/slog"

	"dispatch/internal/adapters/out/console"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
)

type CompositionRoot struct {
	office   services.Office
	reporter *console.Reporter
	logger   *slog.Logger
}

func NewCompositionRoot(configs Config, out io.Writer, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		office:   services.NewOffice(),
		reporter: console.NewReporter(out, !configs.NoColor),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateProcessTreatmentCommandHandler() commands.ProcessTreatmentCommandHandler {
	return commands.NewProcessTreatmentCommandHandler(c.office, c.reporter, c.logger)
}

func (c *CompositionRoot) CreateProcessBundleCommandHandler() commands.ProcessBundleCommandHandler {
	return commands.NewProcessBundleCommandHandler(c.office, c.reporter, c.logger)
}
