package commands_test

import (
	"context"
	"io"
	"log/slog"

	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type MockStatusReporter struct{ mock.Mock }

func (m *MockStatusReporter) Report(ctx context.Context, line string, status services.Status) error {
	args := m.Called(ctx, line, status)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
