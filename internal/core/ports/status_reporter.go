package ports

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// StatusReporter publishes the status line the office rendered for an order.
type StatusReporter interface {
	// Report delivers one rendered line together with the outcome it encodes.
	Report(ctx context.Context, line string, status services.Status) error
}
