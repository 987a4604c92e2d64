// Package console reports office status lines to a terminal.
package console

import (
	"context"
	"fmt"
	"io"

	"dispatch/internal/core/domain/services"

	"github.com/labstack/gommon/color"
)

// Reporter writes one status line per report, green when accepted and red when
// rejected. Colors are dropped when the output is not a terminal or colored is false.
type Reporter struct {
	color *color.Color
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, colored bool) *Reporter {
	c := new(color.Color)
	c.SetOutput(w)
	if !colored {
		c.Disable()
	}
	return &Reporter{color: c}
}

// Report implements ports.StatusReporter.
func (r *Reporter) Report(ctx context.Context, line string, status services.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	painted := r.color.Red(line)
	if status.IsAccepted() {
		painted = r.color.Green(line)
	}

	if _, err := fmt.Fprintln(r.color.Output(), painted); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	return nil
}
