package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/treatment"
)

// Processor runs a treatment and reports whether the order may ship.
type Processor interface {
	Process(t treatment.Treatment) bool
}

// Office is the dispatch office: the single entry point that executes
// treatments and renders their status line. It holds no state and owns none of
// the orders or treatments it is handed.
//
// Example usage:
//
//	office := services.NewOffice()
//	o, _ := order.NewInternationalOrder("Comarca", 100)
//	t, _ := treatment.NewInternationalTreatment(o)
//
//	accepted := office.Process(t)
//	fmt.Println(office.RenderStatus(accepted, o)) // "Comarca ACEPTADO"
type Office struct{}

// NewOffice creates a new Office.
func NewOffice() Office {
	return Office{}
}

// Process returns t.Evaluate(). The office adds no policy of its own.
func (Office) Process(t treatment.Treatment) bool {
	return t.Evaluate()
}

// RenderStatus formats "<destination> ACEPTADO" or "<destination> RECHAZADO".
// It does not evaluate anything; pass the verdict Process already returned.
func (Office) RenderStatus(accepted bool, o order.Order) string {
	return fmt.Sprintf("%s %s", o.Destination(), StatusOf(accepted))
}
