// Package services provides the domain services of the dispatch office.
//
// The package includes:
//   - Office: executes a treatment and renders its human-readable status
//   - Processor: the contract Office satisfies for callers that only process
//   - Status: the two possible outcomes, ACEPTADO and RECHAZADO
//
// Office is stateless; processing the same treatment twice gives the same result.
package services
