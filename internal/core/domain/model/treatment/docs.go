// Package treatment binds an acceptance rule to an order.
//
// A Treatment wraps one order (or, for MultipleTreatment, a bundle) and
// answers a single question through Evaluate: may the office ship it?
// Evaluation never mutates the wrapped order, so calling it repeatedly yields
// the same verdict.
//
// Rules:
//   - InternationalTreatment rejects orders bound for Mordor
//   - HazardousTreatment rejects the instruction "No ponerselo en el dedo"
//   - MultipleTreatment accepts a bundle whose recomputed total weight is
//     positive and whose recomputed package count matches the bundle it was
//     built with
package treatment
