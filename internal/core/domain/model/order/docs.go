// Package order provides the parcel orders handled by the dispatch office.
//
// The package includes:
//   - Order: the contract shared by every variant (identifier and destination)
//   - NationalOrder, InternationalOrder: weight-bearing orders
//   - HazardousOrder: an order carrying a handling instruction
//   - MultiOrder: a bundle of orders evaluated as one shipment
//   - Kind: the variant tag of an order
//
// Key business rules:
//   - Every order receives a random identifier at construction; identity is by
//     identifier only, never by field values
//   - Destinations are required and never change after construction
//   - Weights are non-negative
//
// Acceptance rules live with the treatments in package treatment, not here.
package order
