// Package kernel provides the value objects shared by the dispatch domain model.
//
// The package includes:
//   - UUID: the opaque identifier every order receives at construction
//   - Weight: a non-negative decimal parcel weight
//
// Both types are immutable and safe to copy. Their zero values are usable
// only where documented: a zero UUID never validates, a zero Weight is 0.
package kernel
