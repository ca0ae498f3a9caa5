// Package kernel provides core domain primitives shared by the fulfilment
// domain model.
//
// The package currently contains a single building block:
//   - UUID: A value object for unique identifiers with validation and
//     comparison capabilities, used as the identity of the Store and Product
//     aggregates. (Warehouses are identified by their business unit code, a
//     natural key owned by the warehouse package.)
//
// The primitives are immutable and thread-safe, and enforce their invariants
// through constructor functions following Domain-Driven Design practice.
package kernel
