// Package warehouse provides the Warehouse aggregate root and the validation
// errors of the warehouse lifecycle.
//
// A warehouse is identified by its business unit code, a natural key that
// stays stable across replacements so that cost history keyed by the code
// remains continuous. The aggregate tracks the placement of the warehouse at
// a location, its capacity, its current stock, and its lifecycle state.
//
// Key business rules:
//   - Capacity must be greater than zero
//   - Stock, when known, must never exceed capacity
//   - An archived warehouse is terminal: it can be neither replaced nor
//     archived again
//   - Replacement keeps the business unit code and resets location, capacity,
//     stock, and the creation timestamp (the start of the new generation)
//
// Cross-warehouse rules (uniqueness of the code, per-location warehouse count
// and capacity budget) span multiple aggregates and are enforced by the
// lifecycle command handlers in the application layer.
package warehouse
