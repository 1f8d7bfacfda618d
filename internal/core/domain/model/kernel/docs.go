// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - TrackingCode: the short public token customers use to follow an order
//
// Kernel types are immutable and validated at construction. Domain aggregates
// build on these types instead of raw strings so that invalid identifiers
// cannot enter the model.
package kernel
