// Package order provides domain entities and business logic for pizza order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, and lifecycle
//   - Item: A value object describing one order line (pizza, quantity, notes)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, tracking code, and at least one item
//   - Order status follows a strictly linear workflow:
//     Pending -> InPreparation -> Ready -> Completed
//   - No transition skips a stage or regresses; Completed is terminal
//   - startedAt is stamped exactly once, on the transition to InPreparation
//   - completedAt is stamped exactly once, on the transition to Completed
//   - Items are fixed at creation and never mutated afterwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
