// Package order provides domain entities and business logic for order
// lifecycle coordination. The Order aggregate is restored from the external
// order store's payloads and mutated through methods enforcing the status
// state machine.
//
// The package includes:
//   - Order: The aggregate coordinating assignment, cancellation and delivery
//   - Status: The nine-state order lifecycle with its cancellable subset
//   - PaymentStatus: The payment state reported by the order store
//
// Key business rules:
//   - A driver may be assigned only to a pending, paid, unassigned order
//   - Cancellation is allowed only from the cancellable status set
//   - Delivery completion is allowed only from outForDelivery
//   - Status values outside the enumerated set are rejected
package order
