// Package driver provides the Driver aggregate for the dispatch registry.
// Drivers are synced from the identity store, report their location, and are
// marked busy or free as deliveries are assigned and released.
//
// Key business rules:
//   - A driver references a person record in the identity store by userId
//   - Identity fields refresh opportunistically and never degrade to empty
//   - The in-flight delivery counter never goes below zero
//   - Drivers without a reported location cannot be matched to orders
package driver
