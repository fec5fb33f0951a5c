// Package services provides domain services that orchestrate business
// operations across multiple aggregates.
//
// The package includes:
//   - DriverDispatcher: selects the nearest available driver for an order by
//     great-circle distance to the order's restaurant
package services
