// Package services provides domain services that operate across several route
// model values.
//
// The package includes:
//   - DeliveryValidator: checks deliveries against a path and annotates each
//     waypoint with the action performed there
package services
