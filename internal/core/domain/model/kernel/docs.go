// Package kernel provides the value objects shared across the route checker's
// domain model.
//
// The package includes:
//   - Address: an opaque, comparable scalar identifying a waypoint on a path
//   - UUID: an identifier for recorded route checks
//
// Both types are immutable and invalid in their zero value; build them through
// their constructors.
package kernel
