// Package route provides the domain model of a delivery route check: the
// pickup/dropoff pairs being delivered, the path a vehicle drives, and the
// annotated steps produced for a valid path.
//
// The package includes:
//   - Delivery: a pickup/dropoff pair of addresses
//   - Path: the ordered addresses visited, duplicates allowed
//   - Action: what happens at a waypoint (Pickup, Dropoff or None)
//   - Step: one path position annotated with its action
//
// Key business rules:
//   - A delivery's pickup and dropoff may be the same address
//   - Several deliveries may share pickup or dropoff addresses
//   - Steps are produced one per path element, in path order
package route
