// Package queries contains the read side of the check history. Handlers read
// the checks table directly with SQL and return flat response structs rather
// than aggregates.
package queries
