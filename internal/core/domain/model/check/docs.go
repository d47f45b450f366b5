// Package check contains the Check aggregate: one recorded run of the route
// checker together with the raw input it was given and the outcome it produced.
//
// A Check is either Succeeded, carrying the annotated steps, or Failed,
// carrying an error code and message. Checks are immutable once created.
package check
