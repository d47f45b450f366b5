// Package wire converts between the JSON text accepted and produced by the
// checker and the route domain types.
//
// Decode reads the two raw inputs, deliveries and path. Encode writes a
// commands.Result in one of two shapes:
//
//	{"status": "success", "steps": [{"address": 1, "action": "pickup"}, ...]}
//	{"status": "error", "error_code": "...", "error_message": "..."}
//
// A step whose address has no role is written with "action": null.
package wire
