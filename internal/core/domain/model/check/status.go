package check

import (
	"fmt"

	"deliverychecker/internal/pkg/errs"
)

// Status is the outcome of a recorded check.
type Status int

const (
	Unknown Status = iota
	Succeeded
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Succeeded: "success",
		Failed:    "error",
	}
}

// Validate accepts Succeeded and Failed.
func (s Status) Validate() error {
	if s != Succeeded && s != Failed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status the way results report it: "success" or "error".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
