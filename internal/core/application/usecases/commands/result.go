package commands

import (
	"errors"
	"slices"

	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/core/domain/services"
	"deliverychecker/internal/pkg/errs"
)

// ErrorCode classifies an error Result.
type ErrorCode string

const (
	ErrorCodeInvalidArguments            ErrorCode = "invalid_arguments"
	ErrorCodeInvalidInput                ErrorCode = "invalid_input"
	ErrorCodeDeliveryAddressNotInPath    ErrorCode = "delivery_address_not_in_path"
	ErrorCodeDeliveryDropoffBeforePickup ErrorCode = "delivery_dropoff_before_pickup"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	invalidArgumentsMessage = "Expected exactly 2 arguments: deliveries and path"
	invalidInputPrefix      = "Failed to parse input: "
)

// Result is the outcome of a route check: either the annotated steps or an
// error code with a human readable message. The zero value is a success with
// no steps.
type Result struct {
	steps   []route.Step
	code    ErrorCode
	message string
}

// NewSuccessResult wraps annotated steps. A nil slice is stored as empty so
// the result always reports a list of steps.
func NewSuccessResult(steps []route.Step) Result {
	if steps == nil {
		steps = []route.Step{}
	}
	return Result{steps: slices.Clone(steps)}
}

func NewErrorResult(code ErrorCode, message string) Result {
	return Result{code: code, message: message}
}

// NewInvalidArgumentsResult reports a command line that did not carry exactly
// two inputs.
func NewInvalidArgumentsResult() Result {
	return NewErrorResult(ErrorCodeInvalidArguments, invalidArgumentsMessage)
}

// NewResultFromError maps a failure to its error Result.
//
// Mapping:
//   - *services.AddressesNotInPathError -> delivery_address_not_in_path
//   - *services.DropoffBeforePickupError -> delivery_dropoff_before_pickup
//   - anything else -> invalid_input, prefixed with "Failed to parse input: "
//
// For an *errs.ValueIsInvalidError carrying a cause, the cause's message is
// reported instead of the wrapper's.
func NewResultFromError(err error) Result {
	var (
		missing *services.AddressesNotInPathError
		order   *services.DropoffBeforePickupError
	)

	switch {
	case errors.As(err, &missing):
		return NewErrorResult(ErrorCodeDeliveryAddressNotInPath, missing.Error())
	case errors.As(err, &order):
		return NewErrorResult(ErrorCodeDeliveryDropoffBeforePickup, order.Error())
	default:
		return NewErrorResult(ErrorCodeInvalidInput, invalidInputPrefix+inputErrorMessage(err))
	}
}

func inputErrorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.Cause != nil {
		return invalid.Cause.Error()
	}
	return err.Error()
}

// Status returns StatusSuccess or StatusError.
func (r Result) Status() string {
	if r.IsSuccess() {
		return StatusSuccess
	}
	return StatusError
}

func (r Result) IsSuccess() bool {
	return r.code == ""
}

// Steps returns a copy of the annotated steps; nil for error results.
func (r Result) Steps() []route.Step {
	if !r.IsSuccess() {
		return nil
	}
	if r.steps == nil {
		return []route.Step{}
	}
	return slices.Clone(r.steps)
}

func (r Result) Code() ErrorCode {
	return r.code
}

func (r Result) Message() string {
	return r.message
}
