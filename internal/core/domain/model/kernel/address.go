package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"deliverychecker/internal/pkg/errs"
	"deliverychecker/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or one of the typed Address constructors")

type addressKind uint8

const (
	addressKindUnknown addressKind = iota
	addressKindNumber
	addressKindString
	addressKindBool
	addressKindNull
)

// Address identifies a waypoint. It is an opaque scalar: a number, a string, a
// boolean or null. Two addresses are equal when they hold the same kind and the
// same value; numbers compare numerically, so 1 and 1.0 are the same address.
//
// Address is comparable and can be used directly as a map key. The zero value
// is invalid.
//
// Example:
//
//	depot := kernel.NewStringAddress("depot")
//	stop, err := kernel.NewNumberAddress(3)
//	if err != nil {
//	    // NaN and infinities are not addresses
//	}
//	fmt.Println(depot, stop) // depot 3
type Address struct {
	kind   addressKind
	number float64
	text   string
	flag   bool
	guard  guard.ConstructorGuard
}

// NewAddress converts a decoded scalar into an Address. It accepts nil, bool,
// string, the Go integer and float types, and any value with a
// Float64() (float64, error) method such as json.Number.
// Slices, maps and other composite values are rejected.
func NewAddress(v any) (Address, error) {
	switch value := v.(type) {
	case nil:
		return NewNullAddress(), nil
	case bool:
		return NewBoolAddress(value), nil
	case string:
		return NewStringAddress(value), nil
	case float64:
		return NewNumberAddress(value)
	case float32:
		return NewNumberAddress(float64(value))
	case int:
		return NewNumberAddress(float64(value))
	case int32:
		return NewNumberAddress(float64(value))
	case int64:
		return NewNumberAddress(float64(value))
	case interface{ Float64() (float64, error) }:
		f, err := value.Float64()
		if err != nil {
			return Address{}, errs.NewValueIsInvalidErrorWithCause("address", err)
		}
		return NewNumberAddress(f)
	default:
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address", fmt.Errorf("%T is not a scalar value", v))
	}
}

// NewNumberAddress returns a numeric address. NaN and infinities are rejected.
func NewNumberAddress(n float64) (Address, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"address", fmt.Errorf("%v is not a finite number", n))
	}
	if n == 0 {
		n = 0 // -0 and 0 are the same address
	}
	return Address{kind: addressKindNumber, number: n, guard: guard.NewConstructorGuard()}, nil
}

// NewIntAddress returns a numeric address for an integer.
func NewIntAddress(n int) Address {
	return Address{kind: addressKindNumber, number: float64(n), guard: guard.NewConstructorGuard()}
}

func NewStringAddress(s string) Address {
	return Address{kind: addressKindString, text: s, guard: guard.NewConstructorGuard()}
}

func NewBoolAddress(b bool) Address {
	return Address{kind: addressKindBool, flag: b, guard: guard.NewConstructorGuard()}
}

func NewNullAddress() Address {
	return Address{kind: addressKindNull, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if err := a.guard.Validate(ErrAddressIsNotConstructed); err != nil {
		return err
	}
	if a.kind == addressKindUnknown {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a Address) IsEqual(other Address) bool {
	return a == other
}

// Value returns the scalar held by the address: float64, string, bool or nil.
func (a Address) Value() any {
	switch a.kind {
	case addressKindNumber:
		return a.number
	case addressKindString:
		return a.text
	case addressKindBool:
		return a.flag
	case addressKindNull, addressKindUnknown:
		return nil
	}
	return nil
}

// String renders the address the way it reads inside a message: numbers in
// their shortest form, strings unquoted.
func (a Address) String() string {
	switch a.kind {
	case addressKindNumber:
		return formatNumber(a.number)
	case addressKindString:
		return a.text
	case addressKindBool:
		return strconv.FormatBool(a.flag)
	case addressKindNull:
		return "null"
	case addressKindUnknown:
		return "<invalid address>"
	}
	return "<invalid address>"
}

// formatNumber uses plain notation inside [1e-6, 1e21) and exponent notation
// outside it, with the exponent stripped of leading zeros.
func formatNumber(n float64) string {
	abs := math.Abs(n)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(n, format, -1, 64)
	if format == 'e' {
		// 1e-07 -> 1e-7
		if l := len(s); l >= 4 && s[l-4] == 'e' && s[l-2] == '0' {
			s = s[:l-2] + s[l-1:]
		}
	}
	return s
}

// ValidateAddresses validates every address and joins the failures.
func ValidateAddresses(addresses ...Address) error {
	var errList []error
	for _, a := range addresses {
		errList = append(errList, a.Validate())
	}
	return errors.Join(errList...)
}
