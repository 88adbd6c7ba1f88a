package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurrencyCode  = errors.New("invalid currency code")
	ErrInvalidDecimalFormat = errors.New("invalid decimal format")
	ErrInvalidRate          = errors.New("invalid rate")
	// ErrNonRevertibleState is returned when reverting a value that carries no
	// rate, or a rate of exactly zero.
	ErrNonRevertibleState = errors.New("no applied rate to revert")
	ErrCurrencyNotInGroup = errors.New("currency not in selectable group")
)

// PercentageErrorKind classifies why a percentage request was rejected.
type PercentageErrorKind int

const (
	InvalidCurrency PercentageErrorKind = iota + 1
	InvalidBaseAmount
	InvalidRate
	NonRevertible
)

func (k PercentageErrorKind) String() string {
	switch k {
	case InvalidCurrency:
		return "invalid currency"
	case InvalidBaseAmount:
		return "invalid base amount"
	case InvalidRate:
		return "invalid rate"
	case NonRevertible:
		return "non revertible"
	default:
		return "unknown"
	}
}

// PercentageError reports the first invalid input of a percentage request.
type PercentageError struct {
	Kind  PercentageErrorKind
	Input string
	Err   error
}

func (e *PercentageError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *PercentageError) Unwrap() error {
	return e.Err
}

// PercentageErrorKindOf returns the kind of err if it wraps a *PercentageError.
func PercentageErrorKindOf(err error) (PercentageErrorKind, bool) {
	var pe *PercentageError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
