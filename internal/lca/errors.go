package lca

import (
	"errors"
	"fmt"
)

// ErrDomain is wrapped by every *DomainError.
var ErrDomain = errors.New("value outside equation domain")

// DomainError reports a divisor or input that makes an equation undefined,
// such as a zero digestibility.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrDomain, e.Quantity, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrDomain.
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// nonZero returns a *DomainError when v cannot be used as a divisor.
func nonZero(quantity string, v float64) error {
	if v == 0 || v != v {
		return &DomainError{Quantity: quantity, Value: v, Reason: "must be non-zero"}
	}
	return nil
}
