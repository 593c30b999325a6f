package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for job lifecycle failures. Callers classify lifecycle
// outcomes with errors.Is against these values.
var (
	ErrInvalidState      = errors.New("invalid state")
	ErrStatusConflict    = errors.New("status conflict")
	ErrForbidden         = errors.New("access denied")
	ErrInvalidCredential = errors.New("credential is invalid")
	ErrPaymentProvider   = errors.New("payment provider failed")
)

// InvalidStateError indicates a lifecycle transition attempted from a status
// that does not allow it.
type InvalidStateError struct {
	Operation string
	Status    string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for the named operation
// and the status the entity is currently in.
func NewInvalidStateError(operation string, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(operation string, status string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed in status %s (cause: %s)",
			ErrInvalidState, e.Operation, e.Status, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed in status %s", ErrInvalidState, e.Operation, e.Status))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// StatusConflictError indicates that a conditional update lost a race:
// the entity was no longer in the status the caller observed.
type StatusConflictError struct {
	ParamName string
	ID        any
	Expected  string
}

// NewStatusConflictError creates a StatusConflictError for the named
// parameter, identifier and the status the caller expected.
func NewStatusConflictError(paramName string, id any, expected string) *StatusConflictError {
	return &StatusConflictError{ParamName: paramName, ID: id, Expected: expected}
}

func (e *StatusConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s is no longer in status %s",
		ErrStatusConflict, e.ParamName, e.ID, e.Expected))
}

func (e *StatusConflictError) Unwrap() error {
	return ErrStatusConflict
}

// ForbiddenError indicates that the requester is not the owner of, or not
// assigned to, the entity they tried to act on.
type ForbiddenError struct {
	ParamName string
}

// NewForbiddenError creates a ForbiddenError for the named parameter.
func NewForbiddenError(paramName string) *ForbiddenError {
	return &ForbiddenError{ParamName: paramName}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrForbidden, e.ParamName))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidCredentialError indicates a presented credential (such as a job OTP)
// did not match the stored one.
type InvalidCredentialError struct {
	ParamName string
}

// NewInvalidCredentialError creates an InvalidCredentialError for the named
// parameter.
func NewInvalidCredentialError(paramName string) *InvalidCredentialError {
	return &InvalidCredentialError{ParamName: paramName}
}

func (e *InvalidCredentialError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidCredential, e.ParamName))
}

func (e *InvalidCredentialError) Unwrap() error {
	return ErrInvalidCredential
}

// PaymentProviderError indicates the external payment collaborator failed.
// The entity the caller was operating on is left unchanged.
type PaymentProviderError struct {
	Cause error
}

// NewPaymentProviderError creates a PaymentProviderError wrapping the
// collaborator failure.
func NewPaymentProviderError(cause error) *PaymentProviderError {
	return &PaymentProviderError{Cause: cause}
}

func (e *PaymentProviderError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s (cause: %s)", ErrPaymentProvider, e.Cause))
	}
	return sanitize(ErrPaymentProvider.Error())
}

func (e *PaymentProviderError) Unwrap() error {
	return ErrPaymentProvider
}
