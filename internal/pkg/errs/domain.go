package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the transactional-core taxonomy. Each one has a concrete
// error type carrying the details of the failure, following the same
// sentinel-plus-struct pattern as the generic validation errors.
var (
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrInvalidTransition         = errors.New("invalid transition")
	ErrConcurrencyConflict       = errors.New("concurrency conflict")
	ErrIntegrityViolation        = errors.New("integrity violation")
	ErrGatewayVerificationFailed = errors.New("gateway verification failed")
)

// InsufficientBalanceError indicates that a debit or payout request exceeded
// the funds available to the account holder. No money movement happens when
// this error is returned.
type InsufficientBalanceError struct {
	UserID    string
	Requested any
	Available any
}

// NewInsufficientBalanceError creates an InsufficientBalanceError for the given
// account holder and amounts.
func NewInsufficientBalanceError(userID string, requested, available any) *InsufficientBalanceError {
	return &InsufficientBalanceError{UserID: userID, Requested: requested, Available: available}
}

func (e *InsufficientBalanceError) Error() string {
	return sanitize(fmt.Sprintf("%s: requested is: %v, available is: %v, user is: %s",
		ErrInsufficientBalance, e.Requested, e.Available, e.UserID))
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

// InvalidTransitionError indicates that an actor attempted an order status
// change not permitted from the current state. The order is left untouched.
type InvalidTransitionError struct {
	From  string
	To    string
	Actor string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the rejected
// state change.
func NewInvalidTransitionError(from, to, actor string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Actor: actor}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s is not permitted for %s",
		ErrInvalidTransition, e.From, e.To, e.Actor))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConcurrencyConflictError indicates that a conditional update lost a race
// against a concurrent writer. The caller must refetch the current state
// before deciding whether to retry.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the
// contended entity.
func NewConcurrencyConflictError(paramName string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v", ErrConcurrencyConflict, e.ParamName, e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// IntegrityViolationError indicates that a client-supplied order disagreed with
// the authoritative catalog (unknown product, foreign vendor, drifted price or
// total). The reason is surfaced verbatim to the caller; nothing is persisted.
type IntegrityViolationError struct {
	Reason string
}

// NewIntegrityViolationError creates an IntegrityViolationError with the
// human-readable rejection reason.
func NewIntegrityViolationError(reason string) *IntegrityViolationError {
	return &IntegrityViolationError{Reason: reason}
}

func (e *IntegrityViolationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrIntegrityViolation, e.Reason))
}

func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}

// GatewayVerificationFailedError indicates that the payment gateway did not
// confirm a charge. No order or wallet credit is created when this error is
// returned.
type GatewayVerificationFailedError struct {
	Reference string
	Cause     error
}

// NewGatewayVerificationFailedError creates a GatewayVerificationFailedError for
// the given gateway reference.
func NewGatewayVerificationFailedError(reference string) *GatewayVerificationFailedError {
	return &GatewayVerificationFailedError{Reference: reference}
}

// NewGatewayVerificationFailedErrorWithCause creates a
// GatewayVerificationFailedError wrapping the transport or gateway error.
func NewGatewayVerificationFailedErrorWithCause(reference string, cause error) *GatewayVerificationFailedError {
	return &GatewayVerificationFailedError{Reference: reference, Cause: cause}
}

func (e *GatewayVerificationFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: reference is: %s (cause: %s)",
			ErrGatewayVerificationFailed, e.Reference, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: reference is: %s", ErrGatewayVerificationFailed, e.Reference))
}

func (e *GatewayVerificationFailedError) Unwrap() error {
	return ErrGatewayVerificationFailed
}
