package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrDriverUnavailable  = errors.New("driver unavailable")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvariantViolation = errors.New("invariant violation")
)

// sanitize removes line breaks from values that end up in error messages,
// keeping a message on a single log line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError indicates that a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a malformed or unrecognized value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// DuplicateKeyError indicates a unique-key conflict: order code, vehicle
// plate, license number, product name or username already taken.
type DuplicateKeyError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewDuplicateKeyError(paramName string, value any) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value}
}

func NewDuplicateKeyErrorWithCause(paramName string, value any, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, value is: %s (cause: %s)",
			ErrDuplicateKey, e.ParamName, sanitize(e.Value), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: param is: %s, value is: %s", ErrDuplicateKey, e.ParamName, sanitize(e.Value))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// InsufficientStockError indicates a reservation larger than the available
// quantity. The failure is permanent for the given input and must not be
// retried without changing it.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func NewInsufficientStockError(productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s has %d, requested %d",
		ErrInsufficientStock, e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// DriverUnavailableError indicates a claim on a driver that is already busy.
type DriverUnavailableError struct {
	DriverID string
}

func NewDriverUnavailableError(driverID string) *DriverUnavailableError {
	return &DriverUnavailableError{DriverID: driverID}
}

func (e *DriverUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDriverUnavailable, e.DriverID)
}

func (e *DriverUnavailableError) Unwrap() error {
	return ErrDriverUnavailable
}

// StorageUnavailableError indicates a transient infrastructure failure.
// Unlike the business-rule errors above, the caller may retry the whole
// operation.
type StorageUnavailableError struct {
	Operation string
	Cause     error
}

func NewStorageUnavailableError(operation string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Operation: operation, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStorageUnavailable, e.Operation, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Operation)
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}

// InvariantViolationError indicates an internal consistency check failed.
// It is fatal to the operation and must be logged, never silently ignored.
type InvariantViolationError struct {
	Invariant string
	Cause     error
}

func NewInvariantViolationError(invariant string, cause error) *InvariantViolationError {
	return &InvariantViolationError{Invariant: invariant, Cause: cause}
}

func (e *InvariantViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvariantViolation, e.Invariant, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Invariant)
}

func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}
