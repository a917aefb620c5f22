package constants

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrEmptyValue        = errors.New("empty value")
	ErrNoSuchType        = errors.New("no such asset type")
	ErrNoSuchProperty    = errors.New("no such property")
	ErrNoSuchPageRegion  = errors.New("no such page region")
	ErrNullIdentifier    = errors.New("identifier has neither id nor path")
	ErrNullAsset         = errors.New("asset envelope carries no property for the type")
	ErrUnacceptableValue = errors.New("unacceptable value")
	ErrUnexpectedShape   = errors.New("unexpected wire shape")
	ErrTransport         = errors.New("transport error")
	ErrOperationFailure  = errors.New("operation failed")
	ErrMaterialization   = errors.New("asset materialization failed")
	ErrNoConnection      = errors.New("connection is not set")
	ErrNoEndpoint        = errors.New("endpoint url not set")
)

// OperationError is returned by strict operations when the service answers
// with success other than "true". Message is the wire message verbatim.
type OperationError struct {
	Operation string
	Message   string
}

func (e *OperationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", ErrOperationFailure, e.Operation)
	}
	return fmt.Sprintf("%s: %s: %s", ErrOperationFailure, e.Operation, e.Message)
}

func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailure
}

// MaterializationError wraps a failure raised while building a concrete asset
// shape, keeping the asset type as context.
type MaterializationError struct {
	Type string
	Err  error
}

func (e *MaterializationError) Error() string {
	return fmt.Sprintf("%s for type %s: %v", ErrMaterialization, e.Type, e.Err)
}

func (e *MaterializationError) Unwrap() error {
	return e.Err
}

func (e *MaterializationError) Is(target error) bool {
	return target == ErrMaterialization
}

// FaultError represents a SOAP fault returned by the endpoint.
type FaultError struct {
	Code   string
	String string
	Detail string
}

func (e *FaultError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("soap fault %s: %s (%s)", e.Code, e.String, e.Detail)
	}
	return fmt.Sprintf("soap fault %s: %s", e.Code, e.String)
}

func (e *FaultError) Is(target error) bool {
	return target == ErrTransport
}
