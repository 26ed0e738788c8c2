package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when an account or token address is malformed
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotSupported is returned when a template is disabled for this service
	ErrNotSupported = errors.New("not supported")

	// ErrDataNotExists is returned when a token is not listed, has a different template, or the position is empty
	ErrDataNotExists = errors.New("data not exists")

	// ErrListingAlreadyExists is returned when registering a token address that is already listed
	ErrListingAlreadyExists = errors.New("listing already exists")

	// ErrUnauthorized is returned when an administrative caller presents no valid credential
	ErrUnauthorized = errors.New("unauthorized")
)

// InvalidParameterError carries the offending field
type InvalidParameterError struct {
	Field string
	Value string
}

func NewInvalidParameterError(field, value string) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Value: value}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrInvalidParameter, e.Field, e.Value)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// NotSupportedError carries the disabled template
type NotSupportedError struct {
	Template Template
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s: template %s is disabled", ErrNotSupported, e.Template)
}

func (e *NotSupportedError) Unwrap() error {
	return ErrNotSupported
}

// DataNotExistsError carries the token address that could not be resolved
type DataNotExistsError struct {
	TokenAddress string
}

func NewDataNotExistsError(tokenAddress string) *DataNotExistsError {
	return &DataNotExistsError{TokenAddress: tokenAddress}
}

func (e *DataNotExistsError) Error() string {
	return fmt.Sprintf("%s: token_address=%s", ErrDataNotExists, e.TokenAddress)
}

func (e *DataNotExistsError) Unwrap() error {
	return ErrDataNotExists
}
