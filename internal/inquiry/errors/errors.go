// Package errors defines domain-specific error types for the inquiry service.
package errors

import "errors"

var (
	// ErrInquiryNotFound is returned when an inquiry cannot be found.
	ErrInquiryNotFound = errors.New("inquiry not found")
	// ErrAlreadyResolved is returned when resolving an inquiry that is not open.
	ErrAlreadyResolved = errors.New("inquiry already resolved")
)
