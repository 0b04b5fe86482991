// Package errors defines domain-specific error types for the gallery service.
package errors

import "errors"

// ErrImageNotFound is returned when a gallery image cannot be found.
var ErrImageNotFound = errors.New("gallery image not found")
