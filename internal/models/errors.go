package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for lookups.
var (
	ErrNodeNotFound        = errors.New("node not found")
	ErrArticleNotFound     = errors.New("article not found")
	ErrExplorationNotFound = errors.New("exploration not found")
)

// ErrProviderUnavailable indicates the content provider could not serve a request.
var ErrProviderUnavailable = errors.New("content provider unavailable")

// ErrInvalidParameter indicates a malformed call parameter.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameter wraps ErrInvalidParameter with a formatted reason.
func InvalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return InvalidParameter("%s exceeds maximum length of %d", field, maxLen)
}
