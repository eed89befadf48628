package itinerary

import "fmt"

// ConfigurationError reports invalid planning parameters (e.g. a day
// count below one). The caller must fix the input before retrying.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configurationError: %s", e.Message)
}

func NewConfigurationError(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports a rejected activity or candidate: negative
// cost, empty name, or a malformed time. The whole call is rejected;
// no partial schedule is ever produced.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IndexError reports an out-of-range day or activity index.
type IndexError struct {
	Message string
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("indexError: %s", e.Message)
}

func NewIndexError(format string, args ...any) error {
	return &IndexError{Message: fmt.Sprintf(format, args...)}
}

// SessionNotFoundError signals that a planning session has expired or
// never existed.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return "planning session not found or expired; sessionID: " + e.SessionID
}
