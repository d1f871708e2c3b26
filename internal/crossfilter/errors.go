package crossfilter

import (
	"errors"
	"fmt"
)

// ConfigurationError reports invalid wiring discovered at registration
// time: a target naming a computation absent from its page, a duplicate
// binding, or a duplicate computation registration. Fatal to startup.
type ConfigurationError struct {
	Page string
	Spec TargetSpec
	Msg  string
}

func (e *ConfigurationError) Error() string {
	if e.Page == "" {
		return "configuration: " + e.Msg
	}
	return fmt.Sprintf("configuration: page %q: %s", e.Page, e.Msg)
}

// ValidationError reports a malformed value at the control-input
// boundary. Recovered locally; never reaches the shared cell.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid value: " + e.Msg
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// ComputationError wraps a failure from one dependent computation. It is
// scoped to that invocation; other computations and the shared cell are
// unaffected.
type ComputationError struct {
	ComputationID string
	Err           error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation %q: %v", e.ComputationID, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsComputation reports whether err is a ComputationError.
func IsComputation(err error) bool {
	var ce *ComputationError
	return errors.As(err, &ce)
}
