package payroll

import (
	"fmt"
	"strings"
)

// Machine codes carried by Error.
const (
	CodeMissingCompensation = "MISSING_COMPENSATION_SETTINGS"
	CodeStorageFailure      = "STORAGE_FAILURE"
	CodeInvalidPeriod       = "INVALID_PERIOD"
)

// Error is the typed failure surfaced by the payroll engine. Retryable
// tells the caller whether re-triggering the computation can help; data
// errors like a missing pay contract need an operator instead.
type Error struct {
	Code      string
	Message   string
	Detail    string
	Retryable bool
	cause     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewMissingCompensation reports staff members without an effective pay
// contract for the month. Naming them is the point: silently skipping a
// staff member would understate payroll with no signal.
func NewMissingCompensation(period Period, staffNames []string) *Error {
	return &Error{
		Code:      CodeMissingCompensation,
		Message:   fmt.Sprintf("no compensation settings effective in %s for: %s", period, strings.Join(staffNames, ", ")),
		Detail:    fmt.Sprintf("%d staff affected", len(staffNames)),
		Retryable: false,
	}
}

// NewStorageFailure wraps an unrecoverable fetch failure after retries
// were exhausted.
func NewStorageFailure(operation string, cause error) *Error {
	return &Error{
		Code:      CodeStorageFailure,
		Message:   fmt.Sprintf("failed to load %s", operation),
		Detail:    cause.Error(),
		Retryable: true,
		cause:     cause,
	}
}

// NewInvalidPeriod reports an unparseable month identifier.
func NewInvalidPeriod(raw string, cause error) *Error {
	return &Error{
		Code:      CodeInvalidPeriod,
		Message:   fmt.Sprintf("invalid payroll period %q", raw),
		Detail:    cause.Error(),
		Retryable: false,
		cause:     cause,
	}
}
