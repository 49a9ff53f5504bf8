package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by actions and the runtime. Callers match them
// with errors.Is.
var (
	// ErrNoActionReturn indicates a dynamic input resolved to a dependency
	// that produced no output.
	ErrNoActionReturn = errors.New("dependency did not return a value")

	// ErrOperationNotSupported is returned by an action's Run for an
	// operation it does not implement.
	ErrOperationNotSupported = errors.New("operation not supported")

	// ErrStateNotLoaded indicates a required state object was never
	// registered on the builder.
	ErrStateNotLoaded = errors.New("required state was not loaded")

	// ErrWrongOutputType indicates a dynamic input resolved to an output of
	// the wrong variant.
	ErrWrongOutputType = errors.New("dependency returned the wrong output type")
)

// ActionFailedError represents a failure inside an action's own effectful
// operation. Short is single-line user text; Long carries verbose context
// such as captured stderr.
type ActionFailedError struct {
	Short string
	Long  string
}

// NewActionFailed constructs an ActionFailedError.
func NewActionFailed(short, long string) error {
	return &ActionFailedError{Short: short, Long: long}
}

func (e *ActionFailedError) Error() string {
	if e == nil {
		return ""
	}
	return e.Short
}

// OutputConversionError captures a failed conversion from an action output
// to a primitive type.
type OutputConversionError struct {
	Target string
}

// NewOutputConversionError constructs an OutputConversionError for the
// requested target type name.
func NewOutputConversionError(target string) error {
	return &OutputConversionError{Target: target}
}

func (e *OutputConversionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("could not convert output to %s", e.Target)
}

// Stable internal error codes.
const (
	CodeNoRollback = "NO_ROLLBACK"
	CodeJoin       = "JOIN_SET_ERROR"
	CodeCycle      = "CYCLE"
)

// InternalError represents a runtime-internal invariant failure. Codes are
// short stable strings suitable for bug reports.
type InternalError struct {
	Code string
}

// NewInternalError constructs an InternalError with the given code.
func NewInternalError(code string) error {
	return &InternalError{Code: code}
}

func (e *InternalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("an internal error occurred, please report this error code: %s", e.Code)
}

// IsInternal reports whether err is an InternalError carrying code.
func IsInternal(err error, code string) bool {
	var internal *InternalError
	if !errors.As(err, &internal) {
		return false
	}
	return internal.Code == code
}
