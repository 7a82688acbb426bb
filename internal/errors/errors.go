package errors

import (
	stderrors "errors"
	"fmt"
)

// Stage names the pipeline step an error came from
type Stage string

const (
	StageConfig Stage = "CONFIG"
	StageSource Stage = "SOURCE"
	StageOutput Stage = "OUTPUT"
)

// Error codes. Coercion problems never become errors; only the fatal
// I/O and configuration failures below abort a run.
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeSourceNotFound   = "SOURCE_NOT_FOUND"
	CodeSourceUnreadable = "SOURCE_UNREADABLE"
	CodeSheetNotFound    = "SHEET_NOT_FOUND"
	CodeHeaderMissing    = "HEADER_MISSING"
	CodeOutputUnwritable = "OUTPUT_UNWRITABLE"
	CodeEncodeFailed     = "ENCODE_FAILED"
)

// PipelineError is a fatal failure of a generator run
type PipelineError struct {
	Stage   Stage
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s/%s] %s: %v", e.Stage, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s/%s] %s", e.Stage, e.Code, e.Message)
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *PipelineError) WithContext(key string, value interface{}) *PipelineError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a pipeline error
func New(stage Stage, code, message string, cause error) *PipelineError {
	return &PipelineError{
		Stage:   stage,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ConfigInvalid reports a configuration that failed loading or validation
func ConfigInvalid(message string, cause error) *PipelineError {
	return New(StageConfig, CodeConfigInvalid, message, cause)
}

// SourceNotFound reports a workbook path that does not exist
func SourceNotFound(path string, cause error) *PipelineError {
	return New(StageSource, CodeSourceNotFound, "source workbook not found", cause).
		WithContext("path", path)
}

// SourceUnreadable reports a workbook that exists but cannot be opened or read
func SourceUnreadable(path string, cause error) *PipelineError {
	return New(StageSource, CodeSourceUnreadable, "failed to read source workbook", cause).
		WithContext("path", path)
}

// SheetNotFound reports a workbook without the configured sheet
func SheetNotFound(path, sheet string) *PipelineError {
	return New(StageSource, CodeSheetNotFound, fmt.Sprintf("sheet %q not found", sheet), nil).
		WithContext("path", path).
		WithContext("sheet", sheet)
}

// HeaderMissing reports a sheet with no header row
func HeaderMissing(path, sheet string) *PipelineError {
	return New(StageSource, CodeHeaderMissing, fmt.Sprintf("sheet %q has no header row", sheet), nil).
		WithContext("path", path).
		WithContext("sheet", sheet)
}

// OutputUnwritable reports a destination that could not be written
func OutputUnwritable(path string, cause error) *PipelineError {
	return New(StageOutput, CodeOutputUnwritable, "failed to write artifact", cause).
		WithContext("path", path)
}

// EncodeFailed reports an artifact that could not be rendered
func EncodeFailed(cause error) *PipelineError {
	return New(StageOutput, CodeEncodeFailed, "failed to encode artifact", cause)
}

// IsCode reports whether err is, or wraps, a PipelineError with the given code
func IsCode(err error, code string) bool {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// StageOf returns the stage of the first PipelineError in err's chain
func StageOf(err error) (Stage, bool) {
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Stage, true
	}
	return "", false
}
