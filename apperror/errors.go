// Package apperror defines the error taxonomy shared across the audio
// analysis engine. Every fallible operation in the engine returns an
// *AppError so callers can branch on Kind without parsing messages.
package apperror

import "fmt"

// Kind categorizes an AppError. The set is closed: callers switch on it.
type Kind string

const (
	KindIO               Kind = "io"
	KindFormat           Kind = "format"
	KindDecode           Kind = "decode"
	KindStorage          Kind = "storage"
	KindCache            Kind = "cache"
	KindNotFound         Kind = "not_found"
	KindGeneric          Kind = "generic"
	KindProcessingError  Kind = "processing_error"
	KindInvalidChartName Kind = "invalid_chart_name"
)

// AppError is the single error type returned by the engine and its
// collaborators. It wraps an underlying cause when one exists.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func IO(format string, args ...any) *AppError             { return newf(KindIO, format, args...) }
func Format(format string, args ...any) *AppError         { return newf(KindFormat, format, args...) }
func Decode(format string, args ...any) *AppError         { return newf(KindDecode, format, args...) }
func Storage(format string, args ...any) *AppError        { return newf(KindStorage, format, args...) }
func Cache(format string, args ...any) *AppError          { return newf(KindCache, format, args...) }
func NotFound(format string, args ...any) *AppError       { return newf(KindNotFound, format, args...) }
func Generic(format string, args ...any) *AppError        { return newf(KindGeneric, format, args...) }
func Processing(format string, args ...any) *AppError     { return newf(KindProcessingError, format, args...) }
func InvalidChartName(format string, args ...any) *AppError {
	return newf(KindInvalidChartName, format, args...)
}

// Wrap attaches a cause to a newly constructed AppError of the given kind.
func Wrap(kind Kind, cause error, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is an *AppError of the given kind.
func Is(err error, kind Kind) bool {
	ae, ok := err.(*AppError)
	return ok && ae.Kind == kind
}
