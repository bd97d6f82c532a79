// Package errors provides structured error handling for the ember runtime.
//
// Errors carry an operation name and a kind so load-time failures (theme
// parsing, resource resolution, form initialization) can be reported
// uniformly. Per-frame styling lookups never produce errors; a missing
// themed resource degrades to a zero value instead.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTheme indicates a theme loading or validation error.
	KindTheme
	// KindParse indicates a declarative description parsing failure.
	KindParse
	// KindResource indicates a missing or unreadable resource.
	KindResource
	// KindInit indicates a control or form initialization error.
	KindInit
	// KindRender indicates a backend rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTheme:
		return "theme"
	case KindParse:
		return "parse"
	case KindResource:
		return "resource"
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UIError represents a structured error in the ember runtime.
type UIError struct {
	// Op is the operation that failed (e.g., "theme.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file or resource path involved, if applicable.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// New constructs a UIError for the given operation and kind.
func New(op string, kind ErrorKind, err error) *UIError {
	return &UIError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf constructs a UIError with a formatted message.
func Newf(op string, kind ErrorKind, format string, args ...any) *UIError {
	return New(op, kind, fmt.Errorf(format, args...))
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "controls.Form.Draw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
