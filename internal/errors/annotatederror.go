// Package errors provides error annotation with structured logging attributes.
//
// It is a drop-in replacement for the standard library errors package with the
// addition of [Wrap], [NewSentinel], and [SlogError], which keep the slog
// attributes and the origin stack frame attached to the error so that log
// output points at the place where things went wrong.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError wraps an error with a message, slog attributes, and the stack
// frame where the annotation happened.
type annotatedError struct {
	err   error
	msg   string
	attrs []slog.Attr
	frame runtime.Frame
}

// Wrap annotates err with a message and optional slog attributes.
//
// The resulting error message is "msg: err". A nil err is tolerated so that
// callers do not need to guard the annotation site.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		err:   err,
		msg:   msg,
		attrs: attrs,
		frame: callerFrame(2), //nolint:mnd // skip runtime.Callers and Wrap.
	}
}

// NewSentinel creates a sentinel error meant to be declared as a package-level
// variable and matched with [Is].
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// DecoratePanic converts a recovered panic value into an annotated error.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		err:   nil,
		msg:   fmt.Sprintf("panic: %v", recovered),
		attrs: nil,
		frame: panicFrame(),
	}
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// SlogError renders err as a single slog group attribute containing the
// message, the annotation attributes, and the origin source location.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}

	args := []any{slog.String("message", err.Error())}

	var annotated *annotatedError
	if errors.As(err, &annotated) {
		annotationArgs := make([]any, 0, len(annotated.attrs))
		for _, attr := range annotated.attrs {
			annotationArgs = append(annotationArgs, attr)
		}
		if len(annotationArgs) > 0 {
			args = append(args, slog.Group("annotations", annotationArgs...))
		}
		if annotated.frame.File != "" {
			args = append(args, slog.String("source",
				fmt.Sprintf("%s:%d", annotated.frame.File, annotated.frame.Line)))
		}
	}

	return slog.Group("error", args...)
}

// callerFrame resolves the stack frame skip levels above the caller.
func callerFrame(skip int) runtime.Frame {
	pcs := make([]uintptr, 1)
	if n := runtime.Callers(skip+1, pcs); n == 0 {
		return runtime.Frame{} //nolint:exhaustruct // zero frame when resolution fails.
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return frame
}

// panicFrame walks the stack past the runtime panic machinery to find the
// frame that panicked.
func panicFrame() runtime.Frame {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	foundPanic := false
	for {
		frame, more := frames.Next()
		if frame.Function == "runtime.gopanic" {
			foundPanic = true
		} else if foundPanic {
			return frame
		}
		if !more {
			break
		}
	}
	return runtime.Frame{} //nolint:exhaustruct // zero frame when resolution fails.
}

// Stdlib re-exports so that callers only import one errors package.

// New returns an error that formats as the given text.
func New(text string) error { return errors.New(text) }

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join returns an error that wraps the given errors.
func Join(errs ...error) error { return errors.Join(errs...) }
