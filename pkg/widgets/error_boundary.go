package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/errors"
)

// ErrorBoundary catches build panics in its descendant widgets and shows
// a fallback instead of the failed subtree.
//
//	ErrorBoundary{
//	    OnError: func(err *errors.BuildError) { log.Warn("card failed", zap.Error(err)) },
//	    Child:   card,
//	}
//
// The failure is still reported to the global error handler. Call
// [ErrorBoundaryOf] from inside the fallback to reach Reset.
type ErrorBoundary struct {
	core.StatefulBase
	// Child is the subtree being guarded.
	Child core.Widget
	// FallbackBuilder builds the replacement. Nil uses [ErrorWidget].
	FallbackBuilder func(*errors.BuildError) core.Widget
	// OnError is called once for every captured failure.
	OnError func(*errors.BuildError)
}

func (e ErrorBoundary) CreateState() core.State {
	return &errorBoundaryState{}
}

type errorBoundaryState struct {
	core.StateBase
	capturedError *errors.BuildError
}

func (s *errorBoundaryState) Build(ctx core.BuildContext) core.Widget {
	widget := s.Element().Widget().(ErrorBoundary)
	if s.capturedError != nil {
		if widget.FallbackBuilder != nil {
			return widget.FallbackBuilder(s.capturedError)
		}
		return ErrorWidget{Error: s.capturedError}
	}
	return widget.Child
}

// CaptureError implements core.ErrorBoundaryCapture.
func (s *errorBoundaryState) CaptureError(err *errors.BuildError) bool {
	if s.IsDisposed() {
		return false
	}
	if boundary, ok := s.Element().Widget().(ErrorBoundary); ok && boundary.OnError != nil {
		boundary.OnError(err)
	}
	s.SetState(func() {
		s.capturedError = err
	})
	return true
}

// Reset clears the captured error and rebuilds the child.
// Use this to retry rendering after an error.
func (s *errorBoundaryState) Reset() {
	s.SetState(func() {
		s.capturedError = nil
	})
}

// HasError returns true if an error has been captured.
func (s *errorBoundaryState) HasError() bool {
	return s.capturedError != nil
}

// Error returns the captured error, or nil.
func (s *errorBoundaryState) Error() *errors.BuildError {
	return s.capturedError
}

// BoundaryState is the view of an ErrorBoundary's state handed out by
// [ErrorBoundaryOf].
type BoundaryState interface {
	Reset()
	HasError() bool
	Error() *errors.BuildError
}

// ErrorBoundaryOf returns the nearest ErrorBoundary's state, or nil if none.
func ErrorBoundaryOf(ctx core.BuildContext) BoundaryState {
	found := ctx.FindAncestor(func(e core.Element) bool {
		stateful, ok := e.(*core.StatefulElement)
		if !ok {
			return false
		}
		_, ok = stateful.State().(*errorBoundaryState)
		return ok
	})
	if found == nil {
		return nil
	}
	return found.(*core.StatefulElement).State().(*errorBoundaryState)
}
