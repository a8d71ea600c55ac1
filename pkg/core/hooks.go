package core

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
//	func (s *myState) InitState() {
//	    s.ticker = core.UseController(s, func() *Ticker { return NewTicker() })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseMemo returns the value produced by compute, recomputing it only when
// one of deps differs from the previous build. Dependencies are compared
// with Identical. With no deps the value is computed once for the lifetime
// of the state.
//
// UseMemo must be called from Build, unconditionally and in the same order
// on every build.
func UseMemo[T any](s stateBase, compute func() T, deps ...any) T {
	slot := s.state().nextHook()
	if slot.set && depsEqual(slot.deps, deps) {
		if slot.value == nil {
			var zero T
			return zero
		}
		return slot.value.(T)
	}
	value := compute()
	slot.value = value
	slot.deps = deps
	slot.set = true
	return value
}

// UseCallback returns a Callback wrapping fn whose identity is stable until
// one of deps changes. The wrapped function is the one passed on the build
// that created the Callback.
func UseCallback(s stateBase, fn func(), deps ...any) *Callback {
	return UseMemo(s, func() *Callback {
		return NewCallback(fn)
	}, deps...)
}

func depsEqual(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !Identical(prev[i], next[i]) {
			return false
		}
	}
	return true
}

// Managed holds a value and triggers rebuilds when it changes.
// Unlike a plain field, setting it schedules the owning state's element.
//
// Managed is NOT thread-safe. It must only be accessed from the UI thread.
//
//	type myState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *myState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
type Managed[T any] struct {
	base  *StateBase
	value T
}

// NewManaged creates a new managed state value.
func NewManaged[T any](s stateBase, initial T) *Managed[T] {
	return &Managed[T]{
		base:  s.state(),
		value: initial,
	}
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and triggers a rebuild.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.base.SetState(nil)
}

// Update applies a transformation to the current value and triggers a rebuild.
func (m *Managed[T]) Update(transform func(T) T) {
	m.value = transform(m.value)
	m.base.SetState(nil)
}
