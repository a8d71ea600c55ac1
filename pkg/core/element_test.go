package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/memodemo/pkg/errors"
)

// testStatelessWidget is a simple stateless widget for testing.
type testStatelessWidget struct {
	StatelessBase
	buildFn func(BuildContext) Widget
}

func (w testStatelessWidget) Build(ctx BuildContext) Widget {
	if w.buildFn != nil {
		return w.buildFn(ctx)
	}
	return nil
}

// keyedLeaf is a stateless widget that builds nothing and carries a key.
type keyedLeaf struct {
	StatelessBase
	key any
}

func (w keyedLeaf) Key() any                      { return w.key }
func (w keyedLeaf) Build(ctx BuildContext) Widget { return nil }

// testStatefulWidget hands out a prepared state.
type testStatefulWidget struct {
	StatefulBase
	state *testState
}

func (w testStatefulWidget) CreateState() State {
	return w.state
}

type testState struct {
	StateBase
	buildFn   func(s *testState, ctx BuildContext) Widget
	inits     int
	disposals int
}

func (s *testState) InitState() { s.inits++ }

func (s *testState) Build(ctx BuildContext) Widget {
	if s.buildFn != nil {
		return s.buildFn(s, ctx)
	}
	return nil
}

func (s *testState) Dispose() {
	s.disposals++
	s.StateBase.Dispose()
}

// testErrorHandler captures build errors for testing.
type testErrorHandler struct {
	errors.LogHandler
	buildErrors []*errors.BuildError
}

func (h *testErrorHandler) HandleBuildError(err *errors.BuildError) {
	h.buildErrors = append(h.buildErrors, err)
}

func captureErrors(t *testing.T) *testErrorHandler {
	t.Helper()
	handler := &testErrorHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return handler
}

func TestStatelessElement_BuildPanic_ReportsError(t *testing.T) {
	handler := captureErrors(t)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("test panic in stateless build")
		},
	}

	root := MountRoot(widget, NewBuildOwner())
	require.NotNil(t, root)

	require.Len(t, handler.buildErrors, 1)
	err := handler.buildErrors[0]
	assert.Equal(t, "test panic in stateless build", err.Recovered)
	assert.Equal(t, "core.testStatelessWidget", err.Widget)
	assert.NotEmpty(t, err.StackTrace)
}

func TestStatefulElement_BuildPanic_ReportsError(t *testing.T) {
	handler := captureErrors(t)

	state := &testState{
		buildFn: func(*testState, BuildContext) Widget {
			panic("test panic in stateful build")
		},
	}
	MountRoot(testStatefulWidget{state: state}, NewBuildOwner())

	require.Len(t, handler.buildErrors, 1)
	assert.Equal(t, "test panic in stateful build", handler.buildErrors[0].Recovered)
}

func TestSafeBuild_ReturnsErrorPlaceholder_WhenNoBuilder(t *testing.T) {
	captureErrors(t)
	SetErrorWidgetBuilder(func(err *errors.BuildError) Widget { return nil })
	defer SetErrorWidgetBuilder(nil)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("test panic")
		},
	}
	element := MountRoot(widget, NewBuildOwner()).(*StatelessElement)

	require.NotNil(t, element.child)
	assert.IsType(t, errorPlaceholder{}, element.child.Widget())
}

func TestSafeBuild_UsesCustomBuilder(t *testing.T) {
	captureErrors(t)

	var captured *errors.BuildError
	SetErrorWidgetBuilder(func(err *errors.BuildError) Widget {
		captured = err
		return keyedLeaf{key: "fallback"}
	})
	defer SetErrorWidgetBuilder(nil)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("custom builder test")
		},
	}
	element := MountRoot(widget, NewBuildOwner()).(*StatelessElement)

	require.NotNil(t, captured)
	assert.Equal(t, "custom builder test", captured.Recovered)
	assert.Equal(t, keyedLeaf{key: "fallback"}, element.child.Widget())
}

func TestStatefulElement_LifecycleAndRebuild(t *testing.T) {
	owner := NewBuildOwner()
	builds := 0
	state := &testState{
		buildFn: func(*testState, BuildContext) Widget {
			builds++
			return keyedLeaf{key: "child"}
		},
	}

	root := MountRoot(testStatefulWidget{state: state}, owner).(*StatefulElement)
	assert.Equal(t, 1, state.inits)
	assert.Equal(t, 1, builds)
	assert.Same(t, root, state.Element())

	child := root.child
	state.SetState(nil)
	assert.True(t, owner.NeedsWork())
	owner.FlushBuild()

	assert.Equal(t, 2, builds)
	assert.Same(t, child, root.child, "same type and key reuses the child element")

	root.Unmount()
	assert.Equal(t, 1, state.disposals)
	assert.True(t, state.IsDisposed())

	state.SetState(nil)
	assert.False(t, owner.NeedsWork(), "SetState after dispose is a no-op")
}

func TestUpdateChild_KeyChangeReplacesElement(t *testing.T) {
	owner := NewBuildOwner()
	key := "a"
	state := &testState{
		buildFn: func(*testState, BuildContext) Widget {
			return keyedLeaf{key: key}
		},
	}
	root := MountRoot(testStatefulWidget{state: state}, owner).(*StatefulElement)
	first := root.child

	key = "b"
	state.SetState(nil)
	owner.FlushBuild()

	assert.NotSame(t, first, root.child)
	assert.False(t, first.(*StatelessElement).isMounted())
}

func TestUpdateChild_SamePointerWidgetIsNotUpdated(t *testing.T) {
	owner := NewBuildOwner()
	leafBuilds := 0
	leaf := &pointerLeaf{builds: &leafBuilds}
	state := &testState{
		buildFn: func(*testState, BuildContext) Widget { return leaf },
	}
	MountRoot(testStatefulWidget{state: state}, owner)

	state.SetState(nil)
	owner.FlushBuild()

	assert.Equal(t, 1, leafBuilds)
}

type pointerLeaf struct {
	StatelessBase
	builds *int
}

func (w *pointerLeaf) Build(ctx BuildContext) Widget {
	*w.builds++
	return nil
}

func TestFindAncestor(t *testing.T) {
	var found Element
	inner := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			found = ctx.FindAncestor(func(e Element) bool {
				_, ok := e.(*StatefulElement)
				return ok
			})
			return nil
		},
	}
	state := &testState{
		buildFn: func(*testState, BuildContext) Widget { return inner },
	}
	root := MountRoot(testStatefulWidget{state: state}, NewBuildOwner())

	assert.Same(t, root, found)
}

func TestWidgetName(t *testing.T) {
	assert.Equal(t, "core.keyedLeaf#card", WidgetName(keyedLeaf{key: "card"}))
	assert.Equal(t, "core.keyedLeaf#7", WidgetName(keyedLeaf{key: 7}))
	assert.Equal(t, "core.testStatelessWidget", WidgetName(testStatelessWidget{}))
	assert.Equal(t, "<nil>", WidgetName(nil))
}

func TestWidgetName_StripsPointerAndTypeArguments(t *testing.T) {
	assert.Equal(t, "core.testStatelessWidget", WidgetName(&testStatelessWidget{}))
	counter := Stateful(
		func() int { return 0 },
		func(int, BuildContext, func(func(int) int)) Widget { return nil },
	)
	assert.Equal(t, "core.Stateful", WidgetName(counter))
}
