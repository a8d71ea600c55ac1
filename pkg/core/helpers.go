package core

import (
	"github.com/go-drift/memodemo/pkg/layout"
)

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type Greeting struct {
//	    core.StatelessBase
//	    Name string
//	}
//
//	func (g Greeting) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: "Hello, " + g.Name}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets:
//
//	type Counter struct {
//	    core.StatefulBase
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }

// MemoBase turns a stateless widget into a memo boundary. The element skips
// rebuilding when the replacing widget's fields are shallowly equal to the
// mounted one's. Implement PropsEqual to supply a custom comparison.
//
//	type Card struct {
//	    core.MemoBase
//	    Data    *CardData
//	    OnClick *core.Callback
//	}
//
//	func (c Card) Build(ctx core.BuildContext) core.Widget { ... }
type MemoBase struct{}

// CreateElement returns a new MemoElement.
func (MemoBase) CreateElement() Element { return NewMemoElement() }

// Key returns nil (no key).
func (MemoBase) Key() any { return nil }

// InheritedBase provides default CreateElement and Key implementations for
// inherited widgets. Embed it along with a Child field and implement
// [InheritedWidget.UpdateShouldNotify] and [InheritedWidget.ChildWidget]:
//
//	type LoggerScope struct {
//	    core.InheritedBase
//	    Logger *zap.Logger
//	    Child  core.Widget
//	}
//
//	func (s LoggerScope) ChildWidget() core.Widget { return s.Child }
//
//	func (s LoggerScope) UpdateShouldNotify(old core.InheritedWidget) bool {
//	    return s.Logger != old.(LoggerScope).Logger
//	}
type InheritedBase struct{}

// CreateElement returns a new InheritedElement.
func (InheritedBase) CreateElement() Element { return NewInheritedElement() }

// Key returns nil (no key).
func (InheritedBase) Key() any { return nil }

// RenderObjectBase provides default CreateElement and Key implementations for
// render object widgets:
//
//	type MyWidget struct {
//	    core.RenderObjectBase
//	    Child core.Widget
//	}
//
//	func (w MyWidget) ChildWidget() core.Widget { return w.Child }
//
//	func (w MyWidget) CreateRenderObject(ctx core.BuildContext) layout.RenderObject { ... }
//
//	func (w MyWidget) UpdateRenderObject(ctx core.BuildContext, ro layout.RenderObject) { ... }
type RenderObjectBase struct{}

// CreateElement returns a new RenderObjectElement.
func (RenderObjectBase) CreateElement() Element { return NewRenderObjectElement() }

// Key returns nil (no key).
func (RenderObjectBase) Key() any { return nil }

// RenderObjectWidget creates a render object directly. Widgets with a single
// child implement ChildWidget() Widget; widgets with several implement
// ChildrenWidgets() []Widget.
type RenderObjectWidget interface {
	Widget
	CreateRenderObject(ctx BuildContext) layout.RenderObject
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// Stateful creates an inline stateful widget using closures.
// Use this for quick, self-contained UI fragments that don't need
// lifecycle hooks or StateBase features.
//
//	widget := core.Stateful(
//	    func() int { return 0 },
//	    func(count int, ctx core.BuildContext, setState func(func(int) int)) core.Widget {
//	        return widgets.Button{
//	            Label: fmt.Sprintf("Count: %d", count),
//	            OnTap: func() { setState(func(c int) int { return c + 1 }) },
//	        }
//	    },
//	)
func Stateful[S any](
	init func() S,
	build func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &inlineStatefulWidget[S]{
		initFn:  init,
		buildFn: build,
	}
}

type inlineStatefulWidget[S any] struct {
	StatefulBase
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *inlineStatefulWidget[S]) widgetName() string {
	return "core.Stateful"
}

func (w *inlineStatefulWidget[S]) CreateState() State {
	return &inlineStatefulState[S]{
		initFn:  w.initFn,
		buildFn: w.buildFn,
	}
}

type inlineStatefulState[S any] struct {
	StateBase
	value   S
	initFn  func() S
	buildFn func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (s *inlineStatefulState[S]) InitState() {
	s.value = s.initFn()
}

func (s *inlineStatefulState[S]) Build(ctx BuildContext) Widget {
	return s.buildFn(s.value, ctx, func(update func(S) S) {
		s.SetState(func() {
			s.value = update(s.value)
		})
	})
}
