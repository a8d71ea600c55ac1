package core

import (
	"fmt"
	"reflect"
	"strings"
)

// Widget is an immutable description of part of the user interface.
type Widget interface {
	// CreateElement returns a fresh element that will host this widget.
	CreateElement() Element
	// Key distinguishes widgets of the same type in the same slot.
	Key() any
}

// StatelessWidget builds its subtree purely from its own fields.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that survives rebuilds of its parent.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// InheritedWidget exposes a value to its descendants.
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must rebuild after the
	// widget was replaced by this one.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	Widget() Widget
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	Depth() int
	VisitChildren(visitor func(Element) bool)
}

// BuildContext is handed to Build methods; it is the element doing the build.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
	DependOnInherited(inheritedType reflect.Type, aspect any) any
}

// Disposable is implemented by resources released with their State.
type Disposable interface {
	Dispose()
}

// WidgetName returns the type name of w, suffixed with its key when set.
// It is the label used by build statistics.
func WidgetName(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	name := widgetTypeName(w)
	if key := w.Key(); key != nil {
		return name + "#" + fmt.Sprint(key)
	}
	return name
}

// namedWidget is implemented by framework widgets whose Go type name is an
// implementation detail.
type namedWidget interface {
	widgetName() string
}

// widgetTypeName returns the package-qualified type name of w without the
// pointer marker or type arguments.
func widgetTypeName(w Widget) string {
	if named, ok := w.(namedWidget); ok {
		return named.widgetName()
	}
	name := strings.TrimPrefix(reflect.TypeOf(w).String(), "*")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
