package core

import (
	"reflect"
	"time"

	"github.com/go-drift/memodemo/pkg/errors"
	"github.com/go-drift/memodemo/pkg/layout"
)

type elementBase struct {
	widget       Widget
	parent       Element
	depth        int
	slot         any
	buildOwner   *BuildOwner
	dirty        bool
	self         Element
	mounted      bool
	renderParent *RenderObjectElement // nearest ancestor that owns a render object
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setWidget(widget Widget) {
	e.widget = widget
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

// context returns the outermost element as a BuildContext so that wrapper
// elements register inherited dependencies under their own identity.
func (e *elementBase) context() BuildContext {
	if ctx, ok := e.self.(BuildContext); ok {
		return ctx
	}
	return e
}

// BuildOwner returns the owner scheduling this element's rebuilds.
func (e *elementBase) BuildOwner() *BuildOwner {
	return e.buildOwner
}

func (e *elementBase) attach(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.renderParent = e.findRenderParent()
	e.mounted = true
}

// FindAncestor walks up from the parent and returns the first element
// matching predicate.
func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// DependOnInherited returns the nearest ancestor inherited widget of the
// given type and registers this element as its dependent.
func (e *elementBase) DependOnInherited(inheritedType reflect.Type, aspect any) any {
	return dependOnInheritedImpl(e.self, inheritedType, aspect)
}

// findRenderParent walks up the element tree to find the nearest RenderObjectElement.
func (e *elementBase) findRenderParent() *RenderObjectElement {
	if ro, ok := e.FindAncestor(func(el Element) bool {
		_, ok := el.(*RenderObjectElement)
		return ok
	}).(*RenderObjectElement); ok {
		return ro
	}
	return nil
}

// safeBuild executes a build function with panic recovery.
// If the build panics, it reports the error and returns an error widget.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	if e.buildOwner != nil {
		e.buildOwner.recordBuild(e.widget)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Element:    reflect.TypeOf(e.self).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBuildError(buildErr)

		if boundary := e.findErrorBoundary(); boundary != nil && boundary.CaptureError(buildErr) {
			return nil
		}

		if builder := GetErrorWidgetBuilder(); builder != nil {
			if errWidget := builder(buildErr); errWidget != nil {
				return errWidget
			}
		}
		return errorPlaceholder{err: buildErr}
	}
	return built
}

// ErrorBoundaryCapture is implemented by the state of a stateful widget
// that takes over display of build failures in its subtree.
type ErrorBoundaryCapture interface {
	CaptureError(err *errors.BuildError) bool
}

// findErrorBoundary returns the nearest ancestor state that captures
// build errors.
func (e *elementBase) findErrorBoundary() ErrorBoundaryCapture {
	found := e.FindAncestor(func(el Element) bool {
		stateful, ok := el.(*StatefulElement)
		if !ok {
			return false
		}
		_, ok = stateful.state.(ErrorBoundaryCapture)
		return ok
	})
	if found == nil {
		return nil
	}
	return found.(*StatefulElement).state.(ErrorBoundaryCapture)
}

// childReplaced refreshes the render list of a multi-child render ancestor
// after a composite element swapped its child. Newly mounted descendants
// attach while the composite still points at the old child, so the list
// built at that moment misses them.
func (e *elementBase) childReplaced(previous, next Element) {
	if previous == next || previous == nil || e.renderParent == nil {
		return
	}
	e.renderParent.rebuildChildrenRenderList()
}

// childRenderObject returns the render object of a composite child.
func childRenderObject(child Element) layout.RenderObject {
	if child == nil || !isMountedElement(child) {
		return nil
	}
	if ro, ok := child.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}

// errorPlaceholder is a minimal fallback widget shown when build fails
// and no error widget builder is configured.
type errorPlaceholder struct {
	StatelessBase
	err *errors.BuildError
}

func (p errorPlaceholder) Build(ctx BuildContext) Widget {
	return nil
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates an element for a stateless widget. The widget
// and build owner are set by the framework during inflation.
func NewStatelessElement() *StatelessElement {
	element := &StatelessElement{}
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget {
		return widget.Build(e.context())
	})
	previous := e.child
	e.child = updateChild(e.child, built, e.self, e.buildOwner)
	e.childReplaced(previous, e.child)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// RenderObject returns the render object from the first render-object child.
func (e *StatelessElement) RenderObject() layout.RenderObject {
	return childRenderObject(e.child)
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// NewStatefulElement creates an element for a stateful widget.
func NewStatefulElement() *StatefulElement {
	element := &StatefulElement{}
	element.setSelf(element)
	return element
}

// State returns the state object, or nil before mount.
func (e *StatefulElement) State() State {
	return e.state
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	if host, ok := e.state.(hookHost); ok {
		host.beginBuild()
	}
	built := e.safeBuild(func() Widget {
		return e.state.Build(e)
	})
	previous := e.child
	e.child = updateChild(e.child, built, e, e.buildOwner)
	e.childReplaced(previous, e.child)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// RenderObject returns the render object from the first render-object child.
func (e *StatefulElement) RenderObject() layout.RenderObject {
	return childRenderObject(e.child)
}

// RenderObjectElement hosts a RenderObject and optional children.
type RenderObjectElement struct {
	elementBase
	renderObject layout.RenderObject
	children     []Element
}

// NewRenderObjectElement creates an element for a render object widget.
func NewRenderObjectElement() *RenderObjectElement {
	element := &RenderObjectElement{}
	element.setSelf(element)
	return element
}

func (e *RenderObjectElement) Mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true

	widget := e.widget.(RenderObjectWidget)
	e.renderObject = widget.CreateRenderObject(e)
	if e.buildOwner != nil {
		e.renderObject.SetOwner(e.buildOwner.Pipeline())
	}

	// Attach to render tree before building children.
	e.attachRenderObject(slot)

	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *RenderObjectElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *RenderObjectElement) Unmount() {
	e.mounted = false

	// Children detach their own render objects.
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil

	e.detachRenderObject()
}

func (e *RenderObjectElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	widget := e.widget.(RenderObjectWidget)
	widget.UpdateRenderObject(e, e.renderObject)

	switch typed := e.widget.(type) {
	case interface{ ChildWidget() Widget }:
		var child Element
		if len(e.children) > 0 {
			child = e.children[0]
		}
		child = updateChild(child, typed.ChildWidget(), e, e.buildOwner)
		if child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}

	case interface{ ChildrenWidgets() []Widget }:
		widgets := typed.ChildrenWidgets()
		updated := make([]Element, 0, len(widgets))
		for index, childWidget := range widgets {
			var existing Element
			if index < len(e.children) {
				existing = e.children[index]
			}
			child := updateChild(existing, childWidget, e, e.buildOwner)
			if child != nil {
				updated = append(updated, child)
			}
		}
		for i := len(widgets); i < len(e.children); i++ {
			e.children[i].Unmount()
		}
		e.children = updated
		e.rebuildChildrenRenderList()
	}
}

func (e *RenderObjectElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// RenderObject exposes the backing render object for the element.
func (e *RenderObjectElement) RenderObject() layout.RenderObject {
	return e.renderObject
}

func (e *RenderObjectElement) attachRenderObject(slot any) {
	e.renderParent = e.findRenderParent()
	if e.renderParent != nil {
		e.renderParent.insertRenderObjectChild(e.renderObject, slot)
	}
}

func (e *RenderObjectElement) detachRenderObject() {
	if e.renderParent != nil {
		e.renderParent.removeRenderObjectChild(e.renderObject, e.slot)
		e.renderParent = nil
	}
}

// insertRenderObjectChild adds a child render object. Multi-child render
// objects get their full list rebuilt once all children are mounted.
func (e *RenderObjectElement) insertRenderObjectChild(child layout.RenderObject, slot any) {
	if child == nil {
		return
	}
	layout.SetParentOnChild(child, e.renderObject)
	if single, ok := e.renderObject.(interface{ SetChild(layout.RenderObject) }); ok {
		single.SetChild(child)
		return
	}
	e.rebuildChildrenRenderList()
}

func (e *RenderObjectElement) removeRenderObjectChild(child layout.RenderObject, slot any) {
	if child == nil {
		return
	}
	child.SetParent(nil)
	if single, ok := e.renderObject.(interface{ SetChild(layout.RenderObject) }); ok {
		single.SetChild(nil)
		return
	}
	e.rebuildChildrenRenderList()
}

func (e *RenderObjectElement) rebuildChildrenRenderList() {
	multi, ok := e.renderObject.(interface{ SetChildren([]layout.RenderObject) })
	if !ok {
		return
	}
	objects := make([]layout.RenderObject, 0, len(e.children))
	for _, child := range e.children {
		if !isMountedElement(child) {
			continue
		}
		if ro := childRenderObject(child); ro != nil {
			objects = append(objects, ro)
		}
	}
	multi.SetChildren(objects)
}

func isMountedElement(e Element) bool {
	if m, ok := e.(interface{ isMounted() bool }); ok {
		return m.isMounted()
	}
	return true
}

// MountRoot inflates widget and mounts it as the root of a new tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element != nil {
		element.Mount(nil, nil)
	}
	return element
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && sameWidget(existing.Widget(), widget) {
		return existing
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, nil)
	return element
}

// sameWidget reports whether next is the very widget instance already
// mounted. Only pointer widgets have an identity to compare.
func sameWidget(existing Widget, next Widget) bool {
	a, b := reflect.ValueOf(existing), reflect.ValueOf(next)
	if a.Kind() != reflect.Pointer || b.Kind() != reflect.Pointer {
		return false
	}
	return a.Type() == b.Type() && a.Pointer() == b.Pointer()
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}
