package core

import (
	"reflect"
)

// Callback is a zero-argument handler with pointer identity. Func values
// cannot be compared in Go, so handlers that cross a memo boundary are
// wrapped in a Callback and compared by address.
type Callback struct {
	fn func()
}

// NewCallback wraps fn in a new Callback.
func NewCallback(fn func()) *Callback {
	return &Callback{fn: fn}
}

// Call invokes the wrapped function. A nil Callback is a no-op.
func (c *Callback) Call() {
	if c == nil || c.fn == nil {
		return
	}
	c.fn()
}

// PropsComparer is implemented by memo widgets that compare their own props.
// PropsEqual reports whether the widget can reuse the build of old.
type PropsComparer interface {
	PropsEqual(old Widget) bool
}

// MemoElement hosts a stateless widget behind a memo boundary. Update
// records a skip instead of scheduling a build when the new widget's props
// equal the mounted widget's.
type MemoElement struct {
	StatelessElement
}

// NewMemoElement creates an element for a memo widget.
func NewMemoElement() *MemoElement {
	element := &MemoElement{}
	element.setSelf(element)
	return element
}

func (e *MemoElement) Update(newWidget Widget) {
	oldWidget := e.widget
	e.widget = newWidget
	if propsEqual(oldWidget, newWidget) {
		// A dirty element builds this frame anyway.
		if e.buildOwner != nil && !e.dirty {
			e.buildOwner.recordSkip(newWidget)
		}
		return
	}
	e.MarkNeedsBuild()
}

func propsEqual(oldWidget, newWidget Widget) bool {
	if cmp, ok := newWidget.(PropsComparer); ok {
		return cmp.PropsEqual(oldWidget)
	}
	return ShallowEqual(oldWidget, newWidget)
}

// ShallowEqual compares two values one level deep. Structs (and pointers to
// structs) are compared field by field with Identical; anything else is
// compared with Identical directly.
func ShallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Pointer {
		if va.Pointer() == vb.Pointer() {
			return true
		}
		if va.IsNil() || vb.IsNil() || va.Elem().Kind() != reflect.Struct {
			return false
		}
		va, vb = va.Elem(), vb.Elem()
	}
	if va.Kind() != reflect.Struct {
		return identicalValue(va, vb)
	}
	for i := 0; i < va.NumField(); i++ {
		if !identicalValue(va.Field(i), vb.Field(i)) {
			return false
		}
	}
	return true
}

// Identical reports whether a and b are the same value in the sense a memo
// boundary uses: pointers, maps, channels and slices must share an address,
// other values must be equal. Non-nil funcs are never identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return identicalValue(va, vb)
}

func identicalValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return identicalValue(ea, eb)
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !identicalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !identicalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	default:
		return false
	}
}
