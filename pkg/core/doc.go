// Package core provides the widget and element framework interfaces and lifecycle.
//
// This package defines the foundational types for building reactive user interfaces:
// Widget, Element, State, and BuildContext. Widgets describe what the UI should
// look like; elements hold their place in the tree and decide when to rebuild.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count *core.Managed[int]
//	}
//
//	func (s *counterState) InitState() {
//	    s.count = core.NewManaged(s, 0)
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Button{
//	        Label: fmt.Sprintf("Count: %d", s.count.Value()),
//	        OnTap: func() { s.count.Set(s.count.Value() + 1) },
//	    }
//	}
//
// # Memo Boundaries
//
// A widget that embeds MemoBase is only rebuilt when its fields change.
// Fields are compared shallowly: pointers, maps, channels and slices by
// identity, plain values by value. Func fields have no identity in Go and
// always count as changed, so callbacks that should survive the comparison
// are passed as *Callback:
//
//	type Card struct {
//	    core.MemoBase
//	    Data    *CardData
//	    OnClick *core.Callback
//	}
//
// # Hooks
//
// UseMemo and UseCallback keep a derived value or a callback stable across
// builds of a State until one of their dependencies changes. They are
// called from Build, in the same order on every build:
//
//	func (s *parentState) Build(ctx core.BuildContext) core.Widget {
//	    data := core.UseMemo(s, func() *CardData { return &CardData{Title: "t"} })
//	    onClick := core.UseCallback(s, func() { log.Println("clicked") })
//	    return Card{Data: data, OnClick: onClick}
//	}
//
// UseController registers a Disposable for cleanup when the state goes away.
package core
