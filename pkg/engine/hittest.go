package engine

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// ErrNoTarget is returned when a tap reaches no tap handler.
var ErrNoTarget = errors.New("engine: no tap target")

// Matcher selects elements in the tree.
type Matcher func(core.Element) bool

// MatchType matches elements whose widget has type T.
func MatchType[T core.Widget]() Matcher {
	want := reflect.TypeFor[T]()
	return func(e core.Element) bool {
		w := e.Widget()
		return w != nil && reflect.TypeOf(w) == want
	}
}

// MatchKey matches elements whose widget carries key.
func MatchKey(key any) Matcher {
	return func(e core.Element) bool {
		w := e.Widget()
		return w != nil && w.Key() == key
	}
}

// Event is an input applied by Run on the UI thread.
type Event struct {
	// Tap locates a target by nested matchers and taps its center.
	Tap []Matcher
	// Do runs arbitrary work before the tap, if any.
	Do func()
}

// TapEvent returns an event tapping the element located by matchers.
func TapEvent(matchers ...Matcher) Event {
	return Event{Tap: matchers}
}

// Tap locates an element and taps the center of its render box. Each
// matcher searches within the subtree of the previous match, so
// Tap(MatchType[Parent](), MatchType[Card]()) taps the card inside the
// first Parent. The deepest tap handler under the point receives the tap.
func (e *Engine) Tap(matchers ...Matcher) error {
	target := e.root
	for i, match := range matchers {
		target = findDescendant(target, match)
		if target == nil {
			return fmt.Errorf("tap: matcher %d found no element: %w", i, ErrNoTarget)
		}
	}
	ro := renderObjectOf(target)
	if ro == nil {
		return fmt.Errorf("tap: %s has no render object: %w", core.WidgetName(target.Widget()), ErrNoTarget)
	}
	return e.TapAt(center(ro))
}

// TapAt hit tests from the root render object and delivers a tap to the
// deepest handler under pos.
func (e *Engine) TapAt(pos graphics.Offset) error {
	if e.rootRender == nil {
		return fmt.Errorf("tap at (%v, %v): %w", pos.X, pos.Y, ErrNoTarget)
	}
	result := &layout.HitTestResult{}
	e.rootRender.HitTest(pos, result)
	handler := layout.FirstTapHandler(result)
	if handler == nil {
		return fmt.Errorf("tap at (%v, %v): %w", pos.X, pos.Y, ErrNoTarget)
	}
	handler.HandleTap()
	return nil
}

// findDescendant returns the first strict descendant of root, in
// depth-first pre-order, accepted by match.
func findDescendant(root core.Element, match Matcher) core.Element {
	if root == nil {
		return nil
	}
	var found core.Element
	var visit func(core.Element) bool
	visit = func(child core.Element) bool {
		if match(child) {
			found = child
			return false
		}
		child.VisitChildren(visit)
		return found == nil
	}
	root.VisitChildren(visit)
	return found
}

func center(ro layout.RenderObject) graphics.Offset {
	origin := layout.GlobalOffset(ro)
	size := ro.Size()
	return graphics.Offset{X: origin.X + size.Width/2, Y: origin.Y + size.Height/2}
}
