package testing

import (
	"errors"
	"fmt"

	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// ErrNoTapTarget is returned when a tap hits no tap handler.
var ErrNoTapTarget = errors.New("no tap target")

// Tap simulates a tap at the center of the first element matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}

	ro := extractRenderObject(result.First())
	if ro == nil {
		return fmt.Errorf("Tap: element has no render object: %s", finder.Description())
	}

	return t.TapAt(renderCenter(ro))
}

// TapAt simulates a tap at the given logical position. The deepest tap
// handler under the position receives the tap.
func (t *WidgetTester) TapAt(pos graphics.Offset) error {
	if t.rootRender == nil {
		return fmt.Errorf("TapAt(%v, %v): %w", pos.X, pos.Y, ErrNoTapTarget)
	}
	result := &layout.HitTestResult{}
	t.rootRender.HitTest(pos, result)
	handler := layout.FirstTapHandler(result)
	if handler == nil {
		return fmt.Errorf("TapAt(%v, %v): %w", pos.X, pos.Y, ErrNoTapTarget)
	}
	handler.HandleTap()
	return nil
}

// renderCenter returns the global center of a render object.
func renderCenter(ro layout.RenderObject) graphics.Offset {
	origin := layout.GlobalOffset(ro)
	size := ro.Size()
	return graphics.Offset{X: origin.X + size.Width/2, Y: origin.Y + size.Height/2}
}
