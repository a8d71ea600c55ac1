package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// DefaultTestWidth is the default logical width for the test surface:
// sixty narrow cells.
const DefaultTestWidth = 420

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame limit.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing. It drives the same build,
// layout and paint phases as the engine without a frame loop.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	width      float64
	metrics    *graphics.TextMetrics
	frame      string
	paints     int
	dispatches []func()
}

// NewWidgetTester creates a tester with default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		width:      DefaultTestWidth,
		metrics:    graphics.DefaultTextMetrics(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree so states are disposed.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}
}

// SetWidth sets the logical surface width. Must be called before PumpWidget.
func (t *WidgetTester) SetWidth(width float64) {
	t.width = width
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.Cleanup()

	t.root = core.MountRoot(widget, t.buildOwner)
	t.rootRender = extractRenderObject(t.root)
	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.ScheduleLayout(t.rootRender)
		pipeline.SchedulePaint(t.rootRender)
	}

	return t.Pump()
}

// Pump runs a single frame cycle: dispatches, build, layout, paint.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	t.buildOwner.FlushBuild()

	// A rebuild may have replaced the root render object.
	if t.root != nil {
		if ro := extractRenderObject(t.root); ro != t.rootRender {
			t.rootRender = ro
			if ro != nil {
				t.buildOwner.Pipeline().ScheduleLayout(ro)
			}
		}
	}
	if t.rootRender == nil {
		return nil
	}

	pipeline := t.buildOwner.Pipeline()
	pipeline.FlushLayoutForRoot(t.rootRender, layout.Constraints{MaxWidth: t.width})

	size := t.rootRender.Size()
	canvas := graphics.NewTextCanvas(graphics.Size{Width: t.width, Height: size.Height}, t.metrics)
	if pipeline.FlushPaint(t.rootRender, &layout.PaintContext{Canvas: canvas, Metrics: t.metrics}) {
		t.frame = canvas.String()
		t.paints++
	}
	return nil
}

// PumpAndSettle pumps until no work is pending or maxFrames is reached.
func (t *WidgetTester) PumpAndSettle(maxFrames int) error {
	for range maxFrames {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame, mirroring engine.Dispatch.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.rootRender
}

// BuildOwner returns the owner driving the tester's tree.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// BuildStats returns build and memo skip counts since the tester was
// created or the stats were last reset.
func (t *WidgetTester) BuildStats() core.BuildStats {
	return t.buildOwner.Stats()
}

// ResetBuildStats zeroes the build counters.
func (t *WidgetTester) ResetBuildStats() {
	t.buildOwner.ResetStats()
}

// Frame returns the most recently painted frame.
func (t *WidgetTester) Frame() string {
	return t.frame
}

// PaintCount returns how many frames have been painted.
func (t *WidgetTester) PaintCount() int {
	return t.paints
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// extractRenderObject walks from an element to find its render object.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if ro, ok := e.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}
