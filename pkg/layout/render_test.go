package layout

import (
	"testing"

	"github.com/go-drift/memodemo/pkg/graphics"
)

type testRenderBox struct {
	RenderBoxBase
	layouts  int
	children []RenderObject
}

func newTestBox() *testRenderBox {
	box := &testRenderBox{}
	box.SetSelf(box)
	return box
}

func (r *testRenderBox) PerformLayout() {
	r.layouts++
	var y float64
	for _, child := range r.children {
		child.Layout(r.Constraints())
		child.SetParentData(&BoxParentData{Offset: graphics.Offset{X: 5, Y: y}})
		y += child.Size().Height
	}
	r.SetSize(graphics.Size{Width: r.Constraints().MaxWidth, Height: max(y, 10)})
}

func (r *testRenderBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if !graphics.RectFromOffsetSize(graphics.Offset{}, r.Size()).Contains(position) {
		return false
	}
	HitTestChildren(r.children, position, result)
	return r.RenderBoxBase.HitTest(position, result)
}

type tapBox struct {
	testRenderBox
	taps int
}

func (t *tapBox) HandleTap() { t.taps++ }

func TestLayout_SkipsCleanBoxWithSameConstraints(t *testing.T) {
	box := newTestBox()

	box.Layout(Constraints{MaxWidth: 100})
	box.Layout(Constraints{MaxWidth: 100})
	if box.layouts != 1 {
		t.Errorf("expected 1 layout for unchanged constraints, got %d", box.layouts)
	}

	box.Layout(Constraints{MaxWidth: 50})
	if box.layouts != 2 {
		t.Errorf("expected relayout for new constraints, got %d", box.layouts)
	}

	box.MarkNeedsLayout()
	box.Layout(Constraints{MaxWidth: 50})
	if box.layouts != 3 {
		t.Errorf("expected relayout after MarkNeedsLayout, got %d", box.layouts)
	}
}

func TestMarkNeedsLayout_PropagatesToRootOwner(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox()
	root.SetOwner(owner)
	child := newTestBox()
	SetParentOnChild(child, root)
	root.children = []RenderObject{child}

	owner.FlushLayoutForRoot(root, Constraints{MaxWidth: 100})
	if owner.NeedsLayout() {
		t.Fatal("expected clean pipeline after flush")
	}

	child.MarkNeedsLayout()
	if !owner.NeedsLayout() || !owner.NeedsPaint() {
		t.Error("expected layout and paint to be scheduled through the root")
	}
	if !root.NeedsLayout() {
		t.Error("expected ancestor to be marked dirty")
	}

	owner.FlushLayoutForRoot(root, Constraints{MaxWidth: 100})
	if child.layouts != 2 {
		t.Errorf("expected child relayout, got %d layouts", child.layouts)
	}
}

func TestFlushPaint_OnlyWhenScheduled(t *testing.T) {
	owner := &PipelineOwner{}
	root := newTestBox()
	root.SetOwner(owner)
	owner.ScheduleLayout(root)
	owner.FlushLayoutForRoot(root, Constraints{MaxWidth: 70})

	ctx := &PaintContext{Canvas: graphics.NewTextCanvas(root.Size(), graphics.DefaultTextMetrics())}
	if !owner.FlushPaint(root, ctx) {
		t.Error("expected first paint to run")
	}
	if owner.FlushPaint(root, ctx) {
		t.Error("expected no paint without changes")
	}

	layouts, paints := owner.Passes()
	if layouts != 1 || paints != 1 {
		t.Errorf("expected 1 layout and 1 paint pass, got %d and %d", layouts, paints)
	}
}

func TestHitTest_DeepestFirst(t *testing.T) {
	root := newTestBox()
	child := &tapBox{}
	child.SetSelf(child)
	SetParentOnChild(child, root)
	root.children = []RenderObject{child}
	root.Layout(Constraints{MaxWidth: 100})

	result := &HitTestResult{}
	if !root.HitTest(graphics.Offset{X: 20, Y: 5}, result) {
		t.Fatal("expected hit inside root")
	}
	if len(result.Entries) != 2 || result.Entries[0] != RenderObject(child) {
		t.Fatalf("expected child then root, got %v", result.Entries)
	}

	FirstTapHandler(result).HandleTap()
	if child.taps != 1 {
		t.Errorf("expected 1 tap, got %d", child.taps)
	}

	miss := &HitTestResult{}
	root.HitTest(graphics.Offset{X: 2, Y: 5}, miss)
	if FirstTapHandler(miss) != nil {
		t.Error("expected no tap handler left of the child offset")
	}
}

func TestGlobalOffset(t *testing.T) {
	root := newTestBox()
	middle := newTestBox()
	leaf := newTestBox()
	SetParentOnChild(middle, root)
	SetParentOnChild(leaf, middle)
	root.children = []RenderObject{middle}
	middle.children = []RenderObject{leaf}
	root.Layout(Constraints{MaxWidth: 100})

	got := GlobalOffset(leaf)
	if got != (graphics.Offset{X: 10, Y: 0}) {
		t.Errorf("expected offset (10, 0), got %v", got)
	}
}
