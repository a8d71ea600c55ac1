// Package layout provides render objects, box constraints and the pipeline
// that schedules layout and paint.
package layout

import (
	"github.com/go-drift/memodemo/pkg/graphics"
)

// Constraints bound the width a render box may take. Height is unbounded;
// boxes size themselves vertically from their content.
type Constraints struct {
	MaxWidth float64
}

// Deflate returns constraints shrunk by the horizontal insets.
func (c Constraints) Deflate(insets graphics.EdgeInsets) Constraints {
	w := c.MaxWidth - insets.Horizontal()
	if w < 0 {
		w = 0
	}
	return Constraints{MaxWidth: w}
}

// PaintContext carries the canvas a frame is painted onto.
type PaintContext struct {
	Canvas  *graphics.TextCanvas
	Metrics *graphics.TextMetrics
}

// PaintChild paints child at its parent-assigned offset relative to origin.
func (ctx *PaintContext) PaintChild(child RenderObject, origin graphics.Offset) {
	if child == nil {
		return
	}
	child.Paint(ctx, origin.Add(OffsetOf(child)))
}

// HitTestResult collects render objects under a pointer, deepest first.
type HitTestResult struct {
	Entries []RenderObject
}

// Add appends a render object to the result.
func (r *HitTestResult) Add(object RenderObject) {
	r.Entries = append(r.Entries, object)
}

// TapHandler is implemented by render objects that respond to taps.
type TapHandler interface {
	HandleTap()
}

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() graphics.Size
	Paint(ctx *PaintContext, offset graphics.Offset)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	Parent() RenderObject
	SetParent(parent RenderObject)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// OffsetOf returns the parent-assigned offset of a render object.
func OffsetOf(object RenderObject) graphics.Offset {
	if data, ok := object.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

// GlobalOffset returns the offset of object relative to the root.
func GlobalOffset(object RenderObject) graphics.Offset {
	var total graphics.Offset
	for current := object; current != nil; current = current.Parent() {
		total = total.Add(OffsetOf(current))
	}
	return total
}

// RenderBoxBase provides base behavior for render boxes. Concrete types
// embed it, call SetSelf, and implement PerformLayout.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	owner       *PipelineOwner
	self        RenderObject
	parent      RenderObject
	needsLayout bool
	constraints Constraints
	laidOut     bool
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	if newData, ok := data.(*BoxParentData); ok {
		oldData, hadOldData := r.parentData.(*BoxParentData)
		if (!hadOldData || oldData.Offset != newData.Offset) && r.parent != nil {
			r.parent.MarkNeedsPaint()
		}
	}
	r.parentData = data
}

// SetSelf records the concrete render object embedding this base.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
}

// Parent returns the parent render object, or nil for the root.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	r.parent = parent
}

// SetOwner attaches the pipeline owner used for scheduling.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// Owner returns the pipeline owner, walking up to the root if needed.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	if r.owner != nil {
		return r.owner
	}
	if p, ok := r.parent.(interface{ Owner() *PipelineOwner }); ok {
		return p.Owner()
	}
	return nil
}

// Constraints returns the constraints from the last layout.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// NeedsLayout reports whether the box is dirty.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout || !r.laidOut
}

// MarkNeedsLayout marks this box and its ancestors dirty and schedules a
// layout pass.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	if owner := r.Owner(); owner != nil {
		owner.ScheduleLayout(r.self)
	}
}

// MarkNeedsPaint schedules a paint pass.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if owner := r.Owner(); owner != nil {
		owner.SchedulePaint(r.self)
	}
}

// Layout runs PerformLayout when the box is dirty or its constraints changed.
func (r *RenderBoxBase) Layout(constraints Constraints) {
	if r.laidOut && !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
	r.needsLayout = false
	r.laidOut = true
}

// HitTest reports whether position (relative to this box) is inside it and
// records the box. Boxes with children override this to test them first.
func (r *RenderBoxBase) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if !graphics.RectFromOffsetSize(graphics.Offset{}, r.size).Contains(position) {
		return false
	}
	result.Add(r.self)
	return true
}

// Paint is a no-op default.
func (r *RenderBoxBase) Paint(ctx *PaintContext, offset graphics.Offset) {}

// HitTestChildren tests children in reverse paint order and records the
// first hit. It returns true if any child was hit.
func HitTestChildren(children []RenderObject, position graphics.Offset, result *HitTestResult) bool {
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		local := position.Add(graphics.Offset{X: -OffsetOf(child).X, Y: -OffsetOf(child).Y})
		if child.HitTest(local, result) {
			return true
		}
	}
	return false
}

// SetParentOnChild links child to parent in the render tree.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	child.SetParent(parent)
	if child.ParentData() == nil {
		child.SetParentData(&BoxParentData{})
	}
}

// FirstTapHandler returns the deepest tap handler in a hit test result.
func FirstTapHandler(result *HitTestResult) TapHandler {
	for _, entry := range result.Entries {
		if handler, ok := entry.(TapHandler); ok {
			return handler
		}
	}
	return nil
}
