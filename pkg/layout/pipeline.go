package layout

// PipelineOwner tracks whether the render tree needs layout or paint.
// The tree is always laid out from its root; scheduled objects only
// record that a pass is due.
type PipelineOwner struct {
	dirtyLayout map[RenderObject]struct{}
	dirtyPaint  map[RenderObject]struct{}
	needsLayout bool
	needsPaint  bool
	layouts     int
	paints      int
}

// ScheduleLayout marks a render object as needing layout.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayout == nil {
		p.dirtyLayout = make(map[RenderObject]struct{})
	}
	p.dirtyLayout[object] = struct{}{}
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayoutForRoot lays out the tree from root. Clean subtrees with
// unchanged constraints return early inside Layout.
func (p *PipelineOwner) FlushLayoutForRoot(root RenderObject, constraints Constraints) {
	if root == nil {
		return
	}
	root.Layout(constraints)
	clear(p.dirtyLayout)
	if p.needsLayout {
		p.layouts++
	}
	p.needsLayout = false
}

// FlushPaint paints root into ctx if paint is pending. It reports whether
// a paint pass ran.
func (p *PipelineOwner) FlushPaint(root RenderObject, ctx *PaintContext) bool {
	if root == nil || !p.needsPaint {
		return false
	}
	root.Paint(ctx, OffsetOf(root))
	clear(p.dirtyPaint)
	p.needsPaint = false
	p.paints++
	return true
}

// Passes returns how many layout and paint passes have run.
func (p *PipelineOwner) Passes() (layouts, paints int) {
	return p.layouts, p.paints
}
