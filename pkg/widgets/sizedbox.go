package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// SizedBox forces a width or height. A zero dimension takes the child's
// size along that axis.
type SizedBox struct {
	core.RenderObjectBase
	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderSizedBox); ok && (box.width != s.Width || box.height != s.Height) {
		box.width = s.Width
		box.height = s.Height
		box.MarkNeedsLayout()
	}
}

type renderSizedBox struct {
	renderSingleChild
	width  float64
	height float64
}

func (r *renderSizedBox) PerformLayout() {
	constraints := r.Constraints()
	if r.width > 0 && (constraints.MaxWidth == 0 || r.width < constraints.MaxWidth) {
		constraints.MaxWidth = r.width
	}
	size := r.layoutChild(constraints, graphics.Offset{})
	if r.width > 0 {
		size.Width = constraints.MaxWidth
	}
	if r.height > 0 {
		size.Height = r.height
	}
	r.SetSize(size)
}
