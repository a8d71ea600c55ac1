package testbed

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// LayoutBox is a fixed-size box for layout testing. It paints its Label at
// its top-left corner.
type LayoutBox struct {
	core.RenderObjectBase
	Width  float64
	Height float64
	Label  string
}

func (b LayoutBox) CreateRenderObject(_ core.BuildContext) layout.RenderObject {
	ro := &renderLayoutBox{}
	ro.SetSelf(ro)
	return ro
}

func (b LayoutBox) UpdateRenderObject(_ core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderLayoutBox); ok {
		box.width = b.Width
		box.height = b.Height
		box.label = b.Label
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderLayoutBox struct {
	layout.RenderBoxBase
	width  float64
	height float64
	label  string
}

func (r *renderLayoutBox) PerformLayout() {
	r.SetSize(graphics.Size{Width: r.width, Height: r.height})
}

func (r *renderLayoutBox) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	ctx.Canvas.DrawText(r.label, offset)
}
