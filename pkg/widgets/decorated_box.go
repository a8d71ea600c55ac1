package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Bordered draws a single-line box around its child and fills the available
// width. The border takes one cell on every side; Padding adds space
// between the border and the child.
//
//	Bordered{
//	    Padding: graphics.EdgeInsetsSymmetric(widgets.CellWidth(), 0),
//	    Child:   content,
//	}
type Bordered struct {
	core.RenderObjectBase
	Padding graphics.EdgeInsets
	Child   core.Widget
}

func (b Bordered) ChildWidget() core.Widget {
	return b.Child
}

func (b Bordered) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderBordered{padding: b.Padding}
	box.SetSelf(box)
	return box
}

func (b Bordered) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderBordered); ok && box.padding != b.Padding {
		box.padding = b.Padding
		box.MarkNeedsLayout()
	}
}

type renderBordered struct {
	renderSingleChild
	padding graphics.EdgeInsets
}

// insets returns the border plus padding on each side.
func (r *renderBordered) insets() graphics.EdgeInsets {
	cell := metrics().CellSize()
	return graphics.EdgeInsets{
		Left:   cell.Width + r.padding.Left,
		Top:    cell.Height + r.padding.Top,
		Right:  cell.Width + r.padding.Right,
		Bottom: cell.Height + r.padding.Bottom,
	}
}

func (r *renderBordered) PerformLayout() {
	insets := r.insets()
	constraints := r.Constraints()
	childSize := r.layoutChild(constraints.Deflate(insets), graphics.Offset{X: insets.Left, Y: insets.Top})
	r.SetSize(graphics.Size{
		Width:  max(constraints.MaxWidth, childSize.Width+insets.Horizontal()),
		Height: childSize.Height + insets.Vertical(),
	})
}

func (r *renderBordered) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	ctx.Canvas.DrawRect(graphics.RectFromOffsetSize(offset, r.Size()))
	r.renderSingleChild.Paint(ctx, offset)
}
