package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Padding adds empty space around its child widget.
//
// The child is constrained to the remaining width after padding is applied.
// If no child is provided, Padding creates an empty box of the padding size.
//
//	Padding{Padding: graphics.EdgeInsetsAll(7), Child: child}
type Padding struct {
	core.RenderObjectBase
	Padding graphics.EdgeInsets
	Child   core.Widget
}

func (p Padding) ChildWidget() core.Widget {
	return p.Child
}

func (p Padding) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	pad := &renderPadding{padding: p.Padding}
	pad.SetSelf(pad)
	return pad
}

func (p Padding) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if pad, ok := renderObject.(*renderPadding); ok && pad.padding != p.Padding {
		pad.padding = p.Padding
		pad.MarkNeedsLayout()
	}
}

type renderPadding struct {
	renderSingleChild
	padding graphics.EdgeInsets
}

func (r *renderPadding) PerformLayout() {
	childSize := r.layoutChild(
		r.Constraints().Deflate(r.padding),
		graphics.Offset{X: r.padding.Left, Y: r.padding.Top},
	)
	r.SetSize(graphics.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	})
}
