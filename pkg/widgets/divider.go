package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Divider renders a horizontal rule one line tall.
//
// Divider expands to fill the available width. Indent and EndIndent inset
// the rule from the leading and trailing edges.
type Divider struct {
	core.RenderObjectBase
	// Indent is the left inset from the leading edge.
	Indent float64
	// EndIndent is the right inset from the trailing edge.
	EndIndent float64
}

func (d Divider) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderDivider{indent: d.Indent, endIndent: d.EndIndent}
	r.SetSelf(r)
	return r
}

func (d Divider) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderDivider); ok {
		if r.indent != d.Indent || r.endIndent != d.EndIndent {
			r.indent = d.Indent
			r.endIndent = d.EndIndent
			r.MarkNeedsPaint()
		}
	}
}

type renderDivider struct {
	layout.RenderBoxBase
	indent    float64
	endIndent float64
}

func (r *renderDivider) PerformLayout() {
	r.SetSize(graphics.Size{Width: r.Constraints().MaxWidth, Height: metrics().LineHeight()})
}

func (r *renderDivider) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	left := offset.X + r.indent
	right := offset.X + r.Size().Width - r.endIndent
	if right <= left {
		return
	}
	ctx.Canvas.DrawHLine(offset.Y, left, right)
}
