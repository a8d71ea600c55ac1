package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Column lays out its children top to bottom, left aligned.
//
// Every child receives the column's full width constraint. The column is as
// wide as its widest child and as tall as its children plus Spacing
// between each pair.
type Column struct {
	core.RenderObjectBase
	Children []core.Widget
	// Spacing is the vertical gap inserted between adjacent children.
	Spacing float64
}

func (c Column) ChildrenWidgets() []core.Widget {
	return c.Children
}

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	column := &renderColumn{spacing: c.Spacing}
	column.SetSelf(column)
	return column
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if column, ok := renderObject.(*renderColumn); ok && column.spacing != c.Spacing {
		column.spacing = c.Spacing
		column.MarkNeedsLayout()
	}
}

type renderColumn struct {
	layout.RenderBoxBase
	children []layout.RenderObject
	spacing  float64
}

func (r *renderColumn) SetChildren(children []layout.RenderObject) {
	r.children = children
	r.MarkNeedsLayout()
}

func (r *renderColumn) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderColumn) PerformLayout() {
	constraints := r.Constraints()
	var width, y float64
	for i, child := range r.children {
		if i > 0 {
			y += r.spacing
		}
		child.Layout(constraints)
		child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{Y: y}})
		size := child.Size()
		y += size.Height
		width = max(width, size.Width)
	}
	r.SetSize(graphics.Size{Width: width, Height: y})
}

func (r *renderColumn) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	for _, child := range r.children {
		ctx.PaintChild(child, offset)
	}
}

func (r *renderColumn) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	layout.HitTestChildren(r.children, position, result)
	return r.RenderBoxBase.HitTest(position, result)
}
