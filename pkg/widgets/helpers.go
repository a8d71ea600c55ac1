package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// metrics returns the text metrics every widget lays out against.
func metrics() *graphics.TextMetrics {
	return graphics.DefaultTextMetrics()
}

// CellWidth returns the width of one narrow character cell.
func CellWidth() float64 {
	return metrics().CellSize().Width
}

// LineHeight returns the height of one line of text.
func LineHeight() float64 {
	return metrics().LineHeight()
}

// withinBounds reports whether position lies inside a box of size.
func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return graphics.RectFromOffsetSize(graphics.Offset{}, size).Contains(position)
}

// ColumnOf stacks children vertically with the given spacing.
func ColumnOf(spacing float64, children ...core.Widget) Column {
	return Column{Spacing: spacing, Children: children}
}

// Padded wraps a child with the specified padding.
func Padded(padding graphics.EdgeInsets, child core.Widget) Padding {
	return Padding{Padding: padding, Child: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// Tap wraps a child with a tap handler.
func Tap(onTap func(), child core.Widget) GestureDetector {
	return GestureDetector{OnTap: onTap, Child: child}
}

// renderSingleChild is embedded by boxes with at most one child.
type renderSingleChild struct {
	layout.RenderBoxBase
	child layout.RenderObject
}

func (r *renderSingleChild) SetChild(child layout.RenderObject) {
	r.child = child
	r.MarkNeedsLayout()
}

func (r *renderSingleChild) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

// layoutChild lays the child out at offset and returns its size.
func (r *renderSingleChild) layoutChild(constraints layout.Constraints, offset graphics.Offset) graphics.Size {
	if r.child == nil {
		return graphics.Size{}
	}
	r.child.Layout(constraints)
	r.child.SetParentData(&layout.BoxParentData{Offset: offset})
	return r.child.Size()
}

func (r *renderSingleChild) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	ctx.PaintChild(r.child, offset)
}

func (r *renderSingleChild) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil {
		layout.HitTestChildren([]layout.RenderObject{r.child}, position, result)
	}
	return r.RenderBoxBase.HitTest(position, result)
}
