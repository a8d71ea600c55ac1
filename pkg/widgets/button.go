package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Button is a tappable label drawn as "[ Label ]". The brackets are painted
// by the button; the label itself is a plain Text.
//
//	Button{
//	    Label: fmt.Sprintf("カウント: %d", count),
//	    OnTap: func() { count.Update(increment) },
//	}
type Button struct {
	core.StatelessBase
	// Label is the text shown inside the brackets.
	Label string
	// OnTap is called once per activation.
	OnTap func()
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	return GestureDetector{
		OnTap: b.OnTap,
		Child: bracketed{Child: Text{Content: b.Label}},
	}
}

// bracketed frames its child with "[ " and " ]".
type bracketed struct {
	core.RenderObjectBase
	Child core.Widget
}

func (b bracketed) ChildWidget() core.Widget {
	return b.Child
}

func (b bracketed) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderBracketed{}
	box.SetSelf(box)
	return box
}

func (b bracketed) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderBracketed struct {
	renderSingleChild
}

// inset is the space one bracket and its gap take on each side.
func (r *renderBracketed) inset() float64 {
	return 2 * CellWidth()
}

func (r *renderBracketed) PerformLayout() {
	inset := r.inset()
	insets := graphics.EdgeInsets{Left: inset, Right: inset}
	childSize := r.layoutChild(r.Constraints().Deflate(insets), graphics.Offset{X: inset})
	r.SetSize(graphics.Size{
		Width:  childSize.Width + insets.Horizontal(),
		Height: max(childSize.Height, LineHeight()),
	})
}

func (r *renderBracketed) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	ctx.Canvas.DrawText("[", offset)
	r.renderSingleChild.Paint(ctx, offset)
	ctx.Canvas.DrawText("]", graphics.Offset{X: offset.X + r.Size().Width - CellWidth(), Y: offset.Y})
}
