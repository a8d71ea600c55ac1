package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Text displays a single line of text.
//
// Text is measured on the character grid: narrow runes take one cell and
// East Asian wide runes take two. A line wider than the constraint is
// clipped when painted.
//
//	Text{Content: "カウント: 0"}
type Text struct {
	core.RenderObjectBase
	// Content is the text string to display.
	Content string
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{text: t.Content}
	text.SetSelf(text)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*renderText); ok {
		text.setText(t.Content)
	}
}

// Heading displays a line of text underlined with a rule of the same width.
type Heading struct {
	core.RenderObjectBase
	Content string
}

func (h Heading) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{text: h.Content, underline: true}
	text.SetSelf(text)
	return text
}

func (h Heading) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*renderText); ok {
		text.setText(h.Content)
	}
}

type renderText struct {
	layout.RenderBoxBase
	text      string
	underline bool
}

func (r *renderText) setText(text string) {
	if r.text == text {
		return
	}
	r.text = text
	r.MarkNeedsLayout()
	r.MarkNeedsPaint()
}

func (r *renderText) PerformLayout() {
	size := metrics().Measure(r.text)
	if maxWidth := r.Constraints().MaxWidth; maxWidth > 0 && size.Width > maxWidth {
		size.Width = maxWidth
	}
	if r.underline {
		size.Height += metrics().LineHeight()
	}
	r.SetSize(size)
}

func (r *renderText) Paint(ctx *layout.PaintContext, offset graphics.Offset) {
	ctx.Canvas.DrawText(r.text, offset)
	if r.underline {
		ctx.Canvas.DrawHLine(offset.Y+metrics().LineHeight(), offset.X, offset.X+r.Size().Width)
	}
}
