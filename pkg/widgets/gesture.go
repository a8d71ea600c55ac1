package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// GestureDetector wraps a child widget with a tap callback.
//
// The detector takes its child's size. A tap anywhere inside that box,
// and not claimed by a deeper detector, invokes OnTap once.
//
//	GestureDetector{
//	    OnTap: func() { handleTap() },
//	    Child: Text{Content: "tap me"},
//	}
//
// For labelled tap targets, prefer [Button].
type GestureDetector struct {
	core.RenderObjectBase
	Child core.Widget
	OnTap func()
}

func (g GestureDetector) ChildWidget() core.Widget {
	return g.Child
}

func (g GestureDetector) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	detector := &renderGestureDetector{onTap: g.OnTap}
	detector.SetSelf(detector)
	return detector
}

func (g GestureDetector) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if detector, ok := renderObject.(*renderGestureDetector); ok {
		detector.onTap = g.OnTap
	}
}

type renderGestureDetector struct {
	renderSingleChild
	onTap func()
}

func (r *renderGestureDetector) PerformLayout() {
	r.SetSize(r.layoutChild(r.Constraints(), graphics.Offset{}))
}

// HandleTap implements layout.TapHandler.
func (r *renderGestureDetector) HandleTap() {
	if r.onTap != nil {
		r.onTap()
	}
}
