package widgets_test

import (
	"strings"
	"testing"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
	drifttest "github.com/go-drift/memodemo/pkg/testing"
	"github.com/go-drift/memodemo/pkg/widgets"
)

func TestColumn_StacksChildren(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.ColumnOf(13,
		widgets.Text{Content: "a"},
		widgets.Text{Content: "bcd"},
	))

	size := tester.RootRenderObject().Size()
	if size.Width != 21 || size.Height != 39 {
		t.Errorf("expected size {21, 39}, got {%v, %v}", size.Width, size.Height)
	}
	second := tester.Find(drifttest.ByText("bcd")).RenderObject()
	if offset := layout.OffsetOf(second); offset.Y != 26 {
		t.Errorf("expected second child at y=26, got %v", offset.Y)
	}
	if tester.Frame() != "a\n\nbcd" {
		t.Errorf("unexpected frame %q", tester.Frame())
	}
}

func TestPadding_ChildOffset(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Padded(
		graphics.EdgeInsets{Left: 14, Top: 13},
		widgets.Text{Content: "padded"},
	))

	ro := tester.Find(drifttest.ByType[widgets.Text]()).RenderObject()
	pd, ok := ro.ParentData().(*layout.BoxParentData)
	if !ok {
		t.Fatal("expected BoxParentData on child render object")
	}
	if pd.Offset.X != 14 || pd.Offset.Y != 13 {
		t.Errorf("expected child offset {14, 13}, got {%v, %v}", pd.Offset.X, pd.Offset.Y)
	}
	size := tester.RootRenderObject().Size()
	if size.Width != 56 || size.Height != 26 {
		t.Errorf("expected padding size {56, 26}, got {%v, %v}", size.Width, size.Height)
	}
	if tester.Frame() != "\n  padded" {
		t.Errorf("unexpected frame %q", tester.Frame())
	}
}

func TestPadding_ConstraintDeflation(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.SetWidth(70)
	tester.PumpWidget(widgets.Padding{
		Padding: graphics.EdgeInsetsSymmetric(14, 0),
		Child:   widgets.Divider{},
	})

	divider := tester.Find(drifttest.ByType[widgets.Divider]()).RenderObject()
	if w := divider.Size().Width; w != 42 {
		t.Errorf("expected deflated divider width 42, got %v", w)
	}
}

func TestSizedBox(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.ColumnOf(0,
		widgets.Text{Content: "a"},
		widgets.VSpace(26),
		widgets.Text{Content: "b"},
	))

	if h := tester.RootRenderObject().Size().Height; h != 52 {
		t.Errorf("expected height 52, got %v", h)
	}
	if tester.Frame() != "a\n\n\nb" {
		t.Errorf("unexpected frame %q", tester.Frame())
	}
}

func TestDivider_Indent(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.SetWidth(70)
	tester.PumpWidget(widgets.Divider{Indent: 14, EndIndent: 7})

	if tester.Frame() != "  "+strings.Repeat("─", 7) {
		t.Errorf("unexpected frame %q", tester.Frame())
	}
}

func TestBordered_DrawsBoxAroundChild(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	tester.SetWidth(70)
	tester.PumpWidget(widgets.Bordered{
		Padding: graphics.EdgeInsetsSymmetric(widgets.CellWidth(), 0),
		Child:   widgets.Text{Content: "説明文"},
	})

	rule := strings.Repeat("─", 8)
	want := strings.Join([]string{
		"┌" + rule + "┐",
		"│ 説明文 │",
		"└" + rule + "┘",
	}, "\n")
	if tester.Frame() != want {
		t.Errorf("expected frame\n%s\ngot\n%s", want, tester.Frame())
	}
	size := tester.RootRenderObject().Size()
	if size.Width != 70 || size.Height != 39 {
		t.Errorf("expected size {70, 39}, got {%v, %v}", size.Width, size.Height)
	}
}

func TestColumn_ChildRemoved(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	showSecond := true
	state := &holderState{build: func() core.Widget {
		children := []core.Widget{widgets.Text{Content: "first"}}
		if showSecond {
			children = append(children, widgets.Text{Content: "second"})
		}
		return widgets.Column{Children: children}
	}}
	tester.PumpWidget(holder{state: state})

	showSecond = false
	state.SetState(nil)
	tester.Pump()

	if tester.Frame() != "first" {
		t.Errorf("expected only first child, got %q", tester.Frame())
	}
	if tester.Find(drifttest.ByText("second")).Exists() {
		t.Error("expected second child to be unmounted")
	}
}
