package widgets_test

import (
	"strings"
	"testing"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/errors"
	drifttest "github.com/go-drift/memodemo/pkg/testing"
	"github.com/go-drift/memodemo/pkg/widgets"
)

// panicking fails every build.
type panicking struct {
	core.StatelessBase
	message string
}

func (p panicking) Build(ctx core.BuildContext) core.Widget {
	panic(p.message)
}

// quietHandler drops reports so test output stays clean.
type quietHandler struct {
	errors.LogHandler
	builds int
}

func (h *quietHandler) HandleBuildError(err *errors.BuildError) { h.builds++ }

func quiet(t *testing.T) *quietHandler {
	t.Helper()
	h := &quietHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestErrorWidget_ReplacesFailedBuild(t *testing.T) {
	handler := quiet(t)
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(panicking{message: "boom"})

	if handler.builds != 1 {
		t.Errorf("expected one reported build error, got %d", handler.builds)
	}
	if !tester.Find(drifttest.ByType[widgets.ErrorWidget]()).Exists() {
		t.Fatal("expected ErrorWidget in place of failed build")
	}
	if !strings.Contains(tester.Frame(), "! Something went wrong") {
		t.Errorf("expected error banner, got %q", tester.Frame())
	}
	if !strings.Contains(tester.Frame(), "boom") {
		t.Errorf("expected panic message in debug mode, got %q", tester.Frame())
	}
}

func TestErrorWidget_ReleaseModeHidesMessage(t *testing.T) {
	quiet(t)
	verbose := false
	tester := drifttest.NewWidgetTesterWithT(t)

	tester.PumpWidget(widgets.ErrorWidget{
		Error:   &errors.BuildError{Widget: "x", Recovered: "secret"},
		Verbose: &verbose,
	})

	if strings.Contains(tester.Frame(), "secret") {
		t.Errorf("release mode should hide the message, got %q", tester.Frame())
	}
	if !tester.Find(drifttest.ByText("An error occurred")).Exists() {
		t.Error("expected generic message")
	}
}

func TestErrorBoundary_CapturesAndResets(t *testing.T) {
	quiet(t)
	tester := drifttest.NewWidgetTesterWithT(t)

	fail := true
	var captured *errors.BuildError
	var boundary widgets.BoundaryState
	child := &holderState{build: func() core.Widget {
		if fail {
			return panicking{message: "card failed"}
		}
		return widgets.Text{Content: "recovered"}
	}}
	tester.PumpWidget(widgets.ErrorBoundary{
		OnError: func(err *errors.BuildError) { captured = err },
		FallbackBuilder: func(err *errors.BuildError) core.Widget {
			return fallback{onBuild: func(ctx core.BuildContext) { boundary = widgets.ErrorBoundaryOf(ctx) }}
		},
		Child: holder{state: child},
	})
	tester.Pump()

	if captured == nil || captured.Recovered != "card failed" {
		t.Fatalf("expected captured error, got %v", captured)
	}
	if tester.Frame() != "fallback" {
		t.Errorf("expected fallback frame, got %q", tester.Frame())
	}
	if boundary == nil || !boundary.HasError() {
		t.Fatal("expected boundary state with error from fallback context")
	}

	fail = false
	boundary.Reset()
	tester.Pump()

	if tester.Frame() != "recovered" {
		t.Errorf("expected recovered frame, got %q", tester.Frame())
	}
}

type fallback struct {
	core.StatelessBase
	onBuild func(core.BuildContext)
}

func (f fallback) Build(ctx core.BuildContext) core.Widget {
	f.onBuild(ctx)
	return widgets.Text{Content: "fallback"}
}
