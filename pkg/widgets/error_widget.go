package widgets

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/errors"
)

func init() {
	// Register the default error widget builder
	core.SetErrorWidgetBuilder(func(err *errors.BuildError) core.Widget {
		return ErrorWidget{Error: err}
	})
}

// ErrorWidget displays error information when a widget build fails.
// It shows the failure message in debug mode, or a minimal error
// indicator in release mode.
type ErrorWidget struct {
	core.StatelessBase
	// Error is the build error that occurred.
	Error *errors.BuildError
	// Verbose overrides DebugMode for this widget instance.
	// If not explicitly set, defaults to core.DebugMode.
	Verbose *bool
}

func (e ErrorWidget) Build(ctx core.BuildContext) core.Widget {
	verbose := core.DebugMode
	if e.Verbose != nil {
		verbose = *e.Verbose
	}

	var errorText string
	switch {
	case e.Error == nil:
		errorText = "Unknown error"
	case verbose:
		errorText = e.Error.Error()
	default:
		errorText = "An error occurred"
	}

	return Bordered{
		Child: Column{Children: []core.Widget{
			Text{Content: "! Something went wrong"},
			Text{Content: errorText},
		}},
	}
}
