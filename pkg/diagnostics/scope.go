package diagnostics

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/go-drift/memodemo/pkg/core"
)

// Scope provides a logger to every widget below it.
//
//	diagnostics.Scope{Logger: logger, Child: app}
//
// Widgets read it with [FromContext]. Replacing the logger rebuilds the
// widgets that read it, memo boundaries included.
type Scope struct {
	core.InheritedBase
	Logger *zap.Logger
	Child  core.Widget
}

func (s Scope) ChildWidget() core.Widget { return s.Child }

func (s Scope) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev, ok := old.(Scope)
	return !ok || prev.Logger != s.Logger
}

var scopeType = reflect.TypeOf(Scope{})

// FromContext returns the logger of the nearest Scope, or the process-wide
// logger when there is none.
func FromContext(ctx core.BuildContext) *zap.Logger {
	if ctx != nil {
		if scope, ok := ctx.DependOnInherited(scopeType, nil).(Scope); ok && scope.Logger != nil {
			return scope.Logger
		}
	}
	return L()
}
