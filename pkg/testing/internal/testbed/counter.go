// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"fmt"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/widgets"
)

// Counter is a stateful widget that displays a count and increments on tap.
type Counter struct {
	core.StatefulBase
	Initial int
	OnTap   func(count int)
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count *core.Managed[int]
	onTap func(int)
}

func (s *counterState) InitState() {
	w := s.Element().Widget().(Counter)
	s.count = core.NewManaged(s, w.Initial)
	s.onTap = w.OnTap
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	return widgets.GestureDetector{
		OnTap: func() {
			s.count.Update(func(c int) int { return c + 1 })
			if s.onTap != nil {
				s.onTap(s.count.Value())
			}
		},
		Child: widgets.Text{Content: fmt.Sprintf("%d", s.count.Value())},
	}
}

func (s *counterState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(Counter); ok {
		s.onTap = w.OnTap
	}
}
