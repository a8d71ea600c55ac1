package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/diagnostics"
	"github.com/go-drift/memodemo/pkg/widgets"
)

// Variant names carried by click log entries. They also key each
// parent's Card.
const (
	VariantUnoptimized = "unoptimized"
	VariantOptimized   = "optimized"
)

// CounterLabel formats the counter button label.
func CounterLabel(count int) string {
	return fmt.Sprintf("カウント: %d", count)
}

// Parent owns a counter and renders a Card below its button. Every build
// allocates new card data and a new click handler, so the card's memo
// boundary never holds and the card rebuilds with each tap.
type Parent struct {
	core.StatefulBase
	// Content is shown by the card. Zero means DefaultCardData.
	Content CardData
}

func (p Parent) CreateState() core.State {
	return &parentState{}
}

// counterState is the state shared by both parents.
type counterState struct {
	core.StateBase
	count  *core.Managed[int]
	logger *zap.Logger
}

func (s *counterState) InitState() {
	s.count = core.NewManaged(s, 0)
}

func (s *counterState) increment() {
	s.count.Update(func(c int) int { return c + 1 })
}

// clicked logs a card activation with the logger of the latest build.
func (s *counterState) clicked(variant string) {
	s.logger.Info(ClickMessage, zap.String("variant", variant))
}

func (s *counterState) layout(card Card) core.Widget {
	return widgets.Column{
		Spacing: widgets.LineHeight(),
		Children: []core.Widget{
			widgets.Button{Label: CounterLabel(s.count.Value()), OnTap: s.increment},
			card,
		},
	}
}

type parentState struct {
	counterState
}

func (s *parentState) Build(ctx core.BuildContext) core.Widget {
	s.logger = diagnostics.FromContext(ctx)
	content := s.Element().Widget().(Parent).Content.orDefault()

	data := &CardData{Title: content.Title, Description: content.Description}
	onClick := core.NewCallback(func() { s.clicked(VariantUnoptimized) })

	return s.layout(Card{ID: VariantUnoptimized, Data: data, OnClick: onClick})
}
