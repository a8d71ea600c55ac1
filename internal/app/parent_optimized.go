package app

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/diagnostics"
)

// ParentOptimized behaves like Parent but memoizes the card data and the
// click handler with no dependencies. Both keep their identity for the
// lifetime of the state, so taps only rebuild the button label.
//
// Content is read once: changing it on a mounted ParentOptimized does not
// reach the card, because the memoized data has no dependency on it.
type ParentOptimized struct {
	core.StatefulBase
	// Content is shown by the card. Zero means DefaultCardData.
	Content CardData
}

func (p ParentOptimized) CreateState() core.State {
	return &parentOptimizedState{}
}

type parentOptimizedState struct {
	counterState
}

func (s *parentOptimizedState) Build(ctx core.BuildContext) core.Widget {
	s.logger = diagnostics.FromContext(ctx)

	data := core.UseMemo(s, func() *CardData {
		content := s.Element().Widget().(ParentOptimized).Content.orDefault()
		return &CardData{Title: content.Title, Description: content.Description}
	})
	onClick := core.UseCallback(s, func() { s.clicked(VariantOptimized) })

	return s.layout(Card{ID: VariantOptimized, Data: data, OnClick: onClick})
}
