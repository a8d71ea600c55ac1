// Package app contains the memoization demo: a Card behind a memo
// boundary, rendered by an unoptimized Parent and by a ParentOptimized
// that keeps the card's props stable across rebuilds.
package app

import (
	"go.uber.org/zap"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/diagnostics"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/widgets"
)

// Log messages emitted by the demo.
const (
	CardTraceMessage = "Cardコンポーネントレンダリング"
	ClickMessage     = "クリックされた"
)

// CardData is the content shown by a Card. Cards never mutate it.
type CardData struct {
	Title       string
	Description string
}

// DefaultCardData is the content used when none is configured.
var DefaultCardData = CardData{
	Title:       "カードタイトル",
	Description: "説明文",
}

func (d CardData) orDefault() CardData {
	if d == (CardData{}) {
		return DefaultCardData
	}
	return d
}

// Card shows a title and description in a bordered, tappable box.
//
// Card is a memo widget: an update whose Data and OnClick pointers equal
// the mounted ones is skipped. Every real build logs CardTraceMessage.
type Card struct {
	core.MemoBase
	// ID keys the card, which also names it in build statistics
	// ("app.Card#<ID>"). Empty means unkeyed.
	ID      string
	Data    *CardData
	OnClick *core.Callback
}

func (c Card) Key() any {
	if c.ID == "" {
		return nil
	}
	return c.ID
}

func (c Card) Build(ctx core.BuildContext) core.Widget {
	data := c.Data
	if data == nil {
		data = &CardData{}
	}
	diagnostics.FromContext(ctx).Info(CardTraceMessage,
		zap.String("component", "Card"),
		zap.String("title", data.Title),
	)

	return widgets.GestureDetector{
		OnTap: c.OnClick.Call,
		Child: widgets.Bordered{
			Padding: graphics.EdgeInsetsSymmetric(widgets.CellWidth(), 0),
			Child: widgets.Column{
				Children: []core.Widget{
					widgets.Heading{Content: data.Title},
					widgets.Text{Content: data.Description},
				},
			},
		},
	}
}
