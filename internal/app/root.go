package app

import (
	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/widgets"
)

// Section headings.
const (
	HeadingBefore = "最適化前"
	HeadingAfter  = "最適化後"
)

// Root stacks the unoptimized Parent above the ParentOptimized, each under
// its heading, with a divider between them.
type Root struct {
	core.StatelessBase
	// Content is passed to both parents.
	Content CardData
}

func (r Root) Build(ctx core.BuildContext) core.Widget {
	return widgets.Column{
		Spacing: widgets.LineHeight(),
		Children: []core.Widget{
			widgets.Heading{Content: HeadingBefore},
			Parent{Content: r.Content},
			widgets.Divider{},
			widgets.Heading{Content: HeadingAfter},
			ParentOptimized{Content: r.Content},
		},
	}
}
