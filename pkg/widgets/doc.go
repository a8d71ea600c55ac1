// Package widgets provides the UI components the demo is built from.
//
// Widgets are immutable descriptions. Render-object widgets ([Text],
// [Heading], [Column], [Divider], [Padding], [SizedBox], [Bordered],
// [GestureDetector]) own a render box that lays itself out on the
// character grid of [graphics.TextCanvas]. Composite widgets ([Button],
// [ErrorWidget], [ErrorBoundary]) are built from them.
//
// # Widget Construction
//
// Struct literals are the canonical way to create widgets:
//
//	col := widgets.Column{
//	    Spacing: 13,
//	    Children: []core.Widget{
//	        widgets.Heading{Content: "Title"},
//	        widgets.Button{Label: "Tap me", OnTap: handleTap},
//	    },
//	}
//
// Helpers cover the common wrappers: [ColumnOf], [Padded], [VSpace] and
// [Tap].
//
// # Layout Model
//
// Constraints carry only a maximum width. Every box sizes its height from
// its content. Positions and sizes are logical pixels; the canvas snaps
// them to 7x13 cells, so layouts that should line up with the grid use
// multiples of [CellWidth] and [LineHeight].
package widgets
