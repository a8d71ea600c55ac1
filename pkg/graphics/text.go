package graphics

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/width"
)

// TextMetrics measures text against a fixed-advance font face. Runes that
// are East Asian wide or fullwidth occupy two cells.
type TextMetrics struct {
	face       font.Face
	advance    float64
	lineHeight float64
}

var (
	defaultMetrics     *TextMetrics
	defaultMetricsOnce sync.Once
)

// NewTextMetrics creates metrics for the given face. The face's advance for
// 'M' defines one cell.
func NewTextMetrics(face font.Face) *TextMetrics {
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = face.Metrics().Height / 2
	}
	return &TextMetrics{
		face:       face,
		advance:    float64(adv.Ceil()),
		lineHeight: float64(face.Metrics().Height.Ceil()),
	}
}

// DefaultTextMetrics returns metrics for the bundled 7x13 bitmap face.
func DefaultTextMetrics() *TextMetrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewTextMetrics(basicfont.Face7x13)
	})
	return defaultMetrics
}

// CellSize returns the size of a single narrow cell.
func (m *TextMetrics) CellSize() Size {
	return Size{Width: m.advance, Height: m.lineHeight}
}

// LineHeight returns the height of one line of text.
func (m *TextMetrics) LineHeight() float64 {
	return m.lineHeight
}

// Cells returns the number of narrow cells the text occupies.
func (m *TextMetrics) Cells(text string) int {
	n := 0
	for _, r := range text {
		n += RuneCells(r)
	}
	return n
}

// Measure returns the size of a single line of text.
func (m *TextMetrics) Measure(text string) Size {
	return Size{
		Width:  float64(m.Cells(text)) * m.advance,
		Height: m.lineHeight,
	}
}

// SnapWidth rounds a pixel width up to a whole number of cells.
func (m *TextMetrics) SnapWidth(w float64) float64 {
	return math.Ceil(w/m.advance) * m.advance
}

// RuneCells returns 2 for wide and fullwidth runes and 1 otherwise.
func RuneCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
