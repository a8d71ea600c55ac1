package graphics

import (
	"math"
	"strings"
)

// wideTail marks the second cell of a two-cell rune.
const wideTail rune = -1

// Box-drawing runes used by DrawRect and DrawHLine.
const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// TextCanvas is a grid of character cells. Drawing positions are given in
// logical pixels and snapped to the cell grid of its metrics.
type TextCanvas struct {
	metrics *TextMetrics
	cols    int
	rows    int
	cells   [][]rune
}

// NewTextCanvas creates a blank canvas covering size.
func NewTextCanvas(size Size, metrics *TextMetrics) *TextCanvas {
	if metrics == nil {
		metrics = DefaultTextMetrics()
	}
	cell := metrics.CellSize()
	cols := int(math.Ceil(size.Width / cell.Width))
	rows := int(math.Ceil(size.Height / cell.Height))
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	return &TextCanvas{metrics: metrics, cols: cols, rows: rows, cells: cells}
}

// Size returns the canvas size in logical pixels.
func (c *TextCanvas) Size() Size {
	cell := c.metrics.CellSize()
	return Size{Width: float64(c.cols) * cell.Width, Height: float64(c.rows) * cell.Height}
}

func (c *TextCanvas) cellAt(pos Offset) (col, row int) {
	cell := c.metrics.CellSize()
	return int(math.Round(pos.X / cell.Width)), int(math.Round(pos.Y / cell.Height))
}

func (c *TextCanvas) set(col, row int, r rune) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	c.cells[row][col] = r
}

// DrawText paints a single line of text with its top-left corner at pos.
// Text that runs past the right edge is clipped; a wide rune that does not
// fit entirely is dropped.
func (c *TextCanvas) DrawText(text string, pos Offset) {
	col, row := c.cellAt(pos)
	for _, r := range text {
		n := RuneCells(r)
		if col+n > c.cols {
			return
		}
		c.set(col, row, r)
		if n == 2 {
			c.set(col+1, row, wideTail)
		}
		col += n
	}
}

// DrawHLine paints a horizontal rule across the given pixel span.
func (c *TextCanvas) DrawHLine(y, left, right float64) {
	startCol, row := c.cellAt(Offset{X: left, Y: y})
	endCol, _ := c.cellAt(Offset{X: right, Y: y})
	for col := startCol; col < endCol; col++ {
		c.set(col, row, boxHorizontal)
	}
}

// DrawRect paints a single-line border around rect.
func (c *TextCanvas) DrawRect(rect Rect) {
	left, top := c.cellAt(Offset{X: rect.Left, Y: rect.Top})
	right, bottom := c.cellAt(Offset{X: rect.Right, Y: rect.Bottom})
	right--
	bottom--
	if right <= left || bottom <= top {
		return
	}
	for col := left + 1; col < right; col++ {
		c.set(col, top, boxHorizontal)
		c.set(col, bottom, boxHorizontal)
	}
	for row := top + 1; row < bottom; row++ {
		c.set(left, row, boxVertical)
		c.set(right, row, boxVertical)
	}
	c.set(left, top, boxTopLeft)
	c.set(right, top, boxTopRight)
	c.set(left, bottom, boxBottomLeft)
	c.set(right, bottom, boxBottomRight)
}

// String renders the canvas, one line per row, with trailing blanks trimmed.
func (c *TextCanvas) String() string {
	var sb strings.Builder
	for i, row := range c.cells {
		var line strings.Builder
		for _, r := range row {
			if r == wideTail {
				continue
			}
			line.WriteRune(r)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if i < len(c.cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
