package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate in sub-pixel space.
type Point struct {
	X, Y float64
}

// Overlay supplies pre-styled text for a terminal cell. The canvas prints it
// instead of pixels when nothing opaque enough covers that cell.
type Overlay interface {
	Glyph(col, row int) (glyph string, ok bool)
}

// coverageThreshold is the accumulated alpha below which overlay text
// shows through a cell.
const coverageThreshold = 0.05

// cell is one rendered terminal position, kept to diff against the next frame.
type cell struct {
	top, bottom [3]uint8
	glyph       string
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Every frame starts from the background colour;
// polygons are alpha-blended on top in draw order.
type Canvas struct {
	termWidth      int // Terminal columns
	termHeight     int // Terminal rows
	subPixelHeight int // termHeight * 2

	background colorful.Color
	pixels     []colorful.Color // Flat slice: [y * termWidth + x]
	coverage   []float64        // Accumulated alpha per sub-pixel

	prev        []cell // Cells emitted by the previous Render
	forceRedraw bool

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas for a terminal of width columns and height rows.
func NewCanvas(width, height int, background colorful.Color) *Canvas {
	c := &Canvas{background: background}
	c.Resize(width, height)
	return c
}

// Resize reallocates the buffers for new terminal dimensions. The next
// Render repaints every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]colorful.Color, c.subPixelHeight*termWidth)
	c.coverage = make([]float64, c.subPixelHeight*termWidth)
	c.prev = make([]cell, termWidth*termHeight)
	c.forceRedraw = true
	c.Clear()
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
	clear(c.coverage)
}

// Width returns the canvas width in sub-pixels (terminal columns).
func (c *Canvas) Width() int {
	return c.termWidth
}

// Height returns the canvas height in sub-pixels (terminal rows * 2).
func (c *Canvas) Height() int {
	return c.subPixelHeight
}

// NDCToPixel maps normalized device coordinates (Y up) to sub-pixel
// coordinates (Y down).
func (c *Canvas) NDCToPixel(x, y float64) Point {
	return Point{
		X: (x + 1) / 2 * float64(c.termWidth),
		Y: (1 - y) / 2 * float64(c.subPixelHeight),
	}
}

// At returns the colour of the sub-pixel at (x, y).
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return c.background
	}
	return c.pixels[y*c.termWidth+x]
}

// Coverage returns the accumulated alpha of the sub-pixel at (x, y).
func (c *Canvas) Coverage(x, y int) float64 {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return 0
	}
	return c.coverage[y*c.termWidth+x]
}

// blend composites col with the given alpha over the sub-pixel at (x, y).
func (c *Canvas) blend(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	c.pixels[i] = c.pixels[i].BlendRgb(col, alpha)
	c.coverage[i] = 1 - (1-c.coverage[i])*(1-alpha)
}

// FillPolygon fills a polygon given in sub-pixel coordinates with col at the
// given opacity using a scanline fill sampled at pixel centres.
func (c *Canvas) FillPolygon(points []Point, col colorful.Color, alpha float64) {
	if len(points) < 3 || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := max(int(math.Ceil(intersections[i]-0.5)), 0)
			xEnd := min(int(math.Floor(intersections[i+1]-0.5)), c.termWidth-1)
			for x := xStart; x <= xEnd; x++ {
				c.blend(x, y, col, alpha)
			}
		}
	}
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.scaledBuf) < n {
		c.scaledBuf = make([]Point, n)
	}
	return c.scaledBuf[:n]
}

func rgb(col colorful.Color) [3]uint8 {
	r, g, b := col.Clamped().RGB255()
	return [3]uint8{r, g, b}
}

// Render writes every changed cell to w. Cells are drawn as upper half
// blocks with the top sub-pixel as foreground and the bottom one as
// background. Where overlay text exists and the cell is uncovered, the
// overlay glyph is written instead.
func (c *Canvas) Render(w io.Writer, overlay Overlay) error {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			next := cell{
				top:    rgb(c.pixels[top+col]),
				bottom: rgb(c.pixels[bottom+col]),
			}
			if overlay != nil && c.coverage[top+col] < coverageThreshold && c.coverage[bottom+col] < coverageThreshold {
				if g, ok := overlay.Glyph(col, row); ok {
					next.glyph = g
				}
			}

			idx := row*c.termWidth + col
			if !c.forceRedraw && c.prev[idx] == next {
				continue
			}
			c.prev[idx] = next

			c.moveCursor(col+1, row+1)
			if next.glyph != "" {
				c.renderBuf.WriteString(next.glyph)
				continue
			}
			c.writeColor(38, next.top)
			c.writeColor(48, next.bottom)
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
	}
	c.forceRedraw = false

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString("\033[0m")
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends a 24-bit SGR colour; layer is 38 (fg) or 48 (bg).
func (c *Canvas) writeColor(layer int, rgb [3]uint8) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2")
	for _, v := range rgb {
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(v), 10))
	}
	c.renderBuf.WriteByte('m')
}
