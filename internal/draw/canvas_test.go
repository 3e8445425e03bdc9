package draw

import (
	"bytes"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

type glyphs map[[2]int]string

func (g glyphs) Glyph(col, row int) (string, bool) {
	s, ok := g[[2]int{col, row}]
	return s, ok
}

func TestCanvasFill(t *testing.T) {
	Convey("Filling polygons", t, func() {
		bg := colorful.Color{}
		white := colorful.Color{R: 1, G: 1, B: 1}
		c := NewCanvas(10, 5, bg)
		So(c.Width(), ShouldEqual, 10)
		So(c.Height(), ShouldEqual, 10)

		square := []Point{{2, 2}, {6, 2}, {6, 6}, {2, 6}}

		Convey("An opaque polygon covers its interior only", func() {
			c.FillPolygon(square, white, 1)
			So(c.At(3, 3), ShouldResemble, white)
			So(c.Coverage(3, 3), ShouldAlmostEqual, 1, 1e-9)
			So(c.At(0, 0), ShouldResemble, bg)
			So(c.At(7, 7), ShouldResemble, bg)
		})

		Convey("Translucent polygons blend with what is below", func() {
			c.FillPolygon(square, white, 0.5)
			So(c.At(3, 3).R, ShouldAlmostEqual, 0.5, 1e-9)
			So(c.Coverage(3, 3), ShouldAlmostEqual, 0.5, 1e-9)

			c.FillPolygon(square, white, 0.5)
			So(c.At(3, 3).R, ShouldAlmostEqual, 0.75, 1e-9)
			So(c.Coverage(3, 3), ShouldAlmostEqual, 0.75, 1e-9)
		})

		Convey("Zero opacity draws nothing", func() {
			c.FillPolygon(square, white, 0)
			So(c.Coverage(3, 3), ShouldEqual, 0)
		})

		Convey("Polygons outside the canvas are clipped", func() {
			c.FillPolygon([]Point{{-20, -20}, {40, -20}, {40, 40}, {-20, 40}}, white, 1)
			So(c.At(9, 9), ShouldResemble, white)
		})

		Convey("Clear restores the background", func() {
			c.FillPolygon(square, white, 1)
			c.Clear()
			So(c.At(3, 3), ShouldResemble, bg)
			So(c.Coverage(3, 3), ShouldEqual, 0)
		})
	})
}

func TestCanvasNDC(t *testing.T) {
	Convey("NDC corners map to canvas corners", t, func() {
		c := NewCanvas(80, 24, colorful.Color{})
		So(c.NDCToPixel(-1, 1), ShouldResemble, Point{0, 0})
		So(c.NDCToPixel(1, -1), ShouldResemble, Point{80, 48})
		So(c.NDCToPixel(0, 0), ShouldResemble, Point{40, 24})
	})
}

func TestCanvasRender(t *testing.T) {
	Convey("Rendering", t, func() {
		c := NewCanvas(4, 2, colorful.Color{})
		var out bytes.Buffer

		Convey("The first frame paints every cell", func() {
			So(c.Render(&out, nil), ShouldBeNil)
			So(strings.Count(out.String(), string(BlockUpperHalf)), ShouldEqual, 8)
		})

		Convey("An unchanged frame writes nothing", func() {
			So(c.Render(&out, nil), ShouldBeNil)
			out.Reset()
			So(c.Render(&out, nil), ShouldBeNil)
			So(out.Len(), ShouldEqual, 0)

			Convey("until a redraw is forced", func() {
				c.ForceRedraw()
				So(c.Render(&out, nil), ShouldBeNil)
				So(strings.Count(out.String(), string(BlockUpperHalf)), ShouldEqual, 8)
			})
		})

		Convey("Only changed cells are repainted", func() {
			So(c.Render(&out, nil), ShouldBeNil)
			out.Reset()
			c.FillPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, colorful.Color{R: 1}, 1)
			So(c.Render(&out, nil), ShouldBeNil)
			So(strings.Count(out.String(), string(BlockUpperHalf)), ShouldEqual, 1)
			So(out.String(), ShouldContainSubstring, "\033[1;1H")
			So(out.String(), ShouldContainSubstring, "\033[38;2;255;0;0m")
		})

		Convey("Overlay glyphs show only through uncovered cells", func() {
			ov := glyphs{{0, 0}: "A", {1, 0}: "B"}
			c.FillPolygon([]Point{{1, 0}, {2, 0}, {2, 2}, {1, 2}}, colorful.Color{G: 1}, 1)
			So(c.Render(&out, ov), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "A")
			So(out.String(), ShouldNotContainSubstring, "B")
		})

		Convey("Cursor positions are 1-based row;col", func() {
			So(c.Render(&out, nil), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "\033[2;4H")
		})
	})
}

func TestChunkWriter(t *testing.T) {
	Convey("Chunk writer flushes everything it buffered", t, func() {
		var out bytes.Buffer
		cw := NewChunkWriter(&out)
		payload := strings.Repeat("x", maxChunkSize*3+17)
		cw.WriteString(payload)
		So(out.Len(), ShouldEqual, 0)
		So(cw.Flush(), ShouldBeNil)
		So(out.String(), ShouldEqual, payload)
		So(cw.Len(), ShouldEqual, 0)
	})
}
