package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the drawing, in pixels
const drawPadding = 20

// Draw the triangulation, and optionally the input points, into a new context.
// One unit of the point space becomes scale pixels. The y axis points up.
func (tl Triangulation) Render(points []Point, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, tri := range tl {
		for _, p := range tri.Vertices() {
			extend(p)
		}
	}
	for _, p := range points {
		extend(p)
	}
	if math.IsInf(minX, 0) { // nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, tri := range tl {
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.6)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Points are drawn at a fixed pixel size, whatever the scale
	c.SetRGB(1, 1, 0)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}
	return c
}

// This is for debugging purposes only. Draws to a temp file and prints it to
// the terminal (iTerm only).
func (tl Triangulation) dbgDraw(scale float64) {
	c := tl.Render(nil, scale)
	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}
