package orientation

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

// DbgDraw renders the ring into the terminal (iTerm2's imgcat protocol),
// stroking counterclockwise rings green and clockwise rings red, with the
// first vertex marked so the traversal direction is visible.
func (r *Ring) DbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range r.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.MoveTo(r.Points[0].X, r.Points[0].Y)
	for _, p := range r.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()

	if len(r.Points) >= 4 && IsCCW(r) {
		c.SetRGB(0, 1, 0)
	} else {
		c.SetRGB(1, 0, 0)
	}
	c.Stroke()

	// Mark the starting vertex
	c.SetRGB(0, 1, 1)
	c.DrawCircle(r.Points[0].X, r.Points[0].Y, 3/scale)
	c.Fill()

	c.SavePNG("/tmp/ring.png")
	imgcat.CatFile("/tmp/ring.png", os.Stdout)
}
