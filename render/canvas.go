package render

import (
	"image/color"
	"math"
)

// transform maps local (x, y) to (sx*x+tx, sy*y+ty). Rotation is never
// needed by the scene so the matrix stays diagonal.
type transform struct {
	sx, sy float64
	tx, ty float64
}

var identity = transform{sx: 1, sy: 1}

func (t transform) apply(x, y float64) (float64, float64) {
	return t.sx*x + t.tx, t.sy*y + t.ty
}

// Canvas records commands under a save/restore transform stack, mirroring the
// subset of a 2D context the scene drawers use.
type Canvas struct {
	cmds  []Command
	stack []canvasState
	cur   canvasState
}

type canvasState struct {
	t     transform
	layer Layer
	alpha float64
}

func NewCanvas() *Canvas {
	return &Canvas{cur: canvasState{t: identity, alpha: 1}}
}

func (c *Canvas) Commands() []Command {
	return c.cmds
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) SetLayer(l Layer) {
	c.cur.layer = l
}

// SetAlpha sets the global alpha for subsequent commands, like globalAlpha.
func (c *Canvas) SetAlpha(a float64) {
	c.cur.alpha = a
}

func (c *Canvas) Translate(x, y float64) {
	c.cur.t.tx += c.cur.t.sx * x
	c.cur.t.ty += c.cur.t.sy * y
}

func (c *Canvas) Scale(x, y float64) {
	c.cur.t.sx *= x
	c.cur.t.sy *= y
}

func (c *Canvas) emit(cmd Command) {
	cmd.Layer = c.cur.layer
	if cmd.Alpha == 0 {
		cmd.Alpha = 1
	}
	cmd.Alpha *= c.cur.alpha
	if cmd.Alpha <= 0 {
		return
	}
	c.cmds = append(c.cmds, cmd)
}

// box transforms a local rectangle, normalizing mirrored axes.
func (c *Canvas) box(x, y, w, h float64) (float64, float64, float64, float64) {
	x0, y0 := c.cur.t.apply(x, y)
	x1, y1 := c.cur.t.apply(x+w, y+h)
	return math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1 - x0), math.Abs(y1 - y0)
}

func (c *Canvas) scaleAvg() float64 {
	return (math.Abs(c.cur.t.sx) + math.Abs(c.cur.t.sy)) / 2
}

func (c *Canvas) Rect(x, y, w, h float64, clr color.RGBA) {
	bx, by, bw, bh := c.box(x, y, w, h)
	c.emit(Command{Kind: KindRect, X: bx, Y: by, W: bw, H: bh, Color: clr})
}

func (c *Canvas) RoundRect(x, y, w, h, r float64, clr color.RGBA) {
	bx, by, bw, bh := c.box(x, y, w, h)
	c.emit(Command{Kind: KindRoundRect, X: bx, Y: by, W: bw, H: bh, Radius: r * c.scaleAvg(), Color: clr})
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	bx, by, bw, bh := c.box(x, y, w, h)
	c.emit(Command{Kind: KindStrokeRect, X: bx, Y: by, W: bw, H: bh, StrokeWidth: width, Color: clr})
}

// RectAlpha is Rect with an extra per-command alpha.
func (c *Canvas) RectAlpha(x, y, w, h float64, clr color.RGBA, alpha float64) {
	bx, by, bw, bh := c.box(x, y, w, h)
	c.emit(Command{Kind: KindRect, X: bx, Y: by, W: bw, H: bh, Color: clr, Alpha: alpha})
}

func (c *Canvas) Circle(x, y, r float64, clr color.RGBA, alpha float64) {
	cx, cy := c.cur.t.apply(x, y)
	c.emit(Command{Kind: KindCircle, X: cx, Y: cy, Radius: r * c.scaleAvg(), Color: clr, Alpha: alpha})
}

func (c *Canvas) Polygon(clr color.RGBA, alpha float64, pts ...Point) {
	if len(pts) < 3 {
		return
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = c.cur.t.apply(p.X, p.Y)
	}
	c.emit(Command{Kind: KindPolygon, Points: out, Color: clr, Alpha: alpha})
}

func (c *Canvas) Text(s string, x, y, size float64, clr color.RGBA, align Align) {
	tx, ty := c.cur.t.apply(x, y)
	c.emit(Command{Kind: KindText, X: tx, Y: ty, Text: s, Size: size * math.Abs(c.cur.t.sy), Color: clr, Align: align})
}

func (c *Canvas) Gradient(x, y, w, h float64, stops ...color.RGBA) {
	bx, by, bw, bh := c.box(x, y, w, h)
	c.emit(Command{Kind: KindGradient, X: bx, Y: by, W: bw, H: bh, Stops: stops})
}
