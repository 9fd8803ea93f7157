package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/runjump/common"
)

// DebugDraw outlines the chipmunk shapes through cam. Walkable platforms are
// green, everything else grey.
func (cw *CollisionWorld) DebugDraw(screen *ebiten.Image, cam *Camera) {
	if cw == nil || cw.space == nil || screen == nil || cam == nil {
		return
	}
	cp.DrawSpace(cw.space, &chipmunkDrawer{screen: screen, cam: cam, world: cw})
}

// DebugDrawProbe draws the ground probe ray for a character at pos, green
// when it touches ground and red otherwise.
func (cw *CollisionWorld) DebugDrawProbe(screen *ebiten.Image, cam *Camera, pos common.Vec2, halfHeight float64) {
	if cw == nil || screen == nil || cam == nil {
		return
	}
	c := color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
	if _, ok := cw.Probe(pos, halfHeight); ok {
		c = color.RGBA{R: 0x30, G: 0xff, B: 0x30, A: 0xff}
	}
	x0, y0 := cam.WorldToScreen(pos)
	x1, y1 := cam.WorldToScreen(common.Vec2{X: pos.X, Y: pos.Y - halfHeight - cw.ProbeDistance()})
	ebitenutil.DrawLine(screen, x0, y0, x1, y1, c)
}

type chipmunkDrawer struct {
	screen *ebiten.Image
	cam    *Camera
	world  *CollisionWorld
}

func (d *chipmunkDrawer) line(a, b cp.Vector, c color.Color) {
	ax, ay := d.cam.WorldToScreen(common.Vec2{X: a.X, Y: a.Y})
	bx, by := d.cam.WorldToScreen(common.Vec2{X: b.X, Y: b.Y})
	ebitenutil.DrawLine(d.screen, ax, ay, bx, by, c)
}

func (d *chipmunkDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(outline)
	steps := 20
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
	// draw angle indicator
	d.line(pos, cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}, c)
}

func (d *chipmunkDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *chipmunkDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	d.line(a, b, fcolorToRGBA(outline))
	if radius > 0 {
		d.DrawCircle(a, 0, radius, outline, fill, data)
		d.DrawCircle(b, 0, radius, outline, fill, data)
	}
}

func (d *chipmunkDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if d.screen == nil || count == 0 {
		return
	}
	c := fcolorToRGBA(fill)
	for i := 0; i < count; i++ {
		j := (i + 1) % count
		d.line(verts[i], verts[j], c)
	}
	if radius > 0 {
		for i := 0; i < count; i++ {
			d.DrawCircle(verts[i], 0, radius, outline, fill, data)
		}
	}
}

func (d *chipmunkDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if d.screen == nil {
		return
	}
	c := fcolorToRGBA(fill)
	l := size / 2 / d.cam.PixelsPerUnit()
	d.line(cp.Vector{X: pos.X - l, Y: pos.Y}, cp.Vector{X: pos.X + l, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - l}, cp.Vector{X: pos.X, Y: pos.Y + l}, c)
}

func (d *chipmunkDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *chipmunkDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
}

func (d *chipmunkDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if p, ok := shape.UserData.(*Platform); ok && d.world.IsGroundLayer(p.Layer) {
		return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
	}
	return cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 1.0}
}

func (d *chipmunkDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *chipmunkDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *chipmunkDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
